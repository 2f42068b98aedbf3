package services

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"deskpilot/internal/commands"
	"deskpilot/internal/models"
	"deskpilot/internal/repositories"
)

// CommandRunner is satisfied by *commands.Executor.
type CommandRunner interface {
	Execute(ctx context.Context, commandLine, workingDir string) (string, error)
}

type CommandServiceOptions struct {
	// History may be nil, which disables recording.
	History     repositories.CommandRunRepository
	OutputLimit int
}

type CommandService struct {
	runner      CommandRunner
	history     repositories.CommandRunRepository
	outputLimit int
	log         *logrus.Entry
	context     context.Context
}

func NewCommandService(runner CommandRunner, opts CommandServiceOptions, log *logrus.Entry) *CommandService {
	return &CommandService{
		runner:      runner,
		history:     opts.History,
		outputLimit: opts.OutputLimit,
		log:         componentLog(log, "command-service"),
	}
}

func (s *CommandService) Startup(ctx context.Context) {
	s.context = ctx
}

// ExecuteCommand runs commandLine and returns its output. Errors from the
// command itself are returned unwrapped so their text reaches the user as is.
func (s *CommandService) ExecuteCommand(commandLine, workingDir string) (string, error) {
	ctx := ctxOrBackground(s.context)

	start := time.Now()
	out, err := s.runner.Execute(ctx, commandLine, workingDir)
	s.record(ctx, commandLine, workingDir, out, err, time.Since(start))
	return out, err
}

func (s *CommandService) ListCommandHistory(limit int) ([]models.CommandRun, error) {
	if s.history == nil {
		return []models.CommandRun{}, nil
	}
	runs, err := s.history.List(ctxOrBackground(s.context), limit)
	if err != nil {
		return nil, fmt.Errorf("service: list command history: %w", err)
	}
	return runs, nil
}

func (s *CommandService) ClearCommandHistory() error {
	if s.history == nil {
		return nil
	}
	if err := s.history.DeleteAll(ctxOrBackground(s.context)); err != nil {
		return fmt.Errorf("service: clear command history: %w", err)
	}
	s.log.Info("command history cleared")
	return nil
}

// record stores the run in history. Failures are logged and dropped.
func (s *CommandService) record(ctx context.Context, commandLine, workingDir, out string, runErr error, elapsed time.Duration) {
	if s.history == nil {
		return
	}
	run := &models.CommandRun{
		Command:    commandLine,
		WorkingDir: workingDir,
		Succeeded:  runErr == nil,
		Output:     out,
		DurationMs: elapsed.Milliseconds(),
	}
	if runErr != nil {
		run.ErrorKind = string(commands.KindOf(runErr))
		run.Output = runErr.Error()
	}
	run.Output = truncate(run.Output, s.outputLimit)

	if err := s.history.Create(ctx, run); err != nil {
		s.log.WithError(err).Warn("failed to record command run")
	}
}

// truncate cuts s to at most limit bytes without splitting a rune.
// A non-positive limit keeps s whole.
func truncate(s string, limit int) string {
	if limit <= 0 || len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// SettingsPolicy enforces the command lists stored in settings, read fresh
// on every check so edits apply immediately.
func SettingsPolicy(settings repositories.SettingsRepository) commands.Policy {
	return commands.PolicyFunc(func(program string, args []string) error {
		current := settings.Get()
		return commands.ListPolicy{
			Whitelist: current.WhitelistedCommands,
			Blacklist: current.BlacklistedCommands,
		}.Check(program, args)
	})
}
