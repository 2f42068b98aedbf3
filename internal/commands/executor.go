// Package commands runs user-supplied command lines as child processes and
// turns their results into user-facing text.
package commands

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"deskpilot/internal/utils"
)

// Executor launches commands. The zero value is not usable; use NewExecutor.
type Executor struct {
	policy Policy
	log    *logrus.Entry
}

// NewExecutor returns an executor that consults policy before every launch.
// A nil policy allows everything.
func NewExecutor(policy Policy, log *logrus.Entry) *Executor {
	if policy == nil {
		policy = AllowAll{}
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Executor{policy: policy, log: log.WithField("component", "commands")}
}

// ParseCommand splits commandLine on whitespace. Quoting and escaping are
// not supported, so an argument can never contain a space.
func ParseCommand(commandLine string) (string, []string, error) {
	fields := strings.Fields(commandLine)
	if len(fields) == 0 {
		return "", nil, &ExecError{Kind: KindEmptyCommand, Message: "Empty command", Err: ErrEmptyCommand}
	}
	return fields[0], fields[1:], nil
}

// Execute runs commandLine and waits for it to exit. workingDir is used only
// if it names an existing directory; otherwise the process inherits ours.
// There is no timeout; cancelling ctx kills the child.
//
// Result classification, first match wins:
//   - stderr output and exit 0: success, stdout followed by a Warnings section
//   - stderr output and non-zero exit: failure with stderr as the message
//   - no stdout and non-zero exit: failure naming the exit code
//   - anything else: success with stdout
func (e *Executor) Execute(ctx context.Context, commandLine, workingDir string) (string, error) {
	program, args, err := ParseCommand(commandLine)
	if err != nil {
		return "", err
	}
	if err := e.policy.Check(program, args); err != nil {
		e.log.WithField("program", program).WithError(err).Warn("command rejected")
		return "", err
	}

	cmd := exec.CommandContext(ctx, program, args...)
	if workingDir != "" {
		if utils.DirectoryExists(workingDir) {
			cmd.Dir = workingDir
		} else {
			e.log.WithField("dir", workingDir).Debug("working directory does not exist, ignoring")
		}
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	runErr := cmd.Run()
	log := e.log.WithFields(logrus.Fields{
		"program":  program,
		"dir":      cmd.Dir,
		"duration": time.Since(start),
	})

	var exitErr *exec.ExitError
	if runErr != nil && !errors.As(runErr, &exitErr) {
		launchErr := classifyLaunchError(program, runErr)
		log.WithError(runErr).Warn("failed to start command")
		return "", launchErr
	}

	out := strings.ToValidUTF8(stdout.String(), "\uFFFD")
	errOut := strings.ToValidUTF8(stderr.String(), "\uFFFD")
	exitCode := cmd.ProcessState.ExitCode()
	success := runErr == nil
	log = log.WithField("exit_code", exitCode)

	switch {
	case errOut != "" && success:
		log.Debug("command succeeded with warnings")
		return out + "\n\nWarnings:\n" + errOut, nil
	case errOut != "":
		log.Debug("command failed")
		return "", &ExecError{Kind: KindOther, Program: program, Message: errOut, Err: runErr}
	case out == "" && !success:
		log.Debug("command failed without output")
		return "", &ExecError{
			Kind:    KindOther,
			Program: program,
			Message: fmt.Sprintf("command exited with code %d", exitCode),
			Err:     runErr,
		}
	default:
		log.Debug("command succeeded")
		return out, nil
	}
}

var (
	notFoundPatterns = []string{
		"executable file not found",
		"no such file or directory",
		"cannot find the file",
		"cannot find the path",
		"not recognized as an internal or external command",
	}
	permissionPatterns = []string{
		"permission denied",
		"access is denied",
		"operation not permitted",
	}
)

// classifyLaunchError rewords the two common reasons a process fails to
// start. Everything else passes through with the platform's own text.
func classifyLaunchError(program string, err error) *ExecError {
	text := strings.ToLower(err.Error())
	switch {
	case errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) || containsAny(text, notFoundPatterns):
		return &ExecError{
			Kind:    KindProgramNotFound,
			Program: program,
			Message: fmt.Sprintf("command not found: %s", program),
			Err:     err,
		}
	case errors.Is(err, fs.ErrPermission) || containsAny(text, permissionPatterns):
		return &ExecError{
			Kind:    KindPermissionDenied,
			Program: program,
			Message: fmt.Sprintf("permission denied: cannot execute %s", program),
			Err:     err,
		}
	default:
		return &ExecError{
			Kind:    KindOther,
			Program: program,
			Message: fmt.Sprintf("failed to execute command: %v", err),
			Err:     err,
		}
	}
}

func containsAny(s string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
