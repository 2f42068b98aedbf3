package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"deskpilot/internal/config"
	"deskpilot/internal/database"
	"deskpilot/internal/logging"
	"deskpilot/internal/services"
	"deskpilot/internal/storage"
)

// appEnv holds what subcommands share. It is populated in the root's
// PersistentPreRunE so --data-dir is already parsed.
type appEnv struct {
	cfg     config.Config
	svc     *services.Services
	log     *logrus.Entry
	dbClose func() error
}

func (e *appEnv) open(dataDir string, verbose bool, errOut io.Writer) error {
	cfg, err := config.Load(dataDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if verbose {
		cfg.LogLevel = logrus.DebugLevel.String()
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, errOut)
	if err != nil {
		return err
	}
	e.log = logging.Component(logger, "deskctl")

	var db *gorm.DB
	if cfg.CommandHistory {
		db, err = database.Init(database.Config{
			Path:     filepath.Join(cfg.DataDir, database.FileName),
			LogLevel: database.LogLevel(logger.GetLevel()),
			Log:      e.log,
		})
		if err != nil {
			return fmt.Errorf("open history database: %w", err)
		}
		if sqlDB, err := db.DB(); err == nil {
			e.dbClose = sqlDB.Close
		}
	}

	svc, err := services.NewServices(cfg, storage.NewBackend(cfg.DataDir, e.log), db, e.log)
	if err != nil {
		return err
	}
	e.cfg = cfg
	e.svc = svc
	return nil
}

// Close releases the history database, if one was opened.
func (e *appEnv) Close() error {
	if e.dbClose == nil {
		return nil
	}
	err := e.dbClose()
	e.dbClose = nil
	return err
}

func newRootCmd(out, errOut io.Writer) (*cobra.Command, *appEnv) {
	env := &appEnv{}
	var (
		dataDir string
		verbose bool
	)

	root := &cobra.Command{
		Use:   "deskctl",
		Short: "Inspect and maintain deskpilot data",
		Long: `deskctl reads and edits the files behind the deskpilot desktop app:
settings.json, chats.json, folders.json and the command history database.

Run it while the app is closed; the app caches collections in memory and
will overwrite changes made behind its back.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}
			return env.open(dataDir, verbose, errOut)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (flag > "+config.EnvDataDir+" > default)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newSettingsCmd(env),
		newChatsCmd(env),
		newFoldersCmd(env),
		newExecCmd(env),
		newHistoryCmd(env),
		newSearchCmd(env),
	)
	return root, env
}
