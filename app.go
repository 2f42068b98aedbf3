package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/wailsapp/wails/v2/pkg/runtime"

	"deskpilot/internal/events"
)

// App struct
type App struct {
	ctx     context.Context
	log     *logrus.Entry
	dbClose func() error
}

// NewApp creates a new App application struct
func NewApp(log *logrus.Entry) *App {
	return &App{log: log}
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	events.EnableRuntimeEmitter()
}

// shutdown is called when the app is closing. Clean up resources here.
func (a *App) shutdown(ctx context.Context) {
	if a.dbClose != nil {
		if err := a.dbClose(); err != nil {
			a.log.WithError(err).Error("failed to close database")
		} else {
			a.log.Info("database closed")
		}
		a.dbClose = nil
	}
}

// GetCwd returns the process working directory, or "Unknown".
func (a *App) GetCwd() string {
	dir, err := os.Getwd()
	if err != nil {
		return "Unknown"
	}
	return dir
}

// SelectDirectory opens a native directory picker dialog
func (a *App) SelectDirectory() (string, error) {
	return runtime.OpenDirectoryDialog(a.ctx, runtime.OpenDialogOptions{
		Title: "Select Working Directory",
	})
}
