package main

import (
	"context"
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"gorm.io/gorm"

	"deskpilot/internal/config"
	"deskpilot/internal/database"
	"deskpilot/internal/logging"
	"deskpilot/internal/services"
	"deskpilot/internal/storage"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		fmt.Println("Error creating logger:", err)
		os.Exit(1)
	}
	log := logging.Component(logger, "app")
	log.WithField("data_dir", cfg.DataDir).Info("starting deskpilot")

	app := NewApp(log)

	var db *gorm.DB
	if cfg.CommandHistory {
		db, err = database.Init(database.Config{
			Path:     filepath.Join(cfg.DataDir, database.FileName),
			LogLevel: database.LogLevel(logger.GetLevel()),
			Log:      log,
		})
		if err != nil {
			// History is optional; run without it.
			log.WithError(err).Error("failed to open history database")
		} else if sqlDB, err := db.DB(); err == nil {
			app.dbClose = sqlDB.Close
		}
	}

	backend := storage.NewBackend(cfg.DataDir, log)
	svc, err := services.NewServices(cfg, backend, db, log)
	if err != nil {
		log.WithError(err).Error("failed to create services")
		os.Exit(1)
	}

	err = wails.Run(&options.App{
		Title:  "Deskpilot",
		Width:  1024,
		Height: 768,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Linux: &linux.Options{
			WindowIsTranslucent: false,
			WebviewGpuPolicy:    linux.WebviewGpuPolicyAlways,
			ProgramName:         "Deskpilot",
		},
		Logger:           logging.NewWailsLogger(logging.Component(logger, "wails")),
		LogLevel:         logging.WailsLevel(logger.GetLevel()),
		BackgroundColour: &options.RGBA{R: 27, G: 38, B: 54, A: 1},
		OnStartup: func(ctx context.Context) {
			app.startup(ctx)
			svc.Startup(ctx)
		},
		OnShutdown: app.shutdown,
		Bind: []interface{}{
			app,
			svc.Settings,
			svc.Chats,
			svc.Folders,
			svc.Commands,
			svc.Search,
		},
	})

	if err != nil {
		log.WithError(err).Error("wails run failed")
		os.Exit(1)
	}
}
