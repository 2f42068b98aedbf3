package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"deskpilot/internal/events"
	"deskpilot/internal/models"
	"deskpilot/internal/repositories"
)

type SettingsService struct {
	settings repositories.SettingsRepository
	log      *logrus.Entry
	context  context.Context
}

func NewSettingsService(settings repositories.SettingsRepository, log *logrus.Entry) *SettingsService {
	return &SettingsService{settings: settings, log: componentLog(log, "settings")}
}

func (s *SettingsService) Startup(ctx context.Context) {
	s.context = ctx
}

func (s *SettingsService) GetSettings() models.Settings {
	return s.settings.Get()
}

// SaveSettings replaces the stored settings. Missing fields are filled with
// defaults before validation.
func (s *SettingsService) SaveSettings(settings models.Settings) error {
	settings = settings.Normalize()
	switch settings.Theme {
	case models.ThemeLight, models.ThemeDark, models.ThemeSystem:
	default:
		return errors.New("theme must be 'light', 'dark', or 'system'")
	}

	if err := s.settings.Save(settings); err != nil {
		s.log.WithError(err).Error("failed to save settings")
		return fmt.Errorf("service: save settings: %w", err)
	}

	s.log.Info("settings saved")
	events.Emit(ctxOrBackground(s.context), events.SettingsUpdated, events.Saved(""))
	return nil
}
