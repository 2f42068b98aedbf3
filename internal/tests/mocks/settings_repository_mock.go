package mocks

import "deskpilot/internal/models"

type SettingsRepositoryMock struct {
	GetFunc  func() models.Settings
	SaveFunc func(settings models.Settings) error
}

func (m *SettingsRepositoryMock) Get() models.Settings {
	if m.GetFunc != nil {
		return m.GetFunc()
	}
	return models.DefaultSettings()
}

func (m *SettingsRepositoryMock) Save(settings models.Settings) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(settings)
	}
	return nil
}
