package repositories

import (
	"deskpilot/internal/cache"
	"deskpilot/internal/models"
	"deskpilot/internal/storage"
)

const settingsCollection = "settings"

type SettingsRepository interface {
	Get() models.Settings
	Save(settings models.Settings) error
}

type settingsRepository struct {
	backend *storage.Backend
	cache   *cache.Store[models.Settings]
}

func NewSettingsRepository(backend *storage.Backend) SettingsRepository {
	return &settingsRepository{
		backend: backend,
		cache:   cache.New(models.Settings.Clone),
	}
}

// Get returns the cached settings, reading settings.json on first use.
// A missing or corrupt file yields DefaultSettings.
func (r *settingsRepository) Get() models.Settings {
	return r.cache.GetOrLoad(r.load)
}

// Save replaces the settings wholesale. The cache holds the new value even
// when writing the file fails.
func (r *settingsRepository) Save(settings models.Settings) error {
	settings = settings.Normalize()
	settings.SchemaVersion = models.CurrentSettingsVersion

	return r.cache.Mutate(models.DefaultSettings,
		func(models.Settings) (models.Settings, error) { return settings, nil },
		func(s models.Settings) error { return r.backend.SaveNamed(settingsCollection, s) },
	)
}

func (r *settingsRepository) load() models.Settings {
	return storage.LoadNamed(r.backend, settingsCollection, models.DefaultSettings, models.DecodeSettings)
}
