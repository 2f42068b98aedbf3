package models

import (
	"encoding/json"
	"fmt"
)

// SettingsMigration rewrites a raw settings document from one schema version
// to the next. Keys are the JSON field names.
type SettingsMigration func(doc map[string]any) error

// settingsMigrations is keyed by the version a migration upgrades from.
var settingsMigrations = map[int]SettingsMigration{
	0: func(doc map[string]any) error {
		// Version 0 files share the v1 shape; they only lack schema_version.
		return nil
	},
}

// DecodeSettings parses settings.json, runs any pending migrations and
// normalizes the result. Documents from a newer version are decoded as-is.
func DecodeSettings(data []byte) (Settings, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return Settings{}, err
	}
	if doc == nil {
		return Settings{}, fmt.Errorf("settings document is null")
	}

	version := 0
	if v, ok := doc["schema_version"].(float64); ok {
		version = int(v)
	}

	for version < CurrentSettingsVersion {
		migrate, ok := settingsMigrations[version]
		if !ok {
			return Settings{}, fmt.Errorf("no settings migration from version %d", version)
		}
		if err := migrate(doc); err != nil {
			return Settings{}, fmt.Errorf("migrate settings from version %d: %w", version, err)
		}
		version++
		doc["schema_version"] = version
	}

	upgraded, err := json.Marshal(doc)
	if err != nil {
		return Settings{}, err
	}
	var s Settings
	if err := json.Unmarshal(upgraded, &s); err != nil {
		return Settings{}, err
	}
	return s.Normalize(), nil
}
