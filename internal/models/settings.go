package models

const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"

	DefaultProvider = "openai"
	DefaultModel    = "gpt-4o"

	ToolCommand   = "command"
	ToolWebSearch = "web_search"
)

// CurrentSettingsVersion is written to settings.json on every save.
// Files written before versioning existed decode as version 0.
const CurrentSettingsVersion = 1

// Settings is the application-wide singleton persisted in settings.json.
type Settings struct {
	SchemaVersion int `json:"schema_version"`

	OpenAIAPIKey        string `json:"openai_api_key"`
	ClaudeAPIKey        string `json:"claude_api_key"`
	OpenRouterAPIKey    string `json:"open_router_api_key"`
	BraveSearchAPIKey   string `json:"brave_search_api_key"`
	WalkthroughProvider string `json:"walkthrough_provider"`
	WalkthroughModel    string `json:"walkthrough_model"`
	ActionProvider      string `json:"action_provider"`
	ActionModel         string `json:"action_model"`
	AutoApproveTools    bool   `json:"auto_approve_tools"`

	// Tool availability and auto-approval, keyed by tool name.
	WalkthroughTools       map[string]bool `json:"walkthrough_tools"`
	ActionTools            map[string]bool `json:"action_tools"`
	AutoApproveWalkthrough map[string]bool `json:"auto_approve_walkthrough"`
	AutoApproveAction      map[string]bool `json:"auto_approve_action"`

	WhitelistedCommands []string `json:"whitelisted_commands"`
	BlacklistedCommands []string `json:"blacklisted_commands"`

	Theme string `json:"theme"` // "light" | "dark" | "system"
}

// DefaultSettings returns the settings used on first launch or when
// settings.json cannot be read.
func DefaultSettings() Settings {
	return Settings{
		SchemaVersion:          CurrentSettingsVersion,
		WalkthroughProvider:    DefaultProvider,
		WalkthroughModel:       DefaultModel,
		ActionProvider:         DefaultProvider,
		ActionModel:            DefaultModel,
		WalkthroughTools:       map[string]bool{ToolCommand: true, ToolWebSearch: true},
		ActionTools:            map[string]bool{ToolCommand: true, ToolWebSearch: true},
		AutoApproveWalkthrough: map[string]bool{ToolCommand: false, ToolWebSearch: false},
		AutoApproveAction:      map[string]bool{ToolCommand: false, ToolWebSearch: false},
		WhitelistedCommands:    []string{},
		BlacklistedCommands:    []string{},
		Theme:                  ThemeSystem,
	}
}

// Normalize fills fields that are missing from older or hand-edited files.
// Secrets stay empty, collections become empty rather than nil.
func (s Settings) Normalize() Settings {
	if s.WalkthroughProvider == "" {
		s.WalkthroughProvider = DefaultProvider
	}
	if s.WalkthroughModel == "" {
		s.WalkthroughModel = DefaultModel
	}
	if s.ActionProvider == "" {
		s.ActionProvider = DefaultProvider
	}
	if s.ActionModel == "" {
		s.ActionModel = DefaultModel
	}
	if s.WalkthroughTools == nil {
		s.WalkthroughTools = map[string]bool{}
	}
	if s.ActionTools == nil {
		s.ActionTools = map[string]bool{}
	}
	if s.AutoApproveWalkthrough == nil {
		s.AutoApproveWalkthrough = map[string]bool{}
	}
	if s.AutoApproveAction == nil {
		s.AutoApproveAction = map[string]bool{}
	}
	if s.WhitelistedCommands == nil {
		s.WhitelistedCommands = []string{}
	}
	if s.BlacklistedCommands == nil {
		s.BlacklistedCommands = []string{}
	}
	if s.Theme == "" {
		s.Theme = ThemeSystem
	}
	return s
}

// Clone returns a deep copy so cached settings are never shared with callers.
func (s Settings) Clone() Settings {
	s.WalkthroughTools = cloneFlags(s.WalkthroughTools)
	s.ActionTools = cloneFlags(s.ActionTools)
	s.AutoApproveWalkthrough = cloneFlags(s.AutoApproveWalkthrough)
	s.AutoApproveAction = cloneFlags(s.AutoApproveAction)
	s.WhitelistedCommands = cloneStrings(s.WhitelistedCommands)
	s.BlacklistedCommands = cloneStrings(s.BlacklistedCommands)
	return s
}

func cloneFlags(m map[string]bool) map[string]bool {
	if m == nil {
		return nil
	}
	out := make(map[string]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string{}, in...)
}
