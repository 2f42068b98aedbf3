package main

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"deskpilot/internal/models"
)

func newSettingsCmd(env *appEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show application settings",
	}

	var reveal bool
	show := &cobra.Command{
		Use:   "show",
		Short: "Print settings.json with defaults applied",
		Example: `  deskctl settings show
  deskctl settings show --reveal   # include full API keys`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := env.svc.Settings.GetSettings()
			if !reveal {
				s = maskSecrets(s)
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(s)
		},
	}
	show.Flags().BoolVar(&reveal, "reveal", false, "print API keys unmasked")

	cmd.AddCommand(show)
	return cmd
}

func maskSecrets(s models.Settings) models.Settings {
	s.OpenAIAPIKey = mask(s.OpenAIAPIKey)
	s.ClaudeAPIKey = mask(s.ClaudeAPIKey)
	s.OpenRouterAPIKey = mask(s.OpenRouterAPIKey)
	s.BraveSearchAPIKey = mask(s.BraveSearchAPIKey)
	return s
}

// mask keeps the last four characters of keys long enough to have them.
func mask(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}
