package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minatoaquaMK2/vibe-kanban/internal/api"
)

var resetOnboardingCmd = &cobra.Command{
	Use:   "reset-onboarding",
	Short: "Clear the first-run acknowledgements",
	Long: `Clear every acknowledgement flag so the next command runs the first-run
flow again. Executor, editor and theme choices are kept.`,
	RunE: runResetOnboarding,
}

func init() {
	rootCmd.AddCommand(resetOnboardingCmd)
}

func runResetOnboarding(cmd *cobra.Command, args []string) error {
	c := api.New(serverURL)
	cfg, err := c.LoadConfig(cmd.Context())
	if err != nil {
		return fmt.Errorf("cannot reach persistence service at %s: %w", serverURL, err)
	}

	cfg.DisclaimerAcknowledged = false
	cfg.OnboardingAcknowledged = false
	cfg.GitHubLoginAcknowledged = false
	cfg.TelemetryAcknowledged = false
	cfg.AnalyticsEnabled = nil
	cfg.Version++

	if _, err := c.SaveConfig(cmd.Context(), *cfg); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	Formatter().Success("First-run flow reset. The next command will show the disclaimer again.")
	return nil
}
