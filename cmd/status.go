package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minatoaquaMK2/vibe-kanban/internal/api"
	"github.com/minatoaquaMK2/vibe-kanban/internal/gating"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the first-run setup state",
	Long: `Show where the first-run flow currently stands. Runs without the gating
flow itself, so it works even when setup is incomplete.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	c := api.New(serverURL)
	cfg, err := c.LoadConfig(cmd.Context())
	if err != nil {
		return fmt.Errorf("cannot reach persistence service at %s: %w", serverURL, err)
	}

	state := gating.State(*cfg)
	if IsJSONOutput() {
		Formatter().JSON(map[string]interface{}{
			"state":  state,
			"ready":  state == gating.StateReady,
			"config": cfg,
		})
		return nil
	}

	f := Formatter()
	f.KeyValue("State", state)
	f.Section("Configuration")
	f.Config(cfg)
	return nil
}
