package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/minatoaquaMK2/vibe-kanban/internal/models"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage vibe-kanban configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change configuration values",
	Long: `Change configuration values. Only the flags you give are changed; the
rest of the record is left untouched.

Examples:
  vk config set --theme dark
  vk config set --executor custom --executor-command my-agent
  vk config set --editor zed
  vk config set --analytics on`,
	RunE: runConfigSet,
}

var (
	configTheme           string
	configExecutor        string
	configExecutorCommand string
	configEditor          string
	configEditorCommand   string
	configAnalytics       string
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)

	configSetCmd.Flags().StringVar(&configTheme, "theme", "", "Theme (light, dark, system)")
	configSetCmd.Flags().StringVar(&configExecutor, "executor", "", "Executor kind ("+strings.Join(models.ExecutorKinds, ", ")+")")
	configSetCmd.Flags().StringVar(&configExecutorCommand, "executor-command", "", "Command for the custom executor")
	configSetCmd.Flags().StringVar(&configEditor, "editor", "", "Editor kind ("+strings.Join(models.EditorKinds, ", ")+")")
	configSetCmd.Flags().StringVar(&configEditorCommand, "editor-command", "", "Launch command for the custom editor")
	configSetCmd.Flags().StringVar(&configAnalytics, "analytics", "", "Analytics events (on, off)")
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := store.Get()
	Formatter().Config(&cfg)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	update, err := buildConfigUpdate()
	if err != nil {
		return err
	}
	if update == nil {
		return fmt.Errorf("nothing to change (see 'vk config set --help')")
	}

	// Optimistic merge first, then a synchronous full-record save so the
	// user sees a persistence failure immediately for explicit edits.
	store.Update(*update)
	if err := store.Save(cmd.Context()); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cfg := store.Get()
	Formatter().Config(&cfg)
	return nil
}

func buildConfigUpdate() (*models.ConfigUpdate, error) {
	var update models.ConfigUpdate
	changed := false

	if configTheme != "" {
		if !models.ValidTheme(configTheme) {
			return nil, fmt.Errorf("unknown theme %q (want light, dark or system)", configTheme)
		}
		update.Theme = models.String(configTheme)
		changed = true
	}

	if configExecutor != "" {
		if !models.ValidExecutorKind(configExecutor) {
			return nil, fmt.Errorf("unknown executor %q (want one of: %s)", configExecutor, strings.Join(models.ExecutorKinds, ", "))
		}
		if configExecutor == models.ExecutorCustom && configExecutorCommand == "" {
			return nil, fmt.Errorf("the custom executor needs --executor-command")
		}
		update.Executor = &models.ExecutorProfile{Kind: configExecutor, Command: configExecutorCommand}
		changed = true
	} else if configExecutorCommand != "" {
		return nil, fmt.Errorf("--executor-command only applies with --executor custom")
	}

	if configEditor != "" {
		if !models.ValidEditorKind(configEditor) {
			return nil, fmt.Errorf("unknown editor %q (want one of: %s)", configEditor, strings.Join(models.EditorKinds, ", "))
		}
		if configEditor == models.EditorCustom && configEditorCommand == "" {
			return nil, fmt.Errorf("the custom editor needs --editor-command")
		}
		update.Editor = &models.EditorConfig{Kind: configEditor, Command: configEditorCommand}
		changed = true
	} else if configEditorCommand != "" {
		return nil, fmt.Errorf("--editor-command only applies with --editor custom")
	}

	if configAnalytics != "" {
		switch configAnalytics {
		case "on", "true":
			update.AnalyticsEnabled = models.Bool(true)
		case "off", "false":
			update.AnalyticsEnabled = models.Bool(false)
		default:
			return nil, fmt.Errorf("unknown analytics value %q (want on or off)", configAnalytics)
		}
		changed = true
	}

	if !changed {
		return nil, nil
	}
	return &update, nil
}
