package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list <project-id>",
	Short: "Show a project's board",
	Args:  cobra.ExactArgs(1),
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	projectID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid project id %q: %w", args[0], err)
	}

	tasks, err := client.ListTasks(cmd.Context(), projectID)
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}

	f := Formatter()
	if len(tasks) == 0 && !IsJSONOutput() {
		f.Info("No tasks yet. Create one with 'vk create <project-id> <title>'")
		return nil
	}
	f.TaskList(tasks, "Tasks")
	return nil
}
