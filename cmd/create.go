package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var createDescription string

var createCmd = &cobra.Command{
	Use:   "create <project-id> <title>",
	Short: "Create a task",
	Args:  cobra.ExactArgs(2),
	RunE:  runCreate,
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().StringVarP(&createDescription, "description", "d", "", "Task description")
}

func runCreate(cmd *cobra.Command, args []string) error {
	projectID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid project id %q: %w", args[0], err)
	}

	task, err := client.CreateTask(cmd.Context(), projectID, args[1], createDescription)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	Formatter().Task(task)
	return nil
}
