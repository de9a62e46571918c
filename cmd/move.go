package cmd

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/minatoaquaMK2/vibe-kanban/internal/models"
)

var moveCmd = &cobra.Command{
	Use:   "move <task-id> <status>",
	Short: "Move a task to another column",
	Long:  "Move a task to another board column: " + strings.Join(models.TaskStatuses, ", "),
	Args:  cobra.ExactArgs(2),
	RunE:  runMove,
}

func init() {
	rootCmd.AddCommand(moveCmd)
}

func runMove(cmd *cobra.Command, args []string) error {
	taskID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid task id %q: %w", args[0], err)
	}
	status := args[1]
	if !models.ValidTaskStatus(status) {
		return fmt.Errorf("unknown status %q (want one of: %s)", status, strings.Join(models.TaskStatuses, ", "))
	}

	task, err := client.MoveTask(cmd.Context(), taskID, status)
	if err != nil {
		return fmt.Errorf("failed to move task: %w", err)
	}

	Formatter().Task(task)
	return nil
}
