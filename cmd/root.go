package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/minatoaquaMK2/vibe-kanban/internal/api"
	"github.com/minatoaquaMK2/vibe-kanban/internal/output"
	"github.com/minatoaquaMK2/vibe-kanban/internal/session"
)

var (
	Version    = "0.1.0"
	jsonOutput bool
	serverURL  string
)

// ServerURLEnvVar overrides the --server flag default.
const ServerURLEnvVar = "VK_SERVER_URL"

// saveDrainTimeout bounds how long process exit waits for in-flight
// background config saves.
const saveDrainTimeout = 5 * time.Second

// commandsExemptFromGating lists commands that run without the first-run
// gating flow: the service itself, introspection, and recovery commands.
var commandsExemptFromGating = map[string]bool{
	"serve":            true,
	"status":           true,
	"reset-onboarding": true,
	"version":          true,
	"help":             true,
	"completion":       true,
}

// Session state for gated commands, built by the pre-run.
var (
	client    *api.Client
	store     *session.Store
	sequencer *Sequencer
)

var rootCmd = &cobra.Command{
	Use:   "vk",
	Short: "vibe-kanban - a kanban board for coding agents",
	Long: `vibe-kanban (vk) manages projects and tasks worked on by coding agents.

QUICK START:
  vk serve                          # Run the persistence service
  vk projects create "My app"       # Create a project
  vk list <project-id>              # Show a project's board
  vk create <project-id> "Fix bug"  # Add a task
  vk move <task-id> inprogress      # Move a task across the board

On the first run you are asked to accept the disclaimer and pick your
executor, editor and theme before any board command proceeds.

TASK COLUMNS: todo, inprogress, inreview, done, cancelled

JSON OUTPUT: Add --json flag to any command for machine-readable output.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if commandsExemptFromGating[cmd.Name()] {
			return nil
		}
		client = api.New(serverURL)
		store = session.NewStore(client)
		sequencer = NewSequencer(store, os.Stdin, cmd.OutOrStdout())
		if err := sequencer.Run(cmd.Context()); err != nil {
			if errors.Is(err, ErrDeclined) {
				return err
			}
			return fmt.Errorf("cannot reach persistence service at %s (is 'vk serve' running?): %w", serverURL, err)
		}
		return nil
	},
}

func Execute() {
	defer drainSaves()

	if err := rootCmd.Execute(); err != nil {
		if jsonOutput {
			output.New(true).Error(err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// drainSaves gives fire-and-forget config saves a bounded window to land
// before the process exits.
func drainSaves() {
	if sequencer != nil {
		sequencer.Wait(saveDrainTimeout)
	}
}

func init() {
	defaultServer := os.Getenv(ServerURLEnvVar)
	if defaultServer == "" {
		defaultServer = api.DefaultServerURL
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", defaultServer, "Persistence service URL")
	rootCmd.Version = Version
}

// Formatter returns the output formatter selected by the --json flag.
func Formatter() output.Formatter {
	return output.New(jsonOutput)
}

// IsJSONOutput reports whether --json was given.
func IsJSONOutput() bool {
	return jsonOutput
}
