// Package dialogs renders the first-run dialogs as line-oriented terminal
// prompts. Rendering is kept apart from the gating decisions: each prompt
// reads from an io.Reader and writes to an io.Writer, returning a validated
// payload, so the flow is scriptable in tests.
package dialogs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/minatoaquaMK2/vibe-kanban/internal/models"
)

// DisclaimerText is shown once before anything else runs.
const DisclaimerText = `vibe-kanban orchestrates coding agents that read, write and execute code
in your repositories. Agents can run arbitrary commands in the worktrees
they are given. Review what an agent did before merging its work, and do
not point it at repositories you cannot afford to damage.

You remain responsible for anything an agent does on your behalf.`

// OnboardingResult is the validated payload of a completed onboarding
// dialog.
type OnboardingResult struct {
	Executor models.ExecutorProfile
	Editor   models.EditorConfig
	Theme    string
}

// PromptDisclaimer renders the disclaimer and asks for explicit acceptance.
// Returns false when the user declines; the caller exits without saving.
func PromptDisclaimer(r *bufio.Reader, w io.Writer) (bool, error) {
	fmt.Fprintln(w, "Disclaimer")
	fmt.Fprintln(w, "==========")
	fmt.Fprintln(w)
	fmt.Fprintln(w, DisclaimerText)
	fmt.Fprintln(w)
	fmt.Fprint(w, "Accept and continue? (yes/no): ")

	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return false, fmt.Errorf("read answer: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// PromptOnboarding walks the user through the executor, editor and theme
// choices. Returns nil (no error) when the user aborts partway; nothing is
// saved and the next run starts over.
func PromptOnboarding(r *bufio.Reader, w io.Writer) (*OnboardingResult, error) {
	fmt.Fprintln(w, "Welcome to vibe-kanban")
	fmt.Fprintln(w, "======================")
	fmt.Fprintln(w)

	executor, err := promptExecutor(r, w)
	if err != nil || executor == nil {
		return nil, err
	}

	editor, err := promptEditor(r, w)
	if err != nil || editor == nil {
		return nil, err
	}

	theme, err := promptChoice(r, w, "Theme", []string{models.ThemeLight, models.ThemeDark, models.ThemeSystem}, models.ThemeSystem)
	if err != nil || theme == "" {
		return nil, err
	}

	return &OnboardingResult{Executor: *executor, Editor: *editor, Theme: theme}, nil
}

func promptExecutor(r *bufio.Reader, w io.Writer) (*models.ExecutorProfile, error) {
	kind, err := promptChoice(r, w, "Default executor", models.ExecutorKinds, models.ExecutorClaude)
	if err != nil || kind == "" {
		return nil, err
	}

	profile := models.ExecutorProfile{Kind: kind}
	if kind == models.ExecutorCustom {
		fmt.Fprint(w, "Executor command: ")
		line, err := r.ReadString('\n')
		if err != nil && line == "" {
			return nil, fmt.Errorf("read executor command: %w", err)
		}
		command := strings.TrimSpace(line)
		if command == "" {
			return nil, nil // aborted
		}
		profile.Command = command
	}
	return &profile, nil
}

func promptEditor(r *bufio.Reader, w io.Writer) (*models.EditorConfig, error) {
	kind, err := promptChoice(r, w, "Editor", models.EditorKinds, models.EditorVSCode)
	if err != nil || kind == "" {
		return nil, err
	}

	editor := models.EditorConfig{Kind: kind}
	if kind == models.EditorCustom {
		fmt.Fprint(w, "Editor launch command: ")
		line, err := r.ReadString('\n')
		if err != nil && line == "" {
			return nil, fmt.Errorf("read editor command: %w", err)
		}
		command := strings.TrimSpace(line)
		if command == "" {
			return nil, nil // aborted
		}
		editor.Command = command
	}
	return &editor, nil
}

// promptChoice renders a numbered list and reads a selection by number or
// name. Empty input takes the default; "q" aborts and returns "".
func promptChoice(r *bufio.Reader, w io.Writer, label string, options []string, defaultOption string) (string, error) {
	fmt.Fprintf(w, "%s:\n", label)
	for i, opt := range options {
		marker := " "
		if opt == defaultOption {
			marker = "*"
		}
		fmt.Fprintf(w, "  %d) %s %s\n", i+1, marker, opt)
	}
	fmt.Fprintf(w, "Select [%s]: ", defaultOption)

	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read selection: %w", err)
	}
	input := strings.ToLower(strings.TrimSpace(line))

	if input == "" {
		return defaultOption, nil
	}
	if input == "q" || input == "quit" {
		return "", nil
	}
	if n, err := strconv.Atoi(input); err == nil {
		if n < 1 || n > len(options) {
			fmt.Fprintf(w, "No option %d, try again.\n", n)
			return promptChoice(r, w, label, options, defaultOption)
		}
		return options[n-1], nil
	}
	for _, opt := range options {
		if opt == input {
			return opt, nil
		}
	}
	fmt.Fprintf(w, "Unknown option %q, try again.\n", input)
	return promptChoice(r, w, label, options, defaultOption)
}
