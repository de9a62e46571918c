package dialogs

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/minatoaquaMK2/vibe-kanban/internal/models"
)

func reader(input string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(input))
}

func TestPromptDisclaimerAccept(t *testing.T) {
	var out bytes.Buffer
	accepted, err := PromptDisclaimer(reader("yes\n"), &out)
	if err != nil {
		t.Fatalf("PromptDisclaimer() error: %v", err)
	}
	if !accepted {
		t.Error("PromptDisclaimer() should accept on \"yes\"")
	}
	if !strings.Contains(out.String(), "Disclaimer") {
		t.Error("disclaimer output should carry the heading")
	}
}

func TestPromptDisclaimerDecline(t *testing.T) {
	for _, input := range []string{"no\n", "\n", "nah\n"} {
		var out bytes.Buffer
		accepted, err := PromptDisclaimer(reader(input), &out)
		if err != nil {
			t.Fatalf("PromptDisclaimer(%q) error: %v", input, err)
		}
		if accepted {
			t.Errorf("PromptDisclaimer(%q) should decline", input)
		}
	}
}

func TestPromptOnboardingDefaults(t *testing.T) {
	// Empty answers pick the defaults for all three choices.
	var out bytes.Buffer
	result, err := PromptOnboarding(reader("\n\n\n"), &out)
	if err != nil {
		t.Fatalf("PromptOnboarding() error: %v", err)
	}
	if result == nil {
		t.Fatal("PromptOnboarding() aborted, want defaults")
	}
	if result.Executor.Kind != models.ExecutorClaude {
		t.Errorf("default executor = %q, want %q", result.Executor.Kind, models.ExecutorClaude)
	}
	if result.Editor.Kind != models.EditorVSCode {
		t.Errorf("default editor = %q, want %q", result.Editor.Kind, models.EditorVSCode)
	}
	if result.Theme != models.ThemeSystem {
		t.Errorf("default theme = %q, want %q", result.Theme, models.ThemeSystem)
	}
}

func TestPromptOnboardingByNumberAndName(t *testing.T) {
	// 3 = gemini, editor by name, 1 = light
	var out bytes.Buffer
	result, err := PromptOnboarding(reader("3\nzed\n1\n"), &out)
	if err != nil {
		t.Fatalf("PromptOnboarding() error: %v", err)
	}
	if result == nil {
		t.Fatal("PromptOnboarding() aborted unexpectedly")
	}
	if result.Executor.Kind != models.ExecutorGemini {
		t.Errorf("executor = %q, want %q", result.Executor.Kind, models.ExecutorGemini)
	}
	if result.Editor.Kind != models.EditorZed {
		t.Errorf("editor = %q, want %q", result.Editor.Kind, models.EditorZed)
	}
	if result.Theme != models.ThemeLight {
		t.Errorf("theme = %q, want %q", result.Theme, models.ThemeLight)
	}
}

func TestPromptOnboardingCustomExecutor(t *testing.T) {
	var out bytes.Buffer
	result, err := PromptOnboarding(reader("custom\nmy-agent\n\n\n"), &out)
	if err != nil {
		t.Fatalf("PromptOnboarding() error: %v", err)
	}
	if result == nil {
		t.Fatal("PromptOnboarding() aborted unexpectedly")
	}
	if result.Executor.Kind != models.ExecutorCustom || result.Executor.Command != "my-agent" {
		t.Errorf("executor = %+v, want custom my-agent", result.Executor)
	}
}

func TestPromptOnboardingAbort(t *testing.T) {
	var out bytes.Buffer
	result, err := PromptOnboarding(reader("q\n"), &out)
	if err != nil {
		t.Fatalf("PromptOnboarding() error: %v", err)
	}
	if result != nil {
		t.Errorf("aborted onboarding should return nil, got %+v", result)
	}
}

func TestPromptOnboardingRetriesUnknownInput(t *testing.T) {
	var out bytes.Buffer
	result, err := PromptOnboarding(reader("99\n2\n\n\n"), &out)
	if err != nil {
		t.Fatalf("PromptOnboarding() error: %v", err)
	}
	if result == nil {
		t.Fatal("PromptOnboarding() aborted, want retry then amp")
	}
	if result.Executor.Kind != models.ExecutorAmp {
		t.Errorf("executor after retry = %q, want %q", result.Executor.Kind, models.ExecutorAmp)
	}
	if !strings.Contains(out.String(), "try again") {
		t.Error("unknown input should produce a retry message")
	}
}
