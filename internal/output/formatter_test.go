package output

import (
	"testing"

	"github.com/minatoaquaMK2/vibe-kanban/internal/models"
)

func TestNewSelectsFormatter(t *testing.T) {
	if _, ok := New(false).(*TextFormatter); !ok {
		t.Error("New(false) should return a TextFormatter")
	}
	if _, ok := New(true).(*JSONFormatter); !ok {
		t.Error("New(true) should return a JSONFormatter")
	}
}

func TestAckString(t *testing.T) {
	if got := ackString(true); got != "acknowledged" {
		t.Errorf("ackString(true) = %q", got)
	}
	if got := ackString(false); got != "pending" {
		t.Errorf("ackString(false) = %q", got)
	}
}

func TestAnalyticsString(t *testing.T) {
	if got := analyticsString(nil); got != "unset" {
		t.Errorf("analyticsString(nil) = %q", got)
	}
	if got := analyticsString(models.Bool(true)); got != "enabled" {
		t.Errorf("analyticsString(true) = %q", got)
	}
	if got := analyticsString(models.Bool(false)); got != "disabled" {
		t.Errorf("analyticsString(false) = %q", got)
	}
}

func TestExecutorAndEditorStrings(t *testing.T) {
	plain := models.ExecutorProfile{Kind: models.ExecutorClaude}
	if got := executorString(plain); got != "claude" {
		t.Errorf("executorString(claude) = %q", got)
	}
	custom := models.ExecutorProfile{Kind: models.ExecutorCustom, Command: "my-agent"}
	if got := executorString(custom); got != "custom (my-agent)" {
		t.Errorf("executorString(custom) = %q", got)
	}
	editor := models.EditorConfig{Kind: models.EditorCustom, Command: "vim"}
	if got := editorString(editor); got != "custom (vim)" {
		t.Errorf("editorString(custom) = %q", got)
	}
}
