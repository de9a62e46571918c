package models

import (
	"testing"
)

func TestDefaultUserConfig(t *testing.T) {
	cfg := DefaultUserConfig()

	if cfg.DisclaimerAcknowledged || cfg.OnboardingAcknowledged ||
		cfg.GitHubLoginAcknowledged || cfg.TelemetryAcknowledged {
		t.Error("DefaultUserConfig() should have all acknowledgement flags false")
	}
	if cfg.AnalyticsEnabled != nil {
		t.Error("DefaultUserConfig() analytics intent should be unset")
	}
	if cfg.Theme != ThemeSystem {
		t.Errorf("DefaultUserConfig() theme = %q, want %q", cfg.Theme, ThemeSystem)
	}
	if cfg.Version != 0 {
		t.Errorf("DefaultUserConfig() version = %d, want 0", cfg.Version)
	}
}

func TestApplyMergesOnlySetFields(t *testing.T) {
	cfg := DefaultUserConfig()
	cfg.DisclaimerAcknowledged = true
	cfg.Theme = ThemeDark

	cfg.Apply(ConfigUpdate{OnboardingAcknowledged: Bool(true)})

	if !cfg.OnboardingAcknowledged {
		t.Error("Apply() should set onboarding flag")
	}
	if !cfg.DisclaimerAcknowledged {
		t.Error("Apply() must not touch omitted disclaimer flag")
	}
	if cfg.Theme != ThemeDark {
		t.Errorf("Apply() must not touch omitted theme, got %q", cfg.Theme)
	}
	if cfg.AnalyticsEnabled != nil {
		t.Error("Apply() must not touch omitted analytics intent")
	}
}

func TestApplyAnalyticsTriState(t *testing.T) {
	cfg := DefaultUserConfig()

	cfg.Apply(ConfigUpdate{AnalyticsEnabled: Bool(false)})
	if cfg.AnalyticsEnabled == nil || *cfg.AnalyticsEnabled {
		t.Error("Apply() should set analytics intent to false")
	}

	cfg.Apply(ConfigUpdate{AnalyticsEnabled: Bool(true)})
	if cfg.AnalyticsEnabled == nil || !*cfg.AnalyticsEnabled {
		t.Error("Apply() should flip analytics intent to true")
	}
}

func TestApplyStructuredFields(t *testing.T) {
	cfg := DefaultUserConfig()

	exec := ExecutorProfile{Kind: ExecutorCustom, Command: "my-agent", Args: []string{"--fast"}}
	editor := EditorConfig{Kind: EditorCustom, Command: "subl"}
	cfg.Apply(ConfigUpdate{
		Executor: &exec,
		Editor:   &editor,
		Theme:    String(ThemeLight),
	})

	if cfg.Executor.Kind != ExecutorCustom || cfg.Executor.Command != "my-agent" {
		t.Errorf("Apply() executor = %+v", cfg.Executor)
	}
	if cfg.Editor.Kind != EditorCustom || cfg.Editor.Command != "subl" {
		t.Errorf("Apply() editor = %+v", cfg.Editor)
	}
	if cfg.Theme != ThemeLight {
		t.Errorf("Apply() theme = %q, want %q", cfg.Theme, ThemeLight)
	}
}

func TestValidTheme(t *testing.T) {
	for _, theme := range []string{ThemeLight, ThemeDark, ThemeSystem} {
		if !ValidTheme(theme) {
			t.Errorf("ValidTheme(%q) = false, want true", theme)
		}
	}
	if ValidTheme("neon") {
		t.Error("ValidTheme(\"neon\") = true, want false")
	}
}
