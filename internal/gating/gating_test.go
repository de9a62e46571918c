package gating

import (
	"testing"

	"github.com/minatoaquaMK2/vibe-kanban/internal/models"
)

func record(disclaimer, onboarding, github, telemetry bool) models.UserConfig {
	cfg := models.DefaultUserConfig()
	cfg.DisclaimerAcknowledged = disclaimer
	cfg.OnboardingAcknowledged = onboarding
	cfg.GitHubLoginAcknowledged = github
	cfg.TelemetryAcknowledged = telemetry
	return cfg
}

func TestEvaluateFreshRecord(t *testing.T) {
	d := Evaluate(record(false, false, false, false))
	if d.Dialog != DialogDisclaimer {
		t.Errorf("fresh record dialog = %q, want %q", d.Dialog, DialogDisclaimer)
	}
	if d.AutoResolve != nil {
		t.Error("fresh record must not auto-resolve anything")
	}
}

func TestEvaluateDisclaimerWinsRegardlessOfOtherFlags(t *testing.T) {
	// All combinations of the other three flags with disclaimer=false
	for _, onboarding := range []bool{false, true} {
		for _, github := range []bool{false, true} {
			for _, telemetry := range []bool{false, true} {
				d := Evaluate(record(false, onboarding, github, telemetry))
				if d.Dialog != DialogDisclaimer {
					t.Errorf("disclaimer=false onboarding=%v github=%v telemetry=%v: dialog = %q, want %q",
						onboarding, github, telemetry, d.Dialog, DialogDisclaimer)
				}
			}
		}
	}
}

func TestEvaluateOnboardingAfterDisclaimer(t *testing.T) {
	d := Evaluate(record(true, false, false, false))
	if d.Dialog != DialogOnboarding {
		t.Errorf("dialog = %q, want %q", d.Dialog, DialogOnboarding)
	}
	if d.AutoResolve != nil {
		t.Error("onboarding-pending record must not auto-resolve")
	}
}

func TestEvaluateAutoResolvesPrivacyFlags(t *testing.T) {
	for _, tc := range []struct {
		github, telemetry bool
	}{
		{false, false},
		{true, false},
		{false, true},
	} {
		d := Evaluate(record(true, true, tc.github, tc.telemetry))
		if d.Dialog != DialogNone {
			t.Errorf("github=%v telemetry=%v: dialog = %q, want %q", tc.github, tc.telemetry, d.Dialog, DialogNone)
		}
		if d.AutoResolve == nil {
			t.Fatalf("github=%v telemetry=%v: expected an auto-resolution", tc.github, tc.telemetry)
		}
		if d.AutoResolve.GitHubLoginAcknowledged == nil || !*d.AutoResolve.GitHubLoginAcknowledged {
			t.Error("auto-resolution should acknowledge github login")
		}
		if d.AutoResolve.TelemetryAcknowledged == nil || !*d.AutoResolve.TelemetryAcknowledged {
			t.Error("auto-resolution should acknowledge telemetry")
		}
		if d.AutoResolve.AnalyticsEnabled == nil || *d.AutoResolve.AnalyticsEnabled {
			t.Error("auto-resolution should default analytics to off")
		}
	}
}

func TestEvaluateSteadyState(t *testing.T) {
	d := Evaluate(record(true, true, true, true))
	if d.Dialog != DialogNone {
		t.Errorf("dialog = %q, want %q", d.Dialog, DialogNone)
	}
	if d.AutoResolve != nil {
		t.Error("steady state must not auto-resolve")
	}
}

func TestEvaluateSelfHealsOutOfOrderFlags(t *testing.T) {
	// onboarding=true with disclaimer=false is a tampered record; the
	// disclaimer is re-shown rather than trusting the stray flag.
	d := Evaluate(record(false, true, false, false))
	if d.Dialog != DialogDisclaimer {
		t.Errorf("tampered record dialog = %q, want %q", d.Dialog, DialogDisclaimer)
	}
}

func TestAutoResolveIsIdempotent(t *testing.T) {
	cfg := record(true, true, false, false)
	d := Evaluate(cfg)
	if d.AutoResolve == nil {
		t.Fatal("expected an auto-resolution")
	}

	cfg.Apply(*d.AutoResolve)

	d = Evaluate(cfg)
	if d.Dialog != DialogNone || d.AutoResolve != nil {
		t.Errorf("re-evaluating after auto-resolve = %+v, want terminal decision", d)
	}
}

func TestTransitionsAreMonotonic(t *testing.T) {
	// Walk the whole flow and check that no controller-produced update ever
	// clears a previously-true acknowledgement flag.
	cfg := models.DefaultUserConfig()

	check := func(stage string) {
		t.Helper()
		snapshot := cfg
		if d := Evaluate(cfg); d.AutoResolve != nil {
			cfg.Apply(*d.AutoResolve)
		}
		if snapshot.DisclaimerAcknowledged && !cfg.DisclaimerAcknowledged ||
			snapshot.OnboardingAcknowledged && !cfg.OnboardingAcknowledged ||
			snapshot.GitHubLoginAcknowledged && !cfg.GitHubLoginAcknowledged ||
			snapshot.TelemetryAcknowledged && !cfg.TelemetryAcknowledged {
			t.Errorf("%s: a true flag went false: before=%+v after=%+v", stage, snapshot, cfg)
		}
	}

	check("fresh")
	cfg.Apply(AcceptDisclaimer())
	check("after disclaimer")
	cfg.Apply(CompleteOnboarding(
		models.ExecutorProfile{Kind: models.ExecutorClaude},
		models.EditorConfig{Kind: models.EditorVSCode},
		models.ThemeDark,
	))
	check("after onboarding")
	check("after auto-resolve")

	if !Ready(cfg) {
		t.Errorf("flow did not reach ready state, state = %s", State(cfg))
	}
}

func TestAcceptDisclaimerSetsOnlyDisclaimer(t *testing.T) {
	u := AcceptDisclaimer()
	if u.DisclaimerAcknowledged == nil || !*u.DisclaimerAcknowledged {
		t.Error("AcceptDisclaimer() should set the disclaimer flag")
	}
	if u.OnboardingAcknowledged != nil || u.GitHubLoginAcknowledged != nil ||
		u.TelemetryAcknowledged != nil || u.AnalyticsEnabled != nil {
		t.Error("AcceptDisclaimer() must not touch any other flag")
	}
}

func TestCompleteOnboardingIsAtomic(t *testing.T) {
	exec := models.ExecutorProfile{Kind: models.ExecutorAmp}
	editor := models.EditorConfig{Kind: models.EditorZed}
	u := CompleteOnboarding(exec, editor, models.ThemeLight)

	if u.OnboardingAcknowledged == nil || !*u.OnboardingAcknowledged {
		t.Error("CompleteOnboarding() should set the onboarding flag")
	}
	if u.Executor == nil || u.Executor.Kind != models.ExecutorAmp {
		t.Error("CompleteOnboarding() should carry the executor choice")
	}
	if u.Editor == nil || u.Editor.Kind != models.EditorZed {
		t.Error("CompleteOnboarding() should carry the editor choice")
	}
	if u.Theme == nil || *u.Theme != models.ThemeLight {
		t.Error("CompleteOnboarding() should carry the theme choice")
	}
}

func TestState(t *testing.T) {
	tests := []struct {
		cfg  models.UserConfig
		want string
	}{
		{record(false, false, false, false), StateDisclaimerPending},
		{record(true, false, false, false), StateOnboardingPending},
		{record(true, true, false, false), StatePrivacyPending},
		{record(true, true, true, false), StatePrivacyPending},
		{record(true, true, true, true), StateReady},
		{record(false, true, true, true), StateDisclaimerPending},
	}
	for _, tt := range tests {
		if got := State(tt.cfg); got != tt.want {
			t.Errorf("State(%+v) = %q, want %q", tt.cfg, got, tt.want)
		}
	}
}
