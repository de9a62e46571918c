// Package gating decides which first-run dialog, if any, must be shown
// before the board is reachable. The decision is a pure function of the
// UserConfig record, so the flow is testable without any terminal or
// network in the loop.
package gating

import (
	"github.com/minatoaquaMK2/vibe-kanban/internal/models"
)

// Dialog constants
const (
	DialogNone       = "none"
	DialogDisclaimer = "disclaimer"
	DialogOnboarding = "onboarding"
)

// State constants, in flow order. Ready is the only state in which gated
// commands run.
const (
	StateDisclaimerPending = "disclaimer_pending"
	StateOnboardingPending = "onboarding_pending"
	StatePrivacyPending    = "privacy_pending"
	StateReady             = "ready"
)

// Decision is the controller's output for a record: the dialog to render
// (DialogNone when nothing blocks), and an optional update to apply and
// persist without user interaction.
type Decision struct {
	Dialog      string
	AutoResolve *models.ConfigUpdate
}

// Evaluate derives the current decision from the record. Rules are evaluated
// in strict priority order; the first match wins:
//
//  1. disclaimer not acknowledged -> show disclaimer
//  2. onboarding not acknowledged -> show onboarding
//  3. github/telemetry not acknowledged -> no dialog, auto-resolve both
//     flags and default analytics to off
//  4. otherwise -> steady state, nothing to do
//
// A record with onboarding acknowledged but disclaimer not (out-of-order
// flags from external tampering) falls through rule 1: the disclaimer is
// re-shown and the flow self-heals instead of trusting the stray flag.
func Evaluate(cfg models.UserConfig) Decision {
	if !cfg.DisclaimerAcknowledged {
		return Decision{Dialog: DialogDisclaimer}
	}
	if !cfg.OnboardingAcknowledged {
		return Decision{Dialog: DialogOnboarding}
	}
	if !cfg.GitHubLoginAcknowledged || !cfg.TelemetryAcknowledged {
		return Decision{
			Dialog: DialogNone,
			AutoResolve: &models.ConfigUpdate{
				GitHubLoginAcknowledged: models.Bool(true),
				TelemetryAcknowledged:   models.Bool(true),
				AnalyticsEnabled:        models.Bool(false),
			},
		}
	}
	return Decision{Dialog: DialogNone}
}

// State maps the record onto the gating state machine.
func State(cfg models.UserConfig) string {
	d := Evaluate(cfg)
	switch {
	case d.Dialog == DialogDisclaimer:
		return StateDisclaimerPending
	case d.Dialog == DialogOnboarding:
		return StateOnboardingPending
	case d.AutoResolve != nil:
		return StatePrivacyPending
	}
	return StateReady
}

// Ready reports whether the record has cleared every gate.
func Ready(cfg models.UserConfig) bool {
	return State(cfg) == StateReady
}

// AcceptDisclaimer is the update produced by accepting the disclaimer
// dialog. It sets only the disclaimer flag; onboarding and privacy flags
// are never set implicitly.
func AcceptDisclaimer() models.ConfigUpdate {
	return models.ConfigUpdate{DisclaimerAcknowledged: models.Bool(true)}
}

// CompleteOnboarding is the update produced by finishing the onboarding
// dialog: the flag and the chosen executor, editor and theme land in one
// merge so a half-applied record is never observable.
func CompleteOnboarding(executor models.ExecutorProfile, editor models.EditorConfig, theme string) models.ConfigUpdate {
	return models.ConfigUpdate{
		OnboardingAcknowledged: models.Bool(true),
		Executor:               &executor,
		Editor:                 &editor,
		Theme:                  models.String(theme),
	}
}
