package models

import (
	"time"
)

// Theme constants
const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

// ConfigID is the primary key of the singleton config row. Exactly one
// UserConfig exists per installation.
const ConfigID = 1

// UserConfig is the durable record of first-run setup state plus the
// user-chosen executor, editor and theme. It is owned by the persistence
// service and loaded once per client session.
type UserConfig struct {
	ID                      uint            `gorm:"primaryKey" json:"-"`
	DisclaimerAcknowledged  bool            `gorm:"default:false" json:"disclaimer_acknowledged"`
	OnboardingAcknowledged  bool            `gorm:"default:false" json:"onboarding_acknowledged"`
	GitHubLoginAcknowledged bool            `gorm:"default:false" json:"github_login_acknowledged"`
	TelemetryAcknowledged   bool            `gorm:"default:false" json:"telemetry_acknowledged"`
	AnalyticsEnabled        *bool           `json:"analytics_enabled,omitempty"`
	Executor                ExecutorProfile `gorm:"type:text" json:"executor"`
	Editor                  EditorConfig    `gorm:"type:text" json:"editor"`
	Theme                   string          `gorm:"size:20;default:system" json:"theme"`
	Version                 int64           `gorm:"default:0" json:"version"`
	CreatedAt               time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt               time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for UserConfig
func (UserConfig) TableName() string {
	return "user_config"
}

// DefaultUserConfig returns the record created at first install: every
// acknowledgement flag false, analytics intent unset.
func DefaultUserConfig() UserConfig {
	return UserConfig{
		ID:       ConfigID,
		Executor: ExecutorProfile{Kind: ExecutorClaude},
		Editor:   EditorConfig{Kind: EditorVSCode},
		Theme:    ThemeSystem,
	}
}

// ConfigUpdate is a partial UserConfig. Nil fields are left untouched by
// Apply, so callers merge only the fields they mean to change.
type ConfigUpdate struct {
	DisclaimerAcknowledged  *bool            `json:"disclaimer_acknowledged,omitempty"`
	OnboardingAcknowledged  *bool            `json:"onboarding_acknowledged,omitempty"`
	GitHubLoginAcknowledged *bool            `json:"github_login_acknowledged,omitempty"`
	TelemetryAcknowledged   *bool            `json:"telemetry_acknowledged,omitempty"`
	AnalyticsEnabled        *bool            `json:"analytics_enabled,omitempty"`
	Executor                *ExecutorProfile `json:"executor,omitempty"`
	Editor                  *EditorConfig    `json:"editor,omitempty"`
	Theme                   *string          `json:"theme,omitempty"`
}

// Apply merges the update into the record field-by-field (shallow merge).
func (c *UserConfig) Apply(u ConfigUpdate) {
	if u.DisclaimerAcknowledged != nil {
		c.DisclaimerAcknowledged = *u.DisclaimerAcknowledged
	}
	if u.OnboardingAcknowledged != nil {
		c.OnboardingAcknowledged = *u.OnboardingAcknowledged
	}
	if u.GitHubLoginAcknowledged != nil {
		c.GitHubLoginAcknowledged = *u.GitHubLoginAcknowledged
	}
	if u.TelemetryAcknowledged != nil {
		c.TelemetryAcknowledged = *u.TelemetryAcknowledged
	}
	if u.AnalyticsEnabled != nil {
		v := *u.AnalyticsEnabled
		c.AnalyticsEnabled = &v
	}
	if u.Executor != nil {
		c.Executor = *u.Executor
	}
	if u.Editor != nil {
		c.Editor = *u.Editor
	}
	if u.Theme != nil {
		c.Theme = *u.Theme
	}
}

// Bool returns a pointer to b, for building ConfigUpdate literals.
func Bool(b bool) *bool {
	return &b
}

// String returns a pointer to s, for building ConfigUpdate literals.
func String(s string) *string {
	return &s
}

// ValidTheme reports whether theme is one of the supported values.
func ValidTheme(theme string) bool {
	switch theme {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}
