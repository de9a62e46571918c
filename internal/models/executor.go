package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Executor kind constants. The executor is the automation backend that works
// on tasks; "custom" runs a user-supplied command.
const (
	ExecutorClaude = "claude"
	ExecutorAmp    = "amp"
	ExecutorGemini = "gemini"
	ExecutorAaa    = "aaa"
	ExecutorCustom = "custom"
)

// ExecutorKinds lists the supported executor kinds in presentation order.
var ExecutorKinds = []string{ExecutorClaude, ExecutorAmp, ExecutorGemini, ExecutorAaa, ExecutorCustom}

// ExecutorProfile selects an automation backend and its parameters.
// Command is only meaningful for the custom kind.
type ExecutorProfile struct {
	Kind    string   `json:"kind"`
	Command string   `json:"command,omitempty"`
	Args    []string `json:"args,omitempty"`
}

// ValidExecutorKind reports whether kind is a supported executor kind.
func ValidExecutorKind(kind string) bool {
	for _, k := range ExecutorKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// CommandLine builds the headless invocation for the executor against a
// workspace and problem statement.
func (p ExecutorProfile) CommandLine(workspace, problem string) []string {
	switch p.Kind {
	case ExecutorAaa:
		args := []string{"aaa", "--workspace", workspace, "--problem-statement", problem, "--minimize-stdout-logs"}
		return append(args, p.Args...)
	case ExecutorCustom:
		if p.Command == "" {
			return nil
		}
		args := []string{p.Command}
		args = append(args, p.Args...)
		return append(args, workspace, problem)
	default:
		args := []string{p.Kind, "-p", problem}
		return append(args, p.Args...)
	}
}

// Scan implements the sql.Scanner interface (JSON text column)
func (p *ExecutorProfile) Scan(value interface{}) error {
	if value == nil {
		*p = ExecutorProfile{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		str, ok := value.(string)
		if !ok {
			return fmt.Errorf("ExecutorProfile.Scan: unexpected type %T", value)
		}
		bytes = []byte(str)
	}
	if len(bytes) == 0 {
		*p = ExecutorProfile{}
		return nil
	}
	if err := json.Unmarshal(bytes, p); err != nil {
		return fmt.Errorf("ExecutorProfile.Scan: invalid JSON: %w", err)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (p ExecutorProfile) Value() (driver.Value, error) {
	bytes, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return string(bytes), nil
}
