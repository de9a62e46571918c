package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Editor kind constants
const (
	EditorVSCode = "vscode"
	EditorCursor = "cursor"
	EditorZed    = "zed"
	EditorCustom = "custom"
)

// EditorKinds lists the supported editor kinds in presentation order.
var EditorKinds = []string{EditorVSCode, EditorCursor, EditorZed, EditorCustom}

// EditorConfig selects the editor used to open worktrees. Command is the
// launch command for the custom kind; the known kinds have fixed commands.
type EditorConfig struct {
	Kind    string `json:"kind"`
	Command string `json:"command,omitempty"`
}

// ValidEditorKind reports whether kind is a supported editor kind.
func ValidEditorKind(kind string) bool {
	for _, k := range EditorKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// LaunchCommand returns the command used to open a path in the editor.
func (e EditorConfig) LaunchCommand() string {
	switch e.Kind {
	case EditorVSCode:
		return "code"
	case EditorCursor:
		return "cursor"
	case EditorZed:
		return "zed"
	case EditorCustom:
		return e.Command
	}
	return ""
}

// Scan implements the sql.Scanner interface (JSON text column)
func (e *EditorConfig) Scan(value interface{}) error {
	if value == nil {
		*e = EditorConfig{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		str, ok := value.(string)
		if !ok {
			return fmt.Errorf("EditorConfig.Scan: unexpected type %T", value)
		}
		bytes = []byte(str)
	}
	if len(bytes) == 0 {
		*e = EditorConfig{}
		return nil
	}
	if err := json.Unmarshal(bytes, e); err != nil {
		return fmt.Errorf("EditorConfig.Scan: invalid JSON: %w", err)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (e EditorConfig) Value() (driver.Value, error) {
	bytes, err := json.Marshal(e)
	if err != nil {
		return nil, err
	}
	return string(bytes), nil
}
