package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/minatoaquaMK2/vibe-kanban/internal/models"
)

// Formatter defines the interface for output formatting
type Formatter interface {
	Task(t *models.Task)
	TaskList(tasks []models.Task, title string)
	Project(p *models.Project)
	ProjectList(projects []models.Project)
	Config(cfg *models.UserConfig)
	Success(msg string)
	Error(err error)
	Info(msg string)
	KeyValue(key, value string)
	Section(title string)
	JSON(v interface{})
}

// TextFormatter outputs human-readable text
type TextFormatter struct{}

// JSONFormatter outputs JSON
type JSONFormatter struct{}

// New returns the appropriate formatter based on json flag
func New(jsonOutput bool) Formatter {
	if jsonOutput {
		return &JSONFormatter{}
	}
	return &TextFormatter{}
}

// TextFormatter implementations

func (f *TextFormatter) Task(t *models.Task) {
	fmt.Printf("ID:      %s\n", t.ID)
	fmt.Printf("Project: %s\n", t.ProjectID)
	fmt.Printf("Title:   %s\n", t.Title)
	fmt.Printf("Status:  %s\n", t.Status)
	if t.Description != "" {
		fmt.Printf("Desc:    %s\n", t.Description)
	}
	fmt.Printf("Created: %s\n", t.CreatedAt.Format(models.DateTimeShortFormat))
}

func (f *TextFormatter) TaskList(tasks []models.Task, title string) {
	if title != "" {
		fmt.Printf("%s (%d):\n", title, len(tasks))
	}
	for _, t := range tasks {
		fmt.Printf("[%s] %-11s %s\n", t.ID, t.Status, t.Title)
	}
}

func (f *TextFormatter) Project(p *models.Project) {
	fmt.Printf("ID:      %s\n", p.ID)
	fmt.Printf("Name:    %s\n", p.Name)
	if p.GitRepo != "" {
		fmt.Printf("Repo:    %s\n", p.GitRepo)
	}
	fmt.Printf("Created: %s\n", p.CreatedAt.Format(models.DateTimeShortFormat))
}

func (f *TextFormatter) ProjectList(projects []models.Project) {
	for _, p := range projects {
		repo := ""
		if p.GitRepo != "" {
			repo = " (" + p.GitRepo + ")"
		}
		fmt.Printf("[%s] %s%s\n", p.ID, p.Name, repo)
	}
}

func (f *TextFormatter) Config(cfg *models.UserConfig) {
	fmt.Printf("Disclaimer:   %s\n", ackString(cfg.DisclaimerAcknowledged))
	fmt.Printf("Onboarding:   %s\n", ackString(cfg.OnboardingAcknowledged))
	fmt.Printf("GitHub login: %s\n", ackString(cfg.GitHubLoginAcknowledged))
	fmt.Printf("Telemetry:    %s\n", ackString(cfg.TelemetryAcknowledged))
	fmt.Printf("Analytics:    %s\n", analyticsString(cfg.AnalyticsEnabled))
	fmt.Printf("Executor:     %s\n", executorString(cfg.Executor))
	fmt.Printf("Editor:       %s\n", editorString(cfg.Editor))
	fmt.Printf("Theme:        %s\n", cfg.Theme)
}

func ackString(acknowledged bool) string {
	if acknowledged {
		return "acknowledged"
	}
	return "pending"
}

func analyticsString(enabled *bool) string {
	switch {
	case enabled == nil:
		return "unset"
	case *enabled:
		return "enabled"
	}
	return "disabled"
}

func executorString(p models.ExecutorProfile) string {
	if p.Kind == models.ExecutorCustom && p.Command != "" {
		return fmt.Sprintf("%s (%s)", p.Kind, p.Command)
	}
	return p.Kind
}

func editorString(e models.EditorConfig) string {
	if e.Kind == models.EditorCustom && e.Command != "" {
		return fmt.Sprintf("%s (%s)", e.Kind, e.Command)
	}
	return e.Kind
}

func (f *TextFormatter) Success(msg string) {
	fmt.Println(msg)
}

func (f *TextFormatter) Error(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

func (f *TextFormatter) Info(msg string) {
	fmt.Println(msg)
}

func (f *TextFormatter) KeyValue(key, value string) {
	fmt.Printf("%s: %s\n", key, value)
}

func (f *TextFormatter) Section(title string) {
	fmt.Printf("\n%s:\n", title)
}

func (f *TextFormatter) JSON(v interface{}) {
	// TextFormatter doesn't output JSON, but provide fallback
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		f.Error(err)
		return
	}
	fmt.Println(string(data))
}

// JSONFormatter implementations

func (f *JSONFormatter) Task(t *models.Task) {
	f.JSON(t)
}

func (f *JSONFormatter) TaskList(tasks []models.Task, title string) {
	f.JSON(map[string]interface{}{
		"count": len(tasks),
		"tasks": tasks,
	})
}

func (f *JSONFormatter) Project(p *models.Project) {
	f.JSON(p)
}

func (f *JSONFormatter) ProjectList(projects []models.Project) {
	f.JSON(map[string]interface{}{
		"count":    len(projects),
		"projects": projects,
	})
}

func (f *JSONFormatter) Config(cfg *models.UserConfig) {
	f.JSON(cfg)
}

func (f *JSONFormatter) Success(msg string) {
	f.JSON(map[string]interface{}{"success": true, "message": msg})
}

func (f *JSONFormatter) Error(err error) {
	f.JSON(map[string]interface{}{"error": true, "message": err.Error()})
}

func (f *JSONFormatter) Info(msg string) {
	f.JSON(map[string]interface{}{"message": msg})
}

func (f *JSONFormatter) KeyValue(key, value string) {
	f.JSON(map[string]string{key: value})
}

func (f *JSONFormatter) Section(title string) {
	// JSON doesn't need section headers
}

func (f *JSONFormatter) JSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, `{"error": true, "message": "JSON marshal error: %s"}`+"\n", err.Error())
		return
	}
	fmt.Println(string(data))
}
