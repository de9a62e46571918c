// Package api is the HTTP client for the vibe-kanban persistence service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/minatoaquaMK2/vibe-kanban/internal/models"
)

// Sentinel errors for common HTTP error classes.
var (
	ErrNotFound     = errors.New("not found")
	ErrStaleVersion = errors.New("stale config version")
)

// DefaultServerURL is where a locally running `vk serve` listens.
const DefaultServerURL = "http://127.0.0.1:8467"

// Client talks to the persistence service. All requests are simple
// request/response JSON calls.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New creates a client for the persistence service at baseURL.
func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

// apiError mirrors the server's JSON error envelope.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *apiError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// HealthCheck verifies the persistence service is reachable.
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.do(ctx, "GET", "/healthz", nil, nil)
}

// LoadConfig fetches the configuration record. The service creates the
// default record on first read, so this never returns ErrNotFound for a
// healthy install.
func (c *Client) LoadConfig(ctx context.Context) (*models.UserConfig, error) {
	var cfg models.UserConfig
	if err := c.do(ctx, "GET", "/v1/config", nil, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SaveConfig replaces the configuration record with the full record given.
// The service rejects writes whose version is not newer than the stored one
// with ErrStaleVersion.
func (c *Client) SaveConfig(ctx context.Context, cfg models.UserConfig) (*models.UserConfig, error) {
	var saved models.UserConfig
	if err := c.do(ctx, "PUT", "/v1/config", cfg, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// ListProjects lists all projects.
func (c *Client) ListProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := c.do(ctx, "GET", "/v1/projects", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// CreateProject creates a new project.
func (c *Client) CreateProject(ctx context.Context, name, gitRepo string) (*models.Project, error) {
	body := map[string]string{"name": name, "git_repo": gitRepo}
	var project models.Project
	if err := c.do(ctx, "POST", "/v1/projects", body, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// ListTasks lists the tasks of a project.
func (c *Client) ListTasks(ctx context.Context, projectID uuid.UUID) ([]models.Task, error) {
	var tasks []models.Task
	if err := c.do(ctx, "GET", fmt.Sprintf("/v1/projects/%s/tasks", projectID), nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask creates a task in a project.
func (c *Client) CreateTask(ctx context.Context, projectID uuid.UUID, title, description string) (*models.Task, error) {
	body := map[string]string{"title": title, "description": description}
	var task models.Task
	if err := c.do(ctx, "POST", fmt.Sprintf("/v1/projects/%s/tasks", projectID), body, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// MoveTask moves a task to another board column.
func (c *Client) MoveTask(ctx context.Context, taskID uuid.UUID, status string) (*models.Task, error) {
	body := map[string]string{"status": status}
	var task models.Task
	if err := c.do(ctx, "PATCH", fmt.Sprintf("/v1/tasks/%s", taskID), body, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var apiErr apiError
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Code != "" {
			switch resp.StatusCode {
			case http.StatusNotFound:
				return fmt.Errorf("%w: %s", ErrNotFound, apiErr.Message)
			case http.StatusConflict:
				return fmt.Errorf("%w: %s", ErrStaleVersion, apiErr.Message)
			default:
				return &apiErr
			}
		}
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("unmarshal response: %w", err)
		}
	}

	return nil
}
