package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/minatoaquaMK2/vibe-kanban/internal/db"
	"github.com/minatoaquaMK2/vibe-kanban/internal/models"
)

func (s *Server) handleListProjects(c echo.Context) error {
	projects, err := s.board.ListProjects()
	if err != nil {
		slog.Error("failed to list projects", "error", err)
		return jsonError(c, http.StatusInternalServerError, "project_list_failed", "failed to list projects")
	}
	return c.JSON(http.StatusOK, projects)
}

func (s *Server) handleCreateProject(c echo.Context) error {
	var body struct {
		Name    string `json:"name"`
		GitRepo string `json:"git_repo"`
	}
	if err := c.Bind(&body); err != nil {
		return jsonError(c, http.StatusBadRequest, "invalid_body", "request body is not a project")
	}
	if strings.TrimSpace(body.Name) == "" {
		return jsonError(c, http.StatusBadRequest, "invalid_name", "project name is required")
	}

	project, err := s.board.CreateProject(body.Name, body.GitRepo)
	if err != nil {
		slog.Error("failed to create project", "error", err)
		return jsonError(c, http.StatusInternalServerError, "project_create_failed", "failed to create project")
	}
	return c.JSON(http.StatusOK, project)
}

func (s *Server) handleListTasks(c echo.Context) error {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return jsonError(c, http.StatusBadRequest, "invalid_id", "project id is not a UUID")
	}

	tasks, err := s.board.ListTasks(projectID)
	if errors.Is(err, db.ErrNotFound) {
		return jsonError(c, http.StatusNotFound, "project_not_found", err.Error())
	}
	if err != nil {
		slog.Error("failed to list tasks", "error", err, "project_id", projectID)
		return jsonError(c, http.StatusInternalServerError, "task_list_failed", "failed to list tasks")
	}
	return c.JSON(http.StatusOK, tasks)
}

func (s *Server) handleCreateTask(c echo.Context) error {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return jsonError(c, http.StatusBadRequest, "invalid_id", "project id is not a UUID")
	}

	var body struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := c.Bind(&body); err != nil {
		return jsonError(c, http.StatusBadRequest, "invalid_body", "request body is not a task")
	}
	if strings.TrimSpace(body.Title) == "" {
		return jsonError(c, http.StatusBadRequest, "invalid_title", "task title is required")
	}

	task, err := s.board.CreateTask(projectID, body.Title, body.Description)
	if errors.Is(err, db.ErrNotFound) {
		return jsonError(c, http.StatusNotFound, "project_not_found", err.Error())
	}
	if err != nil {
		slog.Error("failed to create task", "error", err, "project_id", projectID)
		return jsonError(c, http.StatusInternalServerError, "task_create_failed", "failed to create task")
	}
	return c.JSON(http.StatusOK, task)
}

func (s *Server) handleMoveTask(c echo.Context) error {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return jsonError(c, http.StatusBadRequest, "invalid_id", "task id is not a UUID")
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return jsonError(c, http.StatusBadRequest, "invalid_body", "request body is not a status change")
	}
	if !models.ValidTaskStatus(body.Status) {
		return jsonError(c, http.StatusBadRequest, "invalid_status", fmt.Sprintf("unknown status %q", body.Status))
	}

	task, err := s.board.MoveTask(taskID, body.Status)
	if errors.Is(err, db.ErrNotFound) {
		return jsonError(c, http.StatusNotFound, "task_not_found", err.Error())
	}
	if err != nil {
		slog.Error("failed to move task", "error", err, "task_id", taskID)
		return jsonError(c, http.StatusInternalServerError, "task_move_failed", "failed to move task")
	}
	return c.JSON(http.StatusOK, task)
}
