package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minatoaquaMK2/vibe-kanban/internal/db"
	"github.com/minatoaquaMK2/vibe-kanban/internal/models"
)

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// handleGetConfig returns the configuration record. The repository creates
// the all-false default on the first read of a fresh install.
func (s *Server) handleGetConfig(c echo.Context) error {
	cfg, err := s.configs.Get()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return jsonError(c, http.StatusInternalServerError, "config_load_failed", "failed to load configuration")
	}
	return c.JSON(http.StatusOK, cfg)
}

// handlePutConfig replaces the record with the full record in the body.
// Writes carrying a version that is not newer than the stored one are
// rejected with 409 so a superseded in-flight save cannot clobber fields.
func (s *Server) handlePutConfig(c echo.Context) error {
	var cfg models.UserConfig
	if err := c.Bind(&cfg); err != nil {
		return jsonError(c, http.StatusBadRequest, "invalid_body", "request body is not a configuration record")
	}
	if cfg.Theme != "" && !models.ValidTheme(cfg.Theme) {
		return jsonError(c, http.StatusBadRequest, "invalid_theme", fmt.Sprintf("unknown theme %q", cfg.Theme))
	}
	if cfg.Executor.Kind != "" && !models.ValidExecutorKind(cfg.Executor.Kind) {
		return jsonError(c, http.StatusBadRequest, "invalid_executor", fmt.Sprintf("unknown executor %q", cfg.Executor.Kind))
	}
	if cfg.Editor.Kind != "" && !models.ValidEditorKind(cfg.Editor.Kind) {
		return jsonError(c, http.StatusBadRequest, "invalid_editor", fmt.Sprintf("unknown editor %q", cfg.Editor.Kind))
	}

	saved, err := s.configs.Put(cfg)
	if errors.Is(err, db.ErrStaleVersion) {
		return jsonError(c, http.StatusConflict, "stale_version", err.Error())
	}
	if err != nil {
		slog.Error("failed to save config", "error", err)
		return jsonError(c, http.StatusInternalServerError, "config_save_failed", "failed to save configuration")
	}
	return c.JSON(http.StatusOK, saved)
}
