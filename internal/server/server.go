// Package server implements the persistence service: a JSON HTTP API that
// owns the durable configuration record and the board data.
package server

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"github.com/minatoaquaMK2/vibe-kanban/internal/db"
)

// Server wires the echo router to the repositories.
type Server struct {
	echo    *echo.Echo
	configs *db.ConfigRepo
	board   *db.BoardRepo
}

// New creates a server over the given database handle.
func New(database *gorm.DB) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	s := &Server{
		echo:    e,
		configs: db.NewConfigRepo(database),
		board:   db.NewBoardRepo(database),
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.echo.GET("/healthz", s.handleHealth)

	s.echo.GET("/v1/config", s.handleGetConfig)
	s.echo.PUT("/v1/config", s.handlePutConfig)

	s.echo.GET("/v1/projects", s.handleListProjects)
	s.echo.POST("/v1/projects", s.handleCreateProject)
	s.echo.GET("/v1/projects/:id/tasks", s.handleListTasks)
	s.echo.POST("/v1/projects/:id/tasks", s.handleCreateTask)
	s.echo.PATCH("/v1/tasks/:id", s.handleMoveTask)
}

// Start listens on addr and blocks until the server stops.
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// errorBody is the JSON error envelope shared with the client.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func jsonError(c echo.Context, status int, code, message string) error {
	return c.JSON(status, errorBody{Code: code, Message: message})
}
