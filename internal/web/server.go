// Package web serves the dashboard frame as JSON and accepts the same
// manual controls as the terminal view. It is another renderer of the
// simulation, never a client of a real backend.
package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	nexuserrors "github.com/rileyhilliard/nexus/internal/errors"
	"github.com/rileyhilliard/nexus/internal/logger"
	"github.com/rileyhilliard/nexus/internal/sim"
	"github.com/rileyhilliard/nexus/internal/util"
)

const shutdownTimeout = 10 * time.Second

// Controller is what the server needs from the state owner. *engine.Engine
// satisfies it.
type Controller interface {
	Frame() sim.Frame
	TogglePause() bool
	DismissAlert()
	SelectTimeRange(sim.TimeRange)
	SelectMenu(sim.MenuItem)
}

// Server is the HTTP view.
type Server struct {
	echo *echo.Echo
	ctl  Controller
	log  logger.Logger
}

// New builds a server with its routes registered.
func New(ctl Controller, log logger.Logger) *Server {
	if log == nil {
		log = logger.Noop()
	}
	s := &Server{
		echo: echo.New(),
		ctl:  ctl,
		log:  log,
	}
	s.setupRoutes()
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("web view listening on %s", addr)
		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return nexuserrors.WrapWithCode(err, nexuserrors.ErrServe,
			"Web view failed to start on "+addr,
			"Check the address is free, or pick another with --addr")
	case <-ctx.Done():
	}

	return s.Shutdown()
}

// Shutdown stops the server, waiting up to 10 seconds for open requests.
func (s *Server) Shutdown() error {
	s.log.Info("shutting down web view")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		return nexuserrors.WrapWithCode(err, nexuserrors.ErrServe,
			"Web view did not shut down cleanly", "")
	}
	s.log.Debug("web view stopped")
	return nil
}

func (s *Server) setupRoutes() {
	s.echo.HideBanner = true
	s.echo.HidePort = true

	s.echo.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogMethod:  true,
		LogURI:     true,
		LogLatency: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			s.log.Debug("%d %s %s (%s)", v.Status, v.Method, v.URI, v.Latency)
			return nil
		},
	}))
	s.echo.Use(middleware.Recover())

	s.echo.GET("/healthz", s.health)
	s.echo.GET("/api/frame", s.frame)
	s.echo.POST("/api/pause", s.togglePause)
	s.echo.POST("/api/alert/dismiss", s.dismissAlert)
	s.echo.PUT("/api/time-range/:range", s.selectTimeRange)
	s.echo.PUT("/api/menu/:item", s.selectMenu)
}

func (s *Server) health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) frame(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, s.ctl.Frame())
}

func (s *Server) togglePause(ctx echo.Context) error {
	paused := s.ctl.TogglePause()
	return ctx.JSON(http.StatusOK, map[string]bool{"paused": paused})
}

func (s *Server) dismissAlert(ctx echo.Context) error {
	s.ctl.DismissAlert()
	return ctx.JSON(http.StatusOK, s.ctl.Frame())
}

func (s *Server) selectTimeRange(ctx echo.Context) error {
	name := ctx.Param("range")
	r, ok := sim.ParseTimeRange(name)
	if !ok {
		return ctx.JSON(http.StatusBadRequest, unknownValue("time range", name, timeRangeNames()))
	}
	s.ctl.SelectTimeRange(r)
	return ctx.JSON(http.StatusOK, s.ctl.Frame())
}

func (s *Server) selectMenu(ctx echo.Context) error {
	name := ctx.Param("item")
	item, ok := sim.ParseMenuItem(name)
	if !ok {
		return ctx.JSON(http.StatusBadRequest, unknownValue("menu item", name, menuItemNames()))
	}
	s.ctl.SelectMenu(item)
	return ctx.JSON(http.StatusOK, s.ctl.Frame())
}

// unknownValue is the 400 body for a name that isn't one of valid.
func unknownValue(kind, name string, valid []string) map[string]string {
	hint := "valid: " + util.JoinOrNone(valid)
	if near := util.SuggestSimilar(name, valid, 1); len(near) > 0 {
		hint = "did you mean " + near[0] + "?"
	}
	return map[string]string{
		"error": fmt.Sprintf("unknown %s %q", kind, name),
		"hint":  hint,
	}
}

func timeRangeNames() []string {
	ranges := sim.TimeRanges()
	names := make([]string, len(ranges))
	for i, r := range ranges {
		names[i] = r.String()
	}
	return names
}

func menuItemNames() []string {
	items := sim.MenuItems()
	names := make([]string, len(items))
	for i, m := range items {
		names[i] = m.String()
	}
	return names
}
