// Package spectate serves a read-only HTTP and websocket view of the running session
package spectate

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/coder/websocket"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/lixenwraith/health-snake/catalog"
	"github.com/lixenwraith/health-snake/device"
	"github.com/lixenwraith/health-snake/engine"
	"github.com/lixenwraith/health-snake/status"
)

const (
	writeTimeout    = 5 * time.Second
	shutdownTimeout = 3 * time.Second
)

// Source provides session snapshots
type Source interface {
	Snapshot() engine.Snapshot
}

// Frame is one websocket message
type Frame struct {
	Event    *engine.Event   `json:"event,omitempty"`
	Snapshot engine.Snapshot `json:"snapshot"`
}

// Server exposes snapshots, catalog, metrics and the device probe
type Server struct {
	addr    string
	router  *echo.Echo
	hub     *Hub
	source  Source
	facts   []catalog.Fact
	metrics *status.Registry
}

// NewServer wires routes over source
func NewServer(addr string, source Source, facts []catalog.Fact, metrics *status.Registry) *Server {
	if metrics == nil {
		metrics = status.NewRegistry()
	}
	s := &Server{
		addr:    addr,
		router:  echo.New(),
		hub:     NewHub(metrics),
		source:  source,
		facts:   facts,
		metrics: metrics,
	}
	s.router.HideBanner = true
	s.router.HidePort = true
	s.router.Pre(middleware.RemoveTrailingSlash())
	s.router.Use(middleware.Recover())

	api := s.router.Group("/api")
	api.GET("/snapshot", s.snapshot)
	api.GET("/catalog", s.catalog)
	api.GET("/metrics", s.exportMetrics)
	api.GET("/compat", s.compat)
	s.router.GET("/ws", s.stream)
	return s
}

// Handler returns the HTTP handler for embedding and tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Hub returns the broadcast hub
func (s *Server) Hub() *Hub {
	return s.hub
}

// Listener returns an engine.Listener that broadcasts a frame per event
// Frames are only encoded while a spectator is connected
func (s *Server) Listener() engine.Listener {
	return func(ev engine.Event) {
		if s.hub.Clients() == 0 {
			return
		}
		msg, err := json.Marshal(Frame{Event: &ev, Snapshot: s.source.Snapshot()})
		if err != nil {
			slog.Error("encode frame", "error", err)
			return
		}
		s.hub.Broadcast(msg)
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("spectator server listening", "addr", s.addr)
		errCh <- s.router.Start(s.addr)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "spectator server")
		}
		return nil
	case <-ctx.Done():
	}

	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.router.Shutdown(sctx); err != nil {
		return errors.Wrap(err, "spectator shutdown")
	}
	return nil
}

func (s *Server) snapshot(c echo.Context) error {
	return c.JSON(http.StatusOK, s.source.Snapshot())
}

func (s *Server) catalog(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"facts": s.facts,
		"guide": catalog.Guide(),
	})
}

func (s *Server) exportMetrics(c echo.Context) error {
	return c.JSON(http.StatusOK, s.metrics.Export())
}

// compat runs the device heuristic on the request's user agent and reported screen
func (s *Server) compat(c echo.Context) error {
	p := device.Probe{UserAgent: c.Request().UserAgent()}
	if ua := c.QueryParam("ua"); ua != "" {
		p.UserAgent = ua
	}
	var err error
	if v := c.QueryParam("width"); v != "" {
		if p.Width, err = strconv.Atoi(v); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "width must be an integer")
		}
	}
	if v := c.QueryParam("height"); v != "" {
		if p.Height, err = strconv.Atoi(v); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "height must be an integer")
		}
	}
	if v := c.QueryParam("touch"); v != "" {
		if p.Touch, err = strconv.ParseBool(v); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "touch must be a boolean")
		}
	}
	return c.JSON(http.StatusOK, device.Check(p))
}

// stream upgrades to a websocket, sends the current snapshot, then forwards hub frames
func (s *Server) stream(c echo.Context) error {
	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		slog.Warn("websocket accept failed", "error", err)
		return nil
	}
	defer conn.CloseNow()

	client, unsubscribe := s.hub.Subscribe()
	defer unsubscribe()

	// Spectators never send; CloseRead handles control frames and cancels ctx on disconnect
	ctx := conn.CloseRead(c.Request().Context())

	first, err := json.Marshal(Frame{Snapshot: s.source.Snapshot()})
	if err != nil {
		return errors.Wrap(err, "encode snapshot")
	}
	if err := write(ctx, conn, first); err != nil {
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			conn.Close(websocket.StatusNormalClosure, "")
			return nil
		case msg := <-client.Frames():
			if err := write(ctx, conn, msg); err != nil {
				slog.Debug("spectator write failed", "error", err)
				return nil
			}
		}
	}
}

func write(ctx context.Context, conn *websocket.Conn, msg []byte) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return conn.Write(ctx, websocket.MessageText, msg)
}
