package health

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"quizbot/internal/common/clock"
)

// Server answers the uptime pings the hosting platform uses to keep the
// bot alive, plus a readiness probe.
type Server struct {
	httpServer *http.Server
	botName    string
	startedAt  time.Time
	clock      clock.Clock
	readyCheck func(ctx context.Context) error
}

// Config holds configuration for the health server
type Config struct {
	// Port to listen on
	Port int

	// BotName reported in ping responses
	BotName string

	// ReadyCheck reports whether downstream dependencies are reachable.
	// Optional; when nil the health endpoint always reports healthy.
	ReadyCheck func(ctx context.Context) error

	// Clock, defaults to the system clock
	Clock clock.Clock
}

// pingResponse is the JSON body of the ping endpoint
type pingResponse struct {
	Status string `json:"status"`
	Bot    string `json:"bot"`
	Uptime string `json:"uptime"`
}

// healthResponse is the JSON body of the health endpoint
type healthResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// New creates a new health server
func New(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Port <= 0 {
		return nil, errors.New("port must be positive")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}

	s := &Server{
		botName:    cfg.BotName,
		clock:      clk,
		startedAt:  clk.Now(),
		readyCheck: cfg.ReadyCheck,
	}

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s, nil
}

// Handler returns the route table
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ping", s.handlePing)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

// Start listens until the server is shut down
func (s *Server) Start() error {
	log.Printf("health server listening on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	uptime := s.clock.Now().Sub(s.startedAt).Round(time.Second)
	writeJSON(w, http.StatusOK, pingResponse{
		Status: "ok",
		Bot:    s.botName,
		Uptime: uptime.String(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.readyCheck != nil {
		if err := s.readyCheck(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, healthResponse{
				Status: "unhealthy",
				Error:  err.Error(),
			})
			return
		}
	}

	writeJSON(w, http.StatusOK, healthResponse{Status: "healthy"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("failed to write health response: %v", err)
	}
}
