// SPDX-License-Identifier: MPL-2.0

package webserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/powcalc/powcalc/internal/boundary"
	"github.com/powcalc/powcalc/internal/metrics"
	"github.com/powcalc/powcalc/pkg/types"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	// DefaultShutdownTimeout bounds graceful shutdown in Stop.
	DefaultShutdownTimeout = 5 * time.Second
	// WasmFileName is the module file looked up in Config.Dir.
	WasmFileName = "powcalc.wasm"
)

// ErrNoCalculator is returned by New when Config.Calculator is nil.
var ErrNoCalculator = errors.New("webserver: calculator is required")

type (
	// Config configures a Server.
	Config struct {
		// Addr is the address to listen on.
		Addr types.ListenAddr
		// Dir holds the built powcalc.wasm. Empty disables the module route.
		Dir string
		// Calculator answers the JSON API.
		Calculator *boundary.Calculator
		// Metrics records per-request counters. May be nil.
		Metrics *metrics.Metrics
		// Gatherer backs /metrics. Nil disables the route.
		Gatherer prometheus.Gatherer
		// Logger receives request and lifecycle logs. Defaults to a
		// discarding logger.
		Logger *log.Logger
		// ShutdownTimeout bounds Stop. Defaults to DefaultShutdownTimeout.
		ShutdownTimeout time.Duration
	}

	// Server is the powcalc HTTP server.
	Server struct {
		cfg    Config
		engine *gin.Engine

		state   atomic.Int32
		stateMu sync.Mutex
		lastErr error
		addr    string

		httpServer *http.Server
		startedCh  chan struct{}
		doneCh     chan struct{}
		errCh      chan error
		wg         sync.WaitGroup
	}
)

// New creates a Server with all routes registered. It does not listen.
func New(cfg Config) (*Server, error) {
	if cfg.Calculator == nil {
		return nil, ErrNoCalculator
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if err := cfg.Addr.Validate(); err != nil {
		return nil, err
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = DefaultShutdownTimeout
	}

	s := &Server{
		cfg:       cfg,
		startedCh: make(chan struct{}),
		doneCh:    make(chan struct{}),
		errCh:     make(chan error, 1),
	}
	s.state.Store(int32(StateCreated))
	s.engine = s.newEngine()
	return s, nil
}

// Handler returns the routed gin engine.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start opens the listener and begins serving in the background. It returns
// once the server is accepting connections.
func (s *Server) Start(ctx context.Context) error {
	select {
	case <-ctx.Done():
		s.fail(fmt.Errorf("context cancelled before start: %w", ctx.Err()))
		return s.LastError()
	default:
	}

	if !s.state.CompareAndSwap(int32(StateCreated), int32(StateStarting)) {
		return fmt.Errorf("cannot start server in state %s", s.State())
	}

	var lc net.ListenConfig
	listener, err := lc.Listen(ctx, "tcp", s.cfg.Addr.String())
	if err != nil {
		s.fail(fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr, err))
		return s.LastError()
	}

	s.stateMu.Lock()
	s.addr = listener.Addr().String()
	s.httpServer = &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.stateMu.Unlock()

	s.wg.Add(1)
	go s.serve(listener)

	if s.state.CompareAndSwap(int32(StateStarting), int32(StateRunning)) {
		close(s.startedCh)
	}
	s.cfg.Logger.Info("serving", "addr", s.addr, "dir", s.cfg.Dir)
	return nil
}

func (s *Server) serve(listener net.Listener) {
	defer s.wg.Done()
	defer close(s.doneCh)

	err := s.httpServer.Serve(listener)
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		return
	}
	s.fail(fmt.Errorf("serve: %w", err))
}

// Stop shuts the server down gracefully. Stopping a server that never
// started, or one already stopped, is a no-op.
func (s *Server) Stop() error {
	for {
		current := s.State()
		switch current {
		case StateStopped, StateFailed:
			return nil
		case StateCreated:
			if s.state.CompareAndSwap(int32(StateCreated), int32(StateStopped)) {
				return nil
			}
		case StateStopping:
			s.wg.Wait()
			return nil
		case StateStarting, StateRunning:
			if s.state.CompareAndSwap(int32(current), int32(StateStopping)) {
				return s.shutdown()
			}
		default:
			return &InvalidStateError{Value: current}
		}
	}
}

func (s *Server) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	s.stateMu.Lock()
	srv := s.httpServer
	s.stateMu.Unlock()

	var err error
	if srv != nil {
		err = srv.Shutdown(ctx)
	}
	s.wg.Wait()
	s.state.Store(int32(StateStopped))
	s.cfg.Logger.Info("stopped", "addr", s.addr)

	if err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (s *Server) fail(err error) {
	s.stateMu.Lock()
	s.lastErr = err
	s.stateMu.Unlock()
	s.state.Store(int32(StateFailed))
	s.cfg.Logger.Error("server failed", "error", err)

	select {
	case s.errCh <- err:
	default:
	}
}

// State returns the current lifecycle state.
func (s *Server) State() State {
	return State(s.state.Load())
}

// IsRunning reports whether the server is accepting requests.
func (s *Server) IsRunning() bool {
	return s.State() == StateRunning
}

// LastError returns the error that moved the server to StateFailed.
func (s *Server) LastError() error {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	return s.lastErr
}

// Err returns a channel receiving the first fatal error after Start.
func (s *Server) Err() <-chan error {
	return s.errCh
}

// Done is closed when the serve loop has exited.
func (s *Server) Done() <-chan struct{} {
	return s.doneCh
}

// Address returns the bound address (host:port) once running, or "" if the
// server has not started.
func (s *Server) Address() string {
	select {
	case <-s.startedCh:
		s.stateMu.Lock()
		defer s.stateMu.Unlock()
		return s.addr
	default:
		return ""
	}
}

// URL returns the http:// URL of the running server.
func (s *Server) URL() string {
	addr := s.Address()
	if addr == "" {
		return ""
	}
	return "http://" + addr
}

// Wait blocks until the serve loop exits and returns the failure, if any.
func (s *Server) Wait() error {
	s.wg.Wait()
	if s.State() == StateFailed {
		return s.LastError()
	}
	return nil
}
