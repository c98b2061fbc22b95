// Package engine hosts the gateway's HTTP façade: the engine owning the ADH
// client handle, the router and middleware, and the per-resource handlers
// that translate REST requests into remote store calls.
package engine

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/adhconnect/forecast-gateway/internal/config"
	"github.com/adhconnect/forecast-gateway/internal/forecast"
	"github.com/adhconnect/forecast-gateway/internal/logger"
	"github.com/adhconnect/forecast-gateway/internal/metrics"
	"github.com/adhconnect/forecast-gateway/pkg/adh"
	"github.com/adhconnect/forecast-gateway/pkg/health"
)

// Engine owns the remote store client and the HTTP server. The client is
// constructed once at Start and reused for the process lifetime.
type Engine struct {
	config    *config.Config
	logger    *logger.Logger
	metrics   *metrics.Metrics
	checker   *health.Checker
	server    *http.Server
	client    *adh.Client
	assembler *forecast.Assembler

	state struct {
		sync.Mutex
		isRunning         bool
		ongoingOperations int32
	}
	stats struct {
		requestsProcessed int64
		errors            int64
	}
}

// NewEngine creates an engine with the given configuration.
func NewEngine(cfg *config.Config, log *logger.Logger) *Engine {
	return &Engine{
		config:  cfg,
		logger:  log,
		metrics: metrics.New(),
		checker: health.NewChecker(),
	}
}

// SetClient wires the store client and the assembler built on it. Start calls
// this with the real ADH client; tests inject one pointed at a fake server.
func (e *Engine) SetClient(client *adh.Client) {
	e.client = client
	e.assembler = forecast.NewAssembler(forecast.Store{
		Types:      client.Types,
		Streams:    client.Streams,
		Assets:     client.Assets,
		AssetTypes: client.AssetTypes,
	}, e.config.NamespaceID)
}

// Start builds the store client and brings up the HTTP server.
func (e *Engine) Start(ctx context.Context) error {
	e.state.Lock()
	if e.state.isRunning {
		e.state.Unlock()
		return fmt.Errorf("engine is already running")
	}
	e.state.isRunning = true
	e.state.Unlock()

	if e.client == nil {
		client, err := adh.NewClient(adh.Options{
			Resource:     e.config.Resource,
			APIVersion:   e.config.APIVersion,
			TenantID:     e.config.TenantID,
			ClientID:     e.config.ClientID,
			ClientSecret: e.config.ClientSecret,
		})
		if err != nil {
			return fmt.Errorf("configure store client: %w", err)
		}
		e.SetClient(client)
	}

	e.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", e.config.HTTPPort),
		Handler: NewServer(e),
	}

	e.logger.Infof("Starting HTTP server on port %d", e.config.HTTPPort)
	go func() {
		if err := e.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.logger.Errorf("HTTP server error: %v", err)
			atomic.AddInt64(&e.stats.errors, 1)
		}
	}()

	e.logger.Infof("Gateway engine started, namespace %s", e.config.NamespaceID)
	return nil
}

// Stop shuts the HTTP server down gracefully.
func (e *Engine) Stop(ctx context.Context) error {
	e.state.Lock()
	if !e.state.isRunning {
		e.state.Unlock()
		return nil
	}
	e.state.isRunning = false
	e.state.Unlock()

	if e.server != nil {
		return e.server.Shutdown(ctx)
	}
	return nil
}

// GetMetrics returns the engine's request counters.
func (e *Engine) GetMetrics() map[string]int64 {
	return map[string]int64{
		"requests_processed": atomic.LoadInt64(&e.stats.requestsProcessed),
		"errors":             atomic.LoadInt64(&e.stats.errors),
	}
}

// CheckHTTPServer reports whether the HTTP server is up.
func (e *Engine) CheckHTTPServer() error {
	e.state.Lock()
	defer e.state.Unlock()
	if !e.state.isRunning {
		return fmt.Errorf("engine not running")
	}
	if e.server == nil {
		return fmt.Errorf("HTTP server not initialized")
	}
	return nil
}

// CheckStore reports whether the store client is configured.
func (e *Engine) CheckStore() error {
	if e.client == nil {
		return fmt.Errorf("store client not configured")
	}
	return nil
}

// TrackOperation marks one request in flight.
func (e *Engine) TrackOperation() {
	atomic.AddInt32(&e.state.ongoingOperations, 1)
	atomic.AddInt64(&e.stats.requestsProcessed, 1)
	e.metrics.HTTPRequestsInFlight.Inc()
}

// UntrackOperation marks one request finished.
func (e *Engine) UntrackOperation() {
	atomic.AddInt32(&e.state.ongoingOperations, -1)
	e.metrics.HTTPRequestsInFlight.Dec()
}

// requestContext derives the per-request timeout context from the
// configuration.
func (e *Engine) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	timeout := time.Duration(e.config.RequestTimeout) * time.Second
	return context.WithTimeout(r.Context(), timeout)
}

func (e *Engine) namespace() string {
	return e.config.NamespaceID
}
