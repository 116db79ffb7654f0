// Package dashboard serves the race-results dashboard: go-echarts chart
// pages, the JSON chart API behind them, and the index page tying the
// panels together.
package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/paddock-data/apex.report/internal/monitoring"
	"github.com/paddock-data/apex.report/internal/results"
	"github.com/paddock-data/apex.report/internal/stats"
	"github.com/paddock-data/apex.report/internal/version"
)

// WebServer handles the HTTP interface for the results dashboard.
type WebServer struct {
	address  string
	server   *http.Server
	pipeline *stats.Pipeline
	summary  results.LoadSummary
}

// WebServerConfig contains configuration options for the web server.
type WebServerConfig struct {
	Address  string
	Pipeline *stats.Pipeline
	Summary  results.LoadSummary
}

// NewWebServer creates a web server with the provided configuration.
func NewWebServer(config WebServerConfig) *WebServer {
	ws := &WebServer{
		address:  config.Address,
		pipeline: config.Pipeline,
		summary:  config.Summary,
	}

	ws.server = &http.Server{
		Addr:    ws.address,
		Handler: ws.setupRoutes(),
	}

	return ws
}

// Start begins the HTTP server in a goroutine and blocks until the context
// is cancelled, then shuts the server down.
func (ws *WebServer) Start(ctx context.Context) error {
	go func() {
		monitoring.Logf("starting HTTP server on %s", ws.address)
		if err := ws.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			monitoring.Logf("failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	monitoring.Logf("shutting down HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := ws.server.Shutdown(shutdownCtx); err != nil {
		monitoring.Logf("HTTP server shutdown error: %v", err)
		if err := ws.server.Close(); err != nil {
			monitoring.Logf("HTTP server force close error: %v", err)
		}
	}

	monitoring.Logf("HTTP server stopped")
	return nil
}

// setupRoutes configures the HTTP routes and handlers.
func (ws *WebServer) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/", ws.handleIndex)
	mux.HandleFunc("/health", ws.handleHealth)

	mux.HandleFunc("/charts/drivers", ws.handleDriverTrendChart)
	mux.HandleFunc("/charts/constructors", ws.handleConstructorTrendChart)
	mux.HandleFunc("/charts/podiums", ws.handlePodiumHeatmapChart)
	mux.HandleFunc("/charts/projection", ws.handleProjectionChart)

	mux.HandleFunc("/api/summary", ws.handleSummary)
	mux.HandleFunc("/api/sample", ws.handleSampleJSON)
	mux.HandleFunc("/api/charts/drivers.json", ws.handleDriverTrendJSON)
	mux.HandleFunc("/api/charts/constructors.json", ws.handleConstructorTrendJSON)
	mux.HandleFunc("/api/charts/podiums.json", ws.handlePodiumJSON)
	mux.HandleFunc("/api/charts/projection.json", ws.handleProjectionJSON)

	return mux
}

func (ws *WebServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	ws.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": version.Version,
	})
}

// handleSummary returns the load banner for the current ingest run.
func (ws *WebServer) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		ws.writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed; use GET")
		return
	}
	ws.writeJSON(w, http.StatusOK, ws.summary)
}

// writeJSON writes a JSON response with the given status code.
func (ws *WebServer) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		monitoring.Logf("JSON encoding error: %v", err)
	}
}

func (ws *WebServer) writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
