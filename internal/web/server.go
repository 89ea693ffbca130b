// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package web serves the validation dashboard: a small HTML page for logging
// question/response pairs manually, plus JSON endpoints that reuse the exact
// CLI pipeline (same aggregator, same formatters, same record store).
package web

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"parrot-check/internal/core"
	"parrot-check/internal/detector"
	"parrot-check/internal/formatters"
	formatterShared "parrot-check/internal/formatters/shared"
	"parrot-check/internal/records"
	"parrot-check/internal/version"

	// Import formatters to register them
	_ "parrot-check/internal/formatters/csv"
	_ "parrot-check/internal/formatters/json"
	_ "parrot-check/internal/formatters/text"
	_ "parrot-check/internal/formatters/yaml"
)

// WebServer represents the dashboard server instance
type WebServer struct {
	port       string
	aggregator *core.Aggregator
	store      *records.Store
	mux        *http.ServeMux
	server     *http.Server
}

// ValidateRequest is the POST /validate payload
type ValidateRequest struct {
	Question string `json:"question"`
	Response string `json:"response"`
	Platform string `json:"platform"`
}

// ValidateResponse wraps a validation run for the dashboard
type ValidateResponse struct {
	Success   bool                        `json:"success"`
	Report    *detector.Report            `json:"report,omitempty"`
	RecordID  string                      `json:"record_id,omitempty"`
	Duplicate bool                        `json:"duplicate"`
	Result    *formatterShared.ResultView `json:"result,omitempty"`
	Error     string                      `json:"error,omitempty"`
}

// NewWebServer creates a new dashboard server
func NewWebServer(port string, aggregator *core.Aggregator, store *records.Store) *WebServer {
	ws := &WebServer{
		port:       port,
		aggregator: aggregator,
		store:      store,
		mux:        http.NewServeMux(),
	}
	ws.setupRoutes()
	return ws
}

// Handler exposes the route multiplexer, mainly for tests.
func (ws *WebServer) Handler() http.Handler {
	return ws.mux
}

// Start starts the web server, walking forward through ports when the
// requested one is taken.
func (ws *WebServer) Start() error {
	var lastError error
	for i := 0; i < 10; i++ {
		currentPort := ws.port
		if i > 0 || ws.port == "8080" {
			currentPort = fmt.Sprintf("%d", 8080+i)
		}

		listener, err := net.Listen("tcp", ":"+currentPort)
		if err != nil {
			lastError = err
			if i == 0 {
				fmt.Printf("Port %s is not available, trying alternative ports...\n", currentPort)
			}
			continue
		}
		listener.Close()

		ws.server = ws.createSecureServer(currentPort)

		fmt.Printf("Parrot Check dashboard started on port %s\n", currentPort)
		fmt.Printf("Local: http://localhost:%s\n", currentPort)

		if err := ws.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			lastError = err
			fmt.Printf("Server on port %s failed: %v\n", currentPort, err)
			continue
		}
		return nil
	}

	return fmt.Errorf("could not find an available port in range 8080-8089\n"+
		"Last error: %v\n"+
		"Try a specific port with --port <number> and check what is bound with: netstat -an | grep :808", lastError)
}

// Stop stops the web server
func (ws *WebServer) Stop() error {
	if ws.server != nil {
		return ws.server.Close()
	}
	return nil
}

func (ws *WebServer) setupRoutes() {
	ws.mux.HandleFunc("/", ws.serveHome)
	ws.mux.HandleFunc("/health", ws.handleHealth)
	ws.mux.HandleFunc("/version", ws.handleVersion)
	ws.mux.HandleFunc("/validate", ws.handleValidate)
	ws.mux.HandleFunc("/records", ws.handleRecords)
	ws.mux.HandleFunc("/records/remove", ws.handleRecordsRemove)
	ws.mux.HandleFunc("/records/clear", ws.handleRecordsClear)
	ws.mux.HandleFunc("/export", ws.handleExport)
}

// createSecureServer creates an HTTP server with security timeouts
func (ws *WebServer) createSecureServer(port string) *http.Server {
	return &http.Server{
		Addr:              ":" + port,
		Handler:           ws.mux,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// serveHome serves the main HTML page
func (ws *WebServer) serveHome(responseWriter http.ResponseWriter, request *http.Request) {
	if request.Method != http.MethodGet {
		http.Error(responseWriter, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if request.URL.Path != "/" {
		http.NotFound(responseWriter, request)
		return
	}

	responseWriter.Header().Set("Content-Type", "text/html")
	responseWriter.WriteHeader(http.StatusOK)
	responseWriter.Write([]byte(ws.loadTemplate()))
}

// loadTemplate loads the HTML template from file with fallback to the
// embedded dashboard.
func (ws *WebServer) loadTemplate() string {
	templatePath := filepath.Clean(filepath.Join("web", "template.html"))
	if content, err := os.ReadFile(templatePath); err == nil {
		return string(content)
	}
	if content, err := os.ReadFile("template.html"); err == nil {
		return string(content)
	}
	return embeddedTemplate
}

// handleHealth provides a health check endpoint with version information
func (ws *WebServer) handleHealth(responseWriter http.ResponseWriter, request *http.Request) {
	if request.Method != http.MethodGet {
		http.Error(responseWriter, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	versionInfo := version.Full()
	healthData := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "parrot-check-web",
		"version":   versionInfo["version"],
		"records":   ws.store.Len(),
		"build_info": map[string]interface{}{
			"version":    versionInfo["version"],
			"commit":     versionInfo["commit"],
			"build_date": versionInfo["buildDate"],
			"go_version": versionInfo["goVersion"],
			"platform":   versionInfo["platform"],
		},
	}

	ws.writeJSON(responseWriter, http.StatusOK, healthData)
}

func (ws *WebServer) handleVersion(responseWriter http.ResponseWriter, request *http.Request) {
	if request.Method != http.MethodGet {
		http.Error(responseWriter, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	ws.writeJSON(responseWriter, http.StatusOK, version.Full())
}

// handleValidate scores one question/response pair and stores the result.
// Accepts JSON or form-encoded bodies so the dashboard and curl both work.
func (ws *WebServer) handleValidate(responseWriter http.ResponseWriter, request *http.Request) {
	if request.Method != http.MethodPost {
		http.Error(responseWriter, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ValidateRequest
	contentType := request.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/json") {
		if err := json.NewDecoder(request.Body).Decode(&req); err != nil {
			ws.sendError(responseWriter, "Invalid JSON body")
			return
		}
	} else {
		if err := request.ParseForm(); err != nil {
			ws.sendError(responseWriter, "Failed to parse form data")
			return
		}
		req.Question = request.FormValue("question")
		req.Response = request.FormValue("response")
		req.Platform = request.FormValue("platform")
	}

	if strings.TrimSpace(req.Question) == "" && strings.TrimSpace(req.Response) == "" {
		ws.sendError(responseWriter, "Provide a question, a response, or both")
		return
	}
	if req.Platform == "" {
		req.Platform = "web"
	}

	pair := detector.Pair{
		Question:  req.Question,
		Response:  req.Response,
		Platform:  req.Platform,
		Timestamp: time.Now().UTC(),
	}

	report := ws.aggregator.ValidatePair(request.Context(), pair)
	record, added := ws.store.Add(pair, report)
	if err := ws.store.Save(); err != nil {
		fmt.Printf("Warning: failed to persist records: %v\n", err)
	}

	entry := formatters.Entry{
		Question:  pair.Question,
		Response:  pair.Response,
		Platform:  pair.Platform,
		Timestamp: pair.Timestamp,
		Report:    report,
	}
	converted := formatterShared.Convert([]formatters.Entry{entry}, formatters.FormatterOptions{Verbose: true})

	resp := ValidateResponse{
		Success:   true,
		Report:    &report,
		RecordID:  record.ID,
		Duplicate: !added,
	}
	if len(converted.Results) == 1 {
		resp.Result = &converted.Results[0]
	}
	ws.writeJSON(responseWriter, http.StatusOK, resp)
}

// handleRecords lists stored validation records, newest first
func (ws *WebServer) handleRecords(responseWriter http.ResponseWriter, request *http.Request) {
	if request.Method != http.MethodGet {
		http.Error(responseWriter, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ws.writeJSON(responseWriter, http.StatusOK, map[string]interface{}{
		"success": true,
		"records": ws.store.All(),
	})
}

func (ws *WebServer) handleRecordsRemove(responseWriter http.ResponseWriter, request *http.Request) {
	if request.Method != http.MethodPost {
		http.Error(responseWriter, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := request.ParseForm(); err != nil {
		ws.sendError(responseWriter, "Failed to parse form data")
		return
	}

	id := request.FormValue("id")
	if id == "" {
		ws.sendError(responseWriter, "Missing record id")
		return
	}
	if !ws.store.Remove(id) {
		ws.sendError(responseWriter, fmt.Sprintf("Unknown record id: %s", id))
		return
	}
	if err := ws.store.Save(); err != nil {
		fmt.Printf("Warning: failed to persist records: %v\n", err)
	}
	ws.writeJSON(responseWriter, http.StatusOK, map[string]interface{}{"success": true})
}

func (ws *WebServer) handleRecordsClear(responseWriter http.ResponseWriter, request *http.Request) {
	if request.Method != http.MethodPost {
		http.Error(responseWriter, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	ws.store.Clear()
	if err := ws.store.Save(); err != nil {
		fmt.Printf("Warning: failed to persist records: %v\n", err)
	}
	ws.writeJSON(responseWriter, http.StatusOK, map[string]interface{}{"success": true})
}

// handleExport renders all stored records through a registered formatter and
// serves the result as a download.
func (ws *WebServer) handleExport(responseWriter http.ResponseWriter, request *http.Request) {
	if request.Method != http.MethodGet {
		http.Error(responseWriter, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	format := request.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}
	confidence := request.URL.Query().Get("confidence")
	if confidence == "" {
		confidence = "all"
	}

	var entries []formatters.Entry
	for _, record := range ws.store.All() {
		entries = append(entries, formatters.Entry{
			Question:  record.Pair.Question,
			Response:  record.Pair.Response,
			Platform:  record.Pair.Platform,
			Timestamp: record.CreatedAt,
			Report:    record.Report,
		})
	}

	options := formatters.FormatterOptions{
		ConfidenceLevel: core.ParseConfidenceLevels(confidence),
		Verbose:         true,
		NoColor:         true,
	}

	content, mimeType, filename, err := formatters.ExportForWeb(format, entries, options)
	if err != nil {
		ws.sendError(responseWriter, err.Error())
		return
	}

	responseWriter.Header().Set("Content-Type", mimeType)
	responseWriter.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	responseWriter.WriteHeader(http.StatusOK)
	responseWriter.Write([]byte(content))
}

func (ws *WebServer) sendError(responseWriter http.ResponseWriter, message string) {
	ws.writeJSON(responseWriter, http.StatusBadRequest, ValidateResponse{
		Success: false,
		Error:   message,
	})
}

func (ws *WebServer) writeJSON(responseWriter http.ResponseWriter, status int, payload interface{}) {
	responseWriter.Header().Set("Content-Type", "application/json")
	responseWriter.WriteHeader(status)
	if err := json.NewEncoder(responseWriter).Encode(payload); err != nil {
		fmt.Printf("Warning: failed to encode response: %v\n", err)
	}
}
