// Package handlers provides HTTP request handlers for the medical report API
// endpoints. It includes the analysis endpoint, parse-only report endpoints,
// export, and health checks with proper input validation and error handling.
package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/clinalyze/medreport-api/interfaces"
	"github.com/clinalyze/medreport-api/logging"
	"github.com/clinalyze/medreport-api/reportparser"
	"github.com/clinalyze/medreport-api/reportparser/entities"
	"github.com/go-chi/chi/v5"
	"golang.org/x/text/encoding/charmap"
)

// HTTPHandler carries the analysis pipeline dependencies for all endpoints.
type HTTPHandler struct {
	analyzer  interfaces.Analyzer
	parser    interfaces.ReportParser
	validator interfaces.DataValidator
	exporter  interfaces.Exporter

	startTime       time.Time
	analysesServed  atomic.Int64
	analysesFailed  atomic.Int64
	lastAnalysisUTC atomic.Int64 // unix seconds, 0 = never
}

// NewHTTPHandler creates a new HTTP handler with injected dependencies
func NewHTTPHandler(analyzer interfaces.Analyzer, parser interfaces.ReportParser,
	validator interfaces.DataValidator, exporter interfaces.Exporter) *HTTPHandler {
	return &HTTPHandler{
		analyzer:  analyzer,
		parser:    parser,
		validator: validator,
		exporter:  exporter,
		startTime: time.Now(),
	}
}

// RespondWithJSON writes a JSON response
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		logging.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Last-Modified", time.Now().UTC().Format(http.TimeFormat))
	w.WriteHeader(code)
	w.Write(data)
}

// RespondWithError writes a JSON error response
func RespondWithError(w http.ResponseWriter, code int, message string) {
	errorResponse := map[string]interface{}{
		"error":   http.StatusText(code),
		"message": message,
		"code":    code,
	}
	RespondWithJSON(w, code, errorResponse)
}

// readDocument reads the request body as document text. Bodies that are not
// valid UTF-8 are decoded as ISO-8859-1; text files produced on Windows
// still show up with legacy encodings.
func readDocument(r *http.Request) (string, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read request body: %w", err)
	}

	if utf8.Valid(body) {
		return string(body), nil
	}

	decoded, err := io.ReadAll(charmap.ISO8859_1.NewDecoder().Reader(bytes.NewReader(body)))
	if err != nil {
		return "", fmt.Errorf("failed to decode request body: %w", err)
	}
	return string(decoded), nil
}

// MedicationView is the presentation shape of one medication record: the raw
// parsed fields plus the display effectiveness, with the placeholders the
// report view expects.
type MedicationView struct {
	Name           string            `json:"name"`
	Effectiveness  int               `json:"effectiveness"`
	Dosage         string            `json:"dosage"`
	SideEffects    string            `json:"sideEffects"`
	AdditionalInfo string            `json:"additionalInfo,omitempty"`
	Extra          map[string]string `json:"extra,omitempty"`
}

// AnalysisReport is the full structured report returned by the analyze
// endpoints.
type AnalysisReport struct {
	GeneratedAt    string                         `json:"generatedAt"`
	Raw            string                         `json:"raw"`
	Sections       []entities.Section             `json:"sections"`
	Medications    []MedicationView               `json:"medications"`
	Effectiveness  []entities.EffectivenessPoint  `json:"effectivenessChart"`
	Classification entities.ClassificationWeights `json:"classification"`
}

func (h *HTTPHandler) medicationViews(records []entities.MedicationRecord) []MedicationView {
	views := make([]MedicationView, 0, len(records))
	for _, record := range records {
		view := MedicationView{
			Name:           record.Name,
			Effectiveness:  h.parser.DisplayEffectiveness(record),
			Dosage:         record.Dosage,
			SideEffects:    record.SideEffects,
			AdditionalInfo: record.AdditionalInfo,
			Extra:          record.Extra,
		}
		if view.Name == "" {
			view.Name = "Unnamed Medication"
		}
		if view.Dosage == "" {
			view.Dosage = "Not specified"
		}
		if view.SideEffects == "" {
			view.SideEffects = "Not specified"
		}
		views = append(views, view)
	}
	return views
}

// buildReport assembles the structured report from a successful analysis
// text.
func (h *HTTPHandler) buildReport(raw string) AnalysisReport {
	records := h.parser.ParseMedications(raw)
	classification := h.parser.ClassifyDisease(
		h.parser.ExtractSection(raw, reportparser.ClassificationHeader))

	return AnalysisReport{
		GeneratedAt:    time.Now().UTC().Format(time.RFC3339),
		Raw:            raw,
		Sections:       h.parser.Sections(raw),
		Medications:    h.medicationViews(records),
		Effectiveness:  h.parser.EffectivenessChart(records),
		Classification: classification,
	}
}

// runAnalysis validates the document, runs the analysis pipeline, and writes
// the error responses shared by the analyze endpoints. The returned bool
// reports whether a response was already written.
func (h *HTTPHandler) runAnalysis(w http.ResponseWriter, r *http.Request) (string, bool) {
	content, err := readDocument(r)
	if err != nil {
		logging.Warn("Unreadable analysis request body", "error", err, "remote_addr", r.RemoteAddr)
		RespondWithError(w, http.StatusBadRequest, "Could not read document text")
		return "", false
	}

	if err := h.validator.ValidateDocument(content); err != nil {
		RespondWithError(w, http.StatusBadRequest, err.Error())
		return "", false
	}

	outcome := h.analyzer.Analyze(r.Context(), content)
	if !outcome.OK() {
		h.analysesFailed.Add(1)
		RespondWithJSON(w, http.StatusBadGateway, map[string]interface{}{
			"error":   outcome.Failure.Kind,
			"message": outcome.Failure.Message,
		})
		return "", false
	}

	h.analysesServed.Add(1)
	h.lastAnalysisUTC.Store(time.Now().Unix())
	return outcome.Text, true
}

// AnalyzeReport runs the full pipeline: document text in, structured report
// out.
func (h *HTTPHandler) AnalyzeReport(w http.ResponseWriter, r *http.Request) {
	raw, ok := h.runAnalysis(w, r)
	if !ok {
		return
	}

	RespondWithJSON(w, http.StatusOK, h.buildReport(raw))
}

// ExportReport runs the full pipeline and additionally writes the raw text
// as a date-named artifact, returning it as a downloadable attachment.
func (h *HTTPHandler) ExportReport(w http.ResponseWriter, r *http.Request) {
	raw, ok := h.runAnalysis(w, r)
	if !ok {
		return
	}

	name, err := h.exporter.WriteReport(raw, time.Now())
	if err != nil {
		logging.Error("Failed to write export artifact", "error", err)
		RespondWithError(w, http.StatusInternalServerError, "Failed to export report")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, raw)
}

// ParseSections splits client-supplied analysis text into the six fixed
// sections without calling the analysis service.
func (h *HTTPHandler) ParseSections(w http.ResponseWriter, r *http.Request) {
	text, ok := h.readParseInput(w, r)
	if !ok {
		return
	}

	RespondWithJSON(w, http.StatusOK, h.parser.Sections(text))
}

// ParseSectionByIndex returns one section of client-supplied analysis text
// by its 1-based index.
func (h *HTTPHandler) ParseSectionByIndex(w http.ResponseWriter, r *http.Request) {
	index, err := h.validator.ValidateSectionIndex(chi.URLParam(r, "index"))
	if err != nil {
		logging.Warn("Unusual user input", "index", chi.URLParam(r, "index"))
		RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	text, ok := h.readParseInput(w, r)
	if !ok {
		return
	}

	header := reportparser.SectionHeaders[index-1]
	RespondWithJSON(w, http.StatusOK, entities.Section{
		Title: header,
		Body:  h.parser.ExtractSection(text, header),
	})
}

// ParseMedications parses medication records from client-supplied analysis
// text.
func (h *HTTPHandler) ParseMedications(w http.ResponseWriter, r *http.Request) {
	text, ok := h.readParseInput(w, r)
	if !ok {
		return
	}

	records := h.parser.ParseMedications(text)
	RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"medications":        h.medicationViews(records),
		"effectivenessChart": h.parser.EffectivenessChart(records),
	})
}

// ParseClassification derives the disease classification weighting from
// client-supplied analysis text.
func (h *HTTPHandler) ParseClassification(w http.ResponseWriter, r *http.Request) {
	text, ok := h.readParseInput(w, r)
	if !ok {
		return
	}

	section := h.parser.ExtractSection(text, reportparser.ClassificationHeader)
	RespondWithJSON(w, http.StatusOK, h.parser.ClassifyDisease(section))
}

// readParseInput reads the body for the parse-only endpoints. Unlike the
// analyze path, empty text is allowed here: the parsers degrade to
// placeholders and empty slices by design.
func (h *HTTPHandler) readParseInput(w http.ResponseWriter, r *http.Request) (string, bool) {
	text, err := readDocument(r)
	if err != nil {
		logging.Warn("Unreadable parse request body", "error", err, "remote_addr", r.RemoteAddr)
		RespondWithError(w, http.StatusBadRequest, "Could not read report text")
		return "", false
	}
	return text, true
}

// formatUptimeHuman formats duration into a human-readable string
func formatUptimeHuman(d time.Duration) string {
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	var parts []string

	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 || days > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 || hours > 0 || days > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	parts = append(parts, fmt.Sprintf("%ds", seconds))

	return strings.Join(parts, " ")
}

// HealthResponse defines the structure for consistent JSON ordering
type HealthResponse struct {
	Status        string                 `json:"status"`
	Uptime        string                 `json:"uptime"`
	UptimeSeconds float64                `json:"uptime_seconds"`
	Data          map[string]interface{} `json:"data"`
	System        map[string]interface{} `json:"system"`
}

// HealthCheck returns server health information
func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	uptime := time.Since(h.startTime)

	lastAnalysis := "never"
	if ts := h.lastAnalysisUTC.Load(); ts > 0 {
		lastAnalysis = time.Unix(ts, 0).UTC().Format(time.RFC3339)
	}

	response := HealthResponse{
		Status:        "healthy",
		Uptime:        formatUptimeHuman(uptime),
		UptimeSeconds: uptime.Seconds(),
		Data: map[string]interface{}{
			"api_version":     "1.0",
			"analyses_served": h.analysesServed.Load(),
			"analyses_failed": h.analysesFailed.Load(),
			"last_analysis":   lastAnalysis,
			"export_dir":      h.exporter.Dir(),
		},
		System: map[string]interface{}{
			"goroutines": runtime.NumGoroutine(),
			"memory": map[string]interface{}{
				"alloc_mb":       int(m.Alloc / 1024 / 1024),
				"total_alloc_mb": int(m.TotalAlloc / 1024 / 1024),
				"sys_mb":         int(m.Sys / 1024 / 1024),
				"num_gc":         m.NumGC,
			},
		},
	}

	RespondWithJSON(w, http.StatusOK, response)
}
