// Package interfaces defines core abstractions for the medical report API
// to improve testability, maintainability, and separation of concerns.
package interfaces

import (
	"context"
	"time"

	"github.com/clinalyze/medreport-api/analysis"
	"github.com/clinalyze/medreport-api/reportparser/entities"
)

// Analyzer defines the contract for the analysis pipeline entry point. It
// wraps the external generative-text call with bounded retry and returns a
// tagged outcome instead of an error, so HTTP handlers can pattern-match
// success and failure without unwinding.
type Analyzer interface {
	Analyze(ctx context.Context, content string) analysis.Outcome
}

// ReportParser defines the contract for recovering structured records from
// the analysis text. Every method is total: malformed input degrades to
// placeholders or empty results, never to an error.
type ReportParser interface {
	// ExtractSection returns the body of one named section, or a placeholder
	// body when the header is absent.
	ExtractSection(text string, header string) string

	// Sections splits the analysis text into the six fixed sections.
	Sections(text string) []entities.Section

	// ParseMedications parses the medication recommendations section into
	// ordered records.
	ParseMedications(text string) []entities.MedicationRecord

	// DisplayEffectiveness resolves a record's effectiveness for display.
	DisplayEffectiveness(record entities.MedicationRecord) int

	// ClassifyDisease derives the display weighting from classification text.
	ClassifyDisease(sectionText string) entities.ClassificationWeights

	// EffectivenessChart builds chart-ready name/value pairs.
	EffectivenessChart(records []entities.MedicationRecord) []entities.EffectivenessPoint
}

// Exporter defines the contract for writing report artifacts to disk and
// enforcing their retention.
type Exporter interface {
	// WriteReport writes the raw analysis text as a date-named plain-text
	// artifact and returns its filename.
	WriteReport(raw string, now time.Time) (string, error)

	// Cleanup removes artifacts older than the retention period.
	Cleanup(now time.Time) (removed int, err error)

	// Dir returns the export directory path.
	Dir() string
}

// Scheduler defines the contract for background job scheduling and health
// monitoring.
type Scheduler interface {
	Start() error
	Stop()
}

// DataValidator defines the contract for validating inbound data before it
// reaches the analysis pipeline.
type DataValidator interface {
	// ValidateDocument checks document text supplied for analysis.
	ValidateDocument(content string) error

	// ValidateSectionIndex parses and checks a 1-based section index.
	ValidateSectionIndex(input string) (int, error)
}
