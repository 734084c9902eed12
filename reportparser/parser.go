package reportparser

import (
	"github.com/clinalyze/medreport-api/interfaces"
	"github.com/clinalyze/medreport-api/reportparser/entities"
)

// Compile-time check to ensure Parser implements the ReportParser interface
var _ interfaces.ReportParser = (*Parser)(nil)

// Parser implements the ReportParser interface
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

// ExtractSection implements the ReportParser interface
func (p *Parser) ExtractSection(text string, header string) string {
	return ExtractSection(text, header)
}

// Sections implements the ReportParser interface
func (p *Parser) Sections(text string) []entities.Section {
	return Sections(text)
}

// ParseMedications implements the ReportParser interface
func (p *Parser) ParseMedications(text string) []entities.MedicationRecord {
	return ParseMedications(text)
}

// DisplayEffectiveness implements the ReportParser interface
func (p *Parser) DisplayEffectiveness(record entities.MedicationRecord) int {
	return DisplayEffectiveness(record)
}

// ClassifyDisease implements the ReportParser interface
func (p *Parser) ClassifyDisease(sectionText string) entities.ClassificationWeights {
	return ClassifyDisease(sectionText)
}

// EffectivenessChart implements the ReportParser interface
func (p *Parser) EffectivenessChart(records []entities.MedicationRecord) []entities.EffectivenessPoint {
	return EffectivenessChart(records)
}
