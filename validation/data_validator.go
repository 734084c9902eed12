// Package validation provides inbound data validation for the medical report
// API. It checks document text before it is sent to the analysis service and
// request parameters before they reach the parsers.
package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/clinalyze/medreport-api/interfaces"
	"github.com/clinalyze/medreport-api/reportparser"
)

// MaxDocumentBytes caps the analyzable text size. The transport layer caps
// request bodies separately; this guards direct library use too.
const MaxDocumentBytes = 512 * 1024

// DataValidatorImpl implements the interfaces.DataValidator interface
type DataValidatorImpl struct{}

// Compile-time check to ensure DataValidatorImpl implements DataValidator
var _ interfaces.DataValidator = (*DataValidatorImpl)(nil)

// NewDataValidator creates a new data validator
func NewDataValidator() interfaces.DataValidator {
	return &DataValidatorImpl{}
}

// ValidateDocument checks document text supplied for analysis. Empty content
// is a terminal condition for the request: it is reported to the caller, not
// forwarded to the analysis service.
func (v *DataValidatorImpl) ValidateDocument(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("no readable text found in the document")
	}

	if len(content) > MaxDocumentBytes {
		return fmt.Errorf("document too large: %d bytes (max %d)", len(content), MaxDocumentBytes)
	}

	if hasExcessiveRepetition(content) {
		return fmt.Errorf("document contains excessive character repetition")
	}

	return nil
}

// ValidateSectionIndex parses and checks a 1-based section index against the
// fixed section schema.
func (v *DataValidatorImpl) ValidateSectionIndex(input string) (int, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return -1, fmt.Errorf("section index cannot be empty")
	}

	index, err := strconv.Atoi(trimmed)
	if err != nil {
		return -1, fmt.Errorf("section index must be a number between 1 and %d", len(reportparser.SectionHeaders))
	}

	if index < 1 || index > len(reportparser.SectionHeaders) {
		return -1, fmt.Errorf("section index must be between 1 and %d, got: %d", len(reportparser.SectionHeaders), index)
	}

	return index, nil
}

// hasExcessiveRepetition checks for potential DoS patterns with a single
// character repeated in very long runs. Real document text, even badly
// OCR'd, does not produce kilobyte-long runs of one byte.
func hasExcessiveRepetition(input string) bool {
	const maxRun = 1024

	run := 1
	for i := 1; i < len(input); i++ {
		if input[i] == input[i-1] {
			run++
			if run > maxRun {
				return true
			}
		} else {
			run = 1
		}
	}
	return false
}
