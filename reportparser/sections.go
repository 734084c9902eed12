// Package reportparser recovers structured records from the markdown-like
// text returned by the analysis service. The input is generated prose, not a
// contract-guaranteed schema, so every function here degrades to placeholders
// or empty results instead of failing.
package reportparser

import (
	"strings"

	"github.com/clinalyze/medreport-api/reportparser/entities"
)

// SectionHeaders lists the six headers the analysis prompt requires, in
// report order. Sections always returns one entry per header even when the
// analysis text omitted some of them.
var SectionHeaders = []string{
	"## 1. Key Findings",
	"## 2. Potential Diagnoses",
	"## 3. Medication Recommendations",
	"## 4. Lifestyle Guidance",
	"## 5. Disease Classification",
	"## 6. Next Steps",
}

const missingSectionNotice = "No information found in this section."

// ExtractSection returns the body of the section starting at the first
// occurrence of header, up to (not including) the next "## " header. When
// header is absent the returned body is a fixed placeholder, never an error;
// callers must treat the placeholder as a valid outcome.
func ExtractSection(text string, header string) string {
	start := strings.Index(text, header)
	if start == -1 {
		return "## " + header + "\n" + missingSectionNotice
	}

	remaining := text[start:]

	// Scan for the next header strictly after the matched header's own text,
	// so a "## " occurring inside the header itself is not a boundary.
	next := indexFrom(remaining, "## ", len(header))
	if next != -1 {
		return strings.TrimSpace(remaining[:next])
	}
	return strings.TrimSpace(remaining)
}

// Sections splits the analysis text into the six fixed sections. Absent
// headers yield placeholder bodies, so the result always has six entries.
func Sections(text string) []entities.Section {
	sections := make([]entities.Section, 0, len(SectionHeaders))
	for _, header := range SectionHeaders {
		sections = append(sections, entities.Section{
			Title: header,
			Body:  ExtractSection(text, header),
		})
	}
	return sections
}

// indexFrom is strings.Index starting the scan at offset from.
func indexFrom(s, substr string, from int) int {
	if from >= len(s) {
		return -1
	}
	idx := strings.Index(s[from:], substr)
	if idx == -1 {
		return -1
	}
	return from + idx
}
