package reportparser

import (
	"strings"
	"testing"
)

const sampleAnalysis = `Some model preamble text.

## 1. Key Findings
- Elevated blood pressure 🩺
- Mild anemia

## 2. Potential Diagnoses
- Hypertension (confidence: 80%)

## 3. Medication Recommendations
- Paracetamol (500mg) - Effectiveness: 85%

## 4. Lifestyle Guidance
Eat more vegetables.

## 5. Disease Classification
This is a chronic condition.

## 6. Next Steps
Follow up in two weeks.`

func TestExtractSection(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		header   string
		expected string
	}{
		{
			name:     "section followed by another header",
			text:     sampleAnalysis,
			header:   "## 1. Key Findings",
			expected: "## 1. Key Findings\n- Elevated blood pressure 🩺\n- Mild anemia",
		},
		{
			name:     "last section runs to end of text",
			text:     sampleAnalysis,
			header:   "## 6. Next Steps",
			expected: "## 6. Next Steps\nFollow up in two weeks.",
		},
		{
			name:     "missing header returns placeholder",
			text:     "no headers at all",
			header:   "## 2. Potential Diagnoses",
			expected: "## ## 2. Potential Diagnoses\nNo information found in this section.",
		},
		{
			name:     "missing plain header returns placeholder",
			text:     "nothing here",
			header:   "Summary",
			expected: "## Summary\nNo information found in this section.",
		},
		{
			name:     "empty text returns placeholder",
			text:     "",
			header:   "## 1. Key Findings",
			expected: "## ## 1. Key Findings\nNo information found in this section.",
		},
		{
			name:     "trailing whitespace is trimmed",
			text:     "## 6. Next Steps\nRest.\n\n\n",
			header:   "## 6. Next Steps",
			expected: "## 6. Next Steps\nRest.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractSection(tt.text, tt.header)
			if got != tt.expected {
				t.Errorf("ExtractSection() = %q, want %q", got, tt.expected)
			}
		})
	}
}

// TestExtractSectionNeverEmpty verifies the splitter always returns a
// non-empty string, whatever the inputs.
func TestExtractSectionNeverEmpty(t *testing.T) {
	inputs := []struct{ text, header string }{
		{"", ""},
		{"", "## 1. Key Findings"},
		{sampleAnalysis, "## 9. Unknown"},
	}

	for _, in := range inputs {
		if got := ExtractSection(in.text, in.header); got == "" {
			t.Errorf("ExtractSection(%q, %q) returned empty string", in.text, in.header)
		}
	}
}

// TestExtractSectionBoundary verifies a section never bleeds into the one
// that follows it, even with headers out of numeric order.
func TestExtractSectionBoundary(t *testing.T) {
	text := "## 4. Lifestyle Guidance\nSleep well.\n## 2. Potential Diagnoses\nFlu."

	got := ExtractSection(text, "## 4. Lifestyle Guidance")
	if strings.Contains(got, "Flu.") {
		t.Errorf("section includes content of the following section: %q", got)
	}
	if got != "## 4. Lifestyle Guidance\nSleep well." {
		t.Errorf("unexpected section body: %q", got)
	}
}

// TestExtractSectionHeaderContainsMarker verifies the boundary scan starts
// after the matched header so the header's own "## " is not a boundary.
func TestExtractSectionHeaderContainsMarker(t *testing.T) {
	text := "## 1. Key Findings\nBody line.\n"

	got := ExtractSection(text, "## 1. Key Findings")
	if got != "## 1. Key Findings\nBody line." {
		t.Errorf("ExtractSection() = %q", got)
	}
}

func TestSectionsAlwaysSix(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"full analysis", sampleAnalysis},
		{"empty text", ""},
		{"partial analysis", "## 3. Medication Recommendations\n- Aspirin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sections := Sections(tt.text)

			if len(sections) != len(SectionHeaders) {
				t.Fatalf("Expected %d sections, got %d", len(SectionHeaders), len(sections))
			}

			for i, section := range sections {
				if section.Title != SectionHeaders[i] {
					t.Errorf("Section %d title = %q, want %q", i, section.Title, SectionHeaders[i])
				}
				if section.Body == "" {
					t.Errorf("Section %q has empty body", section.Title)
				}
			}
		})
	}
}
