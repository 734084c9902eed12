package reportparser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/clinalyze/medreport-api/reportparser/entities"
)

// MedicationHeader is the section the medication parser reads from.
const MedicationHeader = "## 3. Medication Recommendations"

// Pre-compiled patterns, reused for every parse
var (
	bulletSplitRegex = regexp.MustCompile(`\n\s*[-*]\s+`)
	percentRegex     = regexp.MustCompile(`(\d{1,3})%`)
	integerRegex     = regexp.MustCompile(`\d+`)
)

// ParseMedications extracts the medication recommendations section from the
// analysis text and parses it into ordered medication records. Records keep
// the encounter order of the source text; repeated names are not
// deduplicated. A missing or empty section yields an empty slice.
func ParseMedications(text string) []entities.MedicationRecord {
	section := ExtractSection(text, MedicationHeader)

	// Entries are bullet-delimited blocks. The fragment before the first
	// bullet is section preamble, not an entry.
	fragments := bulletSplitRegex.Split(section, -1)
	if len(fragments) <= 1 {
		return []entities.MedicationRecord{}
	}

	records := make([]entities.MedicationRecord, 0, len(fragments)-1)
	for _, entry := range fragments[1:] {
		lines := nonEmptyLines(entry)
		if len(lines) == 0 {
			continue
		}

		record := entities.MedicationRecord{}
		parseNameLine(&record, lines[0])

		for _, line := range lines[1:] {
			parseDetailLine(&record, line)
		}

		records = append(records, record)
	}

	return records
}

// parseNameLine fills the name and, when resolvable, the effectiveness from
// the first line of an entry.
func parseNameLine(record *entities.MedicationRecord, line string) {
	name := line
	if idx := strings.Index(name, "("); idx != -1 {
		name = name[:idx]
	}
	if idx := strings.Index(name, ":"); idx != -1 {
		name = name[:idx]
	}
	record.Name = strings.TrimSpace(name)

	// First rule that matches wins: a percentage anywhere on the line, then
	// an explicit "Effectiveness:" marker.
	if match := percentRegex.FindStringSubmatch(line); match != nil {
		if value, err := strconv.Atoi(match[1]); err == nil {
			record.Effectiveness = entities.NumberValue(value)
		}
		return
	}

	_, after, found := strings.Cut(line, "Effectiveness:")
	if !found {
		return
	}
	after = strings.TrimSpace(after)
	if strings.Contains(after, "%") {
		if match := percentRegex.FindStringSubmatch(after); match != nil {
			if value, err := strconv.Atoi(match[1]); err == nil {
				record.Effectiveness = entities.NumberValue(value)
			}
		}
		return
	}
	if match := integerRegex.FindString(after); match != "" {
		if value, err := strconv.Atoi(match); err == nil {
			record.Effectiveness = entities.NumberValue(value)
		}
	}
}

// parseDetailLine routes one non-first line of an entry into the record.
// Colon lines become attributes keyed lower_snake, parenthesized lines become
// additional info, anything else is discarded.
func parseDetailLine(record *entities.MedicationRecord, line string) {
	if key, value, found := strings.Cut(line, ":"); found {
		key = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), " ", "_")
		setAttribute(record, key, strings.TrimSpace(value))
		return
	}

	if strings.HasPrefix(line, "(") && strings.HasSuffix(line, ")") {
		record.AdditionalInfo = strings.Trim(line, "()")
	}
}

// setAttribute stores an attribute under its reserved field when the key is
// well known, otherwise in the Extra map. Later writes overwrite earlier
// ones, including the reserved keys: an explicit "Effectiveness:" detail line
// replaces a value resolved from the name line with its textual form.
func setAttribute(record *entities.MedicationRecord, key, value string) {
	switch key {
	case "name":
		record.Name = value
	case "effectiveness":
		record.Effectiveness = entities.TextValue(value)
	case "dosage":
		record.Dosage = value
	case "side_effects":
		record.SideEffects = value
	case "additional_info":
		record.AdditionalInfo = value
	default:
		if record.Extra == nil {
			record.Extra = make(map[string]string)
		}
		record.Extra[key] = value
	}
}

func nonEmptyLines(block string) []string {
	var lines []string
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
