package reportparser

import (
	"strconv"
	"strings"

	"github.com/clinalyze/medreport-api/reportparser/entities"
)

// DisplayEffectiveness resolves a record's effectiveness to a plottable
// integer. Numeric values pass through, textual values contribute their first
// integer substring ("70-80%" resolves to 70), and anything unresolvable
// becomes 0. The table view and the comparison chart must both use this
// function so the two stay consistent.
func DisplayEffectiveness(record entities.MedicationRecord) int {
	eff := record.Effectiveness
	if eff == nil {
		return 0
	}
	if eff.IsNumber {
		return eff.Number
	}
	if match := integerRegex.FindString(eff.Text); match != "" {
		if value, err := strconv.Atoi(match); err == nil {
			return value
		}
	}
	return 0
}

// ClassifyDisease derives a display weighting from the disease classification
// section text. Each keyword check runs in a fixed order and unconditionally
// overwrites the previous result, so the last matching keyword in the order
// chronic, infectious, common determines the distribution regardless of where
// the keywords appear in the text. Kept bug-for-bug with the behavior the
// chart was built against; see DESIGN.md before changing it.
func ClassifyDisease(sectionText string) entities.ClassificationWeights {
	weights := entities.ClassificationWeights{Chronic: 25, Infectious: 25, Common: 25, Other: 25}

	lower := strings.ToLower(sectionText)
	if strings.Contains(lower, "chronic") {
		weights = entities.ClassificationWeights{Chronic: 40, Infectious: 20, Common: 20, Other: 20}
	}
	if strings.Contains(lower, "infectious") {
		weights = entities.ClassificationWeights{Chronic: 20, Infectious: 40, Common: 20, Other: 20}
	}
	if strings.Contains(lower, "common") {
		weights = entities.ClassificationWeights{Chronic: 20, Infectious: 20, Common: 40, Other: 20}
	}

	return weights
}

// ClassificationHeader is the section ClassifyDisease usually reads from.
const ClassificationHeader = "## 5. Disease Classification"

// EffectivenessChart builds chart-ready name/value pairs from medication
// records, substituting a placeholder for unnamed records.
func EffectivenessChart(records []entities.MedicationRecord) []entities.EffectivenessPoint {
	points := make([]entities.EffectivenessPoint, 0, len(records))
	for _, record := range records {
		name := record.Name
		if name == "" {
			name = "Unnamed Medication"
		}
		points = append(points, entities.EffectivenessPoint{
			Name:          name,
			Effectiveness: DisplayEffectiveness(record),
		})
	}
	return points
}
