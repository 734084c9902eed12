package entities

// AttrValue holds a medication attribute that may be numeric or free text.
// The analysis text is generated prose, so the same attribute can arrive as
// an integer percentage on one line and as a range like "70-80%" on another.
type AttrValue struct {
	Number   int    `json:"number,omitempty"`
	Text     string `json:"text,omitempty"`
	IsNumber bool   `json:"isNumber"`
}

// NumberValue builds a numeric AttrValue.
func NumberValue(n int) *AttrValue {
	return &AttrValue{Number: n, IsNumber: true}
}

// TextValue builds a free-text AttrValue.
func TextValue(s string) *AttrValue {
	return &AttrValue{Text: s}
}

// EffectivenessPoint is one bar of the effectiveness comparison chart.
type EffectivenessPoint struct {
	Name          string `json:"name"`
	Effectiveness int    `json:"effectiveness"`
}

// MedicationRecord is one medication entry recovered from the medication
// recommendations section. Name is always set by the parser (possibly empty
// when the source line starts with a delimiter). Effectiveness stays nil when
// no rule could resolve it. Attributes that are not reserved keys land in
// Extra with lower_snake keys; later duplicates overwrite earlier ones.
type MedicationRecord struct {
	Name           string            `json:"name"`
	Effectiveness  *AttrValue        `json:"effectiveness,omitempty"`
	Dosage         string            `json:"dosage,omitempty"`
	SideEffects    string            `json:"sideEffects,omitempty"`
	AdditionalInfo string            `json:"additionalInfo,omitempty"`
	Extra          map[string]string `json:"extra,omitempty"`
}
