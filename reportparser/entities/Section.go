package entities

// Section is one logical region of the analysis text, identified by its
// exact markdown header. The body is never empty: when the header is missing
// from the source text the splitter substitutes a placeholder body.
type Section struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// ClassificationWeights is a four-way display weighting over disease
// categories. It feeds a chart, not a diagnostic output.
type ClassificationWeights struct {
	Chronic    int `json:"chronic"`
	Infectious int `json:"infectious"`
	Common     int `json:"common"`
	Other      int `json:"other"`
}
