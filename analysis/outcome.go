// Package analysis wraps the external generative-text service behind a
// bounded-retry call boundary. Callers hand in raw document text and get back
// a tagged outcome: either the service's markdown-like reply or a typed
// failure they can present to the user.
package analysis

import "errors"

// FailureKindAIUnavailable marks outcomes where the generative-text service
// could not produce a reply within the attempt budget.
const FailureKindAIUnavailable = "ai_unavailable"

// ErrEmptyResponse indicates the service answered without any textual
// content. Treated the same as a service error by the retry loop.
var ErrEmptyResponse = errors.New("empty response from analysis service")

// Failure describes why an analysis could not complete. It is a value handed
// to the presentation layer, not a Go error: exhausted retries are an
// expected, recoverable state.
type Failure struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Outcome is the tagged result of one analysis invocation. Exactly one of
// Text (on success) and Failure (on failure) is meaningful.
type Outcome struct {
	Text    string   `json:"text,omitempty"`
	Failure *Failure `json:"failure,omitempty"`
}

// OK reports whether the analysis produced text.
func (o Outcome) OK() bool {
	return o.Failure == nil
}

// success builds a success outcome.
func success(text string) Outcome {
	return Outcome{Text: text}
}

// unavailable builds the failure outcome for an exhausted attempt budget.
func unavailable(message string) Outcome {
	return Outcome{Failure: &Failure{Kind: FailureKindAIUnavailable, Message: message}}
}
