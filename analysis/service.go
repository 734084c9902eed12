package analysis

import (
	"context"
	"strings"
	"time"

	"github.com/clinalyze/medreport-api/logging"
	"github.com/clinalyze/medreport-api/metrics"
)

const (
	defaultMaxRetries = 3
	defaultRetryDelay = 2 * time.Second
)

// Service runs the retry loop around a Client. One Analyze call makes at most
// MaxRetries sequential attempts with a fixed delay between them; the attempt
// counter is request-scoped, so concurrent analyses stay isolated.
type Service struct {
	Client     Client
	MaxRetries int
	RetryDelay time.Duration
}

// NewService creates a Service with the default attempt budget.
func NewService(client Client) *Service {
	return &Service{
		Client:     client,
		MaxRetries: defaultMaxRetries,
		RetryDelay: defaultRetryDelay,
	}
}

// Analyze embeds content into the instruction template and calls the service
// until it returns text or the attempt budget runs out. Only two conditions
// trigger a retry: a service-level error and a reply without textual content.
// Exhausted attempts come back as a Failure outcome, not an error.
func (s *Service) Analyze(ctx context.Context, content string) Outcome {
	prompt := BuildPrompt(content)

	maxRetries := s.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	start := time.Now()
	var lastErr error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		metrics.AnalysisAttemptsTotal.Inc()

		text, err := s.Client.Generate(ctx, prompt)
		if err == nil && strings.TrimSpace(text) != "" {
			metrics.AnalysisOutcomesTotal.WithLabelValues("success").Inc()
			metrics.AnalysisDuration.Observe(time.Since(start).Seconds())
			logging.Info("Analysis completed", "attempts", attempt, "duration", time.Since(start).String())
			return success(text)
		}

		if err == nil {
			err = ErrEmptyResponse
		}
		lastErr = err
		logging.Warn("Analysis attempt failed", "attempt", attempt, "max_retries", maxRetries, "error", err)

		if attempt < maxRetries {
			s.sleep(ctx)
		}
	}

	metrics.AnalysisOutcomesTotal.WithLabelValues("failure").Inc()
	metrics.AnalysisDuration.Observe(time.Since(start).Seconds())
	logging.Error("Analysis failed after all retries", "attempts", maxRetries, "error", lastErr)

	message := "AI analysis failed. Please try again later."
	if lastErr != nil {
		message = lastErr.Error()
	}
	return unavailable(message)
}

// sleep blocks for the fixed inter-attempt delay. No backoff, no jitter; a
// cancelled context just shortens the wait, the loop still issues its next
// attempt and lets the client surface the cancellation.
func (s *Service) sleep(ctx context.Context) {
	delay := s.RetryDelay
	if delay <= 0 {
		delay = defaultRetryDelay
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
