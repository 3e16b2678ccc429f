package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-health-records/internal/logger"
	"github.com/sbilibin2017/gw-health-records/internal/metrics"
	"github.com/sbilibin2017/gw-health-records/internal/models"
)

// InsightModel is the chat-completion model every request names.
const InsightModel = "google/gemini-2.5-flash"

// SystemInstruction establishes the assistant's role in every conversation.
const SystemInstruction = "You are a helpful AI health assistant. Provide clear, actionable health insights."

var (
	// ErrGatewayNotConfigured is returned when no gateway API key was provisioned.
	ErrGatewayNotConfigured = errors.New("INSIGHT_GATEWAY_API_KEY is not configured")
	// ErrEmptyCompletion is returned when the gateway replies without choices.
	ErrEmptyCompletion = errors.New("AI gateway returned no choices")
)

// GatewayStatusError is returned when the gateway answers with a non-2xx status.
type GatewayStatusError struct {
	StatusCode int
}

func (e *GatewayStatusError) Error() string {
	return fmt.Sprintf("AI gateway error: %d", e.StatusCode)
}

// InsightGatewayHTTPFacade calls an OpenAI-compatible chat-completion endpoint.
type InsightGatewayHTTPFacade struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	metrics    *metrics.Collector
}

// InsightGatewayOpt configures an InsightGatewayHTTPFacade.
type InsightGatewayOpt func(*InsightGatewayHTTPFacade)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) InsightGatewayOpt {
	return func(f *InsightGatewayHTTPFacade) {
		f.httpClient = c
	}
}

// WithGatewayMetrics records call outcomes on c.
func WithGatewayMetrics(c *metrics.Collector) InsightGatewayOpt {
	return func(f *InsightGatewayHTTPFacade) {
		f.metrics = c
	}
}

// NewInsightGatewayHTTPFacade creates a facade posting to <baseURL>/chat/completions.
// The default client sets no timeout; a call lasts as long as the transport allows.
func NewInsightGatewayHTTPFacade(baseURL, apiKey string, opts ...InsightGatewayOpt) *InsightGatewayHTTPFacade {
	f := &InsightGatewayHTTPFacade{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Ready reports whether a gateway credential was provisioned.
func (f *InsightGatewayHTTPFacade) Ready() error {
	if f.apiKey == "" {
		return ErrGatewayNotConfigured
	}
	return nil
}

// Complete sends a two-message conversation (system instruction, then prompt)
// and returns the first choice's content unchanged. One attempt, no retries.
func (f *InsightGatewayHTTPFacade) Complete(ctx context.Context, prompt string) (string, error) {
	if err := f.Ready(); err != nil {
		return "", err
	}

	payload, err := json.Marshal(models.ChatCompletionRequest{
		Model: InsightModel,
		Messages: []models.ChatMessage{
			{Role: "system", Content: SystemInstruction},
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("insight gateway: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("insight gateway: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+f.apiKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := f.httpClient.Do(req)
	if err != nil {
		f.metrics.ObserveGatewayCall(metrics.OutcomeError, time.Since(start).Seconds())
		logger.Log.Errorw("insight gateway request failed", "error", err)
		return "", fmt.Errorf("insight gateway: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		f.metrics.ObserveGatewayCall(metrics.OutcomeError, time.Since(start).Seconds())
		return "", fmt.Errorf("insight gateway: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		f.metrics.ObserveGatewayCall(metrics.OutcomeStatusError, time.Since(start).Seconds())
		logger.Log.Errorw("insight gateway returned non-success status",
			"status", resp.StatusCode,
			"body", string(body),
		)
		return "", &GatewayStatusError{StatusCode: resp.StatusCode}
	}

	var completion models.ChatCompletionResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		f.metrics.ObserveGatewayCall(metrics.OutcomeError, time.Since(start).Seconds())
		return "", fmt.Errorf("insight gateway: decode json: %w", err)
	}
	if len(completion.Choices) == 0 {
		f.metrics.ObserveGatewayCall(metrics.OutcomeError, time.Since(start).Seconds())
		return "", ErrEmptyCompletion
	}

	f.metrics.ObserveGatewayCall(metrics.OutcomeSuccess, time.Since(start).Seconds())
	logger.Log.Infow("insight gateway call completed",
		"status", resp.StatusCode,
		"model", InsightModel,
		"duration", time.Since(start),
	)

	return completion.Choices[0].Message.Content, nil
}
