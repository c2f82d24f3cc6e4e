// Package enrich calls an OpenAI-compatible chat completion endpoint
// to produce an optional plan enrichment. Every failure mode maps to
// "no enrichment": the caller always has the rule engines to fall
// back on.
package enrich

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/harmonia-app/harmonia/internal/assistant"
)

const (
	defaultModel    = "gpt-4o-mini"
	defaultEndpoint = "https://api.openai.com/v1/chat/completions"
	defaultTimeout  = 30 * time.Second

	systemPrompt = "You are Harmonia, an adaptive wellbeing and productivity copilot. " +
		"You translate biometric and workload signals into actionable interventions, " +
		"only suggesting items that are supportive, realistic, and explainable."
)

// Config holds the connection settings for the completion endpoint.
type Config struct {
	APIKey   string
	Model    string
	Endpoint string
	Timeout  time.Duration
}

// Client is an assistant.Enricher backed by a chat completion API.
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient builds a client, filling in defaults for any unset config
// field.
func NewClient(cfg Config) *Client {
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultEndpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat json.RawMessage `json:"response_format"`
	Messages       []chatMessage   `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Enrich requests a structured plan for the given pipeline state. A
// nil, nil return means the model produced nothing usable; an error
// means the endpoint was unreachable or rejected the request.
func (c *Client) Enrich(ctx context.Context, in assistant.EnrichmentInput) (*assistant.Enrichment, error) {
	userPayload, err := json.Marshal(promptPayload(in))
	if err != nil {
		return nil, fmt.Errorf("encoding prompt payload: %w", err)
	}

	reqBody := chatRequest{
		Model:          c.cfg.Model,
		Temperature:    0.4,
		ResponseFormat: json.RawMessage(planResponseFormat),
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: string(userPayload)},
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling completion endpoint: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("completion request failed: %d %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return nil, nil
	}

	return mapPlan(extractJSON(parsed.Choices[0].Message.Content)), nil
}

// promptPayload trims the pipeline state to the fields the model
// needs. Meetings are capped at four to bound prompt size.
func promptPayload(in assistant.EnrichmentInput) map[string]any {
	meetings := in.Context.Meetings
	if len(meetings) > 4 {
		meetings = meetings[:4]
	}
	return map[string]any{
		"context": map[string]any{
			"displayName":         in.Context.DisplayName,
			"heartRate":           in.Context.HeartRate,
			"hrv":                 in.Context.HRV,
			"unreadEmails":        in.Context.UnreadEmails,
			"calendarLoad":        in.Context.CalendarLoad,
			"sleepQuality":        in.Context.SleepQuality,
			"stepsToday":          in.Context.StepsToday,
			"lastBreakMinutesAgo": in.Context.LastBreakMinutesAgo,
			"sentimentScore":      in.Context.SentimentScore,
			"hydration":           in.Context.Hydration,
			"meetings":            meetings,
		},
		"metrics": in.Metrics.Public(),
		"stress":  in.Stress,
	}
}

// extractJSON pulls the substring between the first '{' and the last
// '}'. Models sometimes wrap the object in prose or markdown fences.
func extractJSON(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return text
	}
	return text[start : end+1]
}
