package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/echovault/echovault-api/schema"
)

const (
	logPrefix      = "ai"
	defaultTimeout = 30 * time.Second
)

// Scorer estimates the urgency of an emergency report from its text.
type Scorer interface {
	Score(ctx context.Context, reportText string) (*schema.Severity, error)
}

// Verifier judges whether a report's media attachment is genuine and
// consistent with the report text. The media is passed as a
// "data:<mime>;base64,<payload>" string.
type Verifier interface {
	Verify(ctx context.Context, reportText, mediaDataURI string) (*schema.Authenticity, error)
}

// Client provides both report analyses through one provider.
type Client interface {
	Scorer
	Verifier
}

// Config holds provider selection and credentials.
type Config struct {
	// Provider name: "gemini" or "openai". Empty defaults to gemini.
	Provider string

	APIKey string

	// Model name, provider-specific. Empty picks the provider default.
	Model string

	// Timeout applied to each analysis call.
	Timeout time.Duration
}

func (c Config) timeout() time.Duration {
	if c.Timeout <= 0 {
		return defaultTimeout
	}
	return c.Timeout
}

// New returns a Client for the configured provider.
func New(cfg Config) (Client, error) {
	switch strings.ToLower(cfg.Provider) {
	case "gemini", "":
		return NewGeminiClient(cfg)
	case "openai":
		return NewOpenAIClient(cfg)
	default:
		return nil, fmt.Errorf("unknown ai provider: %s (supported: gemini, openai)", cfg.Provider)
	}
}

func severityPrompt(reportText string) string {
	return fmt.Sprintf(`You are an AI assistant designed to assess the severity of emergency reports.

Based on the text content of the report, provide a severity score between 0 and 10, where 0 indicates a low-severity incident and 10 indicates a critical emergency. Also provide a brief description justifying the assigned severity score.

Report text: %s

Respond with a JSON object with the following fields:
- severityScore (number): the severity of the emergency, 0-10.
- severityDescription (string): a brief explanation of why the given severity score was assigned.`, reportText)
}

func authenticityPrompt(reportText string) string {
	return fmt.Sprintf(`You are an AI assistant designed to verify the authenticity of emergency reports.

You will receive an emergency report that includes a media file (image or audio) and accompanying text. Analyze the provided information and determine the likelihood of the report being genuine. Consider the consistency between the media and the text description, the presence of anomalies in the media, and the plausibility of the described scenario.

Report text: %s

Respond with a JSON object with the following fields:
- isAuthentic (boolean): whether the report is likely authentic.
- confidenceScore (number): your confidence in the verdict, 0-1.
- explanation (string): the reasoning behind your determination.`, reportText)
}

// wire formats of the two analyses
type severityResult struct {
	SeverityScore       float64 `json:"severityScore"`
	SeverityDescription string  `json:"severityDescription"`
}

type authenticityResult struct {
	IsAuthentic     bool    `json:"isAuthentic"`
	ConfidenceScore float64 `json:"confidenceScore"`
	Explanation     string  `json:"explanation"`
}

// stripFences removes a markdown code fence some models wrap around
// JSON output even when asked for bare JSON.
func stripFences(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSuffix(strings.TrimSpace(raw), "```")
	}
	return strings.TrimSpace(raw)
}

func parseSeverity(raw string) (*schema.Severity, error) {
	var result severityResult
	if err := json.Unmarshal([]byte(stripFences(raw)), &result); err != nil {
		return nil, fmt.Errorf("malformed severity result: %w", err)
	}

	if result.SeverityScore < 0 || result.SeverityScore > 10 {
		return nil, fmt.Errorf("severity score out of range: %f", result.SeverityScore)
	}

	return &schema.Severity{
		Score:       result.SeverityScore,
		Description: result.SeverityDescription,
	}, nil
}

func parseAuthenticity(raw string) (*schema.Authenticity, error) {
	var result authenticityResult
	if err := json.Unmarshal([]byte(stripFences(raw)), &result); err != nil {
		return nil, fmt.Errorf("malformed authenticity result: %w", err)
	}

	if result.ConfidenceScore < 0 || result.ConfidenceScore > 1 {
		return nil, fmt.Errorf("confidence score out of range: %f", result.ConfidenceScore)
	}

	return &schema.Authenticity{
		IsAuthentic:     result.IsAuthentic,
		ConfidenceScore: result.ConfidenceScore,
		Explanation:     result.Explanation,
	}, nil
}
