package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSeverity(t *testing.T) {
	severity, err := parseSeverity(`{"severityScore": 8, "severityDescription": "Structure fire with risk of spread."}`)
	assert.NoError(t, err)
	assert.Equal(t, 8.0, severity.Score)
	assert.Equal(t, "Structure fire with risk of spread.", severity.Description)
}

func TestParseSeverityFenced(t *testing.T) {
	severity, err := parseSeverity("```json\n{\"severityScore\": 3, \"severityDescription\": \"Minor.\"}\n```")
	assert.NoError(t, err)
	assert.Equal(t, 3.0, severity.Score)
}

func TestParseSeverityOutOfRange(t *testing.T) {
	_, err := parseSeverity(`{"severityScore": 11, "severityDescription": "impossible"}`)
	assert.Error(t, err)

	_, err = parseSeverity(`{"severityScore": -1, "severityDescription": "impossible"}`)
	assert.Error(t, err)
}

func TestParseSeverityMalformed(t *testing.T) {
	_, err := parseSeverity("the incident looks severe")
	assert.Error(t, err)
}

func TestParseAuthenticity(t *testing.T) {
	authenticity, err := parseAuthenticity(`{"isAuthentic": true, "confidenceScore": 0.95, "explanation": "Media matches the description."}`)
	assert.NoError(t, err)
	assert.True(t, authenticity.IsAuthentic)
	assert.Equal(t, 0.95, authenticity.ConfidenceScore)
	assert.Equal(t, "Media matches the description.", authenticity.Explanation)
}

func TestParseAuthenticityOutOfRange(t *testing.T) {
	_, err := parseAuthenticity(`{"isAuthentic": false, "confidenceScore": 1.2, "explanation": "impossible"}`)
	assert.Error(t, err)
}

func TestNewUnknownProvider(t *testing.T) {
	_, err := New(Config{Provider: "anthropic", APIKey: "k"})
	assert.Error(t, err)
}

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := New(Config{Provider: "gemini"})
	assert.Error(t, err)

	_, err = New(Config{Provider: "openai"})
	assert.Error(t, err)
}
