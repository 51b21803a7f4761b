package ai

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"google.golang.org/genai"

	"github.com/echovault/echovault-api/schema"
	"github.com/echovault/echovault-api/utils"
)

const defaultGeminiModel = "gemini-2.0-flash"

var severitySchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"severityScore": {
			Type:        genai.TypeNumber,
			Description: "Severity of the emergency, from 0 (low) to 10 (critical).",
		},
		"severityDescription": {
			Type:        genai.TypeString,
			Description: "Brief justification of the assigned score.",
		},
	},
	Required: []string{"severityScore", "severityDescription"},
}

var authenticitySchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"isAuthentic": {
			Type:        genai.TypeBoolean,
			Description: "Whether the report is likely authentic.",
		},
		"confidenceScore": {
			Type:        genai.TypeNumber,
			Description: "Confidence in the verdict, from 0 to 1.",
		},
		"explanation": {
			Type:        genai.TypeString,
			Description: "Reasoning behind the determination.",
		},
	},
	Required: []string{"isAuthentic", "confidenceScore", "explanation"},
}

// GeminiClient analyzes reports with Google's Gemini API.
type GeminiClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGeminiClient creates a Gemini-backed analysis client.
func NewGeminiClient(cfg Config) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}

	model := cfg.Model
	if model == "" {
		model = defaultGeminiModel
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiClient{
		client:  client,
		model:   model,
		timeout: cfg.timeout(),
	}, nil
}

func (g *GeminiClient) Score(ctx context.Context, reportText string) (*schema.Severity, error) {
	log.WithField("prefix", logPrefix).Debug("gemini severity request")

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		genai.Text(severityPrompt(reportText)),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   severitySchema,
		})
	if err != nil {
		return nil, fmt.Errorf("gemini severity request: %w", err)
	}

	return parseSeverity(resp.Text())
}

func (g *GeminiClient) Verify(ctx context.Context, reportText, mediaDataURI string) (*schema.Authenticity, error) {
	log.WithField("prefix", logPrefix).Debug("gemini authenticity request")

	mimeType, data, err := utils.DecodeDataURI(mediaDataURI)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(authenticityPrompt(reportText)),
			genai.NewPartFromBytes(data, mimeType),
		}, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents,
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   authenticitySchema,
		})
	if err != nil {
		return nil, fmt.Errorf("gemini authenticity request: %w", err)
	}

	return parseAuthenticity(resp.Text())
}
