package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"
	log "github.com/sirupsen/logrus"

	"github.com/echovault/echovault-api/schema"
)

const systemMessage = "You are an assistant that analyzes emergency incident reports and answers strictly with JSON."

// OpenAIClient analyzes reports with OpenAI's chat completion API.
type OpenAIClient struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewOpenAIClient creates an OpenAI-backed analysis client.
func NewOpenAIClient(cfg Config) (*OpenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai api key is required")
	}

	model := cfg.Model
	if model == "" {
		model = openai.GPT4oMini
	}

	return &OpenAIClient{
		client:  openai.NewClient(cfg.APIKey),
		model:   model,
		timeout: cfg.timeout(),
	}, nil
}

func (o *OpenAIClient) complete(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    o.model,
		Messages: messages,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: 0.2,
	})
	if err != nil {
		return "", fmt.Errorf("openai request: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai request: empty response")
	}

	return resp.Choices[0].Message.Content, nil
}

func (o *OpenAIClient) Score(ctx context.Context, reportText string) (*schema.Severity, error) {
	log.WithField("prefix", logPrefix).Debug("openai severity request")

	raw, err := o.complete(ctx, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: systemMessage},
		{Role: openai.ChatMessageRoleUser, Content: severityPrompt(reportText)},
	})
	if err != nil {
		return nil, err
	}

	return parseSeverity(raw)
}

func (o *OpenAIClient) Verify(ctx context.Context, reportText, mediaDataURI string) (*schema.Authenticity, error) {
	log.WithField("prefix", logPrefix).Debug("openai authenticity request")

	raw, err := o.complete(ctx, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: systemMessage},
		{
			Role: openai.ChatMessageRoleUser,
			MultiContent: []openai.ChatMessagePart{
				{
					Type: openai.ChatMessagePartTypeText,
					Text: authenticityPrompt(reportText),
				},
				{
					Type: openai.ChatMessagePartTypeImageURL,
					ImageURL: &openai.ChatMessageImageURL{
						URL:    mediaDataURI,
						Detail: openai.ImageURLDetailAuto,
					},
				},
			},
		},
	})
	if err != nil {
		return nil, err
	}

	return parseAuthenticity(raw)
}
