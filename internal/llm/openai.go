package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// openaiModels maps friendly names to OpenAI model IDs.
var openaiModels = map[string]string{
	"gpt-4o":      "gpt-4o",
	"gpt-4o-mini": "gpt-4o-mini",
}

// OpenAIProvider implements Provider using the OpenAI SDK.
// DeepSeek, Groq, Together, xAI and Ollama are reached through BaseURL.
type OpenAIProvider struct {
	client   *openai.Client
	model    string
	name     string
	jsonMode JSONMode
}

// NewOpenAIProvider creates a provider for an OpenAI-compatible endpoint.
func NewOpenAIProvider(cfg OpenAIConfig) (*OpenAIProvider, error) {
	apiKey := cfg.APIKey
	if apiKey == "" {
		if !cfg.KeyOptional {
			return nil, fmt.Errorf("%s API key is required", cfg.label())
		}
		apiKey = "unused"
	}

	config := openai.DefaultConfig(apiKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	mode := cfg.JSONMode
	if mode == "" {
		mode = JSONModeStrict
	}

	return &OpenAIProvider{
		client:   openai.NewClientWithConfig(config),
		model:    resolveModel(cfg.Model, openaiModels),
		name:     cfg.label(),
		jsonMode: mode,
	}, nil
}

func (c OpenAIConfig) label() string {
	if c.Name == "" {
		return "openai"
	}
	return c.Name
}

func (p *OpenAIProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	messages := buildOpenAIMessages(req)

	chatReq := openai.ChatCompletionRequest{
		Model:               p.model,
		Messages:            messages,
		MaxCompletionTokens: req.MaxTokens,
		Temperature:         float32(req.Temperature),
	}

	if req.Schema != nil {
		format, err := p.responseFormat(req.Schema)
		if err != nil {
			return nil, err
		}
		chatReq.ResponseFormat = format
	}

	resp, err := p.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, mapOpenAIError(err)
	}

	if len(resp.Choices) == 0 {
		return nil, &ErrInvalidResponse{
			Err: fmt.Errorf("no choices in OpenAI response"),
		}
	}

	choice := resp.Choices[0]
	return finish(req, choice.Message.Content, Response{
		Usage: Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
		Model:      resp.Model,
		StopReason: mapOpenAIStopReason(choice.FinishReason),
	})
}

func (p *OpenAIProvider) ModelID() string {
	return p.model
}

// ProviderName returns the preset name, e.g. "deepseek".
func (p *OpenAIProvider) ProviderName() string {
	return p.name
}

func (p *OpenAIProvider) responseFormat(schema *Schema) (*openai.ChatCompletionResponseFormat, error) {
	switch p.jsonMode {
	case JSONModeNone:
		return nil, nil
	case JSONModeObject:
		return &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}, nil
	}

	schemaBytes, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return &openai.ChatCompletionResponseFormat{
		Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
		JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
			Name:   schema.Name,
			Schema: json.RawMessage(schemaBytes),
			Strict: true,
		},
	}, nil
}

func buildOpenAIMessages(req Request) []openai.ChatCompletionMessage {
	var messages []openai.ChatCompletionMessage

	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}

	for _, m := range req.Messages {
		role := openai.ChatMessageRoleUser
		if m.Role == RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: m.Content,
		})
	}

	return messages
}

func mapOpenAIStopReason(reason openai.FinishReason) string {
	if reason == openai.FinishReasonLength {
		return StopMaxTokens
	}
	return "end"
}

func mapOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return classifyStatus(apiErr.HTTPStatusCode, err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return classifyStatus(reqErr.HTTPStatusCode, err)
	}
	return classifyStatus(0, err)
}
