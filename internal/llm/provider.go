package llm

import (
	"context"
	"encoding/json"
)

// Provider sends one prompt to a language model. Quiz generation, document
// summaries and study recommendations all go through this interface, so the
// backend can be swapped with AI_PROVIDER without touching callers.
type Provider interface {
	// Generate returns the model's reply. With req.Schema set, Content is
	// a JSON object that passed schema validation.
	Generate(ctx context.Context, req Request) (*Response, error)

	ModelID() string
}

// Request is a single-turn prompt plus the output contract.
type Request struct {
	System   string
	Messages []Message

	// Schema, when set, asks for JSON output. Providers use their native
	// structured-output mode when they have one and the reply is always
	// validated locally.
	Schema *Schema

	MaxTokens   int
	Temperature float64 // 0..1; generators send DefaultTemperature
}

type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names a JSON Schema definition, e.g. "quiz-questions".
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Response is the model's output for one Request.
type Response struct {
	// Content holds the validated object for structured requests and the
	// raw text otherwise.
	Content json.RawMessage
	Usage   Usage
	Model   string

	// StopReason is "end" or StopMaxTokens.
	StopReason string
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
