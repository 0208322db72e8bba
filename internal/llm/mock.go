package llm

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"sync"
)

// MockResponse is one queued reply of a MockProvider.
//
// Content is returned verbatim. Text is raw model output instead: for a
// request with a Schema it goes through JSON recovery and schema
// validation exactly like a real provider reply, so a test can check what
// a generator does with prose-wrapped or non-conforming output.
type MockResponse struct {
	Content    json.RawMessage
	Text       string
	StopReason string
	Usage      Usage
	Err        error
}

// MockProvider replays queued responses in order and records each request
// with the purpose it was made for. It backs the "mock" preset.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []Request
	Purposes  []string
}

func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// Generate pops the next response. An empty queue reads as an outage.
func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)
	m.Purposes = append(m.Purposes, PurposeFrom(ctx))

	if len(m.responses) == 0 {
		return nil, &ErrProviderUnavailable{Err: errors.New("mock: no response queued")}
	}
	next := m.responses[0]
	m.responses = m.responses[1:]
	if next.Err != nil {
		return nil, next.Err
	}

	resp := Response{
		Usage:      next.Usage,
		Model:      "mock",
		StopReason: cmp.Or(next.StopReason, "end"),
	}
	if next.Content != nil {
		resp.Content = next.Content
		return &resp, nil
	}
	return finish(req, next.Text, resp)
}

func (m *MockProvider) ModelID() string { return "mock" }

func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
