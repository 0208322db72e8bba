package llm

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrNoJSON is returned by ExtractJSON when the text holds no JSON object.
var ErrNoJSON = errors.New("no JSON object found in response")

// ExtractJSON returns the text between the first '{' and the last '}'
// inclusive. Models without a native JSON mode often wrap the object in
// prose or markdown fences.
func ExtractJSON(text string) (json.RawMessage, error) {
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start < 0 || end < start {
		return nil, ErrNoJSON
	}
	return json.RawMessage(text[start : end+1]), nil
}

// extractAndValidate recovers the JSON object from text and checks it
// against schema.
func extractAndValidate(schema *Schema, text string) (json.RawMessage, error) {
	content, err := ExtractJSON(text)
	if err != nil {
		return nil, &ErrInvalidResponse{Content: json.RawMessage(text), Err: err}
	}
	if err := validateResponse(schema, content); err != nil {
		return nil, err
	}
	return content, nil
}

// StopMaxTokens is the normalized stop reason for a reply cut short by
// Request.MaxTokens.
const StopMaxTokens = "max_tokens"

// finish fills resp.Content from the model's text. For structured requests
// the JSON object is recovered and validated, and a reply cut off by the
// token limit is reported as ErrMaxTokensExceeded.
func finish(req Request, text string, resp Response) (*Response, error) {
	resp.Content = json.RawMessage(text)
	if req.Schema == nil {
		return &resp, nil
	}
	if resp.StopReason == StopMaxTokens {
		return nil, &ErrMaxTokensExceeded{Content: resp.Content}
	}
	content, err := extractAndValidate(req.Schema, text)
	if err != nil {
		return nil, err
	}
	resp.Content = content
	return &resp, nil
}
