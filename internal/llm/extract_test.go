package llm

import (
	"errors"
	"testing"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare", `{"a":1}`, `{"a":1}`},
		{"prose", "Voici le quiz:\n{\"a\":1}\nBonne chance!", `{"a":1}`},
		{"fenced", "```json\n{\"a\":{\"b\":2}}\n```", `{"a":{"b":2}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tt.want {
				t.Fatalf("ExtractJSON(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtractJSON_Missing(t *testing.T) {
	for _, in := range []string{"", "no json here", "} reversed {"} {
		if _, err := ExtractJSON(in); !errors.Is(err, ErrNoJSON) {
			t.Errorf("ExtractJSON(%q) error = %v, want ErrNoJSON", in, err)
		}
	}
}

func TestExtractAndValidate_WrapsFailure(t *testing.T) {
	_, err := extractAndValidate(testSchema(), "sorry, I cannot help")
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %T (%v)", err, err)
	}
	if string(inv.Content) != "sorry, I cannot help" {
		t.Fatalf("expected raw text preserved, got %q", inv.Content)
	}
}

func TestExtractAndValidate_Prose(t *testing.T) {
	got, err := extractAndValidate(testSchema(), `Sure! {"name":"Alice","age":10} Done.`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != `{"name":"Alice","age":10}` {
		t.Fatalf("unexpected content %s", got)
	}
}

func TestFinish(t *testing.T) {
	structured := Request{Schema: testSchema()}

	resp, err := finish(structured, `Voilà : {"name":"Alice","age":10}`, Response{Model: "m", StopReason: "end"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"name":"Alice","age":10}` || resp.Model != "m" {
		t.Fatalf("unexpected response %+v", resp)
	}

	_, err = finish(structured, `{"name":"Ali`, Response{StopReason: StopMaxTokens})
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("expected ErrMaxTokensExceeded, got %T (%v)", err, err)
	}

	plain, err := finish(Request{}, "just text", Response{StopReason: StopMaxTokens})
	if err != nil || string(plain.Content) != "just text" {
		t.Fatalf("unstructured reply should pass through, got %v / %v", plain, err)
	}
}
