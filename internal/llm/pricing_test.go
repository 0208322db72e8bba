package llm

import (
	"math"
	"testing"
)

func TestLookupCost(t *testing.T) {
	c := LookupCost("deepseek-chat")
	if c == nil {
		t.Fatal("expected pricing for deepseek-chat")
	}
	got := c.Cost(1_000_000, 1_000_000)
	if math.Abs(got-1.37) > 1e-9 {
		t.Fatalf("Cost = %v, want 1.37", got)
	}
	if LookupCost("no-such-model") != nil {
		t.Fatal("unknown model should have no pricing")
	}
	if free := LookupCost("llama3.1"); free == nil || free.Cost(500, 500) != 0 {
		t.Fatal("local model should be free")
	}
}
