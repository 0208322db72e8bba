package layout

import (
	"strings"
	"testing"
)

func TestIsTooSmall(t *testing.T) {
	if !IsTooSmall(79, 30) || !IsTooSmall(100, 23) {
		t.Fatal("expected too small")
	}
	if IsTooSmall(80, 24) {
		t.Fatal("80x24 should fit")
	}
}

func TestRenderHeader(t *testing.T) {
	h := RenderHeader("Quiz Physique", "⏱ 03:20", 90)
	for _, want := range []string{"MentorAI", "Quiz Physique", "03:20"} {
		if !strings.Contains(h, want) {
			t.Errorf("header missing %q", want)
		}
	}
}

func TestRenderFrame(t *testing.T) {
	header := RenderHeader("t", "", 80)
	footer := RenderFooter([]KeyHint{{Key: "Enter", Description: "Save"}}, 80)
	frame := RenderFrame(header, "body", footer, 80, 24)
	if !strings.Contains(frame, "body") {
		t.Error("content missing")
	}
	if !strings.Contains(frame, "Save") {
		t.Error("footer hint missing")
	}
}
