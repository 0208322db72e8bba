package theme

import "testing"

func TestScoreColor(t *testing.T) {
	tests := []struct {
		pct  float64
		want any
	}{
		{95, Success},
		{70, Success},
		{55, Warning},
		{10, Error},
	}
	for _, tt := range tests {
		if got := ScoreColor(tt.pct).GetForeground(); got != tt.want {
			t.Errorf("ScoreColor(%v) = %v, want %v", tt.pct, got, tt.want)
		}
	}
}
