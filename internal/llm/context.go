package llm

import "context"

// Purpose labels recorded with every logged request.
const (
	PurposeQuizGen         = "quiz-gen"
	PurposeSummary         = "summary"
	PurposeRecommendations = "recommendations"
)

// Purposes returns the labels the generators use.
func Purposes() []string {
	return []string{PurposeQuizGen, PurposeSummary, PurposeRecommendations}
}

type purposeKey struct{}

// WithPurpose tags ctx so logging, retry and cache decorators can report
// which generator made the call.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the tag set by WithPurpose, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey{}).(string); ok && v != "" {
		return v
	}
	return "unknown"
}
