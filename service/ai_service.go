package service

import (
	"context"
)

// AIService answers a question about a document's text. The second result
// reports whether the answer is the degraded fallback produced when the model
// output could not be parsed.
type AIService interface {
	Ask(ctx context.Context, documentText, question string) (map[string]any, bool, error)
}
