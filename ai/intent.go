//go:generate go run go.uber.org/mock/mockgen -source=intent.go -destination=../mocks/mock_intent.go -package=mocks
package ai

import "context"

// IntentDetector classifies a user message into one of the candidate intents.
// It returns an empty string when no candidate applies.
type IntentDetector interface {
	DetectIntent(ctx context.Context, text string, intents []string) (string, error)
}

// NoopDetector never detects anything, the engine then relies on keywords only.
type NoopDetector struct{}

func (NoopDetector) DetectIntent(context.Context, string, []string) (string, error) {
	return "", nil
}
