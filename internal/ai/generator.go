package ai

import "context"

// Generator produces free text from a single prompt. It is the only contract
// the interview core has with the external text-generation service, so the
// state machine and extractors stay testable without a live network
// dependency.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}
