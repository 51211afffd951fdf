package utils

import "context"

// AdvisorClientInterface abstracts the hosted language-model service behind
// the travel advisor. Implementations answer queries and never touch the
// catalog store.
type AdvisorClientInterface interface {
	GenerateAdvice(ctx context.Context, systemInstruction string, query string) (string, error)
}
