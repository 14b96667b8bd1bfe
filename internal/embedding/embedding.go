// Package embedding provides text-embedding providers for profile similarity.
package embedding

import "context"

// Result is the outcome of an embedding request. A missing vector is not an
// error: unconfigured providers and transient failures both produce an
// unavailable result, and callers fall back to rule-based scoring either way.
// Reason records why the vector is absent, for logging and future retry policy.
type Result struct {
	Vector []float64
	Reason string
}

// Available reports whether the result carries a usable vector.
func (r Result) Available() bool {
	return len(r.Vector) > 0
}

// unavailable builds an empty result with the given reason.
func unavailable(reason string) Result {
	return Result{Reason: reason}
}

// Provider produces embedding vectors for text.
// Embed never returns an error; failures yield an unavailable Result.
type Provider interface {
	// Configured reports whether the provider can make embedding calls at all.
	// An unconfigured provider is the designed signal for fallback mode.
	Configured() bool
	// Embed returns the embedding vector for the given text, or an
	// unavailable Result. Empty or whitespace-only text short-circuits
	// without a network call.
	Embed(ctx context.Context, text string) Result
}
