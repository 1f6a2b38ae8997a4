package ai

import "errors"

// ErrNotConfigured is returned when the Groq credentials were absent at
// startup. Routes that do not need the model keep serving.
var ErrNotConfigured = errors.New("AI model is not configured")

// GenerationError means the remote completion call itself failed: network,
// auth, rate limit or timeout. It is never retried by the pipeline.
type GenerationError struct {
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// ParseError means the model answered but the text did not satisfy the
// expected output shape. Kept distinct from GenerationError so operators can
// tell "the model didn't answer" apart from "the model answered unusably".
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string {
	return e.Message
}
