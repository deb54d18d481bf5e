package agent

import (
	"errors"
	"fmt"
)

// LLMError is the typed fault surfaced when an LLM operation fails after
// its retries. Retryable distinguishes transient provider faults from
// structural ones (the model cannot produce the required output shape).
type LLMError struct {
	Op        string
	Message   string
	Retryable bool
	Err       error
}

func (e *LLMError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("llm %s failed: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("llm %s failed: %s", e.Op, e.Message)
}

func (e *LLMError) Unwrap() error { return e.Err }

// IsRetryable reports whether err carries an LLMError marked retryable.
func IsRetryable(err error) bool {
	var llmErr *LLMError
	return errors.As(err, &llmErr) && llmErr.Retryable
}
