package agent

import (
	"context"
	"fmt"
	"strings"
)

// TokenUsage accumulates token consumption across LLM calls.
type TokenUsage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// LLMResponse holds the fully-collected response from a streaming LLM call.
type LLMResponse struct {
	Text         string
	ThinkingText string
	Usage        *TokenUsage
}

// StreamHandlers receives streaming callbacks during an agent operation.
// All fields are optional, and none of them may affect the final value —
// they exist purely for progress surfaces (dashboards, feedback events).
type StreamHandlers struct {
	// OnToken is called with each text delta as it arrives.
	OnToken func(delta string)
	// OnPartial is called with the text accumulated so far.
	OnPartial func(accumulated string)
	// OnComplete is called once with the full response text.
	OnComplete func(text string)
}

// callLLM performs a single LLM call with context cancellation support.
// Returns the complete collected response.
func callLLM(ctx context.Context, client LLMClient, input *GenerateInput, handlers *StreamHandlers) (*LLMResponse, error) {
	// Derive a cancellable context so the producer goroutine in Generate
	// is always cleaned up when we return.
	llmCtx, llmCancel := context.WithCancel(ctx)
	defer llmCancel()

	stream, err := client.Generate(llmCtx, input)
	if err != nil {
		return nil, fmt.Errorf("LLM Generate failed: %w", err)
	}

	return collectStream(stream, handlers)
}

// collectStream drains an LLM chunk channel into a complete LLMResponse,
// invoking the optional stream handlers along the way. Returns an error
// if an ErrorChunk is received.
func collectStream(stream <-chan Chunk, handlers *StreamHandlers) (*LLMResponse, error) {
	resp := &LLMResponse{}
	var textBuf, thinkingBuf strings.Builder

	for chunk := range stream {
		switch c := chunk.(type) {
		case *TextChunk:
			textBuf.WriteString(c.Content)
			if handlers != nil {
				if handlers.OnToken != nil {
					handlers.OnToken(c.Content)
				}
				if handlers.OnPartial != nil {
					handlers.OnPartial(textBuf.String())
				}
			}
		case *ThinkingChunk:
			thinkingBuf.WriteString(c.Content)
		case *UsageChunk:
			resp.Usage = &TokenUsage{
				InputTokens:  c.InputTokens,
				OutputTokens: c.OutputTokens,
				TotalTokens:  c.TotalTokens,
			}
		case *ErrorChunk:
			return nil, &LLMError{
				Op:        "generate",
				Message:   fmt.Sprintf("%s (code: %s)", c.Message, c.Code),
				Retryable: c.Retryable,
			}
		}
	}

	resp.Text = textBuf.String()
	resp.ThinkingText = thinkingBuf.String()
	if handlers != nil && handlers.OnComplete != nil {
		handlers.OnComplete(resp.Text)
	}
	return resp, nil
}
