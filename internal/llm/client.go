// Package llm provides the chat-completion capability used by the assist
// and translate pipelines. The contract is intentionally minimal: an ordered
// message list in, a single trimmed string out.
package llm

import "context"

// Message is one turn of a chat-style completion request.
type Message struct {
	Role    string `json:"role"` // system, user, assistant
	Content string `json:"content"`
}

// Request describes a single completion call.
type Request struct {
	Messages    []Message
	Model       string // empty uses the client default
	MaxTokens   int
	Temperature float64
}

// Client is implemented by each completion backend. Complete makes exactly
// one attempt; callers own fallback and retry policy.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}
