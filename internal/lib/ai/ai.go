// Package ai turns the free text of a record into an analysis: a short
// summary, a comment, and the abilities the writer demonstrated, keyed by
// keyword label. It also runs the chat assistant that interviews users
// about an experience and condenses the conversation into record content.
package ai

import "context"

// Result maps keyword labels (model.Keyword.Label) to supporting text.
type Result struct {
	Content  string
	Comment  string
	Keywords map[string]string
}

type Analyzer interface {
	Analyze(ctx context.Context, content string) (*Result, error)
}
