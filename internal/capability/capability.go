// Package capability holds the document transformations the bot can run.
// A capability never fails upward: every outcome, including internal errors,
// is folded into a Result the dispatcher can deliver to the user.
package capability

import "context"

// Request carries the content a capability works on. Exactly one of Text or
// FileID is set, depending on the mode that routed the message.
type Request struct {
	Text   string
	FileID string
}

type Kind int

const (
	// KindDocument is a generated file to deliver with SendDocument.
	KindDocument Kind = iota + 1
	// KindText is a plain-text reply, e.g. a summary.
	KindText
	// KindFailure is an absorbed error with a user-facing explanation.
	KindFailure
)

// Result is the discriminated outcome of a capability run.
type Result struct {
	Kind     Kind
	FileName string
	Data     []byte
	Text     string
}

func DocumentResult(name string, data []byte) Result {
	return Result{Kind: KindDocument, FileName: name, Data: data}
}

func TextResult(text string) Result {
	return Result{Kind: KindText, Text: text}
}

func FailureResult(text string) Result {
	return Result{Kind: KindFailure, Text: text}
}

type Capability interface {
	Run(ctx context.Context, req Request) Result
}

// FileFetcher downloads an attached document by its Telegram file id.
type FileFetcher interface {
	GetFileContent(ctx context.Context, fileID string) ([]byte, error)
}
