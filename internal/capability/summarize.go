package capability

import (
	"context"
	"strings"
)

const (
	summaryMaxChars      = 2000
	summaryMaxParagraphs = 6

	msgNothingToSummarize = "I couldn't find anything to summarize in there 😕\nTry a file with more plain text in it."
)

// summarize keeps the opening paragraphs of the text, capped in size.
// Deliberately cheap: good enough for a quick overview, no AI round trip.
func summarize(raw string) string {
	text := strings.TrimSpace(raw)
	// cap counts runes, not bytes: cutting a multi-byte character in half
	// would hand Telegram invalid UTF-8
	if runes := []rune(text); len(runes) > summaryMaxChars {
		text = string(runes[:summaryMaxChars])
	}
	var paragraphs []string
	for _, p := range strings.Split(text, "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	if len(paragraphs) == 0 {
		return text
	}
	if len(paragraphs) > summaryMaxParagraphs {
		paragraphs = paragraphs[:summaryMaxParagraphs]
	}
	return strings.Join(paragraphs, "\n\n")
}

// SummaryPDF summarizes the text layer of a PDF.
type SummaryPDF struct {
	Files FileFetcher
}

func (c *SummaryPDF) Run(ctx context.Context, req Request) Result {
	data, err := c.Files.GetFileContent(ctx, req.FileID)
	if err != nil {
		return FailureResult(msgUnexpected)
	}
	text, err := extractPDFText(data)
	if err != nil {
		return FailureResult(msgUnreadablePDF)
	}
	if strings.TrimSpace(text) == "" {
		return FailureResult(msgNoTextInPDF)
	}
	return TextResult("Summary 📝\n\n" + summarize(text))
}

// SummaryWord summarizes a .docx document.
type SummaryWord struct {
	Files FileFetcher
}

func (c *SummaryWord) Run(ctx context.Context, req Request) Result {
	data, err := c.Files.GetFileContent(ctx, req.FileID)
	if err != nil {
		return FailureResult(msgUnexpected)
	}
	text, err := extractWordText(data)
	if err != nil {
		return FailureResult(msgUnexpected)
	}
	if strings.TrimSpace(text) == "" {
		return FailureResult(msgNothingToSummarize)
	}
	return TextResult("Summary 📝\n\n" + summarize(text))
}

// SummaryText summarizes free-form text pasted into the chat.
type SummaryText struct{}

func (c *SummaryText) Run(ctx context.Context, req Request) Result {
	if strings.TrimSpace(req.Text) == "" {
		return FailureResult(msgNothingToSummarize)
	}
	return TextResult("Summary 📝\n\n" + summarize(req.Text))
}
