package capability

import (
	"context"
	"strings"
)

// PDFToWord turns the text layer of a PDF into a Word document.
type PDFToWord struct {
	Files FileFetcher
}

func (c *PDFToWord) Run(ctx context.Context, req Request) Result {
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
	out, err := buildWordDocument(text)
	if err != nil {
		return FailureResult(msgUnexpected)
	}
	return DocumentResult("converted.docx", out)
}
