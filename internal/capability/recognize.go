package capability

import (
	"context"
	"strings"
)

const (
	recognizeInstruction = "This file is probably a scan or contains text as images. " +
		"Extract all readable text as typed, tidy lines in reading order, without extra commentary."

	msgLowQualityScan = "I couldn't get any text out of this PDF 😕\nThe scan quality might be too low."
	msgRecognizeError = "Something unexpected went wrong while reading the scan 😔\nTry again later or send another file."
)

// TextRecognizer reads typed text out of an uploaded scan.
type TextRecognizer interface {
	UploadFile(ctx context.Context, filename string, data []byte) (string, error)
	ReadFileText(ctx context.Context, fileID, instruction string) (string, error)
}

// ScanToText turns a scanned PDF into a typed Word document using a vision
// model for recognition.
type ScanToText struct {
	Files FileFetcher
	AI    TextRecognizer
}

func (c *ScanToText) Run(ctx context.Context, req Request) Result {
	data, err := c.Files.GetFileContent(ctx, req.FileID)
	if err != nil {
		return FailureResult(msgRecognizeError)
	}
	uploadID, err := c.AI.UploadFile(ctx, "scan.pdf", data)
	if err != nil {
		return FailureResult(msgRecognizeError)
	}
	text, err := c.AI.ReadFileText(ctx, uploadID, recognizeInstruction)
	if err != nil {
		return FailureResult(msgRecognizeError)
	}
	if strings.TrimSpace(text) == "" {
		return FailureResult(msgLowQualityScan)
	}
	out, err := buildWordDocument(text)
	if err != nil {
		return FailureResult(msgRecognizeError)
	}
	return DocumentResult("ocr_converted.docx", out)
}
