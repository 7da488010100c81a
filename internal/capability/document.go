package capability

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/fumiama/go-docx"
	"github.com/ledongthuc/pdf"
)

const (
	msgUnreadablePDF = "I couldn't read this PDF 😕\nIt's either damaged or not a standard PDF.\nTry sending another PDF (or another export of the same file)."
	msgNoTextInPDF   = "I couldn't find any text inside this PDF 😕\nIt's probably a scan or made of images. Try the scan-to-text mode from the menu."
	msgUnexpected    = "Something unexpected went wrong 😔\nTry again in a bit, or send a different file."
)

// extractPDFText pulls the text layer out of a PDF.
// The parser panics on some malformed files, so the recover is load-bearing.
func extractPDFText(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf parse: %v", r)
		}
	}()
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}
	b, err := io.ReadAll(plain)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// buildWordDocument writes one paragraph per non-empty line.
func buildWordDocument(text string) ([]byte, error) {
	w := docx.New().WithDefaultTheme()
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		w.AddParagraph().AddText(line)
	}
	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// extractWordText concatenates the paragraphs of a .docx file.
func extractWordText(data []byte) (string, error) {
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, it := range doc.Document.Body.Items {
		if p, ok := it.(*docx.Paragraph); ok {
			sb.WriteString(p.String())
			sb.WriteString("\n\n")
		}
	}
	return sb.String(), nil
}
