package capability

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSummarize_ShortTextUnchanged(t *testing.T) {
	in := "first paragraph\n\nsecond paragraph"
	if got := summarize(in); got != in {
		t.Fatalf("summarize changed short text: %q", got)
	}
}

func TestSummarize_KeepsOpeningParagraphs(t *testing.T) {
	parts := []string{"one", "two", "three", "four", "five", "six", "seven", "eight"}
	got := summarize(strings.Join(parts, "\n\n"))
	if strings.Contains(got, "seven") || strings.Contains(got, "eight") {
		t.Fatalf("summary kept trailing paragraphs: %q", got)
	}
	if !strings.Contains(got, "one") || !strings.Contains(got, "six") {
		t.Fatalf("summary dropped opening paragraphs: %q", got)
	}
}

func TestSummarize_CapsLength(t *testing.T) {
	got := summarize(strings.Repeat("a", 5000))
	if len(got) > summaryMaxChars {
		t.Fatalf("summary length = %d, want <= %d", len(got), summaryMaxChars)
	}
}

func TestSummarize_TruncatesOnRuneBoundary(t *testing.T) {
	// multi-byte text past the cap: a byte-offset cut would split a rune
	got := summarize("a" + strings.Repeat("س", summaryMaxChars))
	if !utf8.ValidString(got) {
		t.Fatalf("summary is not valid UTF-8 (len=%d, tail=%q)", len(got), got[len(got)-4:])
	}
	if n := utf8.RuneCountInString(got); n > summaryMaxChars {
		t.Fatalf("summary rune count = %d, want <= %d", n, summaryMaxChars)
	}
}

func TestSummaryText_Run(t *testing.T) {
	c := &SummaryText{}

	res := c.Run(context.Background(), Request{Text: "some text worth keeping"})
	if res.Kind != KindText {
		t.Fatalf("kind = %v, want KindText", res.Kind)
	}
	if !strings.Contains(res.Text, "some text worth keeping") {
		t.Fatalf("summary = %q", res.Text)
	}

	res = c.Run(context.Background(), Request{Text: "   "})
	if res.Kind != KindFailure {
		t.Fatalf("kind = %v, want KindFailure for blank input", res.Kind)
	}
}

type failingFetcher struct{}

func (failingFetcher) GetFileContent(ctx context.Context, fileID string) ([]byte, error) {
	return nil, errors.New("network down")
}

type staticFetcher struct{ data []byte }

func (s staticFetcher) GetFileContent(ctx context.Context, fileID string) ([]byte, error) {
	return s.data, nil
}

func TestPDFToWord_FetchFailureIsAbsorbed(t *testing.T) {
	c := &PDFToWord{Files: failingFetcher{}}
	res := c.Run(context.Background(), Request{FileID: "f"})
	if res.Kind != KindFailure || res.Text == "" {
		t.Fatalf("result = %#v, want a failure with a user-facing text", res)
	}
}

func TestPDFToWord_GarbageBytesAreAbsorbed(t *testing.T) {
	c := &PDFToWord{Files: staticFetcher{data: []byte("this is not a pdf")}}
	res := c.Run(context.Background(), Request{FileID: "f"})
	if res.Kind != KindFailure {
		t.Fatalf("kind = %v, want KindFailure for a broken file", res.Kind)
	}
	if res.Text != msgUnreadablePDF {
		t.Fatalf("text = %q, want the unreadable-PDF apology", res.Text)
	}
}

func TestSummaryWord_GarbageBytesAreAbsorbed(t *testing.T) {
	c := &SummaryWord{Files: staticFetcher{data: []byte("not a zip archive")}}
	res := c.Run(context.Background(), Request{FileID: "f"})
	if res.Kind != KindFailure {
		t.Fatalf("kind = %v, want KindFailure for a broken file", res.Kind)
	}
}

type fakeRecognizer struct {
	text string
	err  error
}

func (f fakeRecognizer) UploadFile(ctx context.Context, filename string, data []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "file-123", nil
}

func (f fakeRecognizer) ReadFileText(ctx context.Context, fileID, instruction string) (string, error) {
	return f.text, f.err
}

func TestScanToText_ProducesDocument(t *testing.T) {
	c := &ScanToText{Files: staticFetcher{data: []byte("%PDF-")}, AI: fakeRecognizer{text: "recognized line"}}
	res := c.Run(context.Background(), Request{FileID: "f"})
	if res.Kind != KindDocument {
		t.Fatalf("kind = %v, want KindDocument", res.Kind)
	}
	if res.FileName != "ocr_converted.docx" || len(res.Data) == 0 {
		t.Fatalf("result = (%q, %d bytes)", res.FileName, len(res.Data))
	}
}

func TestScanToText_EmptyRecognitionIsAbsorbed(t *testing.T) {
	c := &ScanToText{Files: staticFetcher{data: []byte("%PDF-")}, AI: fakeRecognizer{text: "   "}}
	res := c.Run(context.Background(), Request{FileID: "f"})
	if res.Kind != KindFailure || res.Text != msgLowQualityScan {
		t.Fatalf("result = %#v, want low-quality-scan failure", res)
	}
}

func TestScanToText_RecognizerErrorIsAbsorbed(t *testing.T) {
	c := &ScanToText{Files: staticFetcher{data: []byte("%PDF-")}, AI: fakeRecognizer{err: errors.New("api down")}}
	res := c.Run(context.Background(), Request{FileID: "f"})
	if res.Kind != KindFailure || res.Text != msgRecognizeError {
		t.Fatalf("result = %#v, want recognize-error failure", res)
	}
}
