package model

// Mode is the transformation a chat has selected from the menu.
type Mode string

const (
	ModeUnset       Mode = ""
	ModePDFToWord   Mode = "WORD"
	ModeSummaryPDF  Mode = "SUMMARY_PDF"
	ModeSummaryWord Mode = "SUMMARY_WORD"
	ModeSummaryText Mode = "SUMMARY_TEXT"
	ModeOCRPDF      Mode = "OCR_PDF"
)
