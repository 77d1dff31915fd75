package extract

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// IsPDF reports whether an upload should go through PDF extraction
func IsPDF(contentType, filename string) bool {
	if contentType == "application/pdf" {
		return true
	}

	return strings.HasSuffix(strings.ToLower(filename), ".pdf")
}

// PDFText pulls the plain text out of a PDF byte stream. Scanned PDFs with
// no text layer yield an empty string, which the ingestion path treats as
// "store without embedding".
func PDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract pdf text: %w", err)
	}

	var sb strings.Builder
	if _, err := io.Copy(&sb, plain); err != nil {
		return "", fmt.Errorf("failed to read pdf text: %w", err)
	}

	return strings.TrimSpace(sb.String()), nil
}
