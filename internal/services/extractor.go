package services

import (
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"

	"resumeslide/internal/apperrors"
)

const pdfMediaType = "application/pdf"

// ExtractorService turns an uploaded document into plain text. PDF documents
// are parsed page by page; anything else is read verbatim as text. No OCR,
// no layout reconstruction.
type ExtractorService interface {
	Extract(filePath, declaredType string) (string, error)
}

type extractorService struct{}

func NewExtractorService() ExtractorService {
	return &extractorService{}
}

func (e *extractorService) Extract(filePath, declaredType string) (string, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return "", &apperrors.ExtractionError{Message: "failed to stat document", Err: err}
	}
	if info.Size() == 0 {
		return "", &apperrors.ExtractionError{Message: "document is empty"}
	}

	if isPDF(filePath, declaredType) {
		return extractPDFText(filePath)
	}

	raw, err := os.ReadFile(filePath)
	if err != nil {
		return "", &apperrors.ExtractionError{Message: "failed to read document", Err: err}
	}

	return string(raw), nil
}

// isPDF trusts the declared media type when present and falls back to
// content sniffing when the client sent nothing useful.
func isPDF(filePath, declaredType string) bool {
	switch declaredType {
	case pdfMediaType:
		return true
	case "", "application/octet-stream":
		detected, err := mimetype.DetectFile(filePath)
		if err != nil {
			return false
		}
		return detected.Is(pdfMediaType)
	default:
		return false
	}
}

// extractPDFText joins the text fragments of each page with single spaces
// and the pages with newlines.
func extractPDFText(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", &apperrors.ExtractionError{Message: "failed to open PDF", Err: err}
	}
	defer f.Close()

	var pages []string
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		content := page.Content()
		fragments := make([]string, 0, len(content.Text))
		for _, fragment := range content.Text {
			fragments = append(fragments, fragment.S)
		}

		pages = append(pages, strings.Join(fragments, " "))
	}

	return strings.Join(pages, "\n"), nil
}
