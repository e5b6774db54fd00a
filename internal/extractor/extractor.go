package extractor

import (
	"bytes"
	"fmt"
	"log"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"golang.org/x/text/encoding/charmap"

	"docsumm/internal/domain"
)

// Page is a single PDF page whose text can be read independently.
type Page interface {
	Text() (string, error)
}

// PDFOpener parses raw PDF bytes into its ordered pages.
type PDFOpener func(data []byte) ([]Page, error)

// Extractor turns an uploaded document into plain text. It holds no mutable
// state and is safe for concurrent use.
type Extractor struct {
	openPDF PDFOpener
}

// New creates an Extractor backed by the default PDF reader.
func New() *Extractor {
	return NewWithOpener(OpenPDF)
}

// NewWithOpener creates an Extractor using the given PDF page source.
func NewWithOpener(openPDF PDFOpener) *Extractor {
	if openPDF == nil {
		openPDF = OpenPDF
	}
	return &Extractor{openPDF: openPDF}
}

// SupportedTypes returns the file extensions Extract can handle, sorted.
func (e *Extractor) SupportedTypes() []string {
	types := make([]string, 0, len(domain.FileTypeContentTypes))
	for ft := range domain.FileTypeContentTypes {
		types = append(types, string(ft))
	}
	sort.Strings(types)
	return types
}

// Extract returns the document's text. Every failure is an *domain.ExtractionError.
func (e *Extractor) Extract(doc domain.UploadedDocument) (text string, err error) {
	ext := doc.Extension()
	switch domain.FileType(ext) {
	case domain.FileTypeTXT:
		return extractTXT(doc.Content)
	case domain.FileTypePDF:
		defer func() {
			if r := recover(); r != nil {
				log.Printf("extractor.Extract: recovered from PDF panic on %q: %v", doc.Filename, r)
				text = ""
				err = domain.NewExtractionError("failed to process PDF file: %v", r)
			}
		}()
		return e.extractPDF(doc)
	default:
		return "", domain.NewExtractionError("unsupported file type: %s", ext)
	}
}

func extractTXT(content []byte) (string, error) {
	var text string
	if utf8.Valid(content) {
		text = string(content)
	} else {
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(content)
		if err != nil {
			return "", domain.NewExtractionError("failed to process TXT file: %v", err)
		}
		text = string(decoded)
	}

	if strings.TrimSpace(text) == "" {
		return "", domain.NewExtractionError("text file is empty")
	}
	return text, nil
}

func (e *Extractor) extractPDF(doc domain.UploadedDocument) (string, error) {
	pages, err := e.openPDF(doc.Content)
	if err != nil {
		return "", domain.NewExtractionError("failed to process PDF file: %v", err)
	}
	if len(pages) == 0 {
		return "", domain.NewExtractionError("PDF file contains no pages")
	}

	parts := make([]string, 0, len(pages))
	for i, page := range pages {
		pageText, err := page.Text()
		if err != nil {
			log.Printf("extractor.Extract: skipping page %d of %q: %v", i+1, doc.Filename, err)
			continue
		}
		if strings.TrimSpace(pageText) == "" {
			continue
		}
		parts = append(parts, pageText)
	}

	text := strings.Join(parts, "\n\n")
	if strings.TrimSpace(text) == "" {
		return "", domain.NewExtractionError("could not extract text from PDF; file might be image-based or encrypted")
	}
	return text, nil
}

// OpenPDF reads pages with github.com/ledongthuc/pdf.
func OpenPDF(data []byte) ([]Page, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}

	n := reader.NumPage()
	pages := make([]Page, 0, n)
	for i := 1; i <= n; i++ {
		pages = append(pages, pdfPage{page: reader.Page(i)})
	}
	return pages, nil
}

type pdfPage struct {
	page pdf.Page
}

func (p pdfPage) Text() (text string, err error) {
	// The reader panics on some malformed content streams; keep that page-local.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("reading page content: %v", r)
		}
	}()
	if p.page.V.IsNull() {
		return "", nil
	}
	return p.page.GetPlainText(nil)
}
