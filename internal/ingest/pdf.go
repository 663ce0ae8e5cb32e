package ingest

import (
	"bytes"
	"fmt"
	"log"
	"strings"

	"github.com/ledongthuc/pdf"

	"taxwise/internal/domain"
)

// minPDFTextChars is the threshold below which a PDF is flagged as likely
// scanned (image-only) rather than text-based.
const minPDFTextChars = 100

const scannedPDFNote = "\n[Note: Limited text extracted - possibly scanned PDF - OCR might be needed]"

// parsePDF extracts per-page text across all pages, concatenated with page
// delimiters, and keeps each page's row groups as a table. Zero pages is
// valid and yields empty content.
func parsePDF(content []byte) (rec domain.NormalizedRecord) {
	// The reader panics on some malformed cross-reference tables; keep the
	// totality contract by converting that to a failed record.
	defer func() {
		if r := recover(); r != nil {
			rec = failedRecord(domain.KindPDF, fmt.Sprintf("reading pdf: %v", r))
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return failedRecord(domain.KindPDF, fmt.Sprintf("opening pdf: %v", err))
	}

	var text strings.Builder
	var tables []domain.PageTable
	totalPages := r.NumPage()

	for pageNum := 1; pageNum <= totalPages; pageNum++ {
		page := r.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			log.Printf("ingest.parsePDF: page %d text extraction: %v", pageNum, err)
			continue
		}
		if len(rows) == 0 {
			continue
		}

		table := make(domain.PageTable, 0, len(rows))
		fmt.Fprintf(&text, "\n--- Page %d ---\n", pageNum)
		for _, row := range rows {
			words := make([]string, 0, len(row.Content))
			for _, word := range row.Content {
				words = append(words, word.S)
				text.WriteString(word.S)
			}
			text.WriteString("\n")
			table = append(table, words)
		}
		tables = append(tables, table)
	}

	extracted := text.String()
	if len(strings.TrimSpace(extracted)) < minPDFTextChars {
		extracted += scannedPDFNote
	}

	return domain.NormalizedRecord{
		ContentType:    domain.KindPDF,
		TextContent:    extracted,
		Tables:         tables,
		PagesProcessed: totalPages,
		TableCount:     len(tables),
		CharCount:      len(extracted),
		Method:         domain.MethodPDFText,
	}
}
