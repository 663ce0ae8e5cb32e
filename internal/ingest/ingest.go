// Package ingest turns raw document blobs into normalized records. One
// parser per supported format; every parser is total and reports internal
// failures through the record's extraction_method and error fields.
package ingest

import (
	"context"
	"fmt"

	"taxwise/internal/domain"
	"taxwise/internal/port"
)

// Ingestor dispatches a raw document to the parser for its kind.
// It implements port.DocumentIngestor.
type Ingestor struct {
	completer port.Completer // used only by the image path; may be nil
}

// NewIngestor creates an Ingestor. The completer is optional and only
// consulted for raster image inputs.
func NewIngestor(completer port.Completer) *Ingestor {
	return &Ingestor{completer: completer}
}

// Ingest parses the document according to its kind. Callers are expected to
// have validated the kind against domain.SupportedKinds already; an unknown
// kind still yields a well-formed failed record rather than a panic.
func (i *Ingestor) Ingest(ctx context.Context, doc domain.RawDocument) domain.NormalizedRecord {
	switch {
	case doc.Kind == domain.KindCSV:
		return parseCSV(doc.Content)
	case doc.Kind == domain.KindXLSX:
		return parseExcel(doc.Content)
	case doc.Kind == domain.KindXLS:
		return parseXLS(doc.Content)
	case doc.Kind == domain.KindPDF:
		return parsePDF(doc.Content)
	case doc.Kind == domain.KindText:
		return parseText(doc.Content)
	case doc.Kind.IsImage():
		return i.parseImage(ctx, doc)
	default:
		return failedRecord(doc.Kind, fmt.Sprintf("no parser registered for kind %q", doc.Kind))
	}
}

// failedRecord builds the uniform failure-shaped record.
func failedRecord(kind domain.DocumentKind, errMsg string) domain.NormalizedRecord {
	return domain.NormalizedRecord{
		ContentType: kind,
		Method:      domain.MethodFailed,
		Error:       errMsg,
	}
}
