package port

import (
	"context"

	"taxwise/internal/domain"
)

// DocumentIngestor turns a raw document into a normalized record.
// Implementations are total: they never return an error for parse-level
// failures, only a record with extraction_method = failed.
type DocumentIngestor interface {
	Ingest(ctx context.Context, doc domain.RawDocument) domain.NormalizedRecord
}
