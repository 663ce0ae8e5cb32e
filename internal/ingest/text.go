package ingest

import (
	"log"
	"strings"

	"taxwise/internal/domain"
)

// parseText decodes a plain text blob under the encoding ladder and records
// basic size diagnostics.
func parseText(content []byte) domain.NormalizedRecord {
	decoded, encName, err := decodeText(content)
	if err != nil {
		return failedRecord(domain.KindText, err.Error())
	}

	log.Printf("ingest.parseText: decoded %d characters with %s", len(decoded), encName)

	return domain.NormalizedRecord{
		ContentType: domain.KindText,
		TextContent: decoded,
		CharCount:   len(decoded),
		WordCount:   len(strings.Fields(decoded)),
		Method:      domain.MethodTextDecode,
	}
}
