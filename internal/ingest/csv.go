package ingest

import (
	"encoding/csv"
	"fmt"
	"log"
	"strings"

	"taxwise/internal/domain"
)

// previewRows bounds the diagnostic preview captured from tabular content.
const previewRows = 5

// parseCSV decodes delimited text under the encoding ladder and parses it
// into named rows. An empty file yields an empty (non-failed) record.
func parseCSV(content []byte) domain.NormalizedRecord {
	decoded, encName, err := decodeText(content)
	if err != nil {
		return failedRecord(domain.KindCSV, err.Error())
	}

	reader := csv.NewReader(strings.NewReader(decoded))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return failedRecord(domain.KindCSV, fmt.Sprintf("parsing csv: %v", err))
	}

	rec := domain.NormalizedRecord{
		ContentType: domain.KindCSV,
		Method:      domain.MethodCSVDecode,
	}
	if len(records) == 0 {
		return rec
	}

	columns := records[0]
	rows := rowsFromRecords(columns, records[1:])

	rec.Columns = columns
	rec.Rows = rows
	rec.Preview = previewOf(rows)

	log.Printf("ingest.parseCSV: decoded with %s, %d rows, %d columns", encName, len(rows), len(columns))
	return rec
}

// rowsFromRecords maps raw CSV records onto the header columns. Short rows
// leave trailing columns empty; extra cells are dropped.
func rowsFromRecords(columns []string, records [][]string) []domain.TabularRow {
	rows := make([]domain.TabularRow, 0, len(records))
	for _, record := range records {
		row := make(domain.TabularRow, len(columns))
		for i, col := range columns {
			if i < len(record) {
				row[col] = record[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func previewOf(rows []domain.TabularRow) []domain.TabularRow {
	if len(rows) <= previewRows {
		return rows
	}
	return rows[:previewRows]
}
