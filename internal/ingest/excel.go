package ingest

import (
	"bytes"
	"fmt"
	"log"

	"github.com/xuri/excelize/v2"

	"taxwise/internal/domain"
)

// maxSheetRows caps how many data rows are carried per sheet.
const maxSheetRows = 100

// parseExcel enumerates every sheet of an OPC (xlsx) workbook. Each sheet
// contributes a SheetInfo summary; the first non-empty sheet's rows also
// populate the record's tabular content for the heuristic analyzer. Legacy
// BIFF workbooks take the parseXLS path instead.
func parseExcel(content []byte) domain.NormalizedRecord {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return failedRecord(domain.KindXLSX, fmt.Sprintf("opening workbook: %v", err))
	}
	defer func() { _ = f.Close() }()

	rec := domain.NormalizedRecord{
		ContentType: domain.KindXLSX,
		Method:      domain.MethodExcelSheets,
	}

	for _, sheetName := range f.GetSheetList() {
		raw, err := f.GetRows(sheetName)
		if err != nil {
			rec.Sheets = append(rec.Sheets, domain.SheetInfo{Name: sheetName})
			log.Printf("ingest.parseExcel: reading sheet %q: %v", sheetName, err)
			continue
		}

		info := domain.SheetInfo{Name: sheetName}
		if len(raw) > 0 {
			info.Columns = raw[0]
			info.ColCount = len(raw[0])

			data := raw[1:]
			info.RowCount = len(data)
			if len(data) > maxSheetRows {
				data = data[:maxSheetRows]
			}
			rows := rowsFromRecords(info.Columns, data)
			info.Preview = previewOf(rows)

			if !rec.HasTabularContent() && len(rows) > 0 {
				rec.Columns = info.Columns
				rec.Rows = rows
				rec.Preview = info.Preview
			}
		}
		rec.Sheets = append(rec.Sheets, info)
	}

	log.Printf("ingest.parseExcel: %d sheets, %d rows carried", len(rec.Sheets), len(rec.Rows))
	return rec
}
