package ingest

import (
	"bytes"
	"fmt"
	"log"

	"github.com/extrame/xls"

	"taxwise/internal/domain"
)

// parseXLS reads a legacy BIFF workbook. Same record shape as parseExcel;
// the first non-empty sheet's rows feed the heuristic analyzer.
func parseXLS(content []byte) (rec domain.NormalizedRecord) {
	// The BIFF reader panics on some malformed compound files; keep the
	// totality contract by converting that to a failed record.
	defer func() {
		if r := recover(); r != nil {
			rec = failedRecord(domain.KindXLS, fmt.Sprintf("reading xls: %v", r))
		}
	}()

	wb, err := xls.OpenReader(bytes.NewReader(content), "utf-8")
	if err != nil || wb == nil {
		return failedRecord(domain.KindXLS, fmt.Sprintf("opening workbook: %v", err))
	}

	rec = domain.NormalizedRecord{
		ContentType: domain.KindXLS,
		Method:      domain.MethodExcelSheets,
	}

	for i := 0; i < wb.NumSheets(); i++ {
		sheet := wb.GetSheet(i)
		if sheet == nil {
			continue
		}

		info := domain.SheetInfo{Name: sheet.Name}
		raw := sheetRows(sheet)
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

	log.Printf("ingest.parseXLS: %d sheets, %d rows carried", len(rec.Sheets), len(rec.Rows))
	return rec
}

// sheetRows flattens a BIFF sheet into string cells.
func sheetRows(sheet *xls.WorkSheet) [][]string {
	var out [][]string
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			continue
		}
		cells := make([]string, 0, row.LastCol())
		for j := row.FirstCol(); j < row.LastCol(); j++ {
			cells = append(cells, row.Col(j))
		}
		if len(cells) > 0 {
			out = append(out, cells)
		}
	}
	return out
}
