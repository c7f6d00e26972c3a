package export

import (
	"bytes"

	"github.com/xuri/excelize/v2"
)

// WriteWorkbook serializes the given rows into a single-sheet XLSX workbook.
// The worksheet is named after the exported resource and shares the column order and header
// contract of WriteCSV. Zero rows still produce a valid workbook containing the header row.
func WriteWorkbook(sheet string, columns []string, rows []Row) ([]byte, error) {
	workbook := excelize.NewFile()
	defaultSheet := workbook.GetSheetName(workbook.GetActiveSheetIndex())
	if err := workbook.SetSheetName(defaultSheet, sheet); err != nil {
		return nil, err
	}

	header := make([]interface{}, len(columns))
	for i, column := range columns {
		header[i] = column
	}
	if err := workbook.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}

	for i, row := range rows {
		values := make([]interface{}, len(columns))
		for j, cell := range cells(columns, row) {
			values[j] = cell
		}
		coordinate, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := workbook.SetSheetRow(sheet, coordinate, &values); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := workbook.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
