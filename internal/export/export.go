package export

import (
	"bytes"
	"encoding/csv"
)

// Placeholder is rendered for values that are missing on a record so no empty or null-ish
// cell ever leaks into an exported file.
const Placeholder = "-"

// Row represents a single flattened export row.
// Values are keyed by column name; the column order of the final file is defined by the
// explicit column list of the serializers, never by map iteration order.
type Row map[string]string

// Projection flattens a record into a named-column row
type Projection[T any] func(record T) Row

// ToRows applies the projection to every record of the filtered set.
// Exports always cover the whole filtered set, independent of the currently visible page.
func ToRows[T any](filtered []T, projection Projection[T]) []Row {
	rows := make([]Row, 0, len(filtered))
	for _, record := range filtered {
		rows = append(rows, projection(record))
	}
	return rows
}

// WriteCSV serializes the given rows into an RFC 4180 CSV document.
// The header is taken from the explicit column list; cells missing on a row render as
// the placeholder string. Zero rows produce a header-only document.
func WriteCSV(columns []string, rows []Row) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(columns); err != nil {
		return nil, err
	}
	for _, row := range rows {
		if err := writer.Write(cells(columns, row)); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func cells(columns []string, row Row) []string {
	record := make([]string, len(columns))
	for i, column := range columns {
		value, ok := row[column]
		if !ok || value == "" {
			value = Placeholder
		}
		record[i] = value
	}
	return record
}
