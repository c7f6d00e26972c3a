package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type exportItem struct {
	Name  string
	Email string
	Note  string
}

func itemProjection(item exportItem) Row {
	return Row{
		"Name":  item.Name,
		"Email": item.Email,
		"Note":  item.Note,
	}
}

var itemColumns = []string{"Name", "Email", "Note"}

func TestToRows_CoversWholeFilteredSet(t *testing.T) {
	items := []exportItem{
		{Name: "a", Email: "a@example.com"},
		{Name: "b", Email: "b@example.com"},
		{Name: "c", Email: "c@example.com"},
	}
	rows := ToRows(items, itemProjection)
	require.Len(t, rows, len(items))
	assert.Equal(t, "b@example.com", rows[1]["Email"])
}

func TestWriteCSV_RoundTrip(t *testing.T) {
	rows := ToRows([]exportItem{
		{Name: "Jane Doe", Email: "jane@example.com", Note: "likes, commas"},
		{Name: `Quote "Q" Smith`, Email: "q@example.com", Note: "line\nbreak"},
	}, itemProjection)

	out, err := WriteCSV(itemColumns, rows)
	require.NoError(t, err)

	parsed, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, parsed, 3)
	assert.Equal(t, itemColumns, parsed[0])
	assert.Equal(t, []string{"Jane Doe", "jane@example.com", "likes, commas"}, parsed[1])
	assert.Equal(t, []string{`Quote "Q" Smith`, "q@example.com", "line\nbreak"}, parsed[2])
}

func TestWriteCSV_MissingValuesRenderPlaceholder(t *testing.T) {
	out, err := WriteCSV(itemColumns, []Row{{"Name": "only name"}})
	require.NoError(t, err)

	parsed, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, parsed, 2)
	assert.Equal(t, []string{"only name", Placeholder, Placeholder}, parsed[1])
}

func TestWriteCSV_EmptyRowsProduceHeaderOnly(t *testing.T) {
	out, err := WriteCSV(itemColumns, nil)
	require.NoError(t, err)

	parsed, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, parsed, 1)
	assert.Equal(t, itemColumns, parsed[0])
}

func TestWriteWorkbook_RoundTrip(t *testing.T) {
	rows := ToRows([]exportItem{
		{Name: "Jane Doe", Email: "jane@example.com", Note: "hello"},
	}, itemProjection)

	out, err := WriteWorkbook("Contacts", itemColumns, rows)
	require.NoError(t, err)

	workbook, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer workbook.Close()

	require.Equal(t, []string{"Contacts"}, workbook.GetSheetList())
	cells, err := workbook.GetRows("Contacts")
	require.NoError(t, err)
	require.Len(t, cells, 2)
	assert.Equal(t, itemColumns, cells[0])
	assert.Equal(t, []string{"Jane Doe", "jane@example.com", "hello"}, cells[1])
}

func TestWriteWorkbook_EmptyRowsStillValid(t *testing.T) {
	out, err := WriteWorkbook("Orders", itemColumns, nil)
	require.NoError(t, err)

	workbook, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer workbook.Close()

	cells, err := workbook.GetRows("Orders")
	require.NoError(t, err)
	require.Len(t, cells, 1)
	assert.Equal(t, itemColumns, cells[0])
}
