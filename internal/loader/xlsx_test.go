package loader

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"stage-shift/internal/model"
)

func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	path := filepath.Join(t.TempDir(), "snapshot.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func TestLoadXLSX(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Email_ID", "Personal_Status", "Payment_Status"},
		{"a@x.com", "Completed", ""},
		{"b@x.com", "", "Completed"},
	})

	snap, err := LoadSnapshot(context.Background(), "previous", model.Source{Type: "xlsx", URL: path}, model.Options{})
	require.NoError(t, err)
	require.Len(t, snap.Rows, 2)
	assert.Equal(t, "a@x.com", snap.Rows[0]["Email_ID"])
	assert.Equal(t, "Completed", snap.Rows[0]["Personal_Status"])
	assert.Equal(t, "Completed", snap.Rows[1]["Payment_Status"])
}

func TestLoadXLSXNamedSheet(t *testing.T) {
	f := excelize.NewFile()
	_, err := f.NewSheet("April")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("April", "A1", &[]interface{}{"Email_ID"}))
	require.NoError(t, f.SetSheetRow("April", "A2", &[]interface{}{"x@y.com"}))
	path := filepath.Join(t.TempDir(), "named.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	snap, err := LoadSnapshot(context.Background(), "current",
		model.Source{Type: "xlsx", URL: path, Sheet: "April"}, model.Options{})
	require.NoError(t, err)
	require.Len(t, snap.Rows, 1)
	assert.Equal(t, "x@y.com", snap.Rows[0]["Email_ID"])
}

// corruptCellRef rewrites the workbook archive, mangling one cell reference
// in the first worksheet so reading that row fails while the rest of the
// sheet stays readable.
func corruptCellRef(t *testing.T, src, cellRef string) string {
	t.Helper()
	r, err := zip.OpenReader(src)
	require.NoError(t, err)
	defer r.Close()

	dst := filepath.Join(t.TempDir(), "corrupt.xlsx")
	out, err := os.Create(dst)
	require.NoError(t, err)
	w := zip.NewWriter(out)
	for _, zf := range r.File {
		rc, err := zf.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)
		if zf.Name == "xl/worksheets/sheet1.xml" {
			data = bytes.ReplaceAll(data, []byte(`r="`+cellRef+`"`), []byte(`r="`+cellRef+`!"`))
		}
		fw, err := w.Create(zf.Name)
		require.NoError(t, err)
		_, err = fw.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	require.NoError(t, out.Close())
	return dst
}

func TestLoadXLSXUnreadableRow(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Email_ID", "Personal_Status", "Payment_Status"},
		{"a@x.com", "Completed", ""},
		{"b@x.com", "", "Completed"},
		{"c@x.com", "Completed", "Completed"},
	})
	corrupted := corruptCellRef(t, path, "A3")

	_, err := LoadSnapshot(context.Background(), "previous",
		model.Source{Type: "xlsx", URL: corrupted}, model.Options{})
	require.Error(t, err)

	snap, err := LoadSnapshot(context.Background(), "previous",
		model.Source{Type: "xlsx", URL: corrupted}, model.Options{Lenient: true})
	require.NoError(t, err)
	require.Len(t, snap.Rows, 2)
	assert.Equal(t, "a@x.com", snap.Rows[0]["Email_ID"])
	assert.Equal(t, "c@x.com", snap.Rows[1]["Email_ID"])
}

func TestLoadXLSXMissingSheet(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{{"Email_ID"}})

	_, err := LoadSnapshot(context.Background(), "current",
		model.Source{Type: "xlsx", URL: path, Sheet: "Nope"}, model.Options{})
	require.Error(t, err)
}
