package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCompareCommand(t *testing.T) {
	dir := t.TempDir()
	prev := writeCSV(t, dir, "prev.csv",
		"Email_ID,Personal_Status,Academic_Status,Upload_Status,Payment_Status\n"+
			"id1,,,,Completed\n"+
			"id2,,Completed,,\n")
	curr := writeCSV(t, dir, "curr.csv",
		"Email_ID,Personal_Status,Academic_Status,Upload_Status,Payment_Status\n"+
			"id1,,,,Completed\n"+
			"id2,,,Completed,\n"+
			"id3,Completed,,,\n")

	root := NewRootCommand("test")
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs([]string{"compare", "--prev", prev, "--curr", curr})

	require.NoError(t, root.Execute())

	output := buf.String()
	assert.Contains(t, output, "Registration Summary")
	assert.Contains(t, output, "Total in Previous Sheet")
	assert.Contains(t, output, "Stage Transition Matrix")
}

func TestCompareCommandExport(t *testing.T) {
	dir := t.TempDir()
	prev := writeCSV(t, dir, "prev.csv",
		"Email_ID,Personal_Status,Academic_Status,Upload_Status,Payment_Status\nid1,,,,Completed\n")
	curr := writeCSV(t, dir, "curr.csv",
		"Email_ID,Personal_Status,Academic_Status,Upload_Status,Payment_Status\nid1,,,,Completed\n")
	outDir := filepath.Join(dir, "reports")

	root := NewRootCommand("test")
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs([]string{"compare", "--prev", prev, "--curr", curr, "--out", outDir})

	require.NoError(t, root.Execute())

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "one job directory expected")
	files, err := os.ReadDir(filepath.Join(outDir, entries[0].Name()))
	require.NoError(t, err)
	assert.Len(t, files, 3)
}

func TestCompareCommandMissingColumns(t *testing.T) {
	dir := t.TempDir()
	prev := writeCSV(t, dir, "prev.csv", "Email_ID\nid1\n")
	curr := writeCSV(t, dir, "curr.csv", "Email_ID\nid1\n")

	root := NewRootCommand("test")
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))
	root.SetArgs([]string{"compare", "--prev", prev, "--curr", curr})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing columns")
}
