package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ukaji3/pisheet-go/pkg/pisheet"
	"github.com/ukaji3/pisheet-go/pkg/pisheet/models"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestGenerateCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pi.xlsx")

	stdout, stderr, err := execute(t, "--out", path, "--rows", "10", "--type", "full", "--with-leibniz", "--verbose")
	require.NoError(t, err)
	require.Equal(t, "Hotovo → "+path+"\n", stdout)
	require.Contains(t, stderr, "generating workbook")
	require.Contains(t, stderr, "terms=2000")
	require.Contains(t, stderr, "sheet=Leibniz")

	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestGenerateCommandErrors(t *testing.T) {
	dir := t.TempDir()

	_, _, err := execute(t, "--rows", "10")
	require.Error(t, err)

	_, _, err = execute(t, "--out", filepath.Join(dir, "pi.xlsx"), "--type", "huge")
	require.Error(t, err)

	_, _, err = execute(t, "--out", filepath.Join(dir, "pi.xlsx"), "--rows", "-1")
	require.ErrorIs(t, err, pisheet.ErrNegativeRows)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestInspectCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pi.xlsx")
	_, _, err := execute(t, "--out", path, "--rows", "5")
	require.NoError(t, err)

	stdout, _, err := execute(t, "inspect", path, "--mode", "light")
	require.NoError(t, err)
	var wb models.WorkbookData
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(stdout)), &wb))
	require.Equal(t, []string{"Kružnice", "MonteCarlo"}, wb.SheetNames)
	require.Equal(t, 6, wb.Sheets["MonteCarlo"].RowCount)

	sheetsDir := filepath.Join(dir, "sheets")
	areasDir := filepath.Join(dir, "areas")
	stdout, _, err = execute(t, "inspect", path, "--sheets-dir", sheetsDir, "--print-areas-dir", areasDir, "--pretty")
	require.NoError(t, err)
	require.Empty(t, stdout)
	require.FileExists(t, filepath.Join(sheetsDir, "MonteCarlo.json"))
	require.FileExists(t, filepath.Join(sheetsDir, "Kružnice.json"))
	require.FileExists(t, filepath.Join(areasDir, "MonteCarlo_area1.json"))

	_, _, err = execute(t, "inspect", path, "--mode", "fast")
	require.Error(t, err)
}
