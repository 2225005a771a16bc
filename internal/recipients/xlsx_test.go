package recipients

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"job-mailer/internal/models"
)

func writeXLSX(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	path := filepath.Join(t.TempDir(), "recipients.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadXLSX(t *testing.T) {
	path := writeXLSX(t, [][]interface{}{
		{"Email", "Recipient Name", "Subject", "Body"},
		{"HR@Acme.com", "Alice", "Hello Acme", "custom body"},
		{"jobs@corp.io", "", "", ""},
		{"not-an-email", "Nope", "", ""},
	})

	got, err := LoadXLSX(path)
	require.NoError(t, err)
	assert.Equal(t, []models.Recipient{
		{Email: "hr@acme.com", Name: "Alice", Subject: "Hello Acme", Body: "custom body"},
		{Email: "jobs@corp.io"},
	}, got)
}

func TestLoadXLSXColumnAliases(t *testing.T) {
	// "receipnt name" 是客戶表單的常見拼字錯誤，需照樣支援
	path := writeXLSX(t, [][]interface{}{
		{"MAIL ID", "Receipnt Name"},
		{"hr@acme.com", "Alice"},
	})

	got, err := LoadXLSX(path)
	require.NoError(t, err)
	assert.Equal(t, []models.Recipient{
		{Email: "hr@acme.com", Name: "Alice"},
	}, got)
}

func TestLoadXLSXDedupeBackfill(t *testing.T) {
	path := writeXLSX(t, [][]interface{}{
		{"email", "name", "subject", "body"},
		{"a@x.com", "", "Subject A", ""},
		{"A@X.com", "Alice", "", "Body A"},
	})

	got, err := LoadXLSX(path)
	require.NoError(t, err)
	assert.Equal(t, []models.Recipient{
		{Email: "a@x.com", Name: "Alice", Subject: "Subject A", Body: "Body A"},
	}, got)
}

func TestLoadXLSXNotAWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bogus.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("this is not a workbook"), 0644))

	_, err := LoadXLSX(path)
	require.Error(t, err)

	var formatErr *FormatError
	assert.ErrorAs(t, err, &formatErr)
}

func TestTemplateWorkbook(t *testing.T) {
	buf, err := TemplateWorkbook()
	require.NoError(t, err)
	require.NotEmpty(t, buf)

	f, err := excelize.OpenReader(bytes.NewReader(buf))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("recipients")
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, []string{"email", "recipient name", "subject", "body"}, rows[0])
}
