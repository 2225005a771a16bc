package recipients

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"job-mailer/internal/models"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recipients.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadHeaderCSV(t *testing.T) {
	path := writeCSV(t, "email,name\nhr@acme.com,Alice\nJobs@Corp.io,Bob\n")

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []models.Recipient{
		{Email: "hr@acme.com", Name: "Alice"},
		{Email: "jobs@corp.io", Name: "Bob"},
	}, got)
}

func TestLoadHeaderlessCSV(t *testing.T) {
	path := writeCSV(t, "hr@acme.com,Alice\njobs@corp.io\n")

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []models.Recipient{
		{Email: "hr@acme.com", Name: "Alice"},
		{Email: "jobs@corp.io"},
	}, got)
}

func TestLoadDropsInvalidEmails(t *testing.T) {
	path := writeCSV(t, "email,name\nnot-an-email,Alice\n@nodomain,Bob\nuser@host,Carol\n")

	got, err := Load(path)
	require.NoError(t, err)
	// user@host 缺頂層網域也不收
	assert.Empty(t, got)
}

func TestLoadDedupeKeepsFirstAndBackfillsName(t *testing.T) {
	path := writeCSV(t, "email,name\na@x.com,\nA@X.COM ,Alice\nb@x.com,Bob\na@x.com,Zoe\n")

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []models.Recipient{
		{Email: "a@x.com", Name: "Alice"},
		{Email: "b@x.com", Name: "Bob"},
	}, got)
}

func TestLoadEndToEndScenario(t *testing.T) {
	path := writeCSV(t, "a@x.com,Alice\na@x.com,\nb@x.com,Bob\n")

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []models.Recipient{
		{Email: "a@x.com", Name: "Alice"},
		{Email: "b@x.com", Name: "Bob"},
	}, got)
}

func TestLoadZeroValidRowsIsNotAnError(t *testing.T) {
	path := writeCSV(t, "email,name\n")

	got, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadMissingFileReturnsFormatError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)

	var formatErr *FormatError
	assert.ErrorAs(t, err, &formatErr)
}

func TestDedupeBackfillsSubjectAndBody(t *testing.T) {
	got := Dedupe([]models.Recipient{
		{Email: "a@x.com", Name: "Alice"},
		{Email: "a@x.com", Subject: "Custom subject", Body: "Custom body"},
	})

	assert.Equal(t, []models.Recipient{
		{Email: "a@x.com", Name: "Alice", Subject: "Custom subject", Body: "Custom body"},
	}, got)
}
