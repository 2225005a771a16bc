package mailer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"job-mailer/internal/config"
	"job-mailer/internal/models"
)

func TestResolveResumeDefault(t *testing.T) {
	dir := t.TempDir()
	defaultPath := filepath.Join(dir, "resume.pdf")
	require.NoError(t, os.WriteFile(defaultPath, []byte("%PDF"), 0644))

	att, err := ResolveResume("", "", defaultPath)
	require.NoError(t, err)
	assert.Equal(t, "resume.pdf", att.Filename)
	assert.True(t, filepath.IsAbs(att.Path))
}

func TestResolveResumeUploadWins(t *testing.T) {
	dir := t.TempDir()
	uploadPath := filepath.Join(dir, "tmp-upload-1234")
	require.NoError(t, os.WriteFile(uploadPath, []byte("%PDF"), 0644))

	att, err := ResolveResume(uploadPath, "My Resume.pdf", filepath.Join(dir, "missing.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "My Resume.pdf", att.Filename)
}

func TestResolveResumeMissing(t *testing.T) {
	_, err := ResolveResume("", "", filepath.Join(t.TempDir(), "missing.pdf"))
	require.Error(t, err)

	var missing *MissingResumeError
	require.ErrorAs(t, err, &missing)
	assert.Contains(t, missing.Error(), "missing.pdf")
}

func TestNewMessageID(t *testing.T) {
	id := newMessageID("me@example.com")
	assert.Regexp(t, `^<[0-9a-f-]+@example\.com>$`, id)

	// 沒有網域時退回固定值
	id = newMessageID("bogus")
	assert.Contains(t, id, "@job-mailer.local>")
}

func TestNewSenderSelection(t *testing.T) {
	assert.Equal(t, "DryRun", NewSender(&config.Config{DryRun: true, MailProvider: "smtp"}).Name())
	assert.Equal(t, "SendGrid", NewSender(&config.Config{MailProvider: "sendgrid"}).Name())
	assert.Equal(t, "SMTP", NewSender(&config.Config{MailProvider: "smtp"}).Name())
}

func TestDryRunSender(t *testing.T) {
	s := NewDryRunSender()

	id, err := s.Send(&models.MailMessage{ToAddress: "hr@acme.com", Subject: "hello"})
	require.NoError(t, err)
	assert.Contains(t, id, "dry-run")
}
