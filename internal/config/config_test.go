package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, 465, cfg.SMTPPort)
	assert.True(t, cfg.SMTPSecure)
	assert.Equal(t, "smtp", cfg.MailProvider)
	assert.Equal(t, "0 9 * * *", cfg.ScheduleCron)
	assert.False(t, cfg.DryRun)
	assert.False(t, cfg.AuthEnabled())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "587")
	t.Setenv("SMTP_SECURE", "false")
	t.Setenv("SMTP_USER", "me@example.com")
	t.Setenv("SMTP_PASS", "secret")
	t.Setenv("DELAY_MS_BETWEEN_EMAILS", "250")
	t.Setenv("DRY_RUN", "yes")
	t.Setenv("UI_AUTH_USER", " admin ")
	t.Setenv("UI_AUTH_PASS", "hunter2")

	cfg := Load()

	assert.Equal(t, "smtp.example.com", cfg.SMTPHost)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.False(t, cfg.SMTPSecure)
	assert.Equal(t, int64(250), cfg.SendDelay.Milliseconds())
	assert.True(t, cfg.DryRun)
	assert.Equal(t, "admin", cfg.UIAuthUser)
	assert.True(t, cfg.AuthEnabled())

	// FROM_EMAIL 未設定時退回 SMTP_USER
	assert.Equal(t, "me@example.com", cfg.FromEmail)
}

func TestValidateMissingSMTP(t *testing.T) {
	cfg := &Config{MailProvider: "smtp"}

	err := cfg.Validate()
	require.Error(t, err)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Missing, "SMTP_HOST")
	assert.Contains(t, cfgErr.Missing, "SMTP_USER")
	assert.Contains(t, cfgErr.Missing, "SMTP_PASS")
	assert.Contains(t, cfgErr.Missing, "FROM_EMAIL")
}

func TestValidateSendGridMode(t *testing.T) {
	cfg := &Config{MailProvider: "sendgrid", FromEmail: "me@example.com"}

	err := cfg.Validate()
	require.Error(t, err)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, []string{"SENDGRID_API_KEY"}, cfgErr.Missing)

	cfg.SendGridAPIKey = "SG.key"
	assert.NoError(t, cfg.Validate())
}

func TestValidateComplete(t *testing.T) {
	cfg := &Config{
		MailProvider: "smtp",
		SMTPHost:     "smtp.example.com",
		SMTPPort:     465,
		SMTPUser:     "me@example.com",
		SMTPPass:     "secret",
		FromEmail:    "me@example.com",
	}
	assert.NoError(t, cfg.Validate())
}
