package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"job-mailer/internal/config"
)

func TestStartRejectsInvalidCron(t *testing.T) {
	cfg := &config.Config{ScheduleCron: "not a cron", ScheduleTZ: "UTC"}

	_, err := Start(cfg, func() {})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SCHEDULE_CRON")
}

func TestStartRejectsInvalidTimezone(t *testing.T) {
	cfg := &config.Config{ScheduleCron: "0 9 * * *", ScheduleTZ: "Mars/Olympus"}

	_, err := Start(cfg, func() {})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SCHEDULE_TZ")
}

func TestStartAndStop(t *testing.T) {
	cfg := &config.Config{ScheduleCron: "0 9 * * *", ScheduleTZ: "Asia/Kolkata"}

	s, err := Start(cfg, func() {})
	require.NoError(t, err)
	s.Stop()
}
