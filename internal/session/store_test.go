package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndValidate(t *testing.T) {
	s := NewMemoryStore(time.Hour)

	token, err := s.Create()
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.True(t, s.Validate(token))
	assert.False(t, s.Validate("no-such-token"))
	assert.False(t, s.Validate(""))
}

func TestTokensAreUnique(t *testing.T) {
	s := NewMemoryStore(time.Hour)

	a, err := s.Create()
	require.NoError(t, err)
	b, err := s.Create()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestRevoke(t *testing.T) {
	s := NewMemoryStore(time.Hour)

	token, err := s.Create()
	require.NoError(t, err)

	s.Revoke(token)
	assert.False(t, s.Validate(token))
}

func TestExpiry(t *testing.T) {
	s := NewMemoryStore(12 * time.Hour)

	now := time.Now()
	s.now = func() time.Time { return now }

	token, err := s.Create()
	require.NoError(t, err)
	assert.True(t, s.Validate(token))

	// TTL 內有效
	now = now.Add(11 * time.Hour)
	assert.True(t, s.Validate(token))

	// 過期後失效，且 session 被清掉
	now = now.Add(2 * time.Hour)
	assert.False(t, s.Validate(token))
	assert.False(t, s.Validate(token))
}
