package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateSigner_IssueAndVerify(t *testing.T) {
	s := NewStateSigner("secret", time.Minute)

	state, nonce, err := s.Issue()
	require.NoError(t, err)
	require.NotEmpty(t, nonce)

	got, err := s.Verify(state)
	require.NoError(t, err)
	assert.Equal(t, nonce, got)
}

func TestStateSigner_UniqueNonces(t *testing.T) {
	s := NewStateSigner("secret", time.Minute)
	_, a, err := s.Issue()
	require.NoError(t, err)
	_, b, err := s.Issue()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestStateSigner_Expired(t *testing.T) {
	s := NewStateSigner("secret", time.Minute)
	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	state, _, err := s.Issue()
	require.NoError(t, err)

	s.now = func() time.Time { return base.Add(2 * time.Minute) }
	_, err = s.Verify(state)
	assert.ErrorIs(t, err, ErrInvalidOAuthState)
}

func TestStateSigner_WrongKeyOrTampered(t *testing.T) {
	state, _, err := NewStateSigner("one", time.Minute).Issue()
	require.NoError(t, err)

	_, err = NewStateSigner("two", time.Minute).Verify(state)
	assert.ErrorIs(t, err, ErrInvalidOAuthState)

	_, err = NewStateSigner("one", time.Minute).Verify(state + "x")
	assert.ErrorIs(t, err, ErrInvalidOAuthState)

	_, err = NewStateSigner("one", time.Minute).Verify("")
	assert.ErrorIs(t, err, ErrInvalidOAuthState)
}
