package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	svc := NewJWTService(testConfig())

	token, err := svc.GenerateSessionToken("abc-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sessionID, err := svc.ParseSessionID(token)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", sessionID)
}

func TestSessionTokenWrongKey(t *testing.T) {
	svc := NewJWTService(testConfig())
	token, err := svc.GenerateSessionToken("abc-123")
	require.NoError(t, err)

	otherCfg := testConfig()
	otherCfg.SessionSecretKey = "a-different-secret"
	other := NewJWTService(otherCfg)

	_, err = other.ParseSessionID(token)
	assert.Error(t, err)
}

func TestSessionTokenGarbage(t *testing.T) {
	svc := NewJWTService(testConfig())

	_, err := svc.ParseSessionID("not.a.token")
	assert.Error(t, err)

	_, err = svc.ParseSessionID("")
	assert.Error(t, err)
}
