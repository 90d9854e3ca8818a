package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAdminTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateAdminToken()
	require.NoError(t, err)
	require.NotEmpty(t, token)

	require.NoError(t, VerifyAdminToken(token))
}

func TestVerifyAdminToken_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateAdminToken()
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "other-secret")
	require.Error(t, VerifyAdminToken(token))
}

func TestVerifyAdminToken_Garbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	require.Error(t, VerifyAdminToken(""))
	require.Error(t, VerifyAdminToken("definitely.not.a-token"))
}
