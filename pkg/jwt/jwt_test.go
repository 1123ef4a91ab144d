package jwt

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	userID := uuid.New()
	token, err := GenerateToken("ada@example.com", userID)
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)

	parsed, err := UserIDFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
	assert.Equal(t, "ada@example.com", claims["email"])
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateToken("ada@example.com", uuid.New())
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "another-secret")
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestUserIDFromClaimsMissing(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := UserIDFromClaims(map[string]interface{}{"email": "x"})
	assert.Error(t, err)
}
