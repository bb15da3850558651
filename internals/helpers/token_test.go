// file: internals/helpers/token_test.go
package helper

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParseAdminToken(t *testing.T) {
	adminID := uuid.New()

	token, err := IssueAdminToken(adminID, "admin_bimbel", "rahasia", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseAdminToken(token, "rahasia")
	require.NoError(t, err)
	assert.Equal(t, adminID, claims.AdminID)
	assert.Equal(t, "admin_bimbel", claims.Username)
}

func TestParseAdminToken_WrongSecret(t *testing.T) {
	token, err := IssueAdminToken(uuid.New(), "admin_bimbel", "rahasia", time.Hour)
	require.NoError(t, err)

	_, err = ParseAdminToken(token, "secret-lain")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseAdminToken_Expired(t *testing.T) {
	token, err := IssueAdminToken(uuid.New(), "admin_bimbel", "rahasia", -time.Minute)
	require.NoError(t, err)

	_, err = ParseAdminToken(token, "rahasia")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseAdminToken_Garbage(t *testing.T) {
	_, err := ParseAdminToken("bukan.token.jwt", "rahasia")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
