package auth

import (
	"testing"
	"time"

	"github.com/courtside/venue-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleUser() *models.User {
	return &models.User{ID: "owner-1", Name: "Asha", Email: "asha@example.com", Role: models.RoleOwner}
}

func TestIssueAndParse(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	tok, claims, err := issuer.Issue(sampleUser())
	require.NoError(t, err)
	assert.NotEmpty(t, claims.ID)

	parsed, err := issuer.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "owner-1", parsed.Sub)
	assert.Equal(t, models.RoleOwner, parsed.Role)
	assert.Equal(t, "asha@example.com", parsed.Email)
	assert.Equal(t, claims.ID, parsed.ID)
}

func TestParse_WrongSecret(t *testing.T) {
	tok, _, err := NewTokenIssuer("secret", time.Hour).Issue(sampleUser())
	require.NoError(t, err)

	_, err = NewTokenIssuer("other", time.Hour).Parse(tok)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_Expired(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Minute)
	issuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	tok, _, err := issuer.Issue(sampleUser())
	require.NoError(t, err)

	_, err = issuer.Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthorize(t *testing.T) {
	owner := &Identity{ID: "owner-1", Role: models.RoleOwner}

	assert.NoError(t, Authorize(owner))
	assert.NoError(t, Authorize(owner, models.RoleOwner))
	assert.NoError(t, Authorize(owner, models.RoleOwner, models.RoleAdmin))
	assert.ErrorIs(t, Authorize(owner, models.RoleAdmin), ErrUnauthorized)
	assert.ErrorIs(t, Authorize(nil, models.RoleOwner), ErrUnauthorized)
	assert.ErrorIs(t, Authorize(&Identity{Role: models.RoleOwner}), ErrUnauthorized)
}
