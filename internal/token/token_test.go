package token_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tayo/teamwork-backend/internal/domain"
	"github.com/tayo/teamwork-backend/internal/token"
)

func TestManager_IssueAndVerify(t *testing.T) {
	m := token.NewManager("test-secret", time.Hour)

	user := &domain.User{
		ID:        42,
		FirstName: "Ore",
		Admin:     true,
	}

	tok, err := m.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := m.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "Ore", claims.FirstName)
	assert.True(t, claims.Admin)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestManager_Verify_Errors(t *testing.T) {
	m := token.NewManager("test-secret", time.Hour)

	valid, err := m.Issue(&domain.User{ID: 1, FirstName: "Toyosi"})
	require.NoError(t, err)

	other := token.NewManager("different-secret", time.Hour)
	signedElsewhere, err := other.Issue(&domain.User{ID: 1, FirstName: "Toyosi"})
	require.NoError(t, err)

	expired := token.NewManager("test-secret", -time.Minute)
	expiredToken, err := expired.Issue(&domain.User{ID: 1, FirstName: "Toyosi"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{
			name:    "valid token",
			token:   valid,
			wantErr: nil,
		},
		{
			name:    "empty token",
			token:   "",
			wantErr: domain.ErrNoToken,
		},
		{
			name:    "malformed token",
			token:   "notavalidjwt",
			wantErr: domain.ErrInvalidToken,
		},
		{
			name:    "garbage segments",
			token:   "invalid.token.here",
			wantErr: domain.ErrInvalidToken,
		},
		{
			name:    "wrong signing secret",
			token:   signedElsewhere,
			wantErr: domain.ErrInvalidToken,
		},
		{
			name:    "expired token",
			token:   expiredToken,
			wantErr: domain.ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := m.Verify(tt.token)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
				return
			}

			require.NoError(t, err)
			assert.NotNil(t, claims)
		})
	}
}

// A token keeps the admin flag it was minted with for its whole lifetime;
// verification never consults the user store again.
func TestManager_ClaimsTrustedUntilExpiry(t *testing.T) {
	m := token.NewManager("test-secret", time.Hour)

	user := &domain.User{ID: 7, FirstName: "Ore", Admin: true}
	tok, err := m.Issue(user)
	require.NoError(t, err)

	// Simulate the stored user losing the admin flag after issuance.
	user.Admin = false

	claims, err := m.Verify(tok)
	require.NoError(t, err)
	assert.True(t, claims.Admin)
}
