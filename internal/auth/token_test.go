package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gavel/internal/model"
)

const testSecret = "test-secret-32-bytes-long-xxxxx"

func newTestManager(t *testing.T) (*TokenManager, *clockwork.FakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClock()
	return NewTokenManager(testSecret, time.Hour, clock), clock
}

func TestTokenManager_IssueAndVerify(t *testing.T) {
	t.Parallel()

	m, _ := newTestManager(t)

	token, err := m.Issue("principal-1", model.RoleCandidate)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "principal-1", claims.PrincipalID)
	assert.Equal(t, model.RoleCandidate, claims.Role)
}

func TestTokenManager_ExpiryIsOneHour(t *testing.T) {
	t.Parallel()

	m, clock := newTestManager(t)

	token, err := m.Issue("principal-1", model.RoleClient)
	require.NoError(t, err)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, clock.Now().Add(time.Hour).Unix(), claims.ExpiresAt.Unix())

	clock.Advance(59 * time.Minute)
	_, err = m.Verify(token)
	assert.NoError(t, err)

	clock.Advance(2 * time.Minute)
	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClock()
	issuer := NewTokenManager("secret-a", time.Hour, clock)
	verifier := NewTokenManager("secret-b", time.Hour, clock)

	token, err := issuer.Issue("principal-1", model.RoleAdmin)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsUnsignedToken(t *testing.T) {
	t.Parallel()

	m, clock := newTestManager(t)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		PrincipalID: "principal-1",
		Role:        model.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(clock.Now().Add(time.Hour)),
		},
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsMalformedClaims(t *testing.T) {
	t.Parallel()

	m, clock := newTestManager(t)

	tests := []struct {
		name   string
		claims Claims
	}{
		{
			name: "missing principal id",
			claims: Claims{
				Role: model.RoleClient,
				RegisteredClaims: jwt.RegisteredClaims{
					ExpiresAt: jwt.NewNumericDate(clock.Now().Add(time.Hour)),
				},
			},
		},
		{
			name: "unknown role",
			claims: Claims{
				PrincipalID: "principal-1",
				Role:        model.Role("superuser"),
				RegisteredClaims: jwt.RegisteredClaims{
					ExpiresAt: jwt.NewNumericDate(clock.Now().Add(time.Hour)),
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, tt.claims).SignedString([]byte(testSecret))
			require.NoError(t, err)

			_, err = m.Verify(signed)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	t.Parallel()

	m, _ := newTestManager(t)

	_, err := m.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
