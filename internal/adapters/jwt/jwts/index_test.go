package jwts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rendau/jobly/internal/errs"
)

func TestRoundTrip(t *testing.T) {
	p := New("test-secret")

	token, err := p.Create("jdoe", 60, map[string]any{"is_admin": true})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := p.Validate(token)
	require.NoError(t, err)
	require.Equal(t, "jdoe", claims["sub"])
	require.Equal(t, true, claims["is_admin"])
}

func TestExpiredToken(t *testing.T) {
	p := New("test-secret")

	token, err := p.Create("jdoe", -60, nil)
	require.NoError(t, err)

	_, err = p.Validate(token)
	require.ErrorIs(t, err, errs.BadJwt)
}

func TestWrongSecret(t *testing.T) {
	token, err := New("secret-a").Create("jdoe", 60, nil)
	require.NoError(t, err)

	_, err = New("secret-b").Validate(token)
	require.ErrorIs(t, err, errs.BadJwt)
}

func TestGarbageToken(t *testing.T) {
	_, err := New("test-secret").Validate("not.a.token")
	require.ErrorIs(t, err, errs.BadJwt)
}

func TestNoExpiry(t *testing.T) {
	p := New("test-secret")

	token, err := p.Create("jdoe", 0, nil)
	require.NoError(t, err)

	claims, err := p.Validate(token)
	require.NoError(t, err)

	_, hasExp := claims["exp"]
	require.False(t, hasExp)

	iat, ok := claims["iat"].(float64)
	require.True(t, ok)
	require.InDelta(t, time.Now().Unix(), int64(iat), 5)
}
