package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduforum-dev/eduforum/internal/domain"
)

func TestJwtRoundTrip(t *testing.T) {
	svc := New("secret", time.Hour)

	principal := domain.Principal{Id: "u1", Name: "Ms. Albright", Role: domain.RoleTeacher}
	token, err := svc.NewToken(principal)
	require.NoError(t, err)

	got, err := svc.DecodePrincipal(token)
	require.NoError(t, err)
	assert.Equal(t, principal, *got)
}

func TestDecodePrincipalRejects(t *testing.T) {
	svc := New("secret", time.Hour)

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.DecodePrincipal("not-a-token")
		assert.Error(t, err)
	})

	t.Run("wrong key", func(t *testing.T) {
		other := New("other-secret", time.Hour)
		token, err := other.NewToken(domain.Principal{Id: "u1", Role: domain.RoleStudent})
		require.NoError(t, err)
		_, err = svc.DecodePrincipal(token)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := New("secret", -time.Hour)
		token, err := expired.NewToken(domain.Principal{Id: "u1", Role: domain.RoleStudent})
		require.NoError(t, err)
		_, err = svc.DecodePrincipal(token)
		assert.Error(t, err)
	})

	t.Run("unknown role", func(t *testing.T) {
		token, err := svc.NewToken(domain.Principal{Id: "u1", Role: "visitor"})
		require.NoError(t, err)
		_, err = svc.DecodePrincipal(token)
		assert.Error(t, err)
	})
}
