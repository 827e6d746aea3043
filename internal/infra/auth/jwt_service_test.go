package auth

import (
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{TokenTTL: ttl}}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(newTestConfig("", time.Hour))
	assert.Error(t, err)

	_, err = NewJWTService(newTestConfig("secret", 0))
	assert.Error(t, err)
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test-secret", time.Hour))
	require.NoError(t, err)
	assert.Equal(t, time.Hour, svc.TokenTTL())

	tests := []entity.Principal{
		{ID: 7, Kind: entity.PrincipalUser},
		{ID: 3, Kind: entity.PrincipalStaff, Role: entity.RoleAdmin},
	}
	for _, principal := range tests {
		t.Run(string(principal.Kind), func(t *testing.T) {
			token, err := svc.GenerateToken(principal)
			require.NoError(t, err)
			assert.NotEmpty(t, token)

			got, err := svc.ValidateToken(token)
			require.NoError(t, err)
			assert.Equal(t, principal, *got)
		})
	}
}

func TestJWTService_Expired(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test-secret", time.Minute))
	require.NoError(t, err)

	impl := svc.(*jwtService)
	issuedAt := time.Now().Add(-2 * time.Hour)
	impl.now = func() time.Time { return issuedAt }

	token, err := svc.GenerateToken(entity.Principal{ID: 1, Kind: entity.PrincipalUser})
	require.NoError(t, err)

	impl.now = time.Now
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig("secret-a", time.Hour))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig("secret-b", time.Hour))
	require.NoError(t, err)

	token, err := issuer.GenerateToken(entity.Principal{ID: 1, Kind: entity.PrincipalUser})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestJWTService_Malformed(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test-secret", time.Hour))
	require.NoError(t, err)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.ValidateToken(token)
		assert.Error(t, err, "token %q", token)
	}
}

func TestJWTService_RejectsUnknownKind(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test-secret", time.Hour))
	require.NoError(t, err)

	claims := service.Claims{
		Kind: "robot",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsNoneAlgorithm(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test-secret", time.Hour))
	require.NoError(t, err)

	claims := service.Claims{
		Kind: entity.PrincipalUser,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}
