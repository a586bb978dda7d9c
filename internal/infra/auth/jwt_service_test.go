package auth

import (
	"testing"
	"time"

	"passport/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) *jwtService {
	cfg := &config.Config{}
	cfg.SecretKey.JWT = "test-secret-key-for-jwt"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_EmptySecret(t *testing.T) {
	cfg := &config.Config{}

	svc, err := NewJWTService(cfg)

	assert.Nil(t, svc)
	assert.ErrorContains(t, err, "jwt secret must be provided")
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()

	token, err := svc.Issue(userID, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "admin", claims.Role)

	// Expiry is one hour out from issuance.
	remaining := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, remaining, 59*time.Minute)
	assert.LessOrEqual(t, remaining, time.Hour)
}

func TestJWTService_Validate_WrongSecret(t *testing.T) {
	svc := newTestJWTService(t)

	otherCfg := &config.Config{}
	otherCfg.SecretKey.JWT = "a-different-secret"
	other, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := other.Issue(uuid.New(), "")
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestJWTService_Validate_Garbage(t *testing.T) {
	svc := newTestJWTService(t)

	claims, err := svc.Validate("not.a.token")
	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestJWTService_Validate_Expired(t *testing.T) {
	svc := newTestJWTService(t)

	// Hand-build a token with the same secret but an expiry in the past.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid": uuid.New().String(),
		"exp": time.Now().Add(-time.Minute).Unix(),
	})
	signed, err := expired.SignedString(svc.secret)
	require.NoError(t, err)

	claims, err := svc.Validate(signed)
	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestJWTService_Validate_RejectsNonHMAC(t *testing.T) {
	svc := newTestJWTService(t)

	// alg=none tokens must never validate.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"uid": uuid.New().String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	assert.Nil(t, claims)
	assert.Error(t, err)
}
