package utils

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kuppisite/video-catalog/models"
)

const (
	testIssuer  = "video-catalog-test"
	testSignKey = "test-sign-key"
)

func TestGenerateJWTToken_RoundTrip(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, 42, models.RoleAdmin, time.Hour, testSignKey)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)
	assert.Equal(t, int64(42), token.UserID)
	assert.Equal(t, models.RoleAdmin, token.Role)

	parsed, err := ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
	assert.Equal(t, models.RoleAdmin, parsed.Role)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		role     string
		duration time.Duration
		signKey  string
	}{
		{name: "empty issuer", role: models.RoleUser, duration: time.Hour, signKey: testSignKey},
		{name: "empty role", issuer: testIssuer, duration: time.Hour, signKey: testSignKey},
		{name: "zero duration", issuer: testIssuer, role: models.RoleUser, signKey: testSignKey},
		{name: "empty sign key", issuer: testIssuer, role: models.RoleUser, duration: time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, tt.role, tt.duration, tt.signKey)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, 42, models.RoleUser, -time.Minute, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, 42, models.RoleUser, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, "another-key", testIssuer)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	token, err := GenerateJWTToken("some-other-service", 42, models.RoleUser, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
}

func TestValidateAndParseJWTToken_TamperedPayload(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, 42, models.RoleUser, time.Hour, testSignKey)
	require.NoError(t, err)

	parts := strings.Split(token.SignedString, ".")
	require.Len(t, parts, 3)
	// flip the payload; the signature no longer matches
	parts[1] = parts[1][1:] + "A"
	tampered := strings.Join(parts, ".")

	_, err = ValidateAndParseJWTToken(tampered, testSignKey, testIssuer)
	assert.Error(t, err)
}

// Tokens signed with "alg":"none" must be rejected even when the rest of the
// claim set is well-formed.
func TestValidateAndParseJWTToken_RejectsUnsignedAlg(t *testing.T) {
	claims := &models.TokenClaims{
		Role: models.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Subject:   "42",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(tokenString, testSignKey, testIssuer)
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_Garbage(t *testing.T) {
	for _, tokenString := range []string{"", "garbage", "a.b.c"} {
		_, err := ValidateAndParseJWTToken(tokenString, testSignKey, testIssuer)
		assert.Error(t, err)
	}
}

func TestToken_GetUserID(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, 42, models.RoleUser, time.Hour, testSignKey)
	require.NoError(t, err)

	userID, err := token.GetUserID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestToken_GetUserID_NonNumericSubject(t *testing.T) {
	claims := &models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "not-a-number"},
	}
	token := models.Token{Token: jwt.NewWithClaims(jwt.SigningMethodHS256, claims)}

	_, err := token.GetUserID()
	assert.Error(t, err)
	assert.False(t, errors.Is(err, jwt.ErrTokenExpired))
}
