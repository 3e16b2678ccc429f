package jwt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_GenerateAndValidate(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(time.Minute))

	userID := uuid.New()
	ctx := context.Background()

	token, err := j.Generate(ctx, userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	assert.NoError(t, j.Validate(ctx, token))

	claims, err := j.GetClaims(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(-time.Minute))
	ctx := context.Background()

	token, err := j.Generate(ctx, uuid.New())
	require.NoError(t, err)

	assert.Error(t, j.Validate(ctx, token))

	claims, err := j.GetClaims(ctx, token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWT_WrongSecret(t *testing.T) {
	ctx := context.Background()
	token, err := New(WithSecretKey("one")).Generate(ctx, uuid.New())
	require.NoError(t, err)

	assert.Error(t, New(WithSecretKey("two")).Validate(ctx, token))
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New(WithSecretKey("secret"))
	assert.Error(t, j.Validate(context.Background(), "invalid.token.string"))
}

func TestJWT_NonUUIDSubject(t *testing.T) {
	secret := "secret"
	raw := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.RegisteredClaims{
		Subject:   "not-a-uuid",
		ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Minute)),
	})
	token, err := raw.SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = New(WithSecretKey(secret)).GetClaims(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidSubject)
}

func TestJWT_RejectsNoneAlgorithm(t *testing.T) {
	raw := gojwt.NewWithClaims(gojwt.SigningMethodNone, gojwt.RegisteredClaims{
		Subject: uuid.NewString(),
	})
	token, err := raw.SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	assert.Error(t, New(WithSecretKey("secret")).Validate(context.Background(), token))
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New()
	ctx := context.Background()

	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "valid", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer token", want: "token"},
		{name: "missing", header: "", wantErr: ErrMissingAuthHeader},
		{name: "wrong scheme", header: "Basic abc", wantErr: ErrInvalidAuthHeader},
		{name: "no token", header: "Bearer", wantErr: ErrInvalidAuthHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			got, err := j.GetTokenFromRequest(ctx, req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJWT_RequiresExpiration(t *testing.T) {
	secret := "secret"
	raw := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.RegisteredClaims{
		Subject: uuid.NewString(),
	})
	token, err := raw.SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = New(WithSecretKey(secret)).GetClaims(context.Background(), token)
	assert.ErrorIs(t, err, gojwt.ErrTokenRequiredClaimMissing)
}

func TestJWT_RejectsOtherHMACAlgorithms(t *testing.T) {
	secret := "secret"
	raw := gojwt.NewWithClaims(gojwt.SigningMethodHS512, gojwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Minute)),
	})
	token, err := raw.SignedString([]byte(secret))
	require.NoError(t, err)

	assert.Error(t, New(WithSecretKey(secret)).Validate(context.Background(), token))
}
