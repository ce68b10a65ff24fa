package jwtmanager

import (
	"context"
	"errors"
	"mhr-fhir-client/internal/app/drivers/logger"
	"mhr-fhir-client/internal/pkg/exceptions"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(now time.Time) *JWTManager {
	manager := NewJWTManager(logger.NewNopLogger())
	manager.now = func() time.Time { return now }
	return manager
}

func validCreateInput() *CreateTokenInput {
	return &CreateTokenInput{
		ClientID:     "client-1",
		ClientSecret: "a-very-secret-value",
		RedirectURL:  "https://provider/cb",
		Hpio:         "8003620000000000",
		UserID:       "8003610000000000",
	}
}

func TestCreateToken(t *testing.T) {
	ctx := context.Background()
	now := time.Unix(1700000000, 0)
	manager := newTestManager(now)

	t.Run("Claims", func(t *testing.T) {
		output, err := manager.CreateToken(ctx, validCreateInput())
		require.NoError(t, err)

		claims := jwt.MapClaims{}
		parsed, err := jwt.NewParser(jwt.WithoutClaimsValidation()).ParseWithClaims(output.Token, claims, func(*jwt.Token) (interface{}, error) {
			return []byte("a-very-secret-value"), nil
		})
		require.NoError(t, err)

		assert.Equal(t, "HS256", parsed.Method.Alg())
		assert.Equal(t, "client-1", claims["iss"])
		assert.Equal(t, "https://provider/cb", claims["aud"])
		assert.Equal(t, "8003620000000000", claims["organisationID"])
		assert.Equal(t, "8003610000000000", claims["userID"])
		assert.True(t, strings.HasPrefix(claims["jti"].(string), "uuid:"))
		assert.Equal(t, output.ID, claims["jti"])

		exp := int64(claims["exp"].(float64))
		iat := int64(claims["iat"].(float64))
		assert.Equal(t, int64(120), exp-iat)
		assert.Equal(t, now.Unix()+60, exp)
		assert.Equal(t, now.Unix()-60, iat)
	})

	t.Run("Unique IDs", func(t *testing.T) {
		first, err := manager.CreateToken(ctx, validCreateInput())
		require.NoError(t, err)
		second, err := manager.CreateToken(ctx, validCreateInput())
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("Missing User ID", func(t *testing.T) {
		input := validCreateInput()
		input.UserID = ""

		_, err := manager.CreateToken(ctx, input)
		var argErr *exceptions.ArgumentError
		require.True(t, errors.As(err, &argErr))
		assert.Equal(t, "userId", argErr.Param)
	})
}

func TestVerifyToken(t *testing.T) {
	ctx := context.Background()
	now := time.Unix(1700000000, 0)
	manager := newTestManager(now)

	created, err := manager.CreateToken(ctx, validCreateInput())
	require.NoError(t, err)

	t.Run("Valid Without Issuer Or Audience", func(t *testing.T) {
		output, err := manager.VerifyToken(ctx, &VerifyTokenInput{Token: created.Token, Secret: "a-very-secret-value"})
		require.NoError(t, err)
		assert.True(t, output.Valid)
		assert.Nil(t, output.Reason)
		assert.Equal(t, "client-1", output.Claims["iss"])
		assert.Equal(t, "HS256", output.Header["alg"])
	})

	t.Run("Valid With Issuer And Audience", func(t *testing.T) {
		output, err := manager.VerifyToken(ctx, &VerifyTokenInput{
			Token:       created.Token,
			Secret:      "a-very-secret-value",
			ClientID:    "client-1",
			RedirectURL: "https://provider/cb",
		})
		require.NoError(t, err)
		assert.True(t, output.Valid)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		output, err := manager.VerifyToken(ctx, &VerifyTokenInput{Token: created.Token, Secret: "another-secret"})
		require.NoError(t, err)
		assert.False(t, output.Valid)
		assert.True(t, errors.Is(output.Reason, jwt.ErrSignatureInvalid))
	})

	t.Run("Wrong Issuer", func(t *testing.T) {
		output, err := manager.VerifyToken(ctx, &VerifyTokenInput{Token: created.Token, Secret: "a-very-secret-value", ClientID: "other"})
		require.NoError(t, err)
		assert.False(t, output.Valid)
		assert.ErrorIs(t, output.Reason, jwt.ErrTokenInvalidIssuer)
	})

	t.Run("Wrong Audience", func(t *testing.T) {
		output, err := manager.VerifyToken(ctx, &VerifyTokenInput{Token: created.Token, Secret: "a-very-secret-value", RedirectURL: "https://elsewhere"})
		require.NoError(t, err)
		assert.False(t, output.Valid)
		assert.ErrorIs(t, output.Reason, jwt.ErrTokenInvalidAudience)
	})

	t.Run("Expired", func(t *testing.T) {
		later := newTestManager(now.Add(2 * time.Minute))
		output, err := later.VerifyToken(ctx, &VerifyTokenInput{Token: created.Token, Secret: "a-very-secret-value"})
		require.NoError(t, err)
		assert.False(t, output.Valid)
		assert.ErrorIs(t, output.Reason, jwt.ErrTokenExpired)
	})

	t.Run("Malformed", func(t *testing.T) {
		output, err := manager.VerifyToken(ctx, &VerifyTokenInput{Token: "not.a.jwt", Secret: "a-very-secret-value"})
		require.NoError(t, err)
		assert.False(t, output.Valid)
		assert.Error(t, output.Reason)
	})

	t.Run("Missing Token", func(t *testing.T) {
		_, err := manager.VerifyToken(ctx, &VerifyTokenInput{Secret: "a-very-secret-value"})
		var argErr *exceptions.ArgumentError
		require.True(t, errors.As(err, &argErr))
		assert.Equal(t, "token", argErr.Param)
	})
}
