package jwtmanager

import (
	"context"
	"fmt"
	"mhr-fhir-client/internal/app/contracts"
	"mhr-fhir-client/internal/pkg/constvars"
	"mhr-fhir-client/internal/pkg/exceptions"
	"mhr-fhir-client/internal/pkg/utils"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// JWTManager signs and verifies the HS256 assertions used by the provider
// JWT-bearer grant. The client secret is the signing key.
type JWTManager struct {
	log contracts.Logger
	now func() time.Time
}

// CreateTokenInput carries the values that end up in the assertion claims.
type CreateTokenInput struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Hpio         string
	UserID       string
}

type CreateTokenOutput struct {
	Token     string
	ID        string
	IssuedAt  int64
	ExpiresAt int64
}

// VerifyTokenInput leaves ClientID and RedirectURL empty to skip the issuer
// and audience checks.
type VerifyTokenInput struct {
	Token       string
	Secret      string
	ClientID    string
	RedirectURL string
}

// VerifyTokenOutput reports why a token was rejected in Reason. Reason
// wraps the jwt package errors, so errors.Is works against
// jwt.ErrTokenExpired and friends.
type VerifyTokenOutput struct {
	Valid  bool
	Header map[string]interface{}
	Claims map[string]interface{}
	Reason error
}

func NewJWTManager(logger contracts.Logger) *JWTManager {
	return &JWTManager{
		log: logger,
		now: time.Now,
	}
}

// CreateToken signs an assertion valid from one minute before now until one
// minute after.
func (j *JWTManager) CreateToken(ctx context.Context, in *CreateTokenInput) (*CreateTokenOutput, error) {
	requestID := utils.GetRequestID(ctx)
	j.log.Info("JWTManager.CreateToken called", constvars.LoggingRequestIDKey, requestID)

	if in == nil {
		return nil, exceptions.ErrNull("createTokenInput")
	}
	required := []struct {
		param string
		value string
	}{
		{"clientId", in.ClientID},
		{"clientSecret", in.ClientSecret},
		{"redirectUrl", in.RedirectURL},
		{"hpio", in.Hpio},
		{"userId", in.UserID},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return nil, exceptions.ErrEmptyOrNull(field.param)
		}
	}

	now := j.now().UTC().Unix()
	output := &CreateTokenOutput{
		ID:        constvars.JWTIDPrefix + uuid.NewString(),
		IssuedAt:  now - constvars.JWTClockSkewInSeconds,
		ExpiresAt: now + constvars.JWTClockSkewInSeconds,
	}

	claims := jwt.MapClaims{
		constvars.JWTClaimIssuer:         in.ClientID,
		constvars.JWTClaimAudience:       in.RedirectURL,
		constvars.JWTClaimExpiresAt:      output.ExpiresAt,
		constvars.JWTClaimIssuedAt:       output.IssuedAt,
		constvars.JWTClaimID:             output.ID,
		constvars.JWTClaimOrganisationID: in.Hpio,
		constvars.JWTClaimUserID:         in.UserID,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(in.ClientSecret))
	if err != nil {
		j.log.Error("JWTManager.CreateToken error signing token",
			constvars.LoggingRequestIDKey, requestID,
			constvars.LoggingErrorKey, err,
		)
		return nil, exceptions.ErrSignProviderAssertion(err)
	}
	output.Token = signed

	j.log.Info("JWTManager.CreateToken succeeded", constvars.LoggingRequestIDKey, requestID)
	return output, nil
}

// VerifyToken checks signature and lifetime, plus issuer and audience when
// requested. A rejected token is not an error: the result carries
// Valid=false and the Reason. Only missing arguments produce an error.
func (j *JWTManager) VerifyToken(ctx context.Context, in *VerifyTokenInput) (*VerifyTokenOutput, error) {
	requestID := utils.GetRequestID(ctx)
	j.log.Info("JWTManager.VerifyToken called", constvars.LoggingRequestIDKey, requestID)

	if in == nil {
		return nil, exceptions.ErrNull("verifyTokenInput")
	}
	if strings.TrimSpace(in.Token) == "" {
		return nil, exceptions.ErrEmptyOrNull("token")
	}
	if in.Secret == "" {
		return nil, exceptions.ErrEmptyOrNull("secret")
	}

	keyFunc := func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(in.Secret), nil
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	claims := jwt.MapClaims{}
	parsed, err := parser.ParseWithClaims(in.Token, claims, keyFunc)
	if err != nil {
		j.log.Warn("JWTManager.VerifyToken rejected token",
			constvars.LoggingRequestIDKey, requestID,
			constvars.LoggingErrorKey, err,
		)
		return &VerifyTokenOutput{Valid: false, Reason: err}, nil
	}

	header := make(map[string]interface{}, len(parsed.Header))
	for k, v := range parsed.Header {
		header[k] = v
	}
	decoded := make(map[string]interface{}, len(claims))
	for k, v := range claims {
		decoded[k] = v
	}

	if reason := j.checkClaims(claims, in); reason != nil {
		j.log.Warn("JWTManager.VerifyToken rejected token",
			constvars.LoggingRequestIDKey, requestID,
			constvars.LoggingErrorKey, reason,
		)
		return &VerifyTokenOutput{Valid: false, Header: header, Claims: decoded, Reason: reason}, nil
	}

	j.log.Info("JWTManager.VerifyToken succeeded", constvars.LoggingRequestIDKey, requestID)
	return &VerifyTokenOutput{Valid: true, Header: header, Claims: decoded}, nil
}

func (j *JWTManager) checkClaims(claims jwt.MapClaims, in *VerifyTokenInput) error {
	now := j.now().UTC().Unix()
	switch {
	case !claims.VerifyExpiresAt(now, true):
		return jwt.ErrTokenExpired
	case !claims.VerifyIssuedAt(now, false):
		return jwt.ErrTokenUsedBeforeIssued
	case !claims.VerifyNotBefore(now, false):
		return jwt.ErrTokenNotValidYet
	case in.ClientID != "" && !claims.VerifyIssuer(in.ClientID, true):
		return jwt.ErrTokenInvalidIssuer
	case in.RedirectURL != "" && !claims.VerifyAudience(in.RedirectURL, true):
		return jwt.ErrTokenInvalidAudience
	}
	return nil
}
