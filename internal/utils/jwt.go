package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-rest-auth/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrJWTExpired is returned when a token's "exp" claim is in the past.
	ErrJWTExpired = errors.New("jwt is expired")

	// ErrJWTInvalid is returned for every other verification failure.
	ErrJWTInvalid = errors.New("jwt is invalid")
)

// GenerateJWTToken signs an HS256 token for userID that expires ttl after now.
// Every token gets a random "jti" so two tokens issued in the same second differ.
func GenerateJWTToken(issuer, userID string, ttl time.Duration, signKey string, now time.Time) (string, error) {
	if userID == "" || ttl <= 0 || signKey == "" {
		return "", errors.New("invalid params for generating JWT Token")
	}

	claims := models.TokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return tokenString, nil
}

// ValidateAndParseJWTToken verifies signature, algorithm, issuer and expiry of
// tokenString against the clock now and returns its claims.
// Expiry failures wrap [ErrJWTExpired]; anything else wraps [ErrJWTInvalid].
func ValidateAndParseJWTToken(tokenString, signKey, issuer string, now func() time.Time) (models.TokenClaims, error) {
	var claims models.TokenClaims

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	if now != nil {
		opts = append(opts, jwt.WithTimeFunc(now))
	}

	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.TokenClaims{}, fmt.Errorf("%w: %w", ErrJWTExpired, err)
		}
		return models.TokenClaims{}, fmt.Errorf("%w: %w", ErrJWTInvalid, err)
	}

	if claims.UserID == "" {
		return models.TokenClaims{}, fmt.Errorf("%w: empty %s claim", ErrJWTInvalid, models.TokenSubjectClaim)
	}

	return claims, nil
}
