package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-rest-auth/internal/config"
	"github.com/MKhiriev/go-rest-auth/internal/logger"
	"github.com/MKhiriev/go-rest-auth/internal/metrics"
	"github.com/MKhiriev/go-rest-auth/internal/utils"
	"github.com/MKhiriev/go-rest-auth/models"
)

// jwtTokenService signs HS256 tokens with a shared secret. The secret and
// issuer are fixed at construction; now is replaceable in tests.
type jwtTokenService struct {
	signKey string
	issuer  string
	now     func() time.Time

	logger *logger.Logger
}

func NewTokenService(cfg config.App, logger *logger.Logger) TokenService {
	return &jwtTokenService{
		signKey: cfg.TokenSignKey,
		issuer:  cfg.TokenIssuer,
		now:     time.Now,
		logger:  logger,
	}
}

// Sign issues a token for userID expiring ttl from now.
func (s *jwtTokenService) Sign(userID string, ttl time.Duration) (string, error) {
	token, err := utils.GenerateJWTToken(s.issuer, userID, ttl, s.signKey, s.now())
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Verify checks signature, algorithm, issuer and expiry. Expired tokens
// return ErrTokenExpired; every other failure returns ErrTokenInvalid.
func (s *jwtTokenService) Verify(token string) (models.TokenClaims, error) {
	claims, err := utils.ValidateAndParseJWTToken(token, s.signKey, s.issuer, s.now)
	switch {
	case errors.Is(err, utils.ErrJWTExpired):
		metrics.TokenVerificationsTotal.WithLabelValues("expired").Inc()
		return models.TokenClaims{}, fmt.Errorf("%w: %w", ErrTokenExpired, err)
	case err != nil:
		metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
		return models.TokenClaims{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	metrics.TokenVerificationsTotal.WithLabelValues("valid").Inc()
	return claims, nil
}
