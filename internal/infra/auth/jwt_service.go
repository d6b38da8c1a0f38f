// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"warden/config"
	"warden/internal/domain/service"
	"warden/internal/errors"
)

const (
	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour

	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  string        // Secret key for signing access tokens.
	refreshSecret string        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	accessTTL := defaultAccessTTL
	refreshTTL := defaultRefreshTTL
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.RefreshTokenTTL > 0 {
			refreshTTL = cfg.Auth.RefreshTokenTTL
		}
	}

	return &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}, nil
}

// claims is the wire representation of service.Claims.
type claims struct {
	Username string   `json:"username,omitempty"`
	Roles    []string `json:"roles,omitempty"`
	Type     string   `json:"type"`
	jwt.RegisteredClaims
}

// GenerateTokens creates a new access token and refresh token for a given account.
func (s *jwtService) GenerateTokens(userID uuid.UUID, username string, roles []string) (accessToken string, refreshToken string, err error) {
	accessToken, err = s.generateToken(userID, username, roles, s.accessTTL, s.accessSecret, tokenTypeAccess)
	if err != nil {
		return "", "", err
	}

	// Roles stay out of the refresh token; it only proves session continuity.
	refreshToken, err = s.generateToken(userID, username, nil, s.refreshTTL, s.refreshSecret, tokenTypeRefresh)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// ValidateAccessToken checks the validity of an access token string and returns its claims.
func (s *jwtService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	parsed := &claims{}
	token, err := jwt.ParseWithClaims(tokenString, parsed, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.accessSecret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse access token")
	}
	if !token.Valid {
		return nil, errors.New("access token is invalid")
	}
	if parsed.Type != tokenTypeAccess {
		return nil, errors.New("token is not an access token")
	}

	userID, err := uuid.Parse(parsed.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject in access token")
	}

	return &service.Claims{
		UserID:           userID,
		Username:         parsed.Username,
		Roles:            parsed.Roles,
		Type:             parsed.Type,
		RegisteredClaims: parsed.RegisteredClaims,
	}, nil
}

// GetRefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) GetRefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(userID uuid.UUID, username string, roles []string, ttl time.Duration, secret, tokenType string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims{
		Username: username,
		Roles:    roles,
		Type:     tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}
