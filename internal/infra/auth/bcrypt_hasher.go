// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"warden/config"
	"warden/internal/domain/service"
	"warden/internal/errors"
)

// Default strength requirements used when no configuration is provided.
const (
	defaultMinPasswordLength = 8
	defaultMaxPasswordLength = 128
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost     int
	strength *config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	var strength *config.PasswordStrengthConfig
	if cfg != nil {
		strength = cfg.PasswordStrength
	}

	return &bcryptHasher{
		cost:     cost,
		strength: strength,
	}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) ([]byte, error) {
	if err := h.ValidatePasswordStrength(password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate bcrypt hash")
	}

	return hash, nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password string, hash []byte) bool {
	err := bcrypt.CompareHashAndPassword(hash, []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength reports whether the password meets the configured requirements.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	minLength := defaultMinPasswordLength
	maxLength := defaultMaxPasswordLength
	requireUppercase, requireLowercase, requireNumbers := true, true, true

	if h.strength != nil {
		if h.strength.MinLength > 0 {
			minLength = h.strength.MinLength
		}
		if h.strength.MaxLength > 0 {
			maxLength = h.strength.MaxLength
		}
		requireUppercase = h.strength.RequireUppercase
		requireLowercase = h.strength.RequireLowercase
		requireNumbers = h.strength.RequireNumbers
	}

	if len(password) < minLength {
		return errors.Errorf("password must be at least %d characters long", minLength)
	}
	if len(password) > maxLength {
		return errors.Errorf("password must be at most %d characters long", maxLength)
	}

	var hasUpper, hasLower, hasNumber bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		}
	}

	if requireUppercase && !hasUpper {
		return errors.New("password must contain an uppercase letter")
	}
	if requireLowercase && !hasLower {
		return errors.New("password must contain a lowercase letter")
	}
	if requireNumbers && !hasNumber {
		return errors.New("password must contain a number")
	}

	if strings.EqualFold(strings.TrimSpace(password), "password") {
		return errors.New("password is too common")
	}

	return nil
}
