package auth

import (
	"testing"

	"warden/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher() *bcryptHasher {
	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost},
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        8,
			MaxLength:        64,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
		},
	}

	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := newTestHasher()

	strongPassword := "StrongPass123"
	hash, err := hasher.Hash(strongPassword)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, strongPassword, string(hash))

	// Verify the hash can be checked
	assert.True(t, hasher.Check(strongPassword, hash))
}

func TestBcryptHasher_HashWithWeakPassword(t *testing.T) {
	hasher := newTestHasher()

	weakPasswords := []string{
		"123",         // Too short
		"password",    // Forbidden word
		"PASSWORD123", // No lowercase
		"password123", // No uppercase
		"PasswordABC", // No numbers
	}

	for _, weakPassword := range weakPasswords {
		_, err := hasher.Hash(weakPassword)
		assert.Error(t, err, "Expected error for weak password: %s", weakPassword)
	}
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := newTestHasher()
	password := "StrongPass123"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	// Test correct password
	assert.True(t, hasher.Check(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Check("WrongPassword123", hash))

	// Test empty password
	assert.False(t, hasher.Check("", hash))

	// Test with invalid hash
	assert.False(t, hasher.Check(password, []byte("invalid_hash")))
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := newTestHasher()

	validPasswords := []string{
		"StrongPass123",
		"MySecurePass1",
		"ComplexSecret9",
	}

	for _, password := range validPasswords {
		err := hasher.ValidatePasswordStrength(password)
		assert.NoError(t, err, "Expected no error for valid password: %s", password)
	}
}

func TestBcryptHasher_DefaultsWithoutConfig(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	err := hasher.ValidatePasswordStrength("StrongPass123")
	assert.NoError(t, err)

	err = hasher.ValidatePasswordStrength("short1A")
	assert.Error(t, err)
}
