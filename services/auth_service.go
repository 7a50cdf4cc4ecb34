package services

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// PasswordSymbols are the characters that satisfy the symbol rule.
const PasswordSymbols = `!@#$%^&*(),.?":{}|<>`

const MinPasswordLength = 8

// AuthService handles staff authentication operations
type AuthService struct{}

func NewAuthService() *AuthService {
	return &AuthService{}
}

// ════════════════════════════════════════════════════════════
// Password Management
// ════════════════════════════════════════════════════════════

// HashPassword hashes a password using bcrypt
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks if a password matches its bcrypt hash
func (s *AuthService) VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// PasswordProblems lists every rule the password breaks; empty means acceptable.
func (s *AuthService) PasswordProblems(password string) []string {
	var problems []string
	if len(password) < MinPasswordLength {
		problems = append(problems, "Password must be at least 8 characters long")
	}
	hasDigit := false
	for _, r := range password {
		if unicode.IsDigit(r) {
			hasDigit = true
			break
		}
	}
	if !hasDigit {
		problems = append(problems, "Password must contain at least one number")
	}
	if !strings.ContainsAny(password, PasswordSymbols) {
		problems = append(problems, "Password must contain at least one special character")
	}
	return problems
}

// ValidatePassword reports whether the password satisfies every rule.
func (s *AuthService) ValidatePassword(password string) bool {
	return len(s.PasswordProblems(password)) == 0
}

// HashToken hashes a token using SHA256 for storage in database
func (s *AuthService) HashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}

// ════════════════════════════════════════════════════════════
// Global Instance
// ════════════════════════════════════════════════════════════

var authService *AuthService

func GetAuthService() *AuthService {
	if authService == nil {
		authService = NewAuthService()
	}
	return authService
}
