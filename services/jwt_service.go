package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// StaffJWTClaims represents the JWT claims for staff tokens
type StaffJWTClaims struct {
	StaffID string `json:"staff_id"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService handles JWT token generation and verification
type JWTService struct {
	secretKey string
	ttl       time.Duration
}

var jwtService *JWTService

// InitJWTService initializes the JWT service with a secret key
func InitJWTService(secretKey string, ttl time.Duration) error {
	if secretKey == "" {
		return errors.New("JWT secret key cannot be empty")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	jwtService = &JWTService{secretKey: secretKey, ttl: ttl}
	return nil
}

// GetJWTService returns the initialized JWT service
func GetJWTService() *JWTService {
	if jwtService == nil {
		secretKey := config.App.JWTSecret
		if secretKey == "" {
			secretKey = "dev-secret-key-change-in-production"
		}
		jwtService = &JWTService{secretKey: secretKey, ttl: config.App.JWTExpiry}
	}
	return jwtService
}

// TTL is how long issued tokens stay valid.
func (j *JWTService) TTL() time.Duration {
	return j.ttl
}

// GenerateStaffJWT creates a signed token for a staff member.
func (j *JWTService) GenerateStaffJWT(staffID, email, role string) (string, error) {
	if staffID == "" || email == "" || role == "" {
		return "", errors.New("staffID, email and role cannot be empty")
	}

	now := time.Now()
	claims := StaffJWTClaims{
		StaffID: staffID,
		Email:   email,
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "best-wishes-admin",
			// Unique per token: sessions are keyed by the token hash.
			ID: uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// VerifyStaffJWT verifies and parses a JWT token
// Returns claims if valid, error if invalid or expired
func (j *JWTService) VerifyStaffJWT(tokenString string) (*StaffJWTClaims, error) {
	claims := &StaffJWTClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	if claims.StaffID == "" || claims.Email == "" {
		return nil, errors.New("token missing required claims")
	}

	return claims, nil
}

// Convenience functions that use the global service

func GenerateStaffJWT(staffID, email, role string) (string, error) {
	return GetJWTService().GenerateStaffJWT(staffID, email, role)
}

func VerifyStaffJWT(tokenString string) (*StaffJWTClaims, error) {
	return GetJWTService().VerifyStaffJWT(tokenString)
}
