package services

import (
	"errors"
	"fmt"
	"time"

	"studytrack/config"
	"studytrack/internal/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const TokenExpiry = 7 * 24 * time.Hour

// TokenService issues and validates the bearer tokens that resolve a request
// to a userID.
type TokenService struct {
	secret []byte
	log    logger.Logger
}

func NewTokenService(config config.Config) (*TokenService, error) {
	log := logger.New("tokenService")

	if config.JWTSecret == "" {
		return nil, log.ErrMsg("JWT secret is required")
	}

	return &TokenService{
		secret: []byte(config.JWTSecret),
		log:    log,
	}, nil
}

func (s *TokenService) Generate(userID uuid.UUID) (string, error) {
	log := s.log.Function("Generate")

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(TokenExpiry)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", log.Err("failed to sign token", err, "userID", userID)
	}

	return signed, nil
}

// Validate parses a bearer token and returns the userID it was issued for.
// Expired and malformed tokens are rejected alike.
func (s *TokenService) Validate(tokenString string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return s.secret, nil
		},
	)
	if err != nil {
		return uuid.Nil, err
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return uuid.Nil, errors.New("invalid token claims")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid token subject: %w", err)
	}

	return userID, nil
}
