package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/dostavka-go/user-service/internal/pkg/models"
)

// Token validation errors. ValidateToken maps the library's bitmask errors to
// these so callers can branch without importing the jwt library.
var (
	ErrMalformedToken   = errors.New("token is malformed")
	ErrExpiredToken     = errors.New("token is expired")
	ErrUnsupportedToken = errors.New("token signing method is not supported")
	ErrInvalidSignature = errors.New("token signature is invalid")
)

// Claims is the token payload. Subject carries the user's email.
type Claims struct {
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Service issues and validates HS256 bearer tokens
type Service struct {
	secret []byte
	issuer string

	sessionTTL  time.Duration
	rememberTTL time.Duration
}

// NewService creates a token service from the JWT configuration
func NewService(cfg models.JWTConfig) *Service {
	return &Service{
		secret:      []byte(cfg.Secret),
		issuer:      cfg.Issuer,
		sessionTTL:  time.Duration(cfg.SessionExpirationMinutes) * time.Minute,
		rememberTTL: time.Duration(cfg.RememberMeExpirationMinutes) * time.Minute,
	}
}

// GenerateToken issues a session token for the user
func (s *Service) GenerateToken(userID int64, email, role string) (string, time.Time, error) {
	return s.generate(userID, email, role, s.sessionTTL)
}

// GenerateRememberMeToken issues a long-lived token for "remember me" logins
func (s *Service) GenerateRememberMeToken(userID int64, email, role string) (string, time.Time, error) {
	return s.generate(userID, email, role, s.rememberTTL)
}

// GenerateTokenWithTTL issues a token with an arbitrary lifetime
func (s *Service) GenerateTokenWithTTL(userID int64, email, role string, ttl time.Duration) (string, time.Time, error) {
	return s.generate(userID, email, role, ttl)
}

func (s *Service) generate(userID int64, email, role string, ttl time.Duration) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ttl)

	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, expiresAt, nil
}

// ValidateToken parses and verifies a token string and returns its claims
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnsupportedToken
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, mapValidationError(err)
	}
	if !token.Valid {
		return nil, ErrInvalidSignature
	}

	return claims, nil
}

// ExtractUserID validates the token and returns the user id claim
func (s *Service) ExtractUserID(tokenString string) (int64, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}

// ExtractEmail validates the token and returns the subject claim
func (s *Service) ExtractEmail(tokenString string) (string, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// ExtractRole validates the token and returns the role claim
func (s *Service) ExtractRole(tokenString string) (string, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return "", err
	}
	return claims.Role, nil
}

// IsValid reports whether the token passes validation
func (s *Service) IsValid(tokenString string) bool {
	_, err := s.ValidateToken(tokenString)
	return err == nil
}

func mapValidationError(err error) error {
	if errors.Is(err, ErrUnsupportedToken) {
		return ErrUnsupportedToken
	}

	var vErr *jwt.ValidationError
	if !errors.As(err, &vErr) {
		return ErrMalformedToken
	}

	switch {
	case vErr.Errors&jwt.ValidationErrorMalformed != 0:
		return ErrMalformedToken
	case vErr.Errors&(jwt.ValidationErrorExpired|jwt.ValidationErrorNotValidYet) != 0:
		return ErrExpiredToken
	case vErr.Errors&jwt.ValidationErrorUnverifiable != 0:
		return ErrUnsupportedToken
	case vErr.Errors&jwt.ValidationErrorSignatureInvalid != 0:
		return ErrInvalidSignature
	default:
		return ErrMalformedToken
	}
}
