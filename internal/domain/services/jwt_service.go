package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/prithu-10/criminal-dbms-project/internal/infrastructure/config"
)

// JWTService signs and validates the session cookie token. The cookie only
// carries a signed session id; all session state stays server-side.
type JWTService struct {
	secretKey string
	issuer    string
	ttl       time.Duration
}

// SessionClaims is the claim set embedded in the session cookie.
type SessionClaims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// InterfaceJWTService defines the session token interface
type InterfaceJWTService interface {
	GenerateSessionToken(sessionID string) (string, error)
	ParseSessionID(tokenString string) (string, error)
}

// NewJWTService creates a new JWT service
func NewJWTService(cfg *config.Config) InterfaceJWTService {
	return &JWTService{
		secretKey: cfg.SessionSecretKey,
		issuer:    "criminal-dbms",
		ttl:       time.Duration(cfg.SessionTTLHours) * time.Hour,
	}
}

// GenerateSessionToken signs a session id into a cookie token.
func (s *JWTService) GenerateSessionToken(sessionID string) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// ParseSessionID validates a cookie token and extracts the session id.
func (s *JWTService) ParseSessionID(tokenString string) (string, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.SessionID == "" {
		return "", errors.New("invalid session token")
	}
	return claims.SessionID, nil
}
