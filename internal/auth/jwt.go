package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

var (
	ErrInvalidJWTToken = errors.New("JWT token is invalid")
	ErrExpiredJWTToken = errors.New("JWT token is expired")
	ErrMissingSecret   = errors.New("JWT secret must not be empty")
)

const DefaultAccessTokenDuration = 10 * time.Minute

type JWTManagerInterface interface {
	GenerateAccessJWT(userID string, duration time.Duration) (string, error)
	ValidateAccessToken(tokenString string) (string, error)
}

type AccessTokenCustomClaims struct {
	UserID string `json:"user_id"`
	jwt.StandardClaims
}

type JWTManager struct {
	secret []byte
}

func NewJWTManager(secret string) (*JWTManager, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	return &JWTManager{secret: []byte(secret)}, nil
}

// GenerateAccessJWT mints an HS256 access token. The API itself never calls
// it; tokens are issued by the identity side and by foodctl for local use.
func (j *JWTManager) GenerateAccessJWT(userID string, duration time.Duration) (string, error) {
	now := time.Now()
	claims := &AccessTokenCustomClaims{
		UserID: userID,
		StandardClaims: jwt.StandardClaims{
			Subject:   userID,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(duration).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secret)
}

// ValidateAccessToken returns the user id carried by a valid token.
func (j *JWTManager) ValidateAccessToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AccessTokenCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil {
		var validationErr *jwt.ValidationError
		if errors.As(err, &validationErr) && validationErr.Errors&jwt.ValidationErrorExpired != 0 {
			return "", ErrExpiredJWTToken
		}
		return "", ErrInvalidJWTToken
	}

	claims, ok := token.Claims.(*AccessTokenCustomClaims)
	if !ok || !token.Valid || claims.UserID == "" {
		return "", ErrInvalidJWTToken
	}
	return claims.UserID, nil
}
