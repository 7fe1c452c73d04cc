package mockapi

import (
	"fmt"
	"strconv"
	"time"

	jwtstd "github.com/golang-jwt/jwt/v5"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// TokenError represents token related errors
type TokenError string

func (e TokenError) Error() string {
	return string(e)
}

const (
	DefaultAccessTokenExpire = time.Hour * 24

	ErrNeedTokenSecret = TokenError("cannot sign token without secret")
	ErrInvalidToken    = TokenError("invalid token")

	jtiAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	jtiLength   = 22
)

// TokenManager issues and validates HS256 access tokens
type TokenManager struct {
	key    string
	expire time.Duration
}

// NewTokenManager creates a new TokenManager instance
func NewTokenManager(key string, expire time.Duration) *TokenManager {
	if expire <= 0 {
		expire = DefaultAccessTokenExpire
	}
	return &TokenManager{key: key, expire: expire}
}

// GenerateAccessToken generates an access token for a user
func (tm *TokenManager) GenerateAccessToken(userID int64, role string) (string, error) {
	if tm.key == "" {
		return "", ErrNeedTokenSecret
	}
	jti, err := gonanoid.Generate(jtiAlphabet, jtiLength)
	if err != nil {
		return "", fmt.Errorf("failed to generate token id: %w", err)
	}

	now := time.Now()
	claims := jwtstd.MapClaims{
		"jti":  jti,
		"sub":  strconv.FormatInt(userID, 10),
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(tm.expire).Unix(),
	}
	t := jwtstd.NewWithClaims(jwtstd.SigningMethodHS256, claims)
	return t.SignedString([]byte(tm.key))
}

// ParseAccessToken validates a token and returns the user id it was issued for
func (tm *TokenManager) ParseAccessToken(tokenString string) (int64, error) {
	if tm.key == "" {
		return 0, ErrNeedTokenSecret
	}
	token, err := jwtstd.Parse(tokenString, func(token *jwtstd.Token) (any, error) {
		return []byte(tm.key), nil
	}, jwtstd.WithValidMethods([]string{jwtstd.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	sub, err := token.Claims.GetSubject()
	if err != nil {
		return 0, ErrInvalidToken
	}
	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return id, nil
}
