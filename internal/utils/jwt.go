package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenIssuer    = "blog-platform-server"
	loginTokenType = "login"
)

// LoginClaims 登录会话令牌携带的声明
type LoginClaims struct {
	ID   uint   `json:"id"`
	Role string `json:"role"`
	Type string `json:"type"` // "login"
	jwt.RegisteredClaims
}

// GenerateLoginToken 使用 HS256 签发登录令牌，每个令牌带有唯一 jti 以便单独吊销。
func GenerateLoginToken(secret []byte, id uint, role string, tokenID string, duration time.Duration) (string, error) {
	if len(secret) == 0 {
		return "", errors.New("jwt secret is empty")
	}
	now := time.Now()
	claims := LoginClaims{
		ID:   id,
		Role: role,
		Type: loginTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
			Issuer:    tokenIssuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func ParseLoginToken(secret []byte, tokenString string) (*LoginClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &LoginClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*LoginClaims); ok && token.Valid {
		if claims.Type != loginTokenType {
			return nil, errors.New("invalid token type")
		}
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
