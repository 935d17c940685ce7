package helper

import (
	"errors"
	"strings"
	"time"

	"github.com/CampusOrbit/mentoring_service/internal/dto"
	"github.com/golang-jwt/jwt/v5"
)

type Auth struct {
	Secret string
}

func SetupAuth(s string) Auth {
	return Auth{Secret: s}
}

func (a Auth) GenerateToken(accountID uint, operator bool) (string, error) {
	if accountID == 0 {
		return "", errors.New("required inputs are missing to generate token")
	}

	now := time.Now().Unix()
	exp := time.Now().Add(24 * time.Hour).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"account_id": accountID,
		"operator":   operator,
		"iat":        now,
		"exp":        exp,
	})

	tokenStr, err := token.SignedString([]byte(a.Secret))
	if err != nil {
		return "", errors.New("unable to sign the token")
	}
	return tokenStr, nil
}

func (a Auth) VerifyToken(tokenString string) (dto.AuthClaims, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return dto.AuthClaims{}, errors.New("missing token")
	}

	// supports both "Bearer <token>" and "<token>"
	if strings.HasPrefix(strings.ToLower(tokenString), "bearer ") {
		parts := strings.SplitN(tokenString, " ", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[1]) == "" {
			return dto.AuthClaims{}, errors.New("invalid token format")
		}
		tokenString = strings.TrimSpace(parts[1])
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(a.Secret), nil
	})
	if err != nil {
		return dto.AuthClaims{}, errors.New("token parse error")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return dto.AuthClaims{}, errors.New("invalid token claims")
	}

	exp, ok := claims["exp"].(float64)
	if !ok || time.Now().Unix() > int64(exp) {
		return dto.AuthClaims{}, errors.New("token expired")
	}

	accountID, ok := claims["account_id"].(float64)
	if !ok || accountID == 0 {
		return dto.AuthClaims{}, errors.New("invalid account claim")
	}

	operator, _ := claims["operator"].(bool)
	iat, _ := claims["iat"].(float64)

	return dto.AuthClaims{
		AccountID: uint(accountID),
		Operator:  operator,
		Iat:       iat,
		Expiry:    exp,
	}, nil
}
