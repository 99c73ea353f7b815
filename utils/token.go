package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	userTokenTTL  = 7 * 24 * time.Hour
	adminTokenTTL = 24 * time.Hour
)

var errInvalidToken = errors.New("invalid or expired token")

// GenerateUserToken mints a bearer token embedding the user's id and email.
func GenerateUserToken(secret, userID, email string) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID,
		"email":  email,
		"exp":    time.Now().Add(userTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// GenerateAdminToken mints an admin capability token with isAdmin set.
func GenerateAdminToken(secret string, adminID uint, username string) (string, error) {
	claims := jwt.MapClaims{
		"id":       float64(adminID),
		"username": username,
		"isAdmin":  true,
		"exp":      time.Now().Add(adminTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func parseHS256(secret, tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errInvalidToken
	}
	return claims, nil
}

// ParseUserToken verifies a user bearer token and returns its subject.
func ParseUserToken(secret, tokenString string) (userID, email string, err error) {
	claims, err := parseHS256(secret, tokenString)
	if err != nil {
		return "", "", err
	}
	userID, _ = claims["userId"].(string)
	email, _ = claims["email"].(string)
	if userID == "" {
		return "", "", errInvalidToken
	}
	return userID, email, nil
}

// ParseAdminToken verifies an admin token and returns its identity. isAdmin
// reports the privilege claim; a valid token without it is a 403, not a 401.
func ParseAdminToken(secret, tokenString string) (adminID uint, username string, isAdmin bool, err error) {
	claims, err := parseHS256(secret, tokenString)
	if err != nil {
		return 0, "", false, err
	}
	id, _ := claims["id"].(float64)
	username, _ = claims["username"].(string)
	isAdmin, _ = claims["isAdmin"].(bool)
	return uint(id), username, isAdmin, nil
}
