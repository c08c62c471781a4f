// Package auth verifies the lab-scoped access tokens presented to the audit
// service. Tokens are issued by the identity service; GenerateToken exists
// for tooling and tests.
package auth

import (
	"errors"
	"time"

	"github.com/carlosftapiap/arcsapp-sub001/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the caller identity and the lab it acts for.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
	LabID  string `json:"lab"`
}

// Principal is the verified identity bound to a request.
type Principal struct {
	UserID string
	LabID  string
}

func GenerateToken(p Principal, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
			Subject:   p.UserID,
		},
		UserID: p.UserID,
		LabID:  p.LabID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Verify checks the signature and expiry of tokenString and returns its
// principal. Tokens without a lab are rejected.
func Verify(tokenString string, secretKey []byte) (Principal, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Principal{}, common.ErrTokenExpired
		}
		return Principal{}, common.ErrInvalidToken
	}

	if !token.Valid || claims.UserID == "" || claims.LabID == "" {
		return Principal{}, common.ErrInvalidToken
	}

	return Principal{UserID: claims.UserID, LabID: claims.LabID}, nil
}
