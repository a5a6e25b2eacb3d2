package utils

import (
	"fmt"
	"os"
	"time"

	"complaintdesk-be/models"

	"github.com/dgrijalva/jwt-go"
)

// GenerateToken signs a JWT carrying the account id and role. Tokens expire
// after one hour; a role change after issuance is not reflected until then.
func GenerateToken(userID string, role models.Role) (string, error) {
	secretStr := os.Getenv("JWT_SECRET")
	if secretStr == "" {
		return "", fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	jwtSecret := []byte(secretStr)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   userID,
		"role": string(role),
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}
