package jwt

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Login tokens are valid for 7 days. Logout is client-side token deletion;
// there is no server-side revocation list.
const TokenExpiryLogin = 7 * 24 * time.Hour

func GenerateToken(email string, userID uuid.UUID) (string, error) {
	secretKey := []byte(os.Getenv("JWT_SECRET"))

	now := time.Now()
	claims := jwt.MapClaims{
		"email":   email,
		"sub":     email,
		"user_id": userID.String(),
		"exp":     now.Add(TokenExpiryLogin).Unix(),
		"iat":     now.Unix(),
		"iss":     os.Getenv("JWT_ISSUER"),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

func ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// UserIDFromClaims extracts and parses the user_id claim.
func UserIDFromClaims(claims jwt.MapClaims) (uuid.UUID, error) {
	raw, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("user_id claim missing")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("user_id claim is not a UUID: %w", err)
	}
	return id, nil
}
