package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidToken means the token was malformed, had the wrong signature,
// or carried unusable claims. Distinct from an absent token, which callers
// detect before ever calling ParseToken.
var ErrInvalidToken = errors.New("invalid token")

// Identity is the decoded session: who the cookie says the caller is.
type Identity struct {
	ID    primitive.ObjectID
	Email string
}

// SignToken issues the session token for a user. Claims are exactly
// {email, id}; the session has no expiry, so no exp claim is set.
func SignToken(secret string, id primitive.ObjectID, email string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"id":    id.Hex(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ParseToken verifies the signature and decodes the identity. Any failure
// collapses into ErrInvalidToken; protected routes answer it with 401.
func ParseToken(secret, tokenStr string) (*Identity, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// enforce HMAC signing method
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	idHex, ok := claims["id"].(string)
	if !ok || idHex == "" {
		return nil, ErrInvalidToken
	}
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, ErrInvalidToken
	}

	email, _ := claims["email"].(string)

	return &Identity{ID: id, Email: email}, nil
}
