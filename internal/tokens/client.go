package tokens

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ClientClaims identify one browser client; Subject is the client id.
type ClientClaims struct {
	jwt.RegisteredClaims
}

func NewClientID() string { return uuid.NewString() }

func CreateClientToken(clientID string, exp time.Time, secret []byte) (string, error) {
	claims := ClientClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   clientID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func ClientClaimsFromToken(tokenStr string, secret []byte) (*ClientClaims, error) {
	var claims ClientClaims
	tkn, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected sign method")
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid client token")
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return nil, errors.New("client token subject is not a uuid")
	}
	return &claims, nil
}
