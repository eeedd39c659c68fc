package hash

import (
	"crypto/subtle"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	ModePlain  = "plain"
	ModeBcrypt = "bcrypt"
)

// Hasher turns a password into its stored form and checks a candidate against it.
type Hasher interface {
	Hash(password string) (string, error)
	Compare(stored, password string) bool
}

// Plain stores passwords as given. It keeps data written by older clients readable.
type Plain struct{}

func (Plain) Hash(password string) (string, error) {
	return password, nil
}

func (Plain) Compare(stored, password string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
}

type Bcrypt struct {
	Cost int
}

func (b Bcrypt) Hash(password string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashbytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashbytes), nil
}

func (Bcrypt) Compare(stored, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}

func New(mode string) (Hasher, error) {
	switch strings.ToLower(mode) {
	case "", ModePlain:
		return Plain{}, nil
	case ModeBcrypt:
		return Bcrypt{}, nil
	default:
		return nil, fmt.Errorf("unknown password hash mode %q", mode)
	}
}
