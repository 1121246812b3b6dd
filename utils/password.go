package utils

import (
	"github.com/go-faster/errors"
	"github.com/matthewhartstonge/argon2"
)

// HashPassword returns an argon2id PHC string suitable for the users table.
func HashPassword(password string) (string, error) {
	argon := argon2.DefaultConfig()
	encoded, err := argon.HashEncoded([]byte(password))
	if err != nil {
		return "", errors.Wrap(err, "hash password")
	}
	return string(encoded), nil
}

func VerifyPassword(encodedHash, password string) (bool, error) {
	ok, err := argon2.VerifyEncoded([]byte(password), []byte(encodedHash))
	if err != nil {
		return false, errors.Wrap(err, "verify password")
	}
	return ok, nil
}
