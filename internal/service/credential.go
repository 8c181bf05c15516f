package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

func hashCredential(raw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash credential: %w", err)
	}

	return string(hash), nil
}

func credentialMatches(hash, raw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw)) == nil
}
