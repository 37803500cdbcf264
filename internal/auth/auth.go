package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Checker decides whether a password opens the admin dashboard.
type Checker interface {
	Check(password string) bool
}

// SharedSecret is a single admin password kept only as a bcrypt hash.
type SharedSecret struct {
	hash []byte
}

func NewSharedSecret(password string) (*SharedSecret, error) {
	if password == "" {
		return nil, errors.New("admin password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	return &SharedSecret{hash: hash}, nil
}

// NewSharedSecretFromHash accepts a precomputed bcrypt hash.
func NewSharedSecretFromHash(hash string) (*SharedSecret, error) {
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return nil, fmt.Errorf("parse admin password hash: %w", err)
	}
	return &SharedSecret{hash: []byte(hash)}, nil
}

func (s *SharedSecret) Check(password string) bool {
	if password == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword(s.hash, []byte(password)) == nil
}

// FromConfig prefers the hash when both are set.
func FromConfig(password, hash string) (*SharedSecret, error) {
	if hash != "" {
		return NewSharedSecretFromHash(hash)
	}
	return NewSharedSecret(password)
}
