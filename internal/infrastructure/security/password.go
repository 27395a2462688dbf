package security

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrPasswordMismatch = errors.New("password mismatch")

// PasswordComparer seals a credential for storage and compares a login
// attempt against the stored form.
type PasswordComparer interface {
	Seal(plain string) (string, error)
	Compare(stored, given string) error
}

// PlainComparer stores credentials verbatim and compares by equality.
// This matches the stored schema of existing records; see DESIGN.md for
// why it has not been silently replaced with hashing.
type PlainComparer struct{}

func NewPlainComparer() *PlainComparer {
	return &PlainComparer{}
}

func (PlainComparer) Seal(plain string) (string, error) {
	return plain, nil
}

func (PlainComparer) Compare(stored, given string) error {
	if subtle.ConstantTimeCompare([]byte(stored), []byte(given)) != 1 {
		return ErrPasswordMismatch
	}
	return nil
}

// BcryptComparer is the opt-in hashed mode. Records sealed with it are
// not readable by PlainComparer and vice versa.
type BcryptComparer struct{}

func NewBcryptComparer() *BcryptComparer {
	return &BcryptComparer{}
}

func (BcryptComparer) Seal(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(bytes), err
}

func (BcryptComparer) Compare(stored, given string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)); err != nil {
		return ErrPasswordMismatch
	}
	return nil
}
