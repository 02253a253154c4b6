// Package validators contains validators found throughout the application
// that have been abstracted away from the main code
package validators

import (
	"errors"
	"net/mail"
	"strings"
)

var (
	ErrEmailEmpty   = errors.New("no email address provided")
	ErrEmailInvalid = errors.New("invalid email address provided")
)

func EmailValidator(e string) error {
	if e == "" {
		return ErrEmailEmpty
	}

	if _, err := mail.ParseAddress(e); err != nil {
		return ErrEmailInvalid
	}

	return nil
}

// NormalizeEmail lowercases the domain part of an address. The local
// part is left alone since it's case sensitive per RFC 5321.
func NormalizeEmail(e string) string {
	at := strings.LastIndex(e, "@")
	if at < 0 {
		return e
	}
	return e[:at+1] + strings.ToLower(e[at+1:])
}
