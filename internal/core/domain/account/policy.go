package account

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	MinPasswordLength = 8
	MaxPasswordLength = 24
)

// PasswordSpecialChars is the set of characters that satisfy the
// special-character requirement of the password policy.
const PasswordSpecialChars = `!@#$%^&*()-_=+[]{};:,.<>?`

var phonePattern = regexp.MustCompile(`^\d{3}-\d{3}-\d{4}$`)

// ValidatePasswordStrength reports whether a new password satisfies the
// policy: length within [MinPasswordLength, MaxPasswordLength] and at least
// one uppercase letter, one lowercase letter, one digit and one special
// character.
func ValidatePasswordStrength(password RawPassword) error {
	p := string(password)
	if len(p) < MinPasswordLength || len(p) > MaxPasswordLength {
		return ErrInvalidPassword
	}
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range p {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(PasswordSpecialChars, r):
			hasSpecial = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit || !hasSpecial {
		return ErrInvalidPassword
	}
	return nil
}

func ValidatePasswordConfirmation(password RawPassword, confirmation RawPassword) error {
	if password != confirmation {
		return ErrPasswordMismatch
	}
	return nil
}

func ValidateEmailShape(email string) error {
	if !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}
	return nil
}

// ValidatePhoneShape accepts phone numbers with digits grouped as 3-3-4,
// e.g. "123-456-7890".
func ValidatePhoneShape(phone string) error {
	if !phonePattern.MatchString(phone) {
		return ErrInvalidPhone
	}
	return nil
}
