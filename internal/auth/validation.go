package auth

import "strings"

const (
	passwordMinLen = 8
	passwordMaxLen = 20
)

const passwordSpecials = `!@#$%^&*()[]{}\|;:'",.<>/?` + "`~+=_-"

// passwordMeetsPolicy enforces the sign-up password rules: 8-20 characters
// with at least one lowercase letter, one uppercase letter, one digit and one
// special character.
func passwordMeetsPolicy(password string) bool {
	if len(password) < passwordMinLen || len(password) > passwordMaxLen {
		return false
	}
	var lower, upper, digit, special bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		}
	}
	return lower && upper && digit && special
}
