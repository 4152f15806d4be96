package utils

import (
	"net/mail"
	"strings"
	"unicode"
)

// IsValidEmail parses the address per RFC 5322 and additionally requires a
// dotted domain, which ParseAddress alone does not.
func IsValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}
	domain := email[strings.LastIndex(email, "@")+1:]
	return strings.Contains(domain, ".")
}

// IsComplexPassword requires at least 10 characters mixing three of the
// four character classes. Practitioner accounts guard patient records, so
// the bar is length first, composition second.
func IsComplexPassword(password string) bool {
	if len(password) < 10 {
		return false
	}

	classes := 0
	for _, check := range []func(rune) bool{
		unicode.IsUpper,
		unicode.IsLower,
		unicode.IsDigit,
		func(r rune) bool { return unicode.IsPunct(r) || unicode.IsSymbol(r) },
	} {
		if strings.ContainsFunc(password, check) {
			classes++
		}
	}
	return classes >= 3
}
