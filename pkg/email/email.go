// Package email derives presentable names from raw addresses for outgoing
// mail headers.
package email

import (
	"strings"
	"unicode"
)

// DisplayName builds a "First Last" display name from an address's local
// part, for use in the From header of outgoing report mail.
func DisplayName(email string) string {
	first, last := DeriveNameFromEmail(email)
	if first == last {
		return first
	}
	return first + " " + last
}

// DeriveNameFromEmail splits the local part of an address on common
// separators and capitalizes the first and last segments.
func DeriveNameFromEmail(email string) (string, string) {
	localPart := email
	if at := strings.IndexByte(email, '@'); at > 0 {
		localPart = email[:at]
	}

	parts := strings.FieldsFunc(localPart, func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == '+'
	})

	if len(parts) == 0 {
		return "User", "User"
	}

	first := capitalize(parts[0])
	last := "User"
	if len(parts) > 1 {
		last = capitalize(parts[len(parts)-1])
	}

	return first, last
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
