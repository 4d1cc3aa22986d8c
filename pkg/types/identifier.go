package types

import "unicode"

// IsIdentifier returns true if the string is a valid identifier: it starts
// with a letter and contains only letters, digits and underscores. Tool names
// advertised over the wire must satisfy this.
func IsIdentifier(s string) bool {
	for i, r := range s {
		switch {
		case unicode.IsLetter(r):
			continue
		case i > 0 && (unicode.IsDigit(r) || r == '_'):
			continue
		default:
			return false
		}
	}
	return s != ""
}
