package services

import "strings"

// NormEmail trims surrounding whitespace. Emails are opaque identifiers, so
// nothing beyond presence is checked and case is preserved.
func NormEmail(s string) (string, bool) {
	e := strings.TrimSpace(s)
	return e, e != ""
}
