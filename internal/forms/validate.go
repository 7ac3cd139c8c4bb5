package forms

import "regexp"

// emailPattern accepts a permissive local@domain.tld shape: non-space,
// non-@ runs around a single @ with a dot somewhere after it. Deliberately
// not RFC 5322.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s has the permissive email shape shared by the
// booking and waitlist validators.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}
