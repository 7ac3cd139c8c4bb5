package forms

import "testing"

func TestValidEmail(t *testing.T) {
	valid := []string{
		"jane@example.com",
		"a@b.co",
		"first.last+tag@sub.domain.org",
	}
	for _, s := range valid {
		if !ValidEmail(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}

	invalid := []string{
		"",
		"plainaddress",
		"no-at.example.com",
		"missing-tld@example",
		"two@@example.com",
		"spaces in@example.com",
		"trailing@example.",
	}
	for _, s := range invalid {
		if ValidEmail(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}
