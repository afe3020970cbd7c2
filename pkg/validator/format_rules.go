package validator

import (
	"regexp"
	"strings"
)

var (
	// one to three labels, then an alphabetic TLD: at most three dots
	domainRegex = regexp.MustCompile(
		`^(?:[A-Za-z0-9](?:[A-Za-z0-9-]{0,61}[A-Za-z0-9])?\.){1,3}[A-Za-z]{2,63}$`,
	)

	emailRegex = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

	plateRegex = regexp.MustCompile(`^[A-Z]{3}-\d{3}[A-Z]{2}$`)

	// 0 or +234, then a 7/8/9 network digit, 0/1, and eight more digits
	phoneRegex = regexp.MustCompile(`^(?:0|\+234)[789][01]\d{8}$`)
)

// IsValidDomain reports whether s is a host name of at most four labels whose
// last label is an alphabetic top-level domain. Labels are 1-63 letters,
// digits or hyphens and do not start or end with a hyphen.
func IsValidDomain(s string) bool {
	return domainRegex.MatchString(s)
}

// IsValidEmail performs a structural check of an address. It does not
// resolve the domain or verify the mailbox.
func IsValidEmail(s string) bool {
	if !emailRegex.MatchString(s) {
		return false
	}
	local, domain, _ := strings.Cut(s, "@")
	if strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") {
		return false
	}
	return !strings.Contains(local, "..") && !strings.Contains(domain, "..")
}

// IsValidPlate reports whether s looks like "ABC-123DE".
func IsValidPlate(s string) bool {
	return plateRegex.MatchString(s)
}

// IsValidPhone accepts Nigerian mobile numbers in local (080...) or
// international (+23480...) form. Spaces are ignored.
func IsValidPhone(s string) bool {
	return phoneRegex.MatchString(strings.ReplaceAll(s, " ", ""))
}

// ValidDomain fails when value is not a valid domain.
func ValidDomain(field, value string) Rule {
	return Rule{
		Check: func() bool { return IsValidDomain(value) },
		Error: ValidationError{Field: field, Message: "must be a valid domain name"},
	}
}

// ValidEmail fails when value is not a structurally valid email address.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool { return IsValidEmail(value) },
		Error: ValidationError{Field: field, Message: "must be a valid email address"},
	}
}
