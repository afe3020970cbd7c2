package sanitizer

import "strings"

// PhoneFormat selects how a Nigerian mobile number is written.
type PhoneFormat string

const (
	PhoneLocal         PhoneFormat = "local"         // 08031234567
	PhoneInternational PhoneFormat = "international" // +2348031234567
	PhoneSpaced        PhoneFormat = "spaced"        // 0803 123 4567
)

// PhoneFormats lists every supported layout.
var PhoneFormats = []PhoneFormat{PhoneLocal, PhoneInternational, PhoneSpaced}

const countryCode = "+234"

// NormalizePhone reduces a Nigerian mobile number to its 11-digit local form.
// Input that does not carry 11 local or 13 international digits is returned
// as its digits only.
func NormalizePhone(phone string) string {
	digits := KeepDigits(phone)
	if len(digits) == 13 && strings.HasPrefix(digits, "234") {
		return "0" + digits[3:]
	}
	return digits
}

// FormatPhone writes phone in the requested layout. Numbers that do not
// normalise to 11 digits starting with 0 are returned unchanged.
func FormatPhone(phone string, format PhoneFormat) string {
	local := NormalizePhone(phone)
	if len(local) != 11 || local[0] != '0' {
		return phone
	}

	switch format {
	case PhoneInternational:
		return countryCode + local[1:]
	case PhoneSpaced:
		return local[:4] + " " + local[4:7] + " " + local[7:]
	default:
		return local
	}
}
