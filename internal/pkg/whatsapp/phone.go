package whatsapp

import "strings"

// NormalizePhone reduces a free-form contact field to the digits-only
// international form the Cloud API expects. A local number written
// with a leading zero (0XXXXXXXXX) loses the zero; anything between 8
// and 15 digits that does not start with 0 passes through. Returns ""
// when the input does not look like a phone number, in which case the
// send should be skipped.
func NormalizePhone(input string) string {
	var b strings.Builder
	for _, r := range input {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	if len(digits) == 10 && digits[0] == '0' {
		return digits[1:]
	}
	if len(digits) >= 8 && len(digits) <= 15 && digits[0] != '0' {
		return digits
	}
	return ""
}
