package applescript

import "strings"

// phoneSuffixLength is the number of trailing digits used for matching.
// Seven digits survive the country- and area-code variance of mixed
// international formats.
const phoneSuffixLength = 7

// PhoneSearchSuffix normalizes a phone number for lookup: every
// non-digit character is stripped, and numbers of seven or more digits
// are reduced to their trailing seven. Returns the empty string when the
// input contains no digits at all.
func PhoneSearchSuffix(number string) string {
	var digits strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	normalized := digits.String()
	if len(normalized) >= phoneSuffixLength {
		return normalized[len(normalized)-phoneSuffixLength:]
	}
	return normalized
}
