package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// Phone normalization
	nonPhoneRegex = regexp.MustCompile(`[^0-9+]`)

	// Percent-encoded octets, matched loosely so malformed escapes still trigger a decode attempt
	percentEncodedRegex = regexp.MustCompile(`%[0-9a-zA-Z]{2}`)
)
