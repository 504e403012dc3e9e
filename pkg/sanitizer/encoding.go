package sanitizer

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

// MaxDecodePasses bounds DecodePercent for inputs that stay encoded after every pass.
const MaxDecodePasses = 16

// DecodePercent repeatedly percent-decodes s while it still contains %XX sequences.
// Decoding stops when a pass changes nothing, fails, yields invalid UTF-8 or the
// pass limit is reached; the last successfully decoded string is returned.
func DecodePercent(s string) string {
	for range MaxDecodePasses {
		if !percentEncodedRegex.MatchString(s) {
			break
		}
		decoded, err := url.PathUnescape(s)
		if err != nil || decoded == s || !utf8.ValidString(decoded) {
			break
		}
		s = decoded
	}
	return s
}

// EscapePercent re-encodes literal percent signs so the result cannot be decoded again.
func EscapePercent(s string) string {
	return strings.ReplaceAll(s, "%", "%25")
}
