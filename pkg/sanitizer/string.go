package sanitizer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// Length returns the number of code points in s.
func Length(s string) int {
	return utf8.RuneCountInString(s)
}

// MaxLength truncates a string to the specified maximum length in code points.
// If the string is longer than maxLen, it will be truncated.
func MaxLength(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}

	return string(runes[:maxLen])
}

// RemoveControlChars removes control characters from a string,
// keeping only printable characters and common whitespace.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// NormalizeNFC composes s into Unicode normalization form C, so canonically
// equivalent inputs produce the same string.
func NormalizeNFC(s string) string {
	return norm.NFC.String(s)
}

// RemoveSpaces removes every ASCII space. Other whitespace is kept.
func RemoveSpaces(s string) string {
	return strings.ReplaceAll(s, " ", "")
}

// KeepPhoneChars keeps only ASCII digits and the plus sign.
func KeepPhoneChars(s string) string {
	return nonPhoneRegex.ReplaceAllString(s, "")
}

// SplitTrim splits s on sep and trims every part. Empty parts are kept.
func SplitTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// CountIn returns how many runes of s appear in set. Repeated runes count each time.
func CountIn(s, set string) int {
	n := 0
	for _, r := range s {
		if strings.ContainsRune(set, r) {
			n++
		}
	}
	return n
}

// CountFunc returns how many runes of s satisfy f.
func CountFunc(s string, f func(rune) bool) int {
	n := 0
	for _, r := range s {
		if f(r) {
			n++
		}
	}
	return n
}
