package validator

import (
	"regexp"
	"strconv"
	"strings"
)

// URL grammar fragments. Capture groups inside them are counted when the
// pattern is assembled, so hostname and port indices follow the fragments.
const (
	urlPartAuth   = `(((?:[_.\pL\pN-]|%[0-9A-Fa-f]{2})+:)?((?:[_.\pL\pN-]|%[0-9A-Fa-f]{2})+)@)?`
	urlPartDomain = `([\pL\pN\pS\-_.])+(\.?([\pL\pN]|xn--[\pL\pN-]+)+\.?)`
	urlPartIPv4   = `\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}`
	urlPartPort   = `(:[0-9]+)?`
	urlPartPath   = `(?:/(?:[\pL\pN\-._~!$&'()*+,;=:@]|%[0-9A-Fa-f]{2})*)*`
	urlPartQuery  = `(?:\?(?:[\pL\pN\-._~!$&'\[\]()*+,;=:@/?]|%[0-9A-Fa-f]{2})*)?`
	urlPartFrag   = `(?:#(?:[\pL\pN\-._~!$&'()*+,;=:@/?]|%[0-9A-Fa-f]{2})*)?`
)

// RFC 3986 IPv6address in brackets, built without capture groups.
var urlPartIPv6 = func() string {
	h16 := `[0-9A-Fa-f]{1,4}`
	decOctet := `(?:25[0-5]|2[0-4][0-9]|1[0-9]{2}|[1-9]?[0-9])`
	ipv4 := decOctet + `(?:\.` + decOctet + `){3}`
	ls32 := `(?:` + h16 + `:` + h16 + `|` + ipv4 + `)`
	prefix := func(n int) string {
		if n == 0 {
			return `(?:` + h16 + `)?`
		}
		return `(?:(?:` + h16 + `:){0,` + strconv.Itoa(n) + `}` + h16 + `)?`
	}
	alternatives := []string{
		`(?:` + h16 + `:){6}` + ls32,
		`::(?:` + h16 + `:){5}` + ls32,
		prefix(0) + `::(?:` + h16 + `:){4}` + ls32,
		prefix(1) + `::(?:` + h16 + `:){3}` + ls32,
		prefix(2) + `::(?:` + h16 + `:){2}` + ls32,
		prefix(3) + `::` + h16 + `:` + ls32,
		prefix(4) + `::` + ls32,
		prefix(5) + `::` + h16,
		prefix(6) + `::`,
	}
	return `\[(?:` + strings.Join(alternatives, "|") + `)\]`
}()

type urlPattern struct {
	re      *regexp.Regexp
	hostIdx int
	portIdx int
}

// groups returns the number of capture groups in a grammar fragment.
func groups(fragment string) int {
	return regexp.MustCompile(fragment).NumSubexp()
}

func buildURLPattern(cfg URLConfig) *urlPattern {
	schemes := strings.Join(cfg.AllowedSchemes, "|")
	var protocol string
	switch cfg.AllowProtocol {
	case ProtocolAbsolute:
		protocol = `(` + schemes + `)://`
	case ProtocolRelative:
		protocol = `(?:(` + schemes + `):)?//`
	default:
		protocol = `(?:(` + schemes + `)://)?`
	}

	auth := ""
	if cfg.AllowBasicAuth {
		auth = urlPartAuth
	}

	var hostParts []string
	if cfg.AllowDomains {
		hostParts = append(hostParts, urlPartDomain)
	}
	if cfg.AllowIPv4 {
		hostParts = append(hostParts, urlPartIPv4)
	}
	if cfg.AllowIPv6 {
		hostParts = append(hostParts, urlPartIPv6)
	}
	if len(hostParts) == 0 {
		hostParts = []string{urlPartDomain, urlPartIPv4, urlPartIPv6}
	}
	hostname := `(` + strings.Join(hostParts, "|") + `)`

	port := ""
	if cfg.AllowPorts || len(cfg.AllowedPorts) > 0 {
		port = urlPartPort
	}

	p := &urlPattern{}
	p.hostIdx = groups(protocol) + groups(auth) + 1
	if port != "" {
		p.portIdx = p.hostIdx + groups(hostname)
	}

	p.re = regexp.MustCompile(`(?i)^` + protocol + auth + hostname + port + urlPartPath + urlPartQuery + urlPartFrag + `$`)
	return p
}
