package httpserver

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP returns the normalized client address of r: the first valid
// X-Forwarded-For entry, then X-Real-IP, then the connection's remote address.
// It returns an empty string when none of them holds an IP.
func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		for ip := range strings.SplitSeq(forwarded, ",") {
			if parsed := normalizeIP(ip); parsed != "" {
				return parsed
			}
		}
	}

	if ip := normalizeIP(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return normalizeIP(r.RemoteAddr)
	}
	return normalizeIP(host)
}

func normalizeIP(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return ""
	}
	return ip.String()
}
