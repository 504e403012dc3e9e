package dnscheck

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/netip"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/net/idna"
)

// Resolver is the subset of *net.Resolver used for checks.
type Resolver interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
	LookupIP(ctx context.Context, network, host string) ([]net.IP, error)
	LookupCNAME(ctx context.Context, host string) (string, error)
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
	LookupNS(ctx context.Context, name string) ([]*net.NS, error)
	LookupTXT(ctx context.Context, name string) ([]string, error)
	LookupSRV(ctx context.Context, service, proto, name string) (string, []*net.SRV, error)
	LookupAddr(ctx context.Context, addr string) ([]string, error)
}

// Checker resolves hosts and reports whether records of a type exist.
// It is safe for concurrent use.
type Checker struct {
	resolver Resolver
	timeout  time.Duration
	logger   *slog.Logger
}

// Option is a function that configures a Checker.
type Option func(*Checker)

// WithResolver replaces net.DefaultResolver.
func WithResolver(r Resolver) Option {
	return func(c *Checker) {
		if r != nil {
			c.resolver = r
		}
	}
}

// WithTimeout bounds each check. Zero means the caller's context alone applies.
func WithTimeout(d time.Duration) Option {
	return func(c *Checker) {
		if d > 0 {
			c.timeout = d
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Checker) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func New(opts ...Option) *Checker {
	c := &Checker{
		resolver: net.DefaultResolver,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check returns nil when host has at least one record of type rt.
// A None record type always passes.
func (c *Checker) Check(ctx context.Context, host string, rt RecordType) error {
	if rt == None {
		return nil
	}

	name, err := normalizeHost(host)
	if err != nil {
		return err
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	found, err := c.lookup(ctx, name, rt)
	c.logger.DebugContext(ctx, "dns check",
		slog.String("host", name),
		slog.String("type", rt.String()),
		slog.Bool("found", found),
		slog.Duration("duration", time.Since(start)),
	)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrNotResolved, rt, name, err)
	}
	if !found {
		return fmt.Errorf("%w: no %s records for %s", ErrNotResolved, rt, name)
	}
	return nil
}

func (c *Checker) lookup(ctx context.Context, name string, rt RecordType) (bool, error) {
	switch rt {
	case A:
		ips, err := c.resolver.LookupIP(ctx, "ip4", name)
		return len(ips) > 0, err
	case AAAA, A6:
		ips, err := c.resolver.LookupIP(ctx, "ip6", name)
		return len(ips) > 0, err
	case ANY:
		return c.lookupAny(ctx, name)
	case CNAME:
		cname, err := c.resolver.LookupCNAME(ctx, name)
		if err != nil {
			return false, err
		}
		return cname != "" && !strings.EqualFold(strings.TrimSuffix(cname, "."), strings.TrimSuffix(name, ".")), nil
	case MX:
		records, err := c.resolver.LookupMX(ctx, name)
		return len(records) > 0, err
	case NS:
		records, err := c.resolver.LookupNS(ctx, name)
		return len(records) > 0, err
	case TXT:
		records, err := c.resolver.LookupTXT(ctx, name)
		return len(records) > 0, err
	case SRV:
		_, records, err := c.resolver.LookupSRV(ctx, "", "", name)
		return len(records) > 0, err
	case PTR:
		if _, err := netip.ParseAddr(name); err != nil {
			return false, fmt.Errorf("%w: PTR checks need an IP address", ErrUnsupportedRecordType)
		}
		names, err := c.resolver.LookupAddr(ctx, name)
		return len(names) > 0, err
	case NAPTR, SOA:
		return false, fmt.Errorf("%w: %s", ErrUnsupportedRecordType, rt)
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownRecordType, string(rt))
	}
}

// lookupAny passes when the host has addresses or, failing that, MX records.
func (c *Checker) lookupAny(ctx context.Context, name string) (bool, error) {
	addrs, err := c.resolver.LookupHost(ctx, name)
	if err == nil && len(addrs) > 0 {
		return true, nil
	}
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	records, mxErr := c.resolver.LookupMX(ctx, name)
	if mxErr != nil {
		if err != nil {
			return false, err
		}
		return false, mxErr
	}
	return len(records) > 0, nil
}

// normalizeHost strips IPv6 brackets and converts internationalised names to ASCII.
// ASCII names are only lower-cased so service labels such as _sip stay intact.
func normalizeHost(host string) (string, error) {
	host = strings.TrimSpace(host)
	host = strings.TrimSuffix(strings.TrimPrefix(host, "["), "]")
	if host == "" {
		return "", ErrEmptyHost
	}
	if addr, err := netip.ParseAddr(host); err == nil {
		return addr.String(), nil
	}
	host = strings.TrimSuffix(host, ".")
	if isASCII(host) {
		return strings.ToLower(host), nil
	}
	ascii, err := idna.Lookup.ToASCII(host)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrInvalidHost, host, err)
	}
	return ascii, nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
