package validator

import (
	"context"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dmitrymomot/formkit/pkg/dnscheck"
	"github.com/dmitrymomot/formkit/pkg/sanitizer"
)

const NameURL = "url"

// URL error codes.
const (
	URLInvalid Code = iota
	URLDNS
)

var urlMessages = map[Code]string{
	URLInvalid: "Field '{0}' requires a valid URL.",
	URLDNS:     "The host in field '{0}' could not be resolved.",
}

// Protocol controls whether a scheme is required in submitted URLs.
type Protocol int

const (
	// ProtocolNone accepts URLs with or without "scheme://".
	ProtocolNone Protocol = iota
	// ProtocolRelative additionally accepts scheme-relative "//host" URLs.
	ProtocolRelative
	// ProtocolAbsolute requires "scheme://".
	ProtocolAbsolute
)

// ParseProtocol parses "none", "relative" or "absolute".
func ParseProtocol(s string) (Protocol, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return ProtocolNone, nil
	case "relative":
		return ProtocolRelative, nil
	case "absolute", "":
		return ProtocolAbsolute, nil
	default:
		return ProtocolAbsolute, fmt.Errorf("%w: unknown protocol mode %q", ErrInvalidOption, s)
	}
}

// URLConfig holds the URL validator settings.
type URLConfig struct {
	AllowedSchemes   []string
	AllowProtocol    Protocol
	AllowBasicAuth   bool
	AllowDomains     bool
	AllowIPv4        bool
	AllowIPv6        bool
	AllowPorts       bool
	AllowedHostnames []string
	// AllowedPorts are compared to the captured port without its colon.
	// An empty entry admits URLs without a port.
	AllowedPorts []string
	DNSType      dnscheck.RecordType
	DNSTimeout   time.Duration
}

// DefaultURLConfig returns absolute http(s)/ftp(s) URLs with any host kind and port.
func DefaultURLConfig() URLConfig {
	return URLConfig{
		AllowedSchemes: []string{"http", "https", "ftp", "ftps"},
		AllowProtocol:  ProtocolAbsolute,
		AllowDomains:   true,
		AllowIPv4:      true,
		AllowIPv6:      true,
		AllowPorts:     true,
	}
}

var schemeRegex = regexp.MustCompile(`^[a-z]+$`)

func validateSchemes(schemes []string) error {
	for _, scheme := range schemes {
		if !schemeRegex.MatchString(scheme) {
			return fmt.Errorf("%w: invalid URL scheme %q", ErrInvalidOption, scheme)
		}
	}
	return nil
}

func validateDNSType(rt dnscheck.RecordType) error {
	if _, err := dnscheck.ParseRecordType(string(rt)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOption, err)
	}
	return nil
}

// HostChecker verifies that a captured host resolves.
type HostChecker interface {
	Check(ctx context.Context, host string, rt dnscheck.RecordType) error
}

// URL validates absolute or relative URLs against a configurable grammar,
// optional host and port allow-lists and an optional DNS check.
type URL struct {
	base

	mu      sync.Mutex
	cfg     URLConfig
	checker HostChecker
	pattern *urlPattern
}

// NewURL creates a URL validator. Empty AllowedSchemes fall back to the defaults.
func NewURL(cfg URLConfig, opts ...Option) (*URL, error) {
	if len(cfg.AllowedSchemes) == 0 {
		cfg.AllowedSchemes = DefaultURLConfig().AllowedSchemes
	}
	if err := validateSchemes(cfg.AllowedSchemes); err != nil {
		return nil, err
	}
	if err := validateDNSType(cfg.DNSType); err != nil {
		return nil, err
	}
	cfg.AllowedSchemes = slices.Clone(cfg.AllowedSchemes)
	cfg.AllowedHostnames = slices.Clone(cfg.AllowedHostnames)
	cfg.AllowedPorts = slices.Clone(cfg.AllowedPorts)

	v := &URL{
		base: newBase(NameURL, urlMessages, opts),
		cfg:  cfg,
	}
	v.checker = dnscheck.New(
		dnscheck.WithTimeout(cfg.DNSTimeout),
		dnscheck.WithLogger(v.logger),
	)
	return v, nil
}

// MustURL is like NewURL but panics on invalid configuration.
func MustURL(cfg URLConfig, opts ...Option) *URL {
	v, err := NewURL(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// Config returns a copy of the current configuration.
func (v *URL) Config() URLConfig {
	v.mu.Lock()
	defer v.mu.Unlock()

	cfg := v.cfg
	cfg.AllowedSchemes = slices.Clone(cfg.AllowedSchemes)
	cfg.AllowedHostnames = slices.Clone(cfg.AllowedHostnames)
	cfg.AllowedPorts = slices.Clone(cfg.AllowedPorts)
	return cfg
}

func (v *URL) update(fn func(cfg *URLConfig)) *URL {
	v.mu.Lock()
	defer v.mu.Unlock()

	fn(&v.cfg)
	v.pattern = nil
	return v
}

func (v *URL) SetAllowedSchemes(schemes ...string) error {
	if len(schemes) == 0 {
		return fmt.Errorf("%w: at least one URL scheme is required", ErrInvalidOption)
	}
	if err := validateSchemes(schemes); err != nil {
		return err
	}
	v.update(func(cfg *URLConfig) { cfg.AllowedSchemes = slices.Clone(schemes) })
	return nil
}

func (v *URL) SetAllowProtocol(p Protocol) *URL {
	return v.update(func(cfg *URLConfig) { cfg.AllowProtocol = p })
}

func (v *URL) SetAllowBasicAuth(allow bool) *URL {
	return v.update(func(cfg *URLConfig) { cfg.AllowBasicAuth = allow })
}

func (v *URL) SetAllowDomains(allow bool) *URL {
	return v.update(func(cfg *URLConfig) { cfg.AllowDomains = allow })
}

func (v *URL) SetAllowIPv4(allow bool) *URL {
	return v.update(func(cfg *URLConfig) { cfg.AllowIPv4 = allow })
}

func (v *URL) SetAllowIPv6(allow bool) *URL {
	return v.update(func(cfg *URLConfig) { cfg.AllowIPv6 = allow })
}

func (v *URL) SetAllowPorts(allow bool) *URL {
	return v.update(func(cfg *URLConfig) { cfg.AllowPorts = allow })
}

func (v *URL) SetAllowedHostnames(hosts ...string) *URL {
	return v.update(func(cfg *URLConfig) { cfg.AllowedHostnames = slices.Clone(hosts) })
}

func (v *URL) SetAllowedPorts(ports ...string) *URL {
	return v.update(func(cfg *URLConfig) { cfg.AllowedPorts = slices.Clone(ports) })
}

func (v *URL) SetDNSType(rt dnscheck.RecordType) error {
	if err := validateDNSType(rt); err != nil {
		return err
	}
	v.update(func(cfg *URLConfig) { cfg.DNSType = rt })
	return nil
}

// SetHostChecker replaces the DNS checker used when a DNS type is configured.
func (v *URL) SetHostChecker(c HostChecker) *URL {
	v.mu.Lock()
	defer v.mu.Unlock()

	if c != nil {
		v.checker = c
	}
	return v
}

// Pattern returns the regular expression source built from the current configuration.
func (v *URL) Pattern() string {
	return v.compiled().re.String()
}

// BackReferences returns the capture group indices of the hostname and port.
// The port index is zero when the grammar has no port group.
func (v *URL) BackReferences() (hostname, port int) {
	p := v.compiled()
	return p.hostIdx, p.portIdx
}

// Bind needs no field properties.
func (v *URL) Bind(Field) error {
	return nil
}

func (v *URL) Validate(ctx context.Context, f Field, raw Value) Value {
	value := sanitizer.Trim(raw.String())
	if value == "" {
		return Null()
	}
	value = sanitizer.EscapePercent(sanitizer.DecodePercent(value))

	v.mu.Lock()
	cfg := v.cfg
	checker := v.checker
	v.mu.Unlock()
	p := v.compiled()

	m := p.re.FindStringSubmatch(value)
	if m == nil {
		v.fail(f, URLInvalid)
		return Null()
	}

	host := m[p.hostIdx]
	if len(cfg.AllowedHostnames) > 0 && !slices.Contains(cfg.AllowedHostnames, host) {
		v.fail(f, URLInvalid)
		return Null()
	}

	if len(cfg.AllowedPorts) > 0 {
		port := ""
		if p.portIdx > 0 {
			port = strings.TrimLeft(m[p.portIdx], ":")
		}
		if !slices.Contains(cfg.AllowedPorts, port) {
			v.fail(f, URLInvalid)
			return Null()
		}
	}

	if cfg.DNSType != dnscheck.None {
		if err := checker.Check(ctx, host, cfg.DNSType); err != nil {
			v.logger.DebugContext(ctx, "url host check failed",
				"field", f.Name(),
				"host", host,
				"error", err,
			)
			v.fail(f, URLDNS)
			return Null()
		}
	}

	return String(value)
}

func (v *URL) compiled() *urlPattern {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.pattern == nil {
		v.pattern = buildURLPattern(v.cfg)
	}
	return v.pattern
}
