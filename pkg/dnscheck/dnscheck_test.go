package dnscheck_test

import (
	"context"
	"errors"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/dnscheck"
)

type fakeResolver struct {
	mu      sync.Mutex
	hosts   map[string][]string
	ip4     map[string][]net.IP
	ip6     map[string][]net.IP
	cnames  map[string]string
	mx      map[string][]*net.MX
	ns      map[string][]*net.NS
	txt     map[string][]string
	srv     map[string][]*net.SRV
	ptr     map[string][]string
	err     error
	delay   time.Duration
	queried []string
}

var errNoSuchHost = &net.DNSError{Err: "no such host", IsNotFound: true}

func (f *fakeResolver) record(name string) error {
	f.mu.Lock()
	f.queried = append(f.queried, name)
	f.mu.Unlock()
	return f.err
}

func (f *fakeResolver) wait(ctx context.Context) error {
	if f.delay == 0 {
		return nil
	}
	select {
	case <-time.After(f.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *fakeResolver) LookupHost(ctx context.Context, host string) ([]string, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	if err := f.record(host); err != nil {
		return nil, err
	}
	if addrs, ok := f.hosts[host]; ok {
		return addrs, nil
	}
	return nil, errNoSuchHost
}

func (f *fakeResolver) LookupIP(ctx context.Context, network, host string) ([]net.IP, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	if err := f.record(host); err != nil {
		return nil, err
	}
	src := f.ip4
	if network == "ip6" {
		src = f.ip6
	}
	if ips, ok := src[host]; ok {
		return ips, nil
	}
	return nil, errNoSuchHost
}

func (f *fakeResolver) LookupCNAME(_ context.Context, host string) (string, error) {
	if err := f.record(host); err != nil {
		return "", err
	}
	if cname, ok := f.cnames[host]; ok {
		return cname, nil
	}
	return host + ".", nil
}

func (f *fakeResolver) LookupMX(_ context.Context, name string) ([]*net.MX, error) {
	if err := f.record(name); err != nil {
		return nil, err
	}
	return f.mx[name], nil
}

func (f *fakeResolver) LookupNS(_ context.Context, name string) ([]*net.NS, error) {
	if err := f.record(name); err != nil {
		return nil, err
	}
	return f.ns[name], nil
}

func (f *fakeResolver) LookupTXT(_ context.Context, name string) ([]string, error) {
	if err := f.record(name); err != nil {
		return nil, err
	}
	return f.txt[name], nil
}

func (f *fakeResolver) LookupSRV(_ context.Context, _, _, name string) (string, []*net.SRV, error) {
	if err := f.record(name); err != nil {
		return "", nil, err
	}
	return name, f.srv[name], nil
}

func (f *fakeResolver) LookupAddr(_ context.Context, addr string) ([]string, error) {
	if err := f.record(addr); err != nil {
		return nil, err
	}
	return f.ptr[addr], nil
}

func newFake() *fakeResolver {
	return &fakeResolver{
		hosts:  map[string][]string{"example.com": {"93.184.216.34"}},
		ip4:    map[string][]net.IP{"example.com": {net.ParseIP("93.184.216.34")}},
		ip6:    map[string][]net.IP{"example.com": {net.ParseIP("2606:2800:220:1::1")}},
		cnames: map[string]string{"www.example.com": "example.com."},
		mx:     map[string][]*net.MX{"example.com": {{Host: "mail.example.com.", Pref: 10}}, "mailonly.com": {{Host: "mx.mailonly.com.", Pref: 1}}},
		ns:     map[string][]*net.NS{"example.com": {{Host: "a.iana-servers.net."}}},
		txt:    map[string][]string{"example.com": {"v=spf1 -all"}},
		srv:    map[string][]*net.SRV{"_sip._tcp.example.com": {{Target: "sip.example.com.", Port: 5060}}},
		ptr:    map[string][]string{"93.184.216.34": {"example.com."}},
	}
}

func TestParseRecordType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected dnscheck.RecordType
		err      error
	}{
		{input: "", expected: dnscheck.None},
		{input: "none", expected: dnscheck.None},
		{input: "false", expected: dnscheck.None},
		{input: "a", expected: dnscheck.A},
		{input: " mx ", expected: dnscheck.MX},
		{input: "A6", expected: dnscheck.AAAA},
		{input: "any", expected: dnscheck.ANY},
		{input: "NAPTR", err: dnscheck.ErrUnsupportedRecordType},
		{input: "soa", err: dnscheck.ErrUnsupportedRecordType},
		{input: "HINFO", err: dnscheck.ErrUnknownRecordType},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			rt, err := dnscheck.ParseRecordType(tt.input)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, rt)
		})
	}
}

func TestRecordTypeUnmarshalText(t *testing.T) {
	t.Parallel()

	var rt dnscheck.RecordType
	require.NoError(t, rt.UnmarshalText([]byte("txt")))
	assert.Equal(t, dnscheck.TXT, rt)

	require.ErrorIs(t, rt.UnmarshalText([]byte("bogus")), dnscheck.ErrUnknownRecordType)
	assert.Equal(t, dnscheck.TXT, rt, "failed decode keeps previous value")
	assert.Equal(t, "NONE", dnscheck.None.String())
}

func TestChecker_Check(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		host    string
		rt      dnscheck.RecordType
		wantErr error
	}{
		{name: "none always passes", host: "nothing.invalid", rt: dnscheck.None},
		{name: "A record", host: "example.com", rt: dnscheck.A},
		{name: "A record missing", host: "missing.com", rt: dnscheck.A, wantErr: dnscheck.ErrNotResolved},
		{name: "AAAA record", host: "example.com", rt: dnscheck.AAAA},
		{name: "A6 checks AAAA", host: "example.com", rt: dnscheck.A6},
		{name: "case is normalized", host: "EXAMPLE.com", rt: dnscheck.A},
		{name: "trailing dot", host: "example.com.", rt: dnscheck.A},
		{name: "MX record", host: "example.com", rt: dnscheck.MX},
		{name: "MX missing", host: "nomail.com", rt: dnscheck.MX, wantErr: dnscheck.ErrNotResolved},
		{name: "NS record", host: "example.com", rt: dnscheck.NS},
		{name: "TXT record", host: "example.com", rt: dnscheck.TXT},
		{name: "SRV record", host: "_sip._tcp.example.com", rt: dnscheck.SRV},
		{name: "CNAME record", host: "www.example.com", rt: dnscheck.CNAME},
		{name: "CNAME missing", host: "example.com", rt: dnscheck.CNAME, wantErr: dnscheck.ErrNotResolved},
		{name: "ANY via addresses", host: "example.com", rt: dnscheck.ANY},
		{name: "ANY via MX", host: "mailonly.com", rt: dnscheck.ANY},
		{name: "ANY missing", host: "missing.com", rt: dnscheck.ANY, wantErr: dnscheck.ErrNotResolved},
		{name: "PTR for address", host: "93.184.216.34", rt: dnscheck.PTR},
		{name: "PTR for name", host: "example.com", rt: dnscheck.PTR, wantErr: dnscheck.ErrUnsupportedRecordType},
		{name: "SOA unsupported", host: "example.com", rt: dnscheck.SOA, wantErr: dnscheck.ErrUnsupportedRecordType},
		{name: "unknown type", host: "example.com", rt: dnscheck.RecordType("HINFO"), wantErr: dnscheck.ErrUnknownRecordType},
		{name: "empty host", host: " ", rt: dnscheck.A, wantErr: dnscheck.ErrEmptyHost},
		{name: "empty brackets", host: "[]", rt: dnscheck.A, wantErr: dnscheck.ErrEmptyHost},
		{name: "invalid IDN", host: "bü_cher.de", rt: dnscheck.A, wantErr: dnscheck.ErrInvalidHost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			checker := dnscheck.New(dnscheck.WithResolver(newFake()))
			err := checker.Check(context.Background(), tt.host, tt.rt)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestChecker_NormalizesHosts(t *testing.T) {
	t.Parallel()

	t.Run("converts IDN to punycode", func(t *testing.T) {
		t.Parallel()

		fake := newFake()
		fake.ip4["xn--bcher-kva.de"] = []net.IP{net.ParseIP("1.2.3.4")}

		checker := dnscheck.New(dnscheck.WithResolver(fake))
		require.NoError(t, checker.Check(context.Background(), "bücher.de", dnscheck.A))
		assert.Equal(t, []string{"xn--bcher-kva.de"}, fake.queried)
	})

	t.Run("strips IPv6 brackets", func(t *testing.T) {
		t.Parallel()

		fake := newFake()
		fake.ptr["2001:db8::1"] = []string{"host.example."}

		checker := dnscheck.New(dnscheck.WithResolver(fake))
		require.NoError(t, checker.Check(context.Background(), "[2001:db8::1]", dnscheck.PTR))
		assert.Equal(t, []string{"2001:db8::1"}, fake.queried)
	})
}

func TestChecker_ResolverFailure(t *testing.T) {
	t.Parallel()

	fake := newFake()
	fake.err = errors.New("connection refused")

	checker := dnscheck.New(dnscheck.WithResolver(fake))
	err := checker.Check(context.Background(), "example.com", dnscheck.MX)
	require.ErrorIs(t, err, dnscheck.ErrNotResolved)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestChecker_Timeout(t *testing.T) {
	t.Parallel()

	fake := newFake()
	fake.delay = time.Second

	checker := dnscheck.New(dnscheck.WithResolver(fake), dnscheck.WithTimeout(10*time.Millisecond))
	err := checker.Check(context.Background(), "example.com", dnscheck.A)
	require.ErrorIs(t, err, dnscheck.ErrNotResolved)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestChecker_CancelledContext(t *testing.T) {
	t.Parallel()

	fake := newFake()
	fake.delay = time.Second

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	checker := dnscheck.New(dnscheck.WithResolver(fake))
	err := checker.Check(ctx, "example.com", dnscheck.ANY)
	require.ErrorIs(t, err, dnscheck.ErrNotResolved)
	assert.ErrorIs(t, err, context.Canceled)
}
