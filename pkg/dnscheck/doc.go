// Package dnscheck verifies that a host name has DNS records of a given type.
//
// It backs the optional DNS check of the URL validator. Lookups go through the
// Resolver interface, which *net.Resolver satisfies, so tests can substitute a
// fake. Internationalised host names are converted to their ASCII form with
// golang.org/x/net/idna before they are looked up.
//
//	checker := dnscheck.New(dnscheck.WithTimeout(2 * time.Second))
//	if err := checker.Check(ctx, "example.com", dnscheck.MX); err != nil {
//	    // host has no MX records or the lookup failed
//	}
package dnscheck
