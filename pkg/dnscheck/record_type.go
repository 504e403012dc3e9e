package dnscheck

import (
	"fmt"
	"strings"
)

// RecordType names the kind of DNS record a host must have.
type RecordType string

const (
	None  RecordType = ""
	ANY   RecordType = "ANY"
	A     RecordType = "A"
	A6    RecordType = "A6"
	AAAA  RecordType = "AAAA"
	CNAME RecordType = "CNAME"
	MX    RecordType = "MX"
	NAPTR RecordType = "NAPTR"
	NS    RecordType = "NS"
	PTR   RecordType = "PTR"
	SOA   RecordType = "SOA"
	SRV   RecordType = "SRV"
	TXT   RecordType = "TXT"
)

// ParseRecordType parses a record type name case-insensitively.
// Empty strings, "none" and "false" disable the check. A6 is treated as AAAA.
// NAPTR and SOA are recognised but rejected with ErrUnsupportedRecordType.
func ParseRecordType(s string) (RecordType, error) {
	switch rt := RecordType(strings.ToUpper(strings.TrimSpace(s))); rt {
	case "", "NONE", "FALSE":
		return None, nil
	case A6:
		return AAAA, nil
	case ANY, A, AAAA, CNAME, MX, NS, PTR, SRV, TXT:
		return rt, nil
	case NAPTR, SOA:
		return None, fmt.Errorf("%w: %s", ErrUnsupportedRecordType, rt)
	default:
		return None, fmt.Errorf("%w: %q", ErrUnknownRecordType, s)
	}
}

func (rt RecordType) String() string {
	if rt == None {
		return "NONE"
	}
	return string(rt)
}

// UnmarshalText lets record types be decoded from configuration.
func (rt *RecordType) UnmarshalText(text []byte) error {
	parsed, err := ParseRecordType(string(text))
	if err != nil {
		return err
	}
	*rt = parsed
	return nil
}
