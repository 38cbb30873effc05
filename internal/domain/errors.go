package domain

import "errors"

// Parse failures are reported as one of these sentinels, wrapped with
// input-specific detail at the failure site. Callers discriminate with
// errors.Is.
var (
	// ErrMalformedCIDR means the input is not an address/prefix pair.
	ErrMalformedCIDR = errors.New("malformed CIDR notation")

	// ErrBadPrefix means the prefix length is not an integer in [0,32].
	ErrBadPrefix = errors.New("invalid prefix length")

	// ErrBadOctet means an address segment is not an integer in [0,255].
	ErrBadOctet = errors.New("invalid octet")

	// ErrSegmentCount means the address does not split into four segments.
	ErrSegmentCount = errors.New("wrong segment count")
)
