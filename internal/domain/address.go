package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Address is an IPv4 address held as a single 32-bit word in network order
// (most significant octet first). Keeping it as one integer makes the mask
// arithmetic plain bitwise operations; octets only exist at the text
// boundary.
type Address uint32

// ParseAddress parses dotted-decimal text into an Address. The text must
// split into exactly four dot-separated segments, each a decimal integer
// in [0,255].
func ParseAddress(text string) (Address, error) {
	segments := strings.Split(text, ".")
	if len(segments) != 4 {
		return 0, fmt.Errorf("%w: %q has %d segments, want 4", ErrSegmentCount, text, len(segments))
	}

	var word uint32
	for _, segment := range segments {
		octet, err := strconv.Atoi(segment)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a number", ErrBadOctet, segment)
		}
		if octet < 0 || octet > 255 {
			return 0, fmt.Errorf("%w: %d is outside [0,255]", ErrBadOctet, octet)
		}
		word = word<<8 | uint32(octet)
	}

	return Address(word), nil
}

// Octets returns the four octets of the address, most significant first.
func (a Address) Octets() [4]byte {
	return [4]byte{byte(a >> 24), byte(a >> 16), byte(a >> 8), byte(a)}
}

// String formats the address as canonical dotted decimal, no leading zeros.
func (a Address) String() string {
	o := a.Octets()
	return fmt.Sprintf("%d.%d.%d.%d", o[0], o[1], o[2], o[3])
}
