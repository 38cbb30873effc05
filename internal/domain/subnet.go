package domain

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// Subnet holds a parsed CIDR input and every quantity derived from it.
// All fields are computed once by ParseSubnet and never mutated.
type Subnet struct {
	// Base is the address exactly as given, not necessarily aligned to the
	// network boundary.
	Base   Address
	Prefix int

	Netmask  Address
	Wildcard Address

	// Network is Base with all host bits cleared: the subnet ID.
	Network Address
	// Broadcast is Network with all host bits set.
	Broadcast Address

	// HostMin is the lowest address of the range. It equals Network for
	// every prefix length; the network address is not skipped.
	HostMin Address
	// HostMax is the highest address of the range, equal to Broadcast.
	HostMax Address

	// TotalHosts counts every address in the range, network and broadcast
	// included. It is at least 1 and reaches 2^32 for a /0.
	TotalHosts uint64
}

// ParseSubnet parses "a.b.c.d/n" and derives all subnet quantities. It
// either returns a fully populated Subnet or a typed error, never a
// partial value.
func ParseSubnet(text string) (*Subnet, error) {
	base, prefix, err := splitCIDR(strings.TrimSpace(text))
	if err != nil {
		return nil, err
	}

	mask, err := Netmask(prefix)
	if err != nil {
		return nil, err
	}
	wildcard := Wildcard(mask)
	network := base & mask
	broadcast := network | wildcard

	return &Subnet{
		Base:       base,
		Prefix:     prefix,
		Netmask:    mask,
		Wildcard:   wildcard,
		Network:    network,
		Broadcast:  broadcast,
		HostMin:    network,
		HostMax:    broadcast,
		TotalHosts: CountAddresses(wildcard),
	}, nil
}

// splitCIDR separates an address/prefix pair and validates both halves.
func splitCIDR(text string) (Address, int, error) {
	i := strings.Index(text, "/")
	if i < 0 {
		return 0, 0, fmt.Errorf("%w: %q has no prefix separator", ErrMalformedCIDR, text)
	}

	addrText, prefixText := text[:i], text[i+1:]
	if addrText == "" || prefixText == "" {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedCIDR, text)
	}
	if strings.Contains(prefixText, "/") {
		return 0, 0, fmt.Errorf("%w: %q has more than one prefix separator", ErrMalformedCIDR, text)
	}

	base, err := ParseAddress(addrText)
	if err != nil {
		return 0, 0, err
	}

	prefix, err := strconv.Atoi(prefixText)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q is not a number", ErrBadPrefix, prefixText)
	}
	if prefix < 0 || prefix > 32 {
		return 0, 0, fmt.Errorf("%w: %d is outside [0,32]", ErrBadPrefix, prefix)
	}

	return base, prefix, nil
}

// Netmask returns the mask with the top prefix bits set and the rest clear.
func Netmask(prefix int) (Address, error) {
	if prefix < 0 || prefix > 32 {
		return 0, fmt.Errorf("%w: %d is outside [0,32]", ErrBadPrefix, prefix)
	}
	if prefix == 0 {
		return 0, nil
	}
	return Address(^uint32(0) << (32 - prefix)), nil
}

// Wildcard returns the bitwise complement of a netmask.
func Wildcard(mask Address) Address {
	return ^mask
}

// CountAddresses multiplies (octet+1) across the wildcard's four octets.
// For the contiguous masks a prefix produces this equals wildcard+1, i.e.
// the number of addresses the host bits can express. Never returns 0.
func CountAddresses(wildcard Address) uint64 {
	total := uint64(1)
	for _, octet := range wildcard.Octets() {
		total *= uint64(octet) + 1
	}
	return total
}

// Addresses yields every address from HostMin through HostMax in ascending
// order. The sequence is computed lazily and can be ranged over any number
// of times. Termination is checked before the increment, so a /0 walks all
// 2^32 addresses without wrapping past HostMax.
func (s *Subnet) Addresses() iter.Seq[Address] {
	return func(yield func(Address) bool) {
		for addr := s.HostMin; ; addr++ {
			if !yield(addr) {
				return
			}
			if addr == s.HostMax {
				return
			}
		}
	}
}

// String returns the subnet in CIDR notation using the base as given.
func (s *Subnet) String() string {
	return fmt.Sprintf("%s/%d", s.Base, s.Prefix)
}
