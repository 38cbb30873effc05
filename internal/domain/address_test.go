package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddress(t *testing.T) {
	tests := []struct {
		text string
		want Address
	}{
		{"0.0.0.0", 0},
		{"255.255.255.255", 0xffffffff},
		{"192.168.0.2", 0xc0a80002},
		{"10.0.0.5", 0x0a000005},
		{"1.2.3.4", 0x01020304},
	}

	for _, tt := range tests {
		addr, err := ParseAddress(tt.text)
		require.NoError(t, err, "input %q", tt.text)
		assert.Equal(t, tt.want, addr, "input %q", tt.text)
		assert.Equal(t, tt.text, addr.String())
	}
}

func TestParseAddressRejectsBadInput(t *testing.T) {
	tests := []struct {
		text string
		want error
	}{
		{"300.1.1.1", ErrBadOctet},
		{"1.2.3.256", ErrBadOctet},
		{"1.2.3.-1", ErrBadOctet},
		{"a.b.c.d", ErrBadOctet},
		{"1..2.3", ErrBadOctet},
		{"1.2.3", ErrSegmentCount},
		{"1.2.3.4.5", ErrSegmentCount},
		{"", ErrSegmentCount},
	}

	for _, tt := range tests {
		_, err := ParseAddress(tt.text)
		require.Error(t, err, "input %q", tt.text)
		assert.ErrorIs(t, err, tt.want, "input %q", tt.text)
	}
}

func TestAddressOctets(t *testing.T) {
	addr, err := ParseAddress("10.20.30.40")
	require.NoError(t, err)
	assert.Equal(t, [4]byte{10, 20, 30, 40}, addr.Octets())
}

func TestAddressStringNoLeadingZeros(t *testing.T) {
	// Segments with leading zeros parse as plain decimal, the canonical
	// form drops them.
	addr, err := ParseAddress("010.001.000.009")
	require.NoError(t, err)
	assert.Equal(t, "10.1.0.9", addr.String())
}
