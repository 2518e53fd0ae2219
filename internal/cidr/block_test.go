package cidr

import (
	"math/big"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "aligned IPv4 block",
			input: "10.0.0.0/24",
			want:  "10.0.0.0/24",
		},
		{
			name:  "full IPv4 space",
			input: "0.0.0.0/0",
			want:  "0.0.0.0/0",
		},
		{
			name:  "single address",
			input: "192.168.1.1/32",
			want:  "192.168.1.1/32",
		},
		{
			name:  "aligned IPv6 block",
			input: "2001:db8::/48",
			want:  "2001:db8::/48",
		},
		{
			name:    "host bits set",
			input:   "10.0.0.1/24",
			wantErr: true,
		},
		{
			name:    "host bits set IPv6",
			input:   "2001:db8::1/64",
			wantErr: true,
		},
		{
			name:    "not a CIDR",
			input:   "10.0.0.0",
			wantErr: true,
		},
		{
			name:    "garbage",
			input:   "banana/24",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b, err := Parse(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, b.String())
		})
	}
}

func TestNewRejectsMisalignedBase(t *testing.T) {
	t.Parallel()
	_, err := New(net.IPv4(10, 0, 0, 64).To4(), 26)
	require.NoError(t, err, "10.0.0.64 is aligned for /26")

	// A /25 spans 128 addresses, so .64 is mid-block, not a base.
	_, err = New(net.IPv4(10, 0, 0, 64).To4(), 25)
	assert.Error(t, err, "10.0.0.64 has host bits set for /25")

	_, err = New(net.IPv4(10, 0, 0, 64).To4(), 24)
	assert.Error(t, err, "10.0.0.64 has host bits set for /24")
}

func TestBlockWidth(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 32, MustParse("10.0.0.0/8").Bits())
	assert.Equal(t, 128, MustParse("fd00::/8").Bits())
}

func TestSize(t *testing.T) {
	t.Parallel()
	tests := []struct {
		block string
		want  int64
	}{
		{"10.0.0.0/24", 256},
		{"10.0.0.0/26", 64},
		{"10.0.0.0/32", 1},
	}
	for _, tt := range tests {
		assert.Equal(t, big.NewInt(tt.want), MustParse(tt.block).Size(), tt.block)
	}
}

func TestContains(t *testing.T) {
	t.Parallel()
	parent := MustParse("10.0.0.0/24")

	assert.True(t, parent.Contains(MustParse("10.0.0.0/26")))
	assert.True(t, parent.Contains(MustParse("10.0.0.192/26")))
	assert.True(t, parent.Contains(parent))
	assert.False(t, parent.Contains(MustParse("10.0.1.0/26")))
	assert.False(t, parent.Contains(MustParse("10.0.0.0/23")), "larger block is not contained")
	assert.False(t, parent.Contains(MustParse("2001:db8::/96")), "different address family")
}

func TestOverlaps(t *testing.T) {
	t.Parallel()
	a := MustParse("10.0.0.0/25")

	assert.True(t, a.Overlaps(MustParse("10.0.0.64/26")))
	assert.True(t, a.Overlaps(MustParse("10.0.0.0/24")))
	assert.False(t, a.Overlaps(MustParse("10.0.0.128/25")))
	assert.False(t, a.Overlaps(MustParse("2001:db8::/32")))
}

func TestAddrIntRoundTrip(t *testing.T) {
	t.Parallel()
	tests := []struct {
		addr string
		bits int
	}{
		{"0.0.0.0", 32},
		{"10.0.0.1", 32},
		{"255.255.255.255", 32},
		{"2001:db8::1", 128},
	}
	for _, tt := range tests {
		val, bits := AddrToInt(net.ParseIP(tt.addr))
		require.Equal(t, tt.bits, bits, tt.addr)
		assert.Equal(t, tt.addr, IntToAddr(val, bits).String(), tt.addr)
	}
}

func TestFromInt(t *testing.T) {
	t.Parallel()
	b, err := FromInt(big.NewInt(167772160+64), 26, 32) // 10.0.0.64
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.64/26", b.String())

	_, err = FromInt(big.NewInt(167772160+64), 24, 32)
	assert.Error(t, err, "misaligned value for /24")
}
