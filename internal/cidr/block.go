// Package cidr provides address-block arithmetic for subnet planning.
//
// A Block is a contiguous, power-of-two range of IP addresses identified
// by a base address and a prefix length. The base address must be aligned
// to the prefix length (no host bits set); constructors enforce this
// rather than silently masking.
package cidr

import (
	"fmt"
	"math/big"
	"net"
)

// Block is an address block in CIDR notation.
// The zero value is not a valid block; use Parse or New.
type Block struct {
	ip     net.IP
	prefix int
	bits   int
}

// Parse parses a block from its canonical textual form "base/prefix",
// e.g. "10.0.0.0/24". Unlike net.ParseCIDR it rejects input whose base
// address has host bits set: "10.0.0.1/24" is an error, not an alias
// for "10.0.0.0/24".
func Parse(s string) (Block, error) {
	ip, ipNet, err := net.ParseCIDR(s)
	if err != nil {
		return Block{}, fmt.Errorf("invalid CIDR %q: %w", s, err)
	}
	if !ip.Equal(ipNet.IP) {
		return Block{}, fmt.Errorf("invalid CIDR %q: base address has host bits set (network address is %s)", s, ipNet.IP)
	}
	prefix, _ := ipNet.Mask.Size()
	return New(ipNet.IP, prefix)
}

// MustParse is like Parse but panics on error. Intended for tests and
// compile-time-constant inputs.
func MustParse(s string) Block {
	b, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return b
}

// New constructs a block from a base address and prefix length.
// The address family determines the block's width: 32 bits for IPv4,
// 128 for IPv6.
func New(ip net.IP, prefix int) (Block, error) {
	bits := 128
	if v4 := ip.To4(); v4 != nil {
		ip = v4
		bits = 32
	} else if ip.To16() == nil {
		return Block{}, fmt.Errorf("invalid base address %v", ip)
	}

	if prefix < 0 || prefix > bits {
		return Block{}, fmt.Errorf("prefix length %d out of range for %d-bit address %s", prefix, bits, ip)
	}

	masked := ip.Mask(net.CIDRMask(prefix, bits))
	if !ip.Equal(masked) {
		return Block{}, fmt.Errorf("base address %s has host bits set for /%d (network address is %s)", ip, prefix, masked)
	}

	base := make(net.IP, len(ip))
	copy(base, ip)
	return Block{ip: base, prefix: prefix, bits: bits}, nil
}

// FromInt constructs a block whose base address is the given integer
// value in a bits-wide address space. The value must be aligned to the
// prefix length.
func FromInt(val *big.Int, prefix, bits int) (Block, error) {
	if bits != 32 && bits != 128 {
		return Block{}, fmt.Errorf("unsupported address width %d", bits)
	}
	return New(IntToAddr(val, bits), prefix)
}

// String returns the canonical textual form "base/prefix".
func (b Block) String() string {
	return fmt.Sprintf("%s/%d", b.ip, b.prefix)
}

// Addr returns the block's base address.
func (b Block) Addr() net.IP {
	ip := make(net.IP, len(b.ip))
	copy(ip, b.ip)
	return ip
}

// Prefix returns the block's prefix length.
func (b Block) Prefix() int {
	return b.prefix
}

// Bits returns the width of the block's address space: 32 or 128.
func (b Block) Bits() int {
	return b.bits
}

// IsZero reports whether b is the zero Block.
func (b Block) IsZero() bool {
	return b.ip == nil
}

// Size returns the number of addresses in the block.
func (b Block) Size() *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(b.bits-b.prefix))
}

// First returns the block's base address as an integer.
func (b Block) First() *big.Int {
	v, _ := AddrToInt(b.ip)
	return v
}

// Last returns the block's highest address as an integer.
func (b Block) Last() *big.Int {
	last := b.First()
	last.Add(last, b.Size())
	return last.Sub(last, big.NewInt(1))
}

// Contains reports whether other lies entirely within b.
// Blocks of different address families never contain each other.
func (b Block) Contains(other Block) bool {
	if b.bits != other.bits {
		return false
	}
	return b.First().Cmp(other.First()) <= 0 && other.Last().Cmp(b.Last()) <= 0
}

// Overlaps reports whether b and other share any address.
func (b Block) Overlaps(other Block) bool {
	if b.bits != other.bits {
		return false
	}
	return b.First().Cmp(other.Last()) <= 0 && other.First().Cmp(b.Last()) <= 0
}

// AddrToInt converts an IP address to its integer value, returning the
// width of its address space (32 or 128). Returns width 0 for malformed
// addresses.
func AddrToInt(ip net.IP) (*big.Int, int) {
	val := new(big.Int)
	if v4 := ip.To4(); v4 != nil {
		val.SetBytes(v4)
		return val, 32
	}
	if v16 := ip.To16(); v16 != nil {
		val.SetBytes(v16)
		return val, 128
	}
	return nil, 0
}

// IntToAddr converts an integer value back to an IP address in a
// bits-wide address space.
func IntToAddr(val *big.Int, bits int) net.IP {
	raw := val.Bytes()
	ip := make(net.IP, bits/8)

	// big.Int.Bytes() drops leading zeros; right-align into the address.
	for i := 1; i <= len(raw) && i <= len(ip); i++ {
		ip[len(ip)-i] = raw[len(raw)-i]
	}
	return ip
}
