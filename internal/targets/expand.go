// Package targets expands CIDR blocks, dash-ranges, and address literals
// into concrete probe targets.
package targets

import (
	"encoding/binary"
	"net"
	"strconv"
	"strings"
)

// Expand parses a comma-separated target spec into a deduplicated list of
// addresses, preserving first-seen order. Each token is one of:
//
//   - a CIDR block ("10.0.0.0/24"), expanded to its usable host addresses
//     with network and broadcast excluded,
//   - a dash-range sharing the first three octets ("10.0.0.5-10"),
//     expanded to the inclusive last-octet range,
//   - a single IPv4/IPv6 literal.
//
// Malformed tokens are dropped; they never abort expansion of the rest.
//
// Expansion stops once the result exceeds the largest sweepable block:
// every caller rejects oversized specs wholesale, so a /8 never needs to
// materialize millions of strings first.
func Expand(spec string) []string {
	var addrs []string
	for _, tok := range strings.Split(spec, ",") {
		if len(addrs) >= expandCap {
			break
		}
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		switch {
		case strings.Contains(tok, "/"):
			addrs = append(addrs, expandCIDR(tok, expandCap-len(addrs))...)
		case strings.Contains(tok, "-") && strings.Count(tok, ".") == 3:
			addrs = append(addrs, expandDashRange(tok)...)
		default:
			if net.ParseIP(tok) != nil {
				addrs = append(addrs, tok)
			}
		}
	}
	return dedupe(addrs)
}

// expandCap bounds how many addresses a spec may expand to: one past the
// largest block a sweep can accept, which is all a caller needs to detect
// and reject an oversized spec.
const expandCap = 1<<16 + 1

// expandCIDR enumerates up to room usable host addresses of an IPv4
// block. A /31 yields both addresses and a /32 its single address,
// matching standard host-enumeration semantics. IPv6 blocks are not
// enumerable at sweep scale and are skipped.
func expandCIDR(tok string, room int) []string {
	_, ipnet, err := net.ParseCIDR(tok)
	if err != nil {
		return nil
	}
	ip4 := ipnet.IP.To4()
	if ip4 == nil {
		return nil
	}

	ones, bits := ipnet.Mask.Size()
	base := uint64(binary.BigEndian.Uint32(ip4))
	size := uint64(1) << uint(bits-ones)

	switch {
	case size == 1:
		return []string{ip4.String()}
	case size == 2:
		return []string{u32ToIP(uint32(base)), u32ToIP(uint32(base) + 1)}
	default:
		n := size - 2
		if uint64(room) < n {
			n = uint64(room)
		}
		hosts := make([]string, 0, n)
		for off := uint64(1); off <= n; off++ {
			hosts = append(hosts, u32ToIP(uint32(base+off)))
		}
		return hosts
	}
}

// expandDashRange expands "a.b.c.START-END" to the inclusive range of
// last octets. A bare literal that merely contains a dash-free parse
// failure falls through to nothing.
func expandDashRange(tok string) []string {
	left, right, ok := strings.Cut(tok, "-")
	if !ok {
		return nil
	}
	dot := strings.LastIndex(left, ".")
	if dot < 0 {
		return nil
	}
	base := left[:dot]

	start, err := strconv.Atoi(left[dot+1:])
	if err != nil {
		return literalOrNothing(tok)
	}
	end, err := strconv.Atoi(right)
	if err != nil {
		return literalOrNothing(tok)
	}
	if start < 0 || end > 255 || start > end {
		return literalOrNothing(tok)
	}
	if net.ParseIP(base+"."+strconv.Itoa(start)) == nil {
		return nil
	}

	out := make([]string, 0, end-start+1)
	for i := start; i <= end; i++ {
		out = append(out, base+"."+strconv.Itoa(i))
	}
	return out
}

func literalOrNothing(tok string) []string {
	if net.ParseIP(tok) != nil {
		return []string{tok}
	}
	return nil
}

func u32ToIP(v uint32) string {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return net.IP(b[:]).String()
}

func dedupe(addrs []string) []string {
	seen := make(map[string]struct{}, len(addrs))
	out := make([]string, 0, len(addrs))
	for _, a := range addrs {
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	return out
}
