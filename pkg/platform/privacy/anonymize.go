// Package privacy keeps personally identifying request data out of logs.
package privacy

import "net/netip"

// AnonymizeIP masks a client address before it is logged: IPv4 to its /24,
// IPv6 to its /48. Returns "unknown" for empty input and "invalid" when the
// value does not parse as a bare address.
func AnonymizeIP(ip string) string {
	if ip == "" || ip == "unknown" {
		return "unknown"
	}

	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return "invalid"
	}
	addr = addr.Unmap()

	bits := 48
	if addr.Is4() {
		bits = 24
	}
	prefix, err := addr.WithZone("").Prefix(bits)
	if err != nil {
		return "invalid"
	}
	return prefix.Addr().String()
}
