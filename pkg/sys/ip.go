package sys

import "net/netip"

// Special-purpose ranges the stdlib predicates don't cover. Addresses in
// these are never globally routable.
var (
	v4NonGlobal = []netip.Prefix{
		netip.MustParsePrefix("0.0.0.0/8"),       // "this network"
		netip.MustParsePrefix("100.64.0.0/10"),   // shared address space (CGNAT), RFC 6598
		netip.MustParsePrefix("192.0.0.0/24"),    // IETF protocol assignments
		netip.MustParsePrefix("192.0.2.0/24"),    // TEST-NET-1
		netip.MustParsePrefix("198.18.0.0/15"),   // benchmarking, RFC 2544
		netip.MustParsePrefix("198.51.100.0/24"), // TEST-NET-2
		netip.MustParsePrefix("203.0.113.0/24"),  // TEST-NET-3
		netip.MustParsePrefix("240.0.0.0/4"),     // reserved, includes limited broadcast
	}

	v6NonGlobal = []netip.Prefix{
		netip.MustParsePrefix("100::/64"),      // discard-only, RFC 6666
		netip.MustParsePrefix("2001:2::/48"),   // benchmarking, RFC 5180
		netip.MustParsePrefix("2001:10::/28"),  // ORCHID, RFC 4843
		netip.MustParsePrefix("2001:20::/28"),  // ORCHIDv2, RFC 7343
		netip.MustParsePrefix("2001:db8::/32"), // documentation, RFC 3849
	}
)

// IsPublicIP reports whether ip is globally routable on the public
// internet. Loopback, link-local, private (RFC 1918 and unique-local),
// multicast, documentation, and the other reserved ranges of each
// address family all classify as non-public. IPv4-mapped IPv6 addresses
// are judged by the IPv4 rules. Pure and total: an invalid (zero) Addr
// classifies as non-public.
func IsPublicIP(ip netip.Addr) bool {
	if !ip.IsValid() {
		return false
	}
	ip = ip.Unmap()

	if ip.IsUnspecified() || ip.IsLoopback() || ip.IsMulticast() ||
		ip.IsLinkLocalUnicast() || ip.IsPrivate() {
		return false
	}

	ranges := v6NonGlobal
	if ip.Is4() {
		ranges = v4NonGlobal
	}
	for _, p := range ranges {
		if p.Contains(ip) {
			return false
		}
	}
	return true
}
