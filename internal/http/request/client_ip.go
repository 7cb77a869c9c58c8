package request

import (
	"net"
	"net/http"
	"slices"
	"strings"
)

// TrustedProxy reports whether ip belongs to a trusted reverse proxy.
type TrustedProxy func(ip string) bool

// TrustedProxies builds a matcher from plain IPs and CIDR ranges.
func TrustedProxies(addrs []string) TrustedProxy {
	plain := make(map[string]struct{})
	var nets []*net.IPNet
	for _, s := range addrs {
		if _, ipNet, err := net.ParseCIDR(s); err == nil {
			nets = append(nets, ipNet)
			continue
		}
		plain[s] = struct{}{}
	}

	return func(ip string) bool {
		if _, ok := plain[ip]; ok {
			return true
		}

		parsed := net.ParseIP(ip)
		if parsed == nil {
			return false
		}
		return slices.ContainsFunc(nets,
			func(n *net.IPNet) bool { return n.Contains(parsed) })
	}
}

// FindClientIP returns the real client IP address using trusted reverse-proxy
// headers when allowed.
func FindClientIP(r *http.Request, trustedProxy TrustedProxy) string {
	if clientIP := XForwardedFor(r, trustedProxy); clientIP != "" {
		return clientIP
	}

	clientIP := r.Header.Get("X-Real-IP")
	if clientIP != "" {
		clientIP = dropIPv6zone(strings.TrimSpace(clientIP))
		if net.ParseIP(clientIP) != nil {
			return clientIP
		}
	}

	// Fallback to TCP/IP source IP address.
	return FindRemoteIP(r)
}

// XForwardedFor walks the X-Forwarded-For chain from the end and returns the
// first hop not belonging to a trusted proxy.
func XForwardedFor(r *http.Request, trustedProxy TrustedProxy) string {
	values := r.Header.Values("X-Forwarded-For")
	for _, value := range slices.Backward(values) {
		items := strings.Split(value, ",")
		for _, ip := range slices.Backward(items) {
			ip = strings.TrimSpace(ip)
			if trustedProxy(ip) {
				continue
			}
			ip = dropIPv6zone(ip)
			if net.ParseIP(ip) == nil {
				return ""
			}
			return ip
		}
	}
	return ""
}

func dropIPv6zone(address string) string {
	before, _, _ := strings.Cut(address, "%")
	return before
}

// FindRemoteIP returns the remote client IP address without considering HTTP
// headers.
func FindRemoteIP(r *http.Request) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}
	return dropIPv6zone(remoteIP)
}
