package httpx

import (
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// TrustedProxies lists the reverse proxies whose forwarding headers are
// believed. The zero value trusts nobody, so clients are identified by the
// socket address alone.
type TrustedProxies []netip.Prefix

// ParseTrustedProxies accepts CIDR blocks ("10.0.0.0/8") and single
// addresses ("192.0.2.7").
func ParseTrustedProxies(entries []string) (TrustedProxies, error) {
	tp := make(TrustedProxies, 0, len(entries))
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if strings.Contains(e, "/") {
			p, err := netip.ParsePrefix(e)
			if err != nil {
				return nil, fmt.Errorf("trusted proxy %q: %w", e, err)
			}
			tp = append(tp, p.Masked())
			continue
		}
		a, err := netip.ParseAddr(e)
		if err != nil {
			return nil, fmt.Errorf("trusted proxy %q: %w", e, err)
		}
		a = a.Unmap()
		tp = append(tp, netip.PrefixFrom(a, a.BitLen()))
	}
	return tp, nil
}

func (tp TrustedProxies) trusts(a netip.Addr) bool {
	a = a.Unmap()
	for _, p := range tp {
		if p.Contains(a) {
			return true
		}
	}
	return false
}

// ClientIP resolves the address a request is charged to. Unless the socket
// peer is a trusted proxy the peer itself is the client. Behind a trusted
// proxy X-Forwarded-For is walked from the right, skipping trusted hops, and
// the first untrusted hop is the client. X-Real-IP is only consulted when no
// X-Forwarded-For was sent.
func (tp TrustedProxies) ClientIP(r *http.Request) string {
	peer, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		peer = r.RemoteAddr
	}
	client, err := netip.ParseAddr(peer)
	if err != nil || !tp.trusts(client) {
		return peer
	}

	hops := forwardedFor(r.Header)
	if len(hops) == 0 {
		if ip, err := netip.ParseAddr(strings.TrimSpace(r.Header.Get("X-Real-IP"))); err == nil {
			return ip.Unmap().String()
		}
		return client.Unmap().String()
	}

	for i := len(hops) - 1; i >= 0; i-- {
		hop, err := netip.ParseAddr(hops[i])
		if err != nil {
			break
		}
		client = hop
		if !tp.trusts(hop) {
			break
		}
	}
	return client.Unmap().String()
}

// forwardedFor flattens every X-Forwarded-For header into its hops, oldest
// first.
func forwardedFor(h http.Header) []string {
	var hops []string
	for _, v := range h.Values("X-Forwarded-For") {
		for _, hop := range strings.Split(v, ",") {
			if hop = strings.TrimSpace(hop); hop != "" {
				hops = append(hops, hop)
			}
		}
	}
	return hops
}
