package sysproxy

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/cybergodev/sysproxy/internal/hostmatch"
)

// ProxyForURL resolves the proxy address for a destination URL. It returns
// ("", false) when the destination is bypassed or no entry covers the URL's
// scheme, in which case the caller should connect directly.
//
// Resolution order: evaluate the bypass rules against the normalized host;
// if not bypassed, look up the lowercased scheme, then the "*" catch-all.
// The call is pure: no I/O, no state, never an error.
func (c *Config) ProxyForURL(u *url.URL) (string, bool) {
	if c == nil || u == nil {
		return "", false
	}
	host := hostmatch.Normalize(u.Hostname())
	if host == "" || c.bypassed(host) {
		return "", false
	}

	if addr, ok := c.proxies[strings.ToLower(u.Scheme)]; ok {
		return addr, true
	}
	if addr, ok := c.proxies["*"]; ok {
		return addr, true
	}
	return "", false
}

// UseProxyForHost reports whether the bypass rules allow proxying traffic to
// the given destination, which may be a bare hostname or a full URL. It only
// consults the bypass side of the configuration; whether a proxy address
// actually exists for some scheme is ProxyForURL's concern.
func (c *Config) UseProxyForHost(address string) bool {
	if c == nil {
		return false
	}
	host := address
	if u, err := url.Parse(address); err == nil && u.Host != "" {
		host = u.Hostname()
	}
	host = hostmatch.Normalize(host)
	if host == "" {
		return false
	}
	return !c.bypassed(host)
}

// ProxyFunc adapts the configuration to the http.Transport.Proxy contract.
// Addresses stored without a scheme (the usual registry "host:port" form) are
// dialed as http:// proxies.
func (c *Config) ProxyFunc() func(*http.Request) (*url.URL, error) {
	return func(req *http.Request) (*url.URL, error) {
		addr, ok := c.ProxyForURL(req.URL)
		if !ok {
			return nil, nil
		}
		if !strings.Contains(addr, "://") {
			addr = "http://" + addr
		}
		return url.Parse(addr)
	}
}

// bypassed evaluates the bypass rules for an already-normalized host. The
// rules are an OR of independent tests, not a priority list: an exact entry,
// a *.suffix or .suffix entry on a label boundary, or a dotless host when
// either <local> is listed or ExcludeSimple is set.
func (c *Config) bypassed(host string) bool {
	simple := hostmatch.IsSimple(host)
	if simple && c.excludeSimple {
		return true
	}
	for _, pattern := range c.bypass {
		if pattern == hostmatch.Local {
			if simple {
				return true
			}
			continue
		}
		if hostmatch.Matches(pattern, host) {
			return true
		}
	}
	return false
}
