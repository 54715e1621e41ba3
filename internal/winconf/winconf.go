// Package winconf parses the proxy values stored in the Windows Internet
// Settings registry key and returned by the WinHTTP default configuration.
// The parsing itself is platform independent so it can be exercised by tests
// on any OS.
package winconf

import (
	"strings"

	"github.com/cybergodev/sysproxy/internal/hostmatch"
)

// ParseProxyServer interprets a ProxyServer registry value. The value is
// either a single address applying to every scheme, or a semicolon separated
// scheme=address list:
//
//	proxy.corp:8080
//	http=proxy.corp:8080;https=proxy.corp:8443;ftp=proxy.corp:2121
//
// A value containing no "=" is treated as the all-schemes wildcard. The
// returned map uses lowercase scheme keys, with "*" for the wildcard.
func ParseProxyServer(value string) map[string]string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	if !strings.Contains(value, "=") {
		return map[string]string{"*": value}
	}

	proxies := make(map[string]string)
	for _, part := range strings.Split(value, ";") {
		scheme, addr, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		scheme = strings.ToLower(strings.TrimSpace(scheme))
		addr = strings.TrimSpace(addr)
		if scheme == "" || addr == "" {
			continue
		}
		proxies[scheme] = addr
	}
	if len(proxies) == 0 {
		return nil
	}
	return proxies
}

// ParseOverride splits a ProxyOverride registry value (or a WinHTTP bypass
// list) into bypass patterns. Entries are separated by semicolons and kept in
// order, lowercased. The literal <local> token stays in the list and is also
// reported through the second return value so callers can flip the
// simple-hostname exclusion independently.
func ParseOverride(value string) (bypass []string, local bool) {
	for _, part := range strings.Split(value, ";") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		if part == hostmatch.Local {
			local = true
		}
		bypass = append(bypass, part)
	}
	return bypass, local
}
