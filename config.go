package sysproxy

import (
	"maps"
	"slices"
	"strings"
)

// Config is the proxy configuration resolved from a single source: a
// scheme→address mapping plus the bypass rules that exempt destinations from
// proxying. A Config is immutable once built and safe for concurrent use;
// accessors return copies.
type Config struct {
	proxies       map[string]string
	bypass        []string
	excludeSimple bool
}

// The only scheme keys a configuration may carry. "*" is the catch-all
// address used when no scheme-specific entry exists.
var validSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"ftp":   true,
	"*":     true,
}

// New builds a Config. Scheme keys are lowercased and restricted to http,
// https, ftp and "*"; entries with an unknown scheme or an empty address are
// dropped. Bypass patterns are trimmed, lowercased, and kept in order; empty
// ones are dropped. The inputs are copied, so the caller may keep mutating
// its own maps and slices.
func New(proxies map[string]string, bypass []string, excludeSimple bool) *Config {
	c := &Config{
		proxies:       make(map[string]string, len(proxies)),
		excludeSimple: excludeSimple,
	}
	for scheme, addr := range proxies {
		scheme = strings.ToLower(strings.TrimSpace(scheme))
		addr = strings.TrimSpace(addr)
		if !validSchemes[scheme] || addr == "" {
			continue
		}
		c.proxies[scheme] = addr
	}
	for _, pattern := range bypass {
		pattern = strings.ToLower(strings.TrimSpace(pattern))
		if pattern == "" {
			continue
		}
		c.bypass = append(c.bypass, pattern)
	}
	return c
}

// Proxies returns a copy of the scheme→address mapping.
func (c *Config) Proxies() map[string]string {
	return maps.Clone(c.proxies)
}

// Bypass returns a copy of the bypass patterns in their original order.
func (c *Config) Bypass() []string {
	return slices.Clone(c.bypass)
}

// ExcludeSimple reports whether destinations with a dotless hostname bypass
// the proxy regardless of the bypass list.
func (c *Config) ExcludeSimple() bool {
	return c.excludeSimple
}
