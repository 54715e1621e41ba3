// Package hostmatch implements the bypass pattern matching used to decide
// whether a destination host should skip the system proxy.
//
// Three pattern forms are recognized:
//   - exact hostname ("intranet.example.com"), compared case-insensitively
//   - suffix wildcard ("*.example.com" or ".example.com"), which matches
//     sub.example.com but never the bare example.com
//   - the literal Windows token "<local>", handled by the caller
package hostmatch

import "strings"

// Local is the literal bypass token Windows uses to mean "bypass the proxy
// for simple (dotless) hostnames".
const Local = "<local>"

// Normalize lowercases a hostname and strips a single trailing dot so that
// "Example.COM." and "example.com" compare equal.
func Normalize(host string) string {
	host = strings.ToLower(strings.TrimSpace(host))
	return strings.TrimSuffix(host, ".")
}

// IsSimple reports whether host is an unqualified name with no dot.
func IsSimple(host string) bool {
	return host != "" && !strings.Contains(host, ".")
}

// Matches reports whether a single bypass pattern matches the host.
// The host must already be normalized (see Normalize). Suffix wildcards
// require a label boundary: "*.example.com" matches "a.example.com" and
// "b.a.example.com" but not "example.com" itself, and never a host that
// merely ends in the same characters ("notexample.com").
func Matches(pattern, host string) bool {
	pattern = strings.ToLower(strings.TrimSpace(pattern))
	if pattern == "" || host == "" {
		return false
	}

	var suffix string
	switch {
	case strings.HasPrefix(pattern, "*."):
		suffix = pattern[1:] // keep the leading dot
	case strings.HasPrefix(pattern, "."):
		suffix = pattern
	default:
		return pattern == host
	}

	// A pattern of just "*." or "." has an empty suffix and matches nothing.
	if len(suffix) < 2 {
		return false
	}
	return strings.HasSuffix(host, suffix)
}
