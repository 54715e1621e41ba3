//go:build !sysproxy_noenv

package sysproxy

import (
	"os"
	"strings"
)

// environmentDetector reads the conventional proxy environment variables.
// It runs first in the chain: an exported HTTP_PROXY must win over anything
// the OS has configured.
type environmentDetector struct{}

func envDetector() Detector { return environmentDetector{} }

func (environmentDetector) Name() string { return "environment" }

var envSchemes = [...]string{"http", "https", "ftp"}

// DetectProxy builds a configuration from <SCHEME>_PROXY variables, checking
// the uppercase name before the lowercase one and taking the first non-empty
// value. ALL_PROXY supplies the "*" catch-all, but only when no per-scheme
// variable matched. NO_PROXY is split on commas and semicolons into the
// bypass list. With no variables set the environment simply has no proxy
// configured, which is not an error.
func (environmentDetector) DetectProxy() (*Config, error) {
	proxies := make(map[string]string, len(envSchemes)+1)
	for _, scheme := range envSchemes {
		if v := firstEnv(strings.ToUpper(scheme)+"_PROXY", scheme+"_proxy"); v != "" {
			proxies[scheme] = v
		}
	}
	if len(proxies) == 0 {
		if v := firstEnv("ALL_PROXY", "all_proxy"); v != "" {
			proxies["*"] = v
		}
	}
	if len(proxies) == 0 {
		return nil, nil
	}

	var bypass []string
	if v := firstEnv("NO_PROXY", "no_proxy"); v != "" {
		bypass = splitBypassList(v)
	}
	return New(proxies, bypass, false), nil
}

// firstEnv returns the first non-empty value among the named variables.
func firstEnv(names ...string) string {
	for _, name := range names {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// splitBypassList breaks a NO_PROXY-style value on commas and semicolons.
func splitBypassList(value string) []string {
	fields := strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == ';'
	})
	entries := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			entries = append(entries, f)
		}
	}
	return entries
}
