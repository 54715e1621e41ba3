// Package sysproxy detects the operating system proxy configuration and
// resolves which proxy, if any, applies to a destination URL.
//
// Key Features:
//   - Fallback chain over every proxy source the platform offers: environment
//     variables, /etc/sysconfig/proxy, the Windows Internet Settings registry
//     key with a WinHTTP machine-wide fallback, and the macOS system
//     configuration
//   - Exact Windows-compatible bypass semantics: exact hostnames, *.suffix
//     wildcards, and the <local> simple-hostname rule
//   - No network I/O, no caching, no background watchers; every call answers
//     "what is the proxy configuration right now"
//   - Immutable results that are safe to share across goroutines
//
// Basic Usage:
//
//	cfg := sysproxy.Detect()
//	if cfg == nil {
//	    // no proxy configured anywhere, connect directly
//	}
//
//	u, _ := url.Parse("https://api.example.com/data")
//	if addr, ok := cfg.ProxyForURL(u); ok {
//	    // dial through addr
//	}
//
// Wiring into net/http:
//
//	if cfg := sysproxy.Detect(); cfg != nil {
//	    transport.Proxy = cfg.ProxyFunc()
//	}
package sysproxy

import "log/slog"

// Detector is a source-specific probe that attempts to produce a proxy
// configuration from one OS mechanism.
//
// DetectProxy returns (config, nil) when the source yielded a configuration,
// (nil, nil) when the source was consulted and no proxy is configured there,
// and (nil, err) when the source could not be consulted at all. The call must
// be local-only, bounded by OS call overhead, and must not mutate any
// process-wide state.
type Detector interface {
	Name() string
	DetectProxy() (*Config, error)
}

// Detect walks the platform's proxy sources in priority order and returns the
// configuration from the first source that has one, or nil when no source
// does. Priority: environment variables, then /etc/sysconfig/proxy on Linux,
// then the platform mechanism (Windows registry/WinHTTP or macOS system
// configuration).
//
// Detect never fails: a source that cannot be read is skipped and only
// recorded on the debug log. A nil result therefore means "no proxy
// configured" and "every source was unreadable" alike, by design.
func Detect() *Config {
	return DetectWith(defaultDetectors()...)
}

// DetectWith runs the same first-success scan over a caller-supplied detector
// list. Later detectors do not run once an earlier one succeeds; this is a
// priority guarantee, not an optimization.
func DetectWith(detectors ...Detector) *Config {
	for _, d := range detectors {
		cfg, err := d.DetectProxy()
		if err != nil {
			slog.Debug("proxy source unavailable", "source", d.Name(), "error", err)
			continue
		}
		if cfg != nil {
			return cfg
		}
	}
	return nil
}

// defaultDetectors assembles the ordered registry for this build. Each
// constructor is supplied by a build-constrained file and returns nil when the
// detector is compiled out, so platform-inapplicable detectors are absent from
// the registry rather than skipped at runtime.
func defaultDetectors() []Detector {
	all := []Detector{envDetector(), sysconfigDetector(), platformDetector()}
	detectors := make([]Detector, 0, len(all))
	for _, d := range all {
		if d != nil {
			detectors = append(detectors, d)
		}
	}
	return detectors
}
