//go:build !sysproxy_noenv

package sysproxy

import "testing"

// ============================================================================
// ENVIRONMENT DETECTOR TESTS
// ============================================================================

var proxyEnvVars = []string{
	"HTTP_PROXY", "http_proxy",
	"HTTPS_PROXY", "https_proxy",
	"FTP_PROXY", "ftp_proxy",
	"ALL_PROXY", "all_proxy",
	"NO_PROXY", "no_proxy",
}

// clearProxyEnv blanks every proxy variable so host settings cannot leak into
// a test, and restores them automatically afterwards.
func clearProxyEnv(t *testing.T) {
	t.Helper()
	for _, name := range proxyEnvVars {
		t.Setenv(name, "")
	}
}

func TestEnvDetector_PerScheme(t *testing.T) {
	clearProxyEnv(t)
	t.Setenv("HTTP_PROXY", "127.0.0.1:3128")
	t.Setenv("HTTPS_PROXY", "secure.corp:8443")
	t.Setenv("FTP_PROXY", "ftp.corp:2121")

	cfg, err := envDetector().DetectProxy()
	if err != nil {
		t.Fatalf("DetectProxy failed: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected a configuration")
	}

	proxies := cfg.Proxies()
	want := map[string]string{
		"http":  "127.0.0.1:3128",
		"https": "secure.corp:8443",
		"ftp":   "ftp.corp:2121",
	}
	for scheme, addr := range want {
		if proxies[scheme] != addr {
			t.Errorf("%s proxy = %q, want %q", scheme, proxies[scheme], addr)
		}
	}
	if _, ok := proxies["*"]; ok {
		t.Error("wildcard entry present despite per-scheme variables")
	}
}

func TestEnvDetector_LowercaseFallback(t *testing.T) {
	clearProxyEnv(t)
	t.Setenv("http_proxy", "lower.corp:3128")

	cfg, err := envDetector().DetectProxy()
	if err != nil {
		t.Fatalf("DetectProxy failed: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected a configuration")
	}
	if got := cfg.Proxies()["http"]; got != "lower.corp:3128" {
		t.Errorf("http proxy = %q, want %q", got, "lower.corp:3128")
	}
}

func TestEnvDetector_UppercaseWins(t *testing.T) {
	clearProxyEnv(t)
	t.Setenv("HTTP_PROXY", "upper.corp:3128")
	t.Setenv("http_proxy", "lower.corp:3128")

	cfg, err := envDetector().DetectProxy()
	if err != nil {
		t.Fatalf("DetectProxy failed: %v", err)
	}
	if got := cfg.Proxies()["http"]; got != "upper.corp:3128" {
		t.Errorf("http proxy = %q, want %q", got, "upper.corp:3128")
	}
}

func TestEnvDetector_AllProxyWildcard(t *testing.T) {
	t.Run("used when no per-scheme variable set", func(t *testing.T) {
		clearProxyEnv(t)
		t.Setenv("ALL_PROXY", "catchall.corp:3128")

		cfg, err := envDetector().DetectProxy()
		if err != nil {
			t.Fatalf("DetectProxy failed: %v", err)
		}
		if cfg == nil {
			t.Fatal("expected a configuration")
		}
		if got := cfg.Proxies()["*"]; got != "catchall.corp:3128" {
			t.Errorf("wildcard proxy = %q, want %q", got, "catchall.corp:3128")
		}
	})

	t.Run("ignored when a per-scheme variable exists", func(t *testing.T) {
		clearProxyEnv(t)
		t.Setenv("HTTP_PROXY", "127.0.0.1:3128")
		t.Setenv("ALL_PROXY", "catchall.corp:3128")

		cfg, err := envDetector().DetectProxy()
		if err != nil {
			t.Fatalf("DetectProxy failed: %v", err)
		}
		if _, ok := cfg.Proxies()["*"]; ok {
			t.Error("wildcard entry built despite per-scheme variable")
		}
	})
}

func TestEnvDetector_NoProxySplitting(t *testing.T) {
	clearProxyEnv(t)
	t.Setenv("HTTP_PROXY", "127.0.0.1:3128")
	t.Setenv("NO_PROXY", "google.com, 192.168.0.1;localhost , .internal")

	cfg, err := envDetector().DetectProxy()
	if err != nil {
		t.Fatalf("DetectProxy failed: %v", err)
	}
	want := []string{"google.com", "192.168.0.1", "localhost", ".internal"}
	bypass := cfg.Bypass()
	if len(bypass) != len(want) {
		t.Fatalf("bypass = %v, want %v", bypass, want)
	}
	for i := range want {
		if bypass[i] != want[i] {
			t.Errorf("bypass[%d] = %q, want %q", i, bypass[i], want[i])
		}
	}
}

func TestEnvDetector_NothingSet(t *testing.T) {
	clearProxyEnv(t)

	cfg, err := envDetector().DetectProxy()
	if err != nil {
		t.Fatalf("DetectProxy failed: %v", err)
	}
	if cfg != nil {
		t.Errorf("expected not-found with no variables set, got %v", cfg.Proxies())
	}
}

func TestEnvDetector_SelectionEndToEnd(t *testing.T) {
	clearProxyEnv(t)
	t.Setenv("HTTPS_PROXY", "candybox2.github.io")
	t.Setenv("NO_PROXY", "google.com, localhost")

	cfg, err := envDetector().DetectProxy()
	if err != nil {
		t.Fatalf("DetectProxy failed: %v", err)
	}
	if addr, ok := cfg.ProxyForURL(mustParse(t, "https://bitbucket.org/")); !ok || addr != "candybox2.github.io" {
		t.Errorf("bitbucket.org proxy = (%q, %v), want (candybox2.github.io, true)", addr, ok)
	}
	if _, ok := cfg.ProxyForURL(mustParse(t, "https://google.com/")); ok {
		t.Error("google.com should be bypassed")
	}
	if _, ok := cfg.ProxyForURL(mustParse(t, "https://localhost/")); ok {
		t.Error("localhost should be bypassed")
	}
}
