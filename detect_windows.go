//go:build windows

package sysproxy

import (
	"errors"

	"golang.org/x/sys/windows/registry"

	"github.com/cybergodev/sysproxy/internal/winconf"
)

// windowsDetector consults the per-user Internet Settings registry key and
// falls back to the machine-wide WinHTTP default proxy when the user has no
// settings of their own.
type windowsDetector struct{}

func platformDetector() Detector { return windowsDetector{} }

func (windowsDetector) Name() string { return "windows" }

const internetSettingsKey = `Software\Microsoft\Windows\CurrentVersion\Internet Settings`

// errNoUserSettings distinguishes "the per-user key/values simply aren't
// there" (fall back to WinHTTP) from "the user explicitly disabled proxying"
// (terminal NotFound).
var errNoUserSettings = errors.New("no per-user proxy settings")

func (d windowsDetector) DetectProxy() (*Config, error) {
	cfg, err := userProxyConfig()
	if err == nil {
		// Found, or ProxyEnable=0 which is a definitive "no proxy".
		return cfg, nil
	}
	if !errors.Is(err, errNoUserSettings) {
		// Unreadable user settings: still try the machine default before
		// reporting the source as failed.
		if cfg, werr := winhttpDefaultConfig(); werr == nil {
			return cfg, nil
		}
		return nil, &DetectionError{Source: "windows", Err: err}
	}

	cfg, err = winhttpDefaultConfig()
	if err != nil {
		return nil, &DetectionError{Source: "windows", Err: err}
	}
	return cfg, nil
}

// userProxyConfig reads HKCU Internet Settings. Returns (nil, nil) when the
// user disabled proxying, errNoUserSettings when the key or its values are
// absent, and (nil, err) when the registry could not be read.
func userProxyConfig() (*Config, error) {
	key, err := registry.OpenKey(registry.CURRENT_USER, internetSettingsKey, registry.QUERY_VALUE)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return nil, errNoUserSettings
		}
		return nil, err
	}
	defer key.Close()

	enable, _, err := key.GetIntegerValue("ProxyEnable")
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return nil, errNoUserSettings
		}
		return nil, err
	}
	if enable == 0 {
		return nil, nil
	}

	server, _, err := key.GetStringValue("ProxyServer")
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return nil, errNoUserSettings
		}
		return nil, err
	}
	proxies := winconf.ParseProxyServer(server)
	if len(proxies) == 0 {
		return nil, errNoUserSettings
	}

	var bypass []string
	var local bool
	override, _, err := key.GetStringValue("ProxyOverride")
	switch {
	case err == nil:
		bypass, local = winconf.ParseOverride(override)
	case !errors.Is(err, registry.ErrNotExist):
		return nil, err
	}

	return New(proxies, bypass, local), nil
}
