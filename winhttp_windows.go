//go:build windows

package sysproxy

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/cybergodev/sysproxy/internal/winconf"
)

var (
	modwinhttp  = windows.NewLazySystemDLL("winhttp.dll")
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procWinHttpGetDefaultProxyConfiguration = modwinhttp.NewProc("WinHttpGetDefaultProxyConfiguration")
	procGlobalFree                          = modkernel32.NewProc("GlobalFree")
)

func globalFree(p unsafe.Pointer) {
	procGlobalFree.Call(uintptr(p)) //nolint:errcheck
}

// WINHTTP_ACCESS_TYPE_NAMED_PROXY: the machine default actually names a proxy.
const winhttpAccessTypeNamedProxy = 3

// winhttpProxyInfo mirrors WINHTTP_PROXY_INFO. The two strings are allocated
// by WinHTTP with GlobalAlloc and must be freed by the caller.
type winhttpProxyInfo struct {
	accessType  uint32
	proxy       *uint16
	proxyBypass *uint16
}

// winhttpDefaultConfig reads the machine-wide WinHTTP proxy set with
// `netsh winhttp set proxy`. Returns (nil, nil) when no named proxy is
// configured there.
func winhttpDefaultConfig() (*Config, error) {
	var info winhttpProxyInfo
	ret, _, callErr := procWinHttpGetDefaultProxyConfiguration.Call(uintptr(unsafe.Pointer(&info)))
	if ret == 0 {
		return nil, fmt.Errorf("WinHttpGetDefaultProxyConfiguration: %w", callErr)
	}
	defer func() {
		if info.proxy != nil {
			globalFree(unsafe.Pointer(info.proxy))
		}
		if info.proxyBypass != nil {
			globalFree(unsafe.Pointer(info.proxyBypass))
		}
	}()

	if info.accessType != winhttpAccessTypeNamedProxy || info.proxy == nil {
		return nil, nil
	}

	proxies := winconf.ParseProxyServer(windows.UTF16PtrToString(info.proxy))
	if len(proxies) == 0 {
		return nil, nil
	}

	var bypass []string
	var local bool
	if info.proxyBypass != nil {
		bypass, local = winconf.ParseOverride(windows.UTF16PtrToString(info.proxyBypass))
	}
	return New(proxies, bypass, local), nil
}
