//go:build linux && !sysproxy_nosysconfig

package sysproxy

import "github.com/cybergodev/sysproxy/internal/sysconfig"

// sysconfigFileDetector reads /etc/sysconfig/proxy, the proxy configuration
// file of SUSE and Red Hat derived systems. It runs after the environment
// detector: exported variables take precedence over the file.
type sysconfigFileDetector struct {
	path string
}

func sysconfigDetector() Detector {
	return sysconfigFileDetector{path: sysconfig.DefaultPath}
}

func (sysconfigFileDetector) Name() string { return "sysconfig" }

func (d sysconfigFileDetector) DetectProxy() (*Config, error) {
	res, err := sysconfig.LoadFile(d.path)
	if err != nil {
		return nil, &DetectionError{Source: "sysconfig", Err: err}
	}
	if res == nil {
		// File absent or PROXY_ENABLED="no".
		return nil, nil
	}
	return New(res.Proxies, res.Bypass, false), nil
}
