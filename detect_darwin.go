//go:build darwin

package sysproxy

import (
	"bytes"
	"context"
	"os/exec"
	"time"

	"github.com/cybergodev/sysproxy/internal/scutil"
)

// darwinDetector queries the dynamic store proxy dictionary
// (State:/Network/Global/Proxies) through scutil, the supported command-line
// view of the macOS system configuration.
type darwinDetector struct{}

func platformDetector() Detector { return darwinDetector{} }

func (darwinDetector) Name() string { return "macos" }

// scutil answers from the local configuration daemon; anything slower than
// this means the daemon is wedged.
const scutilTimeout = time.Second

func (d darwinDetector) DetectProxy() (*Config, error) {
	ctx, cancel := context.WithTimeout(context.Background(), scutilTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, "scutil", "--proxy").Output()
	if err != nil {
		return nil, &DetectionError{Source: "macos", Err: err}
	}

	dict, err := scutil.Parse(bytes.NewReader(out))
	if err != nil {
		return nil, &DetectionError{Source: "macos", Err: err}
	}
	if len(dict.Proxies) == 0 {
		// Dictionary present but no scheme enabled.
		return nil, nil
	}
	return New(dict.Proxies, dict.Bypass, dict.ExcludeSimple), nil
}
