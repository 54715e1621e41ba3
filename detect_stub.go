//go:build !windows && !darwin

package sysproxy

// No OS-level proxy store exists beyond the environment and sysconfig
// detectors on this platform.
func platformDetector() Detector { return nil }
