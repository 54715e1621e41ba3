//go:build !linux || sysproxy_nosysconfig

package sysproxy

// The sysconfig detector only exists on Linux and can be compiled out with
// the sysproxy_nosysconfig build tag.
func sysconfigDetector() Detector { return nil }
