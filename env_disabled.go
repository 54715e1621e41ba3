//go:build sysproxy_noenv

package sysproxy

// The environment detector is compiled out by the sysproxy_noenv build tag.
func envDetector() Detector { return nil }
