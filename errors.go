package sysproxy

import "fmt"

// DetectionError reports that a single proxy source could not be consulted.
// It is never returned by Detect; detectors produce it and the orchestrator
// absorbs it, so it only surfaces when a Detector is invoked directly.
type DetectionError struct {
	Source string // detector name, e.g. "environment", "windows"
	Err    error
}

func (e *DetectionError) Error() string {
	return fmt.Sprintf("proxy detection via %s: %v", e.Source, e.Err)
}

func (e *DetectionError) Unwrap() error {
	return e.Err
}
