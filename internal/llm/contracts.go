package llm

import "context"

// EstimateRequest carries one document's extracted text plus hints that
// only feed logging, never the prompt content.
type EstimateRequest struct {
	Text         string
	FilenameHint string
}

// Estimator is the interface the pipeline depends on. Implementations
// make at most one remote call per request and do not retry.
type Estimator interface {
	// Estimate returns a non-negative footprint in kg CO2. A reply with
	// no parseable number, or any transport failure, yields 0 together
	// with an error wrapping common.ErrEstimationFailed; callers treat
	// that as a per-document condition, not a batch failure.
	Estimate(ctx context.Context, req EstimateRequest) (float64, error)
}
