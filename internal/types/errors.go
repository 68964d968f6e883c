// README: Error taxonomy for the generation pipelines.
package types

import "github.com/pkg/errors"

var (
	// ErrUpstreamUnavailable covers weather, generative, maps and booking backends that are
	// unreachable, erroring, or timed out.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	// ErrParseFailure means model output was not valid structured data or lacked days.
	ErrParseFailure = errors.New("parse failure")
	// ErrValidationGap means the request was missing expected fields.
	ErrValidationGap = errors.New("validation gap")
)

const (
	ReasonUpstreamUnavailable = "upstream_unavailable"
	ReasonParseFailure        = "parse_failure"
	ReasonValidationGap       = "validation_gap"
)

// Classify maps an error onto one of the taxonomy reasons. Unknown errors count as upstream.
func Classify(err error) string {
	switch {
	case errors.Is(err, ErrValidationGap):
		return ReasonValidationGap
	case errors.Is(err, ErrParseFailure):
		return ReasonParseFailure
	default:
		return ReasonUpstreamUnavailable
	}
}
