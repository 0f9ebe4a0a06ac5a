// Package errors provides structured error handling for service boundaries.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Roll errors
	CodeRollExpressionEmpty Code = "ROLL_EXPRESSION_EMPTY"
	CodeRollParseFailed     Code = "ROLL_PARSE_FAILED"
	CodeRollTooLarge        Code = "ROLL_TOO_LARGE"

	// Random/seed errors
	CodeSeedUnavailable Code = "SEED_UNAVAILABLE"

	// Transport errors
	CodeRateLimited Code = "RATE_LIMITED"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeRollExpressionEmpty,
		CodeRollParseFailed:
		return codes.InvalidArgument

	// ResourceExhausted - request exceeds a configured ceiling
	case CodeRollTooLarge,
		CodeRateLimited:
		return codes.ResourceExhausted

	// Unavailable - a dependency could not serve the request
	case CodeSeedUnavailable:
		return codes.Unavailable

	default:
		return codes.Internal
	}
}
