package services

import "errors"

// Failure taxonomy for the message pipeline. Controllers map these onto HTTP
// status codes with errors.Is; nothing in the pipeline retries.
var (
	// ErrMissingField means a required request field was absent (client error).
	ErrMissingField = errors.New("missing required field")

	// ErrMalformedAnalysis means the model's reply failed structured parsing.
	// Fatal for the message; the raw text is logged for diagnosis.
	ErrMalformedAnalysis = errors.New("malformed analysis")

	// ErrGatewayError is a transport or auth failure talking to the model API.
	ErrGatewayError = errors.New("reasoning gateway error")

	// ErrGatewayTimeout means the model API did not answer within the deadline.
	ErrGatewayTimeout = errors.New("reasoning gateway timeout")

	// ErrDuplicateUser means the phone number is already registered.
	ErrDuplicateUser = errors.New("duplicate user")
)
