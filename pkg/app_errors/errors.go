package apperrors

import "errors"

var (
	ErrEventNotFound       = errors.New("event not found")
	ErrUpstreamUnavailable = errors.New("event api unavailable")
	ErrMalformedPayload    = errors.New("malformed event api payload")
	ErrMalformedEvent      = errors.New("event has no sessions")
	ErrInvalidInput        = errors.New("invalid input")
)
