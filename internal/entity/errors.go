package entity

import "errors"

// Domain errors
var (
	// Challenge errors
	ErrChallengeNotFound = errors.New("challenge not found")

	// Validation errors
	ErrMissingField = errors.New("required field is missing")
	ErrInvalidDate  = errors.New("invalid ISO-8601 date")
	ErrInvalidField = errors.New("invalid field value")

	// Model service errors
	ErrModelUnavailable = errors.New("model service call failed")
	ErrModelResponse    = errors.New("unexpected response format from model service")
)
