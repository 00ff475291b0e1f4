package domain

import "errors"

var (
	ErrEmptyText           = errors.New("text is required")
	ErrSuperseded          = errors.New("translation superseded by a newer request")
	ErrIncomplete          = errors.New("translation is not complete")
	ErrProviderUnavailable = errors.New("translation provider unavailable")
	ErrInvalidPayload      = errors.New("invalid drag payload")
	ErrNotFound            = errors.New("not found")
)
