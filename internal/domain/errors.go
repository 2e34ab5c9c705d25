package domain

import "errors"

var (
	// ErrValidation signals a request the caller can fix.
	ErrValidation = errors.New("validation failed")
	// ErrTaxonNotFound signals a missing taxon.
	ErrTaxonNotFound = errors.New("taxon not found")
)
