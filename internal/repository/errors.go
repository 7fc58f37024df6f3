// Package repository provides read-only typed access to the operational
// swim data collections.  This file defines the sentinel error values
// shared by the repositories so higher layers can distinguish failure
// scenarios: handlers translate the not-found family into HTTP 404 and
// ErrMalformedRecord into 422.
package repository

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrLocationNotFound is returned when a location lookup by id misses.
var ErrLocationNotFound = errors.New("location not found")

// ErrSeasonNotFound is returned when a season lookup by id misses.
var ErrSeasonNotFound = errors.New("season not found")

// ErrPricingNotFound is returned when the singleton pricing document is
// absent from the store.
var ErrPricingNotFound = errors.New("pricing not found")

// ErrMalformedRecord is returned when a store document is missing a
// required field.  Records are validated loudly at the mapping boundary
// instead of silently defaulting required values.
var ErrMalformedRecord = errors.New("malformed record")

// validate checks required fields on decoded raw documents.
var validate = validator.New()

// malformed wraps ErrMalformedRecord with the collection, document id and
// the first offending field so log lines point at the broken document.
func malformed(collection, id string, err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Errorf("%w: %s/%s missing %s", ErrMalformedRecord, collection, id, verrs[0].Field())
	}
	return fmt.Errorf("%w: %s/%s: %v", ErrMalformedRecord, collection, id, err)
}

// boolOr resolves an optional store flag to its per-field default when
// the document omits it.
func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

// orEmpty keeps list fields non-nil so JSON renders [] instead of null.
func orEmpty(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
