package bloom

import "errors"

var (
	// ErrInvalidConfiguration is returned when filter or sizing parameters
	// are outside their valid domain.
	ErrInvalidConfiguration = errors.New("bloom: invalid configuration")
	// ErrIncompatibleFilters is returned when merging filters whose m or k differ.
	ErrIncompatibleFilters = errors.New("bloom: incompatible filters")
)
