package packaging

import "errors"

var (
	// ErrInvalidDimensions is returned when a length is not a positive finite number.
	ErrInvalidDimensions = errors.New("depth, width and height must be positive finite numbers")
	// ErrInvalidWeight is returned when the weight is negative or not finite.
	ErrInvalidWeight = errors.New("weight must be a non-negative finite number")
	// ErrInvalidQuantity is returned when a batch quantity is negative.
	ErrInvalidQuantity = errors.New("quantity must be a non-negative integer")
	// ErrInvalidCatalog is returned when a packaging catalog contains malformed entries.
	ErrInvalidCatalog = errors.New("invalid packaging catalog")
)
