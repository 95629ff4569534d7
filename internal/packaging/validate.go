package packaging

import (
	"fmt"
	"math"
)

// Validate checks an item and quantity before they are handed to a Selector.
// Selectors assume valid input and do not call it themselves.
func Validate(item Dimensions, quantity int) error {
	for _, v := range [...]float64{item.Depth, item.Width, item.Height} {
		if !positiveFinite(v) {
			return ErrInvalidDimensions
		}
	}
	if math.IsNaN(item.Weight) || math.IsInf(item.Weight, 0) || item.Weight < 0 {
		return ErrInvalidWeight
	}
	if quantity < 0 {
		return ErrInvalidQuantity
	}
	return nil
}

// ValidateCatalog checks that every entry is well formed and uniquely named.
func ValidateCatalog(options []Option) error {
	if len(options) == 0 {
		return fmt.Errorf("%w: no entries", ErrInvalidCatalog)
	}

	seen := make(map[string]struct{}, len(options))
	for i, opt := range options {
		if opt.Name == "" {
			return fmt.Errorf("%w: entry %d has no name", ErrInvalidCatalog, i)
		}
		if _, dup := seen[opt.Name]; dup {
			return fmt.Errorf("%w: duplicate entry %q", ErrInvalidCatalog, opt.Name)
		}
		seen[opt.Name] = struct{}{}

		if !positiveFinite(opt.Length) || !positiveFinite(opt.Width) {
			return fmt.Errorf("%w: %q must have positive length and width", ErrInvalidCatalog, opt.Name)
		}
		if math.IsNaN(opt.TareWeight) || math.IsInf(opt.TareWeight, 0) || opt.TareWeight < 0 {
			return fmt.Errorf("%w: %q has invalid tare weight", ErrInvalidCatalog, opt.Name)
		}

		switch opt.Kind {
		case KindBag:
			if opt.Height != 0 {
				return fmt.Errorf("%w: bag %q must not declare a height", ErrInvalidCatalog, opt.Name)
			}
		case KindBox:
			if !positiveFinite(opt.Height) {
				return fmt.Errorf("%w: box %q must have a positive height", ErrInvalidCatalog, opt.Name)
			}
		default:
			return fmt.Errorf("%w: %q has unknown kind %s", ErrInvalidCatalog, opt.Name, opt.Kind)
		}
	}
	return nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
