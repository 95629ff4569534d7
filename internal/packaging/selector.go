package packaging

import "math"

// PackingFactor is the share of a box's volume that a batch of units
// actually occupies once stacking voids are accounted for.
const PackingFactor = 0.65

type catalogSelector struct {
	options []Option
}

// New creates a Selector over a private copy of the given catalog.
func New(catalog []Option) Selector {
	options := make([]Option, len(catalog))
	copy(options, catalog)
	return &catalogSelector{options: options}
}

var defaultSelector = New(defaultCatalog[:])

// Select picks packaging for a single unit from the default catalog.
func Select(item Dimensions) (Result, bool) {
	return defaultSelector.Select(item)
}

// SelectForBatch picks packaging for quantity units from the default catalog.
func SelectForBatch(item Dimensions, quantity int) (Result, bool) {
	return defaultSelector.SelectForBatch(item, quantity)
}

// Select returns the smallest fitting bag by footprint. Boxes, ranked by
// volume, are only considered when no bag fits.
func (s *catalogSelector) Select(item Dimensions) (Result, bool) {
	dims := sortedDims(item)

	var bestBag, bestBox *Option
	bagArea, boxVolume := math.Inf(1), math.Inf(1)
	for i := range s.options {
		opt := &s.options[i]
		switch opt.Kind {
		case KindBag:
			if fitsBag(dims, *opt) && footprint(*opt) < bagArea {
				bestBag, bagArea = opt, footprint(*opt)
			}
		case KindBox:
			if fitsBox(dims, *opt) && volume(*opt) < boxVolume {
				bestBox, boxVolume = opt, volume(*opt)
			}
		}
	}

	switch {
	case bestBag != nil:
		return bagResult(*bestBag, dims[0], item.Weight), true
	case bestBox != nil:
		return boxResult(*bestBox, item.Weight), true
	default:
		return Result{}, false
	}
}

// SelectForBatch packs quantity identical units. Bags must hold the whole
// stack laid along the thinnest axis; boxes must offer enough volume at
// PackingFactor density while still admitting a single unit. The candidate
// with the smaller volume wins, a bag on a tie.
// A quantity of one or less is handled as a single unit.
func (s *catalogSelector) SelectForBatch(item Dimensions, quantity int) (Result, bool) {
	if quantity <= 1 {
		return s.Select(item)
	}

	dims := sortedDims(item)
	n := float64(quantity)
	requiredVolume := item.Depth * item.Width * item.Height * n / PackingFactor
	stackHeight := dims[0] * n

	var bestBag, bestBox *Option
	bagVolume, boxVolume := math.Inf(1), math.Inf(1)
	for i := range s.options {
		opt := &s.options[i]
		switch opt.Kind {
		case KindBag:
			if !fitsBag(dims, *opt) || stackHeight > math.Min(opt.Width, opt.Length)/2 {
				continue
			}
			if v := footprint(*opt) * stackHeight; v < bagVolume {
				bestBag, bagVolume = opt, v
			}
		case KindBox:
			v := volume(*opt)
			if v < requiredVolume || !fitsBox(dims, *opt) {
				continue
			}
			if v < boxVolume {
				bestBox, boxVolume = opt, v
			}
		}
	}

	weight := item.Weight * n
	switch {
	case bestBag != nil && bagVolume <= boxVolume:
		return bagResult(*bestBag, stackHeight, weight), true
	case bestBox != nil:
		return boxResult(*bestBox, weight), true
	default:
		return Result{}, false
	}
}

func bagResult(bag Option, height, contentWeight float64) Result {
	return Result{
		Packaging:     bag,
		PackageDepth:  bag.Length,
		PackageWidth:  bag.Width,
		PackageHeight: height,
		TotalWeight:   contentWeight + bag.TareWeight,
	}
}

func boxResult(box Option, contentWeight float64) Result {
	return Result{
		Packaging:     box,
		PackageDepth:  box.Length,
		PackageWidth:  box.Width,
		PackageHeight: box.Height,
		TotalWeight:   contentWeight + box.TareWeight,
	}
}
