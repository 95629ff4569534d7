package packaging

import "sort"

// sortedDims returns the three item dimensions in ascending order.
func sortedDims(item Dimensions) [3]float64 {
	d := [3]float64{item.Depth, item.Width, item.Height}
	sort.Float64s(d[:])
	return d
}

// fitsBag reports whether an item fits a bag in any orientation.
// The smallest item dimension is left unconstrained.
func fitsBag(item [3]float64, bag Option) bool {
	b0, b1 := bag.Width, bag.Length
	if b0 > b1 {
		b0, b1 = b1, b0
	}
	return item[1] <= b0 && item[2] <= b1
}

// fitsBox reports whether an item fits a box under an axis-aligned rotation.
func fitsBox(item [3]float64, box Option) bool {
	x := [3]float64{box.Length, box.Width, box.Height}
	sort.Float64s(x[:])
	return item[0] <= x[0] && item[1] <= x[1] && item[2] <= x[2]
}

func footprint(o Option) float64 {
	return o.Width * o.Length
}

func volume(o Option) float64 {
	return o.Width * o.Length * o.Height
}
