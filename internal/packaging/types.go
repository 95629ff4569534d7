package packaging

import "fmt"

// Kind distinguishes flat bags from rigid boxes.
type Kind int

const (
	// KindBag is a flexible envelope constrained only by its two planar dimensions.
	KindBag Kind = iota + 1
	// KindBox is a rigid container constrained by all three dimensions.
	KindBox
)

func (k Kind) String() string {
	switch k {
	case KindBag:
		return "bag"
	case KindBox:
		return "box"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case KindBag, KindBox:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("unknown packaging kind %d", int(k))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "bag":
		*k = KindBag
	case "box":
		*k = KindBox
	default:
		return fmt.Errorf("unknown packaging kind %q", string(text))
	}
	return nil
}

// Dimensions describes one unit of a product. Lengths are in millimetres,
// weight in grams. The axes carry no orientation.
type Dimensions struct {
	Depth  float64 `json:"depth"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Weight float64 `json:"weight"`
}

// Option is a single entry of the packaging catalog.
// Height is only meaningful for boxes and is zero for bags.
type Option struct {
	Name       string  `json:"name" yaml:"name"`
	Kind       Kind    `json:"kind" yaml:"kind"`
	Length     float64 `json:"length" yaml:"length"`
	Width      float64 `json:"width" yaml:"width"`
	Height     float64 `json:"height,omitempty" yaml:"height,omitempty"`
	TareWeight float64 `json:"tareWeight" yaml:"tare_weight"`
}

// Result is the packaging chosen for an item or batch together with the
// resulting parcel envelope and gross weight.
type Result struct {
	Packaging     Option  `json:"packaging"`
	PackageDepth  float64 `json:"packageDepth"`
	PackageWidth  float64 `json:"packageWidth"`
	PackageHeight float64 `json:"packageHeight"`
	TotalWeight   float64 `json:"totalWeight"`
}

// Selector picks packaging from a fixed catalog. A false second return value
// means nothing in the catalog can hold the item.
type Selector interface {
	Select(item Dimensions) (Result, bool)
	SelectForBatch(item Dimensions, quantity int) (Result, bool)
}
