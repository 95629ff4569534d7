package packaging

// defaultCatalog is the standard packaging table. Bags are named width×length,
// boxes length×width×height.
var defaultCatalog = [...]Option{
	{Name: "100×150", Kind: KindBag, Length: 150, Width: 100, TareWeight: 10},
	{Name: "120×200", Kind: KindBag, Length: 200, Width: 120, TareWeight: 12},
	{Name: "150×250", Kind: KindBag, Length: 250, Width: 150, TareWeight: 15},
	{Name: "190×240", Kind: KindBag, Length: 240, Width: 190, TareWeight: 18},
	{Name: "200×300", Kind: KindBag, Length: 300, Width: 200, TareWeight: 22},
	{Name: "250×350", Kind: KindBag, Length: 350, Width: 250, TareWeight: 28},
	{Name: "300×400", Kind: KindBag, Length: 400, Width: 300, TareWeight: 35},
	{Name: "350×450", Kind: KindBag, Length: 450, Width: 350, TareWeight: 42},
	{Name: "400×500", Kind: KindBag, Length: 500, Width: 400, TareWeight: 50},

	{Name: "150×100×80", Kind: KindBox, Length: 150, Width: 100, Height: 80, TareWeight: 40},
	{Name: "170×120×100", Kind: KindBox, Length: 170, Width: 120, Height: 100, TareWeight: 55},
	{Name: "195×145×145", Kind: KindBox, Length: 195, Width: 145, Height: 145, TareWeight: 80},
	{Name: "250×200×150", Kind: KindBox, Length: 250, Width: 200, Height: 150, TareWeight: 120},
	{Name: "300×200×200", Kind: KindBox, Length: 300, Width: 200, Height: 200, TareWeight: 160},
	{Name: "380×280×240", Kind: KindBox, Length: 380, Width: 280, Height: 240, TareWeight: 250},
	{Name: "450×350×300", Kind: KindBox, Length: 450, Width: 350, Height: 300, TareWeight: 350},
	{Name: "530×360×450", Kind: KindBox, Length: 530, Width: 360, Height: 450, TareWeight: 500},
}

// DefaultCatalog returns a copy of the standard packaging table.
func DefaultCatalog() []Option {
	out := make([]Option, len(defaultCatalog))
	copy(out, defaultCatalog[:])
	return out
}
