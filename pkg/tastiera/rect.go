package tastiera

// Rect is an axis-aligned rectangle in host coordinates, min-inclusive.
// The zero value means "no rect".
type Rect struct {
	MinX, MinY float32
	MaxX, MaxY float32
}

// NewRect returns the rectangle spanning (minX, minY) to (maxX, maxY).
func NewRect(minX, minY, maxX, maxY float32) Rect {
	return Rect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

func (r Rect) Width() float32 {
	return r.MaxX - r.MinX
}

func (r Rect) Height() float32 {
	return r.MaxY - r.MinY
}

// Contains reports whether the point (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.MinX && x < r.MaxX && y >= r.MinY && y < r.MaxY
}

// IsZero reports whether r is the zero rectangle.
func (r Rect) IsZero() bool {
	return r == Rect{}
}
