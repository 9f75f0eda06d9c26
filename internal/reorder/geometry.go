package reorder

// Box is the vertical extent of one rendered item.
type Box struct {
	Top    float64
	Height float64
}

// Mid returns the vertical midpoint of b.
func (b Box) Mid() float64 {
	return b.Top + b.Height/2
}

// Contains reports whether y falls inside b. The bottom edge is exclusive.
func (b Box) Contains(y float64) bool {
	return y >= b.Top && y < b.Top+b.Height
}

// Geometry maps a display position to the box the item there occupies.
type Geometry interface {
	Box(position int) Box
}

// Rows is a uniform list layout: position i starts at Top + i*Height.
type Rows struct {
	Top    float64
	Height float64
}

// Box returns the row at position. Positions outside the list extrapolate.
func (r Rows) Box(position int) Box {
	return Box{Top: r.Top + float64(position)*r.Height, Height: r.Height}
}

// StepUp returns the pointer Y that moves the item at position one slot up.
// The result lies above the midpoint of the item currently above it.
func StepUp(g Geometry, position int) float64 {
	if position <= 0 {
		return g.Box(0).Top
	}
	return g.Box(position - 1).Top
}

// StepDown returns the pointer Y that moves the item at position one slot
// down: the bottom edge of the item below it, which is above the midpoint
// of the item after that.
func StepDown(g Geometry, position, count int) float64 {
	if position >= count-1 {
		last := g.Box(count - 1)
		return last.Top + last.Height
	}
	below := g.Box(position + 1)
	return below.Top + below.Height
}
