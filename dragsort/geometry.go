package dragsort

import (
	"slices"
)

// Point is a pointer position in the host's coordinate space.
type Point struct {
	X float64
	Y float64
}

// Rect is the bounding box of a rendered slot.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Padding is the gap a slot reserves on each side. Placeholders are rendered
// as padding, so a slot showing one is larger than its content.
type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// Layout describes how a list flows.
type Layout struct {
	Horizontal bool
	RTL        bool // only meaningful when Horizontal is set
}

func (l Layout) rtl() bool { return l.Horizontal && l.RTL }

// Placeholder says which side of a slot currently shows the drop gap.
type Placeholder int

const (
	PlaceholderNone Placeholder = iota
	PlaceholderBefore
	PlaceholderAfter
)

func (p Placeholder) String() string {
	switch p {
	case PlaceholderBefore:
		return "before"
	case PlaceholderAfter:
		return "after"
	default:
		return "none"
	}
}

// placeholderCorrection is the shift applied to a slot's midpoint so it stays
// put while a placeholder widens the slot under the pointer.
func placeholderCorrection(padding Padding, layout Layout, placeholder Placeholder) float64 {
	modifier := 1.0
	if layout.rtl() {
		modifier = -1
	}

	before, after := padding.Top, padding.Bottom
	if layout.Horizontal {
		before, after = padding.Left, padding.Right
		if layout.rtl() {
			before, after = padding.Right, padding.Left
		}
	}

	switch placeholder {
	case PlaceholderBefore:
		return before * modifier
	case PlaceholderAfter:
		return -after * modifier
	default:
		return 0
	}
}

// ResolveDirection reports whether the pointer sits in the "up" half of slot,
// meaning the dragged item would land before it.
func ResolveDirection(pointer Point, slot Rect, padding Padding, layout Layout, placeholder Placeholder) bool {
	offset, size, position := slot.Top, slot.Height, pointer.Y
	if layout.Horizontal {
		offset, size, position = slot.Left, slot.Width, pointer.X
	}

	mid := (size + placeholderCorrection(padding, layout, placeholder)) / 2
	if layout.rtl() {
		return position-offset > mid
	}
	return position-offset < mid
}

// ClosestHorizontalIndex picks a slot for a pointer hovering the background of
// a wrapped horizontal list: the last slot of the last row starting above
// pointerY. It returns 0 when no row qualifies.
func ClosestHorizontalIndex(slots []Rect, pointerY float64) int {
	var rows []float64
	for _, r := range slots {
		if !slices.Contains(rows, r.Top) {
			rows = append(rows, r.Top)
		}
	}
	slices.Sort(rows)

	found := false
	var current float64
	for _, row := range rows {
		if row < pointerY {
			current = row
			found = true
		}
	}
	if !found {
		return 0
	}

	closest := 0
	for i, r := range slots {
		if r.Top == current {
			closest = i
		}
	}
	return closest
}
