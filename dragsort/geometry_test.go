package dragsort

import "testing"

func TestResolveDirection(t *testing.T) {
	slotV := Rect{Left: 0, Top: 10, Width: 20, Height: 4}
	slotH := Rect{Left: 10, Top: 0, Width: 8, Height: 1}
	pad := Padding{Top: 1, Right: 2, Bottom: 1, Left: 2}

	tests := []struct {
		name        string
		pointer     Point
		slot        Rect
		layout      Layout
		placeholder Placeholder
		wantUp      bool
	}{
		{"vertical upper half", Point{Y: 11}, slotV, Layout{}, PlaceholderNone, true},
		{"vertical lower half", Point{Y: 13}, slotV, Layout{}, PlaceholderNone, false},
		{"vertical midpoint is down", Point{Y: 12}, slotV, Layout{}, PlaceholderNone, false},
		{"vertical ignores rtl", Point{Y: 11}, slotV, Layout{RTL: true}, PlaceholderNone, true},
		// Midpoint moves to (4+1)/2 = 2.5 with a before placeholder.
		{"before placeholder shifts midpoint down", Point{Y: 12.2}, slotV, Layout{}, PlaceholderBefore, true},
		// Midpoint moves to (4-1)/2 = 1.5 with an after placeholder.
		{"after placeholder shifts midpoint up", Point{Y: 11.7}, slotV, Layout{}, PlaceholderAfter, false},
		{"horizontal left half", Point{X: 12}, slotH, Layout{Horizontal: true}, PlaceholderNone, true},
		{"horizontal right half", Point{X: 16}, slotH, Layout{Horizontal: true}, PlaceholderNone, false},
		{"rtl right half is up", Point{X: 16}, slotH, Layout{Horizontal: true, RTL: true}, PlaceholderNone, true},
		{"rtl left half is down", Point{X: 12}, slotH, Layout{Horizontal: true, RTL: true}, PlaceholderNone, false},
		// RTL before placeholder uses padding-right (2) negated: (8-2)/2 = 3.
		{"rtl before placeholder", Point{X: 13.5}, slotH, Layout{Horizontal: true, RTL: true}, PlaceholderBefore, true},
		// RTL after placeholder uses padding-left (2): (8+2)/2 = 5.
		{"rtl after placeholder", Point{X: 14.5}, slotH, Layout{Horizontal: true, RTL: true}, PlaceholderAfter, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveDirection(tt.pointer, tt.slot, pad, tt.layout, tt.placeholder)
			if got != tt.wantUp {
				t.Errorf("ResolveDirection() = %v, want %v", got, tt.wantUp)
			}
		})
	}
}

func TestResolveDirectionRTLMirrorsLTR(t *testing.T) {
	slot := Rect{Left: 5, Top: 3, Width: 10, Height: 1}
	ltr := Layout{Horizontal: true}
	rtl := Layout{Horizontal: true, RTL: true}

	for _, x := range []float64{5, 6.5, 9.9, 10.1, 12, 14.9} {
		p := Point{X: x, Y: 3.5}
		a := ResolveDirection(p, slot, Padding{}, ltr, PlaceholderNone)
		b := ResolveDirection(p, slot, Padding{}, rtl, PlaceholderNone)
		if a == b {
			t.Errorf("x=%v: ltr=%v rtl=%v, want negation", x, a, b)
		}
	}
}

func TestPlaceholderCorrection(t *testing.T) {
	pad := Padding{Top: 1, Right: 3, Bottom: 2, Left: 4}
	tests := []struct {
		layout      Layout
		placeholder Placeholder
		want        float64
	}{
		{Layout{}, PlaceholderNone, 0},
		{Layout{}, PlaceholderBefore, 1},
		{Layout{}, PlaceholderAfter, -2},
		{Layout{Horizontal: true}, PlaceholderBefore, 4},
		{Layout{Horizontal: true}, PlaceholderAfter, -3},
		{Layout{Horizontal: true, RTL: true}, PlaceholderBefore, -3},
		{Layout{Horizontal: true, RTL: true}, PlaceholderAfter, 4},
	}
	for _, tt := range tests {
		if got := placeholderCorrection(pad, tt.layout, tt.placeholder); got != tt.want {
			t.Errorf("correction(%+v, %s) = %v, want %v", tt.layout, tt.placeholder, got, tt.want)
		}
	}
}

func TestClosestHorizontalIndex(t *testing.T) {
	// Two wrapped rows: three slots at top 0, two at top 2.
	slots := []Rect{
		{Left: 0, Top: 0, Width: 5, Height: 1},
		{Left: 6, Top: 0, Width: 5, Height: 1},
		{Left: 12, Top: 0, Width: 5, Height: 1},
		{Left: 0, Top: 2, Width: 5, Height: 1},
		{Left: 6, Top: 2, Width: 5, Height: 1},
	}

	tests := []struct {
		name  string
		slots []Rect
		y     float64
		want  int
	}{
		{"above every row", slots, 0, 0},
		{"first row", slots, 0.5, 2},
		{"between rows", slots, 1.5, 2},
		{"second row", slots, 2.5, 4},
		{"below everything", slots, 40, 4},
		{"no slots", nil, 3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClosestHorizontalIndex(tt.slots, tt.y); got != tt.want {
				t.Errorf("ClosestHorizontalIndex() = %d, want %d", got, tt.want)
			}
		})
	}
}
