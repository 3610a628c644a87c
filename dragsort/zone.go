package dragsort

// ForeignPosition computes where dragged would be inserted into items when it
// is dropped into a list that orders its items itself.
type ForeignPosition[T comparable] func(dragged T, items List[T]) int

// Zone binds one list to a session. It turns raw pointer signals from the
// view layer (enter, hover over an item, hover over the background, press,
// release) into session operations, and answers the view's questions about
// how the list and its items should currently look.
type Zone[T comparable] struct {
	Session *Session[T]
	List    List[T]
	Group   Group
	Layout  Layout
	Args    any

	// SourceOnly lists can be dragged from but never show a drop position.
	SourceOnly bool
	// Disabled lists ignore drag starts.
	Disabled bool
	// Handle requires drags to begin on the item's handle region.
	Handle bool
	// ForeignPosition, when set, replaces pointer-based positioning: entering
	// the list immediately hovers the slot it returns.
	ForeignPosition ForeignPosition[T]
}

func (z *Zone[T]) mustBind() {
	if z.Session == nil || z.List == nil {
		panic("dragsort: zone has no session or list")
	}
}

func (z *Zone[T]) inGroup() bool {
	return z.Session.Active() && z.Session.Group() == z.Group
}

// StartDrag begins dragging the item at index. onHandle tells whether the
// press landed on the item's handle; it is ignored unless Handle is set.
func (z *Zone[T]) StartDrag(index int, onHandle bool) bool {
	z.mustBind()
	if z.Disabled {
		return false
	}
	if z.Handle && !onHandle {
		return false
	}
	if index < 0 || index >= z.List.Len() {
		return false
	}
	z.Session.BeginDrag(z.Group, z.List.At(index), z.List, index, z.Layout.Horizontal, z.Args)
	return true
}

// DragEnter handles the pointer entering the list. slots are the current
// item rectangles, used to pick a starting slot in horizontal lists.
func (z *Zone[T]) DragEnter(pointerY float64, slots []Rect) {
	z.mustBind()
	if !z.inGroup() {
		return
	}
	// Nested regions re-signal entry for the same list.
	if z.Session.LastEnteredList() == z.List {
		return
	}

	hint := 0
	if z.Layout.Horizontal {
		hint = ClosestHorizontalIndex(slots, pointerY)
		z.Session.SetDraggingUp(false)
	}
	z.Session.EnterListAt(z.Group, z.List, z.Layout.Horizontal, z.Args, hint)

	if z.ForeignPosition != nil {
		z.forceDraggingOver()
	}
}

func (z *Zone[T]) forceDraggingOver() {
	s := z.Session
	dragged := s.DraggedItem()
	n := z.List.Len()

	var index int
	if z.List == s.SourceList() {
		index = indexOf(z.List, dragged) + 1
	} else {
		index = z.ForeignPosition(dragged, z.List)
	}

	up := true
	if n == 0 {
		index = 0
	} else if index >= n {
		index = n - 1
		up = false
	}
	s.HoverAt(z.Group, z.List, index, up)
}

// DragOver handles the pointer hovering the item at index.
func (z *Zone[T]) DragOver(index int, pointer Point, slot Rect, padding Padding) {
	z.mustBind()
	if !z.Session.Active() || z.ForeignPosition != nil || z.SourceOnly {
		return
	}
	if !z.inGroup() {
		return
	}

	layout := Layout{Horizontal: z.Session.Horizontal(), RTL: z.Layout.RTL}
	up := ResolveDirection(pointer, slot, padding, layout, z.PlaceholderAt(index))
	z.Session.HoverAt(z.Group, z.List, index, up)
}

// DragOverBackground handles the pointer hovering the list outside any item.
// Only horizontal lists react: it is how an item is dropped at the end of a
// wrapped row.
func (z *Zone[T]) DragOverBackground(pointerY float64, slots []Rect) {
	z.mustBind()
	if !z.Layout.Horizontal || z.ForeignPosition != nil {
		return
	}
	if !z.inGroup() {
		return
	}
	z.Session.HoverAt(z.Group, z.List, ClosestHorizontalIndex(slots, pointerY), false)
}

// EndDrag finishes the session's drag, if any.
func (z *Zone[T]) EndDrag(done func(Record[T])) {
	z.mustBind()
	if !z.Session.Active() {
		return
	}
	z.Session.EndDrag(done)
}

// IsDragging reports a drag in progress in this zone's group.
func (z *Zone[T]) IsDragging() bool {
	return z.inGroup()
}

// IsDraggingOver reports that this list is the current drop target.
func (z *Zone[T]) IsDraggingOver() bool {
	return z.IsDragging() && z.Session.TargetList() == z.List
}

func (z *Zone[T]) IsEmpty() bool {
	return z.List.Len() == 0
}

// IsOnlyElementDragged reports that the list's single item is the one being
// dragged out of it.
func (z *Zone[T]) IsOnlyElementDragged() bool {
	s := z.Session
	return z.List.Len() == 1 && z.List == s.SourceList() && s.SourceIndex() == 0
}

// IsExpanded reports that the list should reserve room to receive a drop
// although it has nothing else to show.
func (z *Zone[T]) IsExpanded() bool {
	return z.IsDragging() && (z.IsEmpty() || z.IsOnlyElementDragged())
}

// ItemDragged reports that the item at index is the one being dragged.
func (z *Zone[T]) ItemDragged(index int) bool {
	s := z.Session
	return s.Active() && z.List == s.SourceList() && index == s.SourceIndex()
}

// ItemDraggingOver reports that the pointer is over the item at index.
func (z *Zone[T]) ItemDraggingOver(index int) bool {
	if z.SourceOnly {
		return false
	}
	s := z.Session
	target, ok := s.TargetIndex()
	return s.Active() && ok && z.List == s.TargetList() && index == target && !z.ItemDragged(index)
}

func (z *Zone[T]) PlaceholderBefore(index int) bool {
	return z.ItemDraggingOver(index) && z.Session.DraggingUp()
}

func (z *Zone[T]) PlaceholderAfter(index int) bool {
	return z.ItemDraggingOver(index) && !z.Session.DraggingUp()
}

// PlaceholderAt returns the placeholder the item at index currently shows.
func (z *Zone[T]) PlaceholderAt(index int) Placeholder {
	switch {
	case z.PlaceholderBefore(index):
		return PlaceholderBefore
	case z.PlaceholderAfter(index):
		return PlaceholderAfter
	default:
		return PlaceholderNone
	}
}

func (z *Zone[T]) IsLast(index int) bool {
	return index == z.List.Len()-1
}

func indexOf[T comparable](list List[T], item T) int {
	for i := 0; i < list.Len(); i++ {
		if list.At(i) == item {
			return i
		}
	}
	return NoIndex
}
