package dragsort

// NoIndex marks an index that has not been resolved yet.
const NoIndex = -1

// List is a host-owned collection of draggable items.
//
// Sessions compare lists by identity, so implementations must be comparable
// and should be pointer types: two lists holding the same items are still
// distinct drop targets.
type List[T comparable] interface {
	Len() int
	At(i int) T
}

// Slice is a List backed by a Go slice. Always use it through a pointer.
type Slice[T comparable] struct {
	items []T
}

// NewSlice returns a list holding a copy of items.
func NewSlice[T comparable](items ...T) *Slice[T] {
	s := &Slice[T]{items: make([]T, len(items))}
	copy(s.items, items)
	return s
}

func (s *Slice[T]) Len() int { return len(s.items) }

func (s *Slice[T]) At(i int) T { return s.items[i] }

// Items returns a copy of the current contents.
func (s *Slice[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// IndexOf returns the position of item, or NoIndex.
func (s *Slice[T]) IndexOf(item T) int {
	for i, it := range s.items {
		if it == item {
			return i
		}
	}
	return NoIndex
}

// Insert puts item at index i, clamping i into [0, Len].
func (s *Slice[T]) Insert(i int, item T) {
	if i < 0 {
		i = 0
	}
	if i > len(s.items) {
		i = len(s.items)
	}
	var zero T
	s.items = append(s.items, zero)
	copy(s.items[i+1:], s.items[i:])
	s.items[i] = item
}

// RemoveAt deletes and returns the item at i.
func (s *Slice[T]) RemoveAt(i int) T {
	item := s.items[i]
	s.items = append(s.items[:i], s.items[i+1:]...)
	return item
}

// Append adds items at the end.
func (s *Slice[T]) Append(items ...T) {
	s.items = append(s.items, items...)
}

// Move applies a completion record to Slice-backed lists: the dragged item
// is removed from the source and inserted into the target. It reports false
// when the lists are not *Slice values or the record describes no movement.
func Move[T comparable](rec Record[T]) bool {
	src, ok := rec.SourceList.(*Slice[T])
	if !ok {
		return false
	}
	dst, ok := rec.TargetList.(*Slice[T])
	if !ok {
		return false
	}
	if src == dst && rec.SourceIndex == rec.TargetIndex {
		return false
	}
	if rec.SourceIndex < 0 || rec.SourceIndex >= src.Len() || rec.TargetIndex < 0 {
		return false
	}
	item := src.RemoveAt(rec.SourceIndex)
	dst.Insert(rec.TargetIndex, item)
	return true
}

// Copy inserts clone(item) into the target without touching the source.
// It is used for source-only lists that hand out copies.
func Copy[T comparable](rec Record[T], clone func(T) T) bool {
	dst, ok := rec.TargetList.(*Slice[T])
	if !ok || rec.TargetIndex < 0 {
		return false
	}
	if rec.SourceList == rec.TargetList {
		return false
	}
	dst.Insert(rec.TargetIndex, clone(rec.DraggedItem))
	return true
}

// Rollback undoes a successful Move of rec.
func Rollback[T comparable](rec Record[T]) bool {
	src, ok := rec.SourceList.(*Slice[T])
	if !ok {
		return false
	}
	dst, ok := rec.TargetList.(*Slice[T])
	if !ok {
		return false
	}
	if rec.TargetIndex < 0 || rec.TargetIndex >= dst.Len() {
		return false
	}
	item := dst.RemoveAt(rec.TargetIndex)
	src.Insert(rec.SourceIndex, item)
	return true
}
