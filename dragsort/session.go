package dragsort

// Group partitions independent drag surfaces. Lists only interact with drags
// started in the same group.
type Group string

// Session owns the state of the drag in progress on one drag surface.
//
// All mutation goes through BeginDrag, HoverAt, EnterList and EndDrag (plus
// Reset for host-driven cancels). Notifications and the completion callback
// are deferred through the session's Scheduler so that observers see the
// layout of the next frame.
type Session[T comparable] struct {
	sched     Scheduler
	listeners observers[T]

	active      bool
	group       Group
	draggedItem T
	draggingUp  *bool
	horizontal  bool

	sourceArgs  any
	sourceList  List[T]
	sourceIndex int

	targetArgs  any
	targetList  List[T]
	targetIndex int

	lastEntered List[T]
}

// NewSession returns an idle session. A nil scheduler runs notifications
// synchronously.
func NewSession[T comparable](sched Scheduler) *Session[T] {
	if sched == nil {
		sched = Immediate{}
	}
	s := &Session[T]{sched: sched}
	s.reset()
	return s
}

// Subscribe registers fn for the given kinds, or for every kind when none are
// given. The returned func removes the subscription.
func (s *Session[T]) Subscribe(fn Listener[T], kinds ...EventKind) func() {
	return s.listeners.add(fn, kinds)
}

func (s *Session[T]) emit(ev Event[T]) {
	s.sched.Defer(func() { s.listeners.emit(ev) })
}

// BeginDrag starts a drag of item, found at index in list. The target list
// starts out as the source list but the target index stays unresolved until
// the first hover.
func (s *Session[T]) BeginDrag(group Group, item T, list List[T], index int, horizontal bool, args any) {
	down := false
	s.active = true
	s.draggingUp = &down
	s.draggedItem = item
	s.group = group
	s.horizontal = horizontal

	s.sourceArgs = args
	s.sourceIndex = index
	s.sourceList = list

	s.targetArgs = args
	s.targetIndex = NoIndex
	s.targetList = list

	s.emit(Event[T]{
		Kind:        EventStart,
		Group:       group,
		DraggedItem: item,
		SourceArgs:  args,
		SourceList:  list,
		SourceIndex: index,
	})
}

func (s *Session[T]) matches(group Group) bool {
	return s.active && group == s.group
}

// HoverAt records that the pointer is over slot index of list. It is ignored
// unless list is the list most recently entered in this session's group.
func (s *Session[T]) HoverAt(group Group, list List[T], index int, draggingUp bool) {
	if !s.matches(group) {
		return
	}
	if list != s.targetList {
		return
	}

	if index != s.targetIndex {
		s.emit(Event[T]{
			Kind:           EventSort,
			Group:          group,
			SourceArgs:     s.sourceArgs,
			SourceList:     s.sourceList,
			SourceIndex:    s.sourceIndex,
			DraggedItem:    s.draggedItem,
			TargetArgs:     s.targetArgs,
			TargetList:     s.targetList,
			TargetIndex:    index,
			OldTargetIndex: s.targetIndex,
			NewTargetIndex: index,
		})
	}

	s.targetIndex = index
	s.draggingUp = &draggingUp
}

// EnterList records that the pointer entered list. Entering a list other than
// the current target resets the target index to 0.
func (s *Session[T]) EnterList(group Group, list List[T], horizontal bool, targetArgs any) {
	s.EnterListAt(group, list, horizontal, targetArgs, 0)
}

// EnterListAt is EnterList with an explicit starting index for the new list.
func (s *Session[T]) EnterListAt(group Group, list List[T], horizontal bool, targetArgs any, hint int) {
	if !s.matches(group) {
		return
	}

	if list != s.targetList {
		s.emit(Event[T]{
			Kind:           EventMove,
			Group:          group,
			SourceArgs:     s.sourceArgs,
			SourceList:     s.sourceList,
			SourceIndex:    s.sourceIndex,
			DraggedItem:    s.draggedItem,
			OldTargetList:  s.targetList,
			TargetList:     list,
			TargetArgs:     targetArgs,
			OldTargetIndex: s.targetIndex,
			TargetIndex:    hint,
			NewTargetIndex: hint,
		})
		s.targetArgs = targetArgs
		s.targetIndex = hint
	}

	s.targetList = list
	s.lastEntered = list
	s.horizontal = horizontal
}

// SetDraggingUp overrides the last known direction without touching the
// target index.
func (s *Session[T]) SetDraggingUp(up bool) {
	if !s.active {
		return
	}
	s.draggingUp = &up
}

// EndDrag finishes the drag. When the item would land somewhere other than
// where it started, done is called on the next frame with the resolved
// record. The session is idle once EndDrag returns.
func (s *Session[T]) EndDrag(done func(Record[T])) {
	if !s.active {
		return
	}

	rec := s.record()
	if idx, ok := s.landingIndex(); ok {
		rec.TargetIndex = idx
		moved := rec.SourceList != rec.TargetList || rec.SourceIndex != rec.TargetIndex
		if moved && done != nil {
			final := rec
			s.sched.Defer(func() { done(final) })
		}
	}

	s.reset()
	s.emitEnd(rec)
}

// Reset abandons the drag in progress without calling any completion
// callback. Hosts use it when the platform loses the pointer mid-drag.
func (s *Session[T]) Reset() {
	if !s.active {
		return
	}
	rec := s.record()
	s.reset()
	s.emitEnd(rec)
}

func (s *Session[T]) emitEnd(rec Record[T]) {
	s.emit(Event[T]{
		Kind:        EventEnd,
		Group:       rec.Group,
		DraggedItem: rec.DraggedItem,
		SourceArgs:  rec.SourceArgs,
		SourceList:  rec.SourceList,
		SourceIndex: rec.SourceIndex,
		TargetArgs:  rec.TargetArgs,
		TargetList:  rec.TargetList,
		TargetIndex: rec.TargetIndex,
	})
}

func (s *Session[T]) record() Record[T] {
	return Record[T]{
		Group:       s.group,
		DraggedItem: s.draggedItem,
		SourceArgs:  s.sourceArgs,
		SourceList:  s.sourceList,
		SourceIndex: s.sourceIndex,
		TargetArgs:  s.targetArgs,
		TargetList:  s.targetList,
		TargetIndex: s.targetIndex,
	}
}

// landingIndex converts the hovered slot into an insertion index. It reports
// false when nothing was hovered or the pointer rests on the source slot.
func (s *Session[T]) landingIndex() (int, bool) {
	idx := s.targetIndex
	if idx == NoIndex {
		return 0, false
	}
	sameList := s.sourceList == s.targetList
	if sameList && idx == s.sourceIndex {
		return 0, false
	}

	// The dragged item's own slot is counted in idx until it is removed.
	if sameList && idx > s.sourceIndex {
		idx--
	}

	length := 0
	if s.targetList != nil {
		length = s.targetList.Len()
	}
	onlyDragged := length == 1 && s.targetList.At(0) == s.draggedItem
	if !s.DraggingUp() && idx < length && !onlyDragged {
		idx++
	}
	return idx, true
}

func (s *Session[T]) reset() {
	var zero T
	s.active = false
	s.draggingUp = nil
	s.draggedItem = zero
	s.group = ""

	s.sourceArgs = nil
	s.sourceList = nil
	s.sourceIndex = NoIndex

	s.targetArgs = nil
	s.targetList = nil
	s.targetIndex = NoIndex

	s.lastEntered = nil
}

// Active reports whether a drag is in progress.
func (s *Session[T]) Active() bool { return s.active }

// Group returns the group of the drag in progress, or "" when idle.
func (s *Session[T]) Group() Group { return s.group }

// DraggedItem returns the item being dragged.
func (s *Session[T]) DraggedItem() T { return s.draggedItem }

// DraggingUp returns the last resolved direction. It is false when no
// direction is known.
func (s *Session[T]) DraggingUp() bool {
	return s.draggingUp != nil && *s.draggingUp
}

// Direction returns the last resolved direction and whether one is known.
func (s *Session[T]) Direction() (up bool, ok bool) {
	if s.draggingUp == nil {
		return false, false
	}
	return *s.draggingUp, true
}

// Horizontal reports the layout axis of the current target list.
func (s *Session[T]) Horizontal() bool { return s.horizontal }

func (s *Session[T]) SourceList() List[T] { return s.sourceList }

// SourceIndex returns the index the drag started from, or NoIndex.
func (s *Session[T]) SourceIndex() int { return s.sourceIndex }

func (s *Session[T]) SourceArgs() any { return s.sourceArgs }

func (s *Session[T]) TargetList() List[T] { return s.targetList }

// TargetIndex returns the hovered slot. ok is false until the first hover or
// list entry of the drag.
func (s *Session[T]) TargetIndex() (index int, ok bool) {
	return s.targetIndex, s.targetIndex != NoIndex
}

func (s *Session[T]) TargetArgs() any { return s.targetArgs }

// LastEnteredList returns the list most recently entered, used to drop
// repeated enter signals from the same region.
func (s *Session[T]) LastEnteredList() List[T] { return s.lastEntered }
