package dragsort

// EventKind identifies a session notification.
type EventKind int

const (
	EventStart EventKind = iota
	EventSort
	EventMove
	EventEnd
)

func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventSort:
		return "sort"
	case EventMove:
		return "move"
	case EventEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Record describes a finished drag. It is handed to the completion callback
// and carried by the end event.
type Record[T comparable] struct {
	Group       Group
	DraggedItem T
	SourceArgs  any
	SourceList  List[T]
	SourceIndex int
	TargetArgs  any
	TargetList  List[T]
	TargetIndex int
}

// Event is a session notification. Which fields are populated depends on
// Kind:
//
//	start: Group, DraggedItem, SourceList, SourceIndex
//	sort:  source fields, TargetArgs, TargetList, OldTargetIndex, NewTargetIndex
//	move:  source fields, OldTargetList, TargetList, TargetArgs,
//	       OldTargetIndex, TargetIndex
//	end:   the full Record
type Event[T comparable] struct {
	Kind EventKind

	Group       Group
	DraggedItem T
	SourceArgs  any
	SourceList  List[T]
	SourceIndex int

	TargetArgs     any
	TargetList     List[T]
	TargetIndex    int
	OldTargetList  List[T]
	OldTargetIndex int
	NewTargetIndex int
}

// Record extracts the completion record carried by an end event.
func (e Event[T]) Record() Record[T] {
	return Record[T]{
		Group:       e.Group,
		DraggedItem: e.DraggedItem,
		SourceArgs:  e.SourceArgs,
		SourceList:  e.SourceList,
		SourceIndex: e.SourceIndex,
		TargetArgs:  e.TargetArgs,
		TargetList:  e.TargetList,
		TargetIndex: e.TargetIndex,
	}
}

// Listener receives session notifications.
type Listener[T comparable] func(Event[T])

type subscription[T comparable] struct {
	id    int
	kinds []EventKind
	fn    Listener[T]
}

func (s subscription[T]) wants(kind EventKind) bool {
	if len(s.kinds) == 0 {
		return true
	}
	for _, k := range s.kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// observers is the subscription list owned by a Session.
type observers[T comparable] struct {
	nextID int
	subs   []subscription[T]
}

func (o *observers[T]) add(fn Listener[T], kinds []EventKind) func() {
	o.nextID++
	id := o.nextID
	o.subs = append(o.subs, subscription[T]{id: id, kinds: kinds, fn: fn})
	return func() {
		for i, s := range o.subs {
			if s.id == id {
				o.subs = append(o.subs[:i], o.subs[i+1:]...)
				return
			}
		}
	}
}

func (o *observers[T]) emit(ev Event[T]) {
	// Listeners may unsubscribe while we iterate.
	subs := make([]subscription[T], len(o.subs))
	copy(subs, o.subs)
	for _, s := range subs {
		if s.wants(ev.Kind) {
			s.fn(ev)
		}
	}
}
