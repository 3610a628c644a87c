// Package dragsort coordinates drag-and-drop reordering between lists.
//
// A Session tracks one drag at a time: where it started, which list and slot
// the pointer currently projects onto, and in which direction it travels.
// Views feed it pointer signals, usually through a Zone per list, and read
// back what to highlight. When the drag ends the session resolves the final
// insertion index and hands a Record to the host's completion callback; the
// session itself never reorders anything.
//
// Notifications (start, sort, move, end) and completion callbacks are
// deferred through a Scheduler. Hosts with a frame loop use a Queue and
// Flush it once per frame so observers see the layout that followed the
// state change.
package dragsort
