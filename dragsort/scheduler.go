package dragsort

import (
	"github.com/eapache/queue"
)

// Scheduler defers work to the next frame boundary. Sessions route every
// notification and completion callback through one.
type Scheduler interface {
	Defer(task func())
}

// Queue is a FIFO Scheduler drained explicitly by the host's frame loop.
// It is not safe for concurrent use; drive it from the UI goroutine.
type Queue struct {
	tasks *queue.Queue
}

func NewQueue() *Queue {
	return &Queue{tasks: queue.New()}
}

// Defer appends task to the queue.
func (q *Queue) Defer(task func()) {
	if task == nil {
		return
	}
	q.tasks.Add(task)
}

// Len returns the number of pending tasks.
func (q *Queue) Len() int {
	return q.tasks.Length()
}

// Flush runs the tasks that were pending when it was called, oldest first.
// Tasks deferred while flushing stay queued for the next boundary.
func (q *Queue) Flush() int {
	n := q.tasks.Length()
	for i := 0; i < n; i++ {
		task := q.tasks.Remove().(func())
		task()
	}
	return n
}

// Immediate runs tasks synchronously. Use it where there is no frame loop to
// wait for.
type Immediate struct{}

func (Immediate) Defer(task func()) {
	if task != nil {
		task()
	}
}
