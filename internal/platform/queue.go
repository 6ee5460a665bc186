package platform

import (
	"fyne.io/fyne/v2"
)

// Queue defers work to a later turn of the UI event loop, in FIFO order
type Queue interface {
	// Post appends fn; it never runs fn synchronously
	Post(fn func())
	// Flush runs every queued function, including ones posted while flushing
	Flush()
	// Len returns the number of queued functions
	Len() int
}

// TaskQueue is a FIFO of UI tasks. With a schedule hook it arranges its own
// drain; without one the owner calls Flush, which tests do to run deferred
// work deterministically.
type TaskQueue struct {
	tasks     []func()
	scheduled bool
	schedule  func(drain func())
}

// NewManualQueue returns a queue drained only by explicit Flush calls
func NewManualQueue() *TaskQueue {
	return &TaskQueue{}
}

// NewFyneQueue returns a queue drained on the Fyne main goroutine. The drain
// is handed over from a fresh goroutine so it always runs after the current
// event handler returns.
func NewFyneQueue() *TaskQueue {
	return &TaskQueue{
		schedule: func(drain func()) {
			go fyne.Do(drain)
		},
	}
}

// Post appends fn and schedules a drain if none is pending
func (q *TaskQueue) Post(fn func()) {
	q.tasks = append(q.tasks, fn)
	if q.schedule != nil && !q.scheduled {
		q.scheduled = true
		q.schedule(q.Flush)
	}
}

// Flush runs queued functions in order until the queue is empty
func (q *TaskQueue) Flush() {
	q.scheduled = false
	for len(q.tasks) > 0 {
		fn := q.tasks[0]
		q.tasks[0] = nil
		q.tasks = q.tasks[1:]
		fn()
	}
}

// Len returns the number of queued functions
func (q *TaskQueue) Len() int {
	return len(q.tasks)
}
