package negotiation

import (
	"container/heap"
	"sync"
	"time"
)

// Task is a handle on a scheduled callback.
type Task interface {
	// Cancel stops the callback from running. It reports false if it already ran or was cancelled.
	Cancel() bool
}

// Scheduler runs callbacks after a delay. Follow-up messages that simulate the other party
// are scheduled through it so that tests can control time.
type Scheduler interface {
	Schedule(delay time.Duration, fn func()) Task
}

// Queue is a Scheduler driven by virtual time: nothing fires until Advance is called, and
// callbacks run on the goroutine calling Advance.
type Queue struct {
	mu     sync.Mutex
	now    time.Duration
	seq    uint64
	tasks  taskHeap
	closed bool
}

func NewQueue() *Queue {
	return &Queue{}
}

type queuedTask struct {
	q     *Queue
	due   time.Duration
	seq   uint64
	fn    func()
	index int
	done  bool
}

func (t *queuedTask) Cancel() bool {
	t.q.mu.Lock()
	defer t.q.mu.Unlock()

	if t.done {
		return false
	}

	heap.Remove(&t.q.tasks, t.index)
	t.done = true

	return true
}

func (q *Queue) Schedule(delay time.Duration, fn func()) Task {
	q.mu.Lock()
	defer q.mu.Unlock()

	t := &queuedTask{q: q, fn: fn}
	if q.closed {
		t.done = true
		return t
	}

	if delay < 0 {
		delay = 0
	}

	q.seq++
	t.due = q.now + delay
	t.seq = q.seq
	heap.Push(&q.tasks, t)

	return t
}

// Advance moves virtual time forward by d and runs every task that falls due, in due-time
// order and then scheduling order. Tasks scheduled by a running task fire in the same call
// if they are due by the new time. It returns the number of tasks run.
func (q *Queue) Advance(d time.Duration) int {
	if d < 0 {
		d = 0
	}

	q.mu.Lock()
	target := q.now + d
	q.mu.Unlock()

	fired := 0

	for {
		q.mu.Lock()
		if q.closed || len(q.tasks) == 0 || q.tasks[0].due > target {
			if q.now < target {
				q.now = target
			}
			q.mu.Unlock()

			return fired
		}

		t := heap.Pop(&q.tasks).(*queuedTask)
		t.done = true
		q.now = t.due
		q.mu.Unlock()

		t.fn()
		fired++
	}
}

// Elapsed is the virtual time advanced so far.
func (q *Queue) Elapsed() time.Duration {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.now
}

func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.tasks)
}

// Close drops every pending task. Later Schedule calls return already-cancelled tasks.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, t := range q.tasks {
		t.done = true
	}

	q.tasks = nil
	q.closed = true
}

type taskHeap []*queuedTask

func (h taskHeap) Len() int { return len(h) }

func (h taskHeap) Less(i, j int) bool {
	if h[i].due != h[j].due {
		return h[i].due < h[j].due
	}

	return h[i].seq < h[j].seq
}

func (h taskHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *taskHeap) Push(x any) {
	t := x.(*queuedTask)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return t
}
