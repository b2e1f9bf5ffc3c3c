package walker

// fifo is an unbounded first-in first-out queue. It is not safe for concurrent use;
// runState serializes access under its lock.
type fifo[T any] struct {
	items []T
	head  int
}

func (q *fifo[T]) push(v T) { q.items = append(q.items, v) }

func (q *fifo[T]) pop() (T, bool) {
	var zero T
	if q.head == len(q.items) {
		return zero, false
	}
	v := q.items[q.head]
	q.items[q.head] = zero
	q.head++
	// reclaim the backing array once drained, or compact when the dead prefix dominates
	switch {
	case q.head == len(q.items):
		q.items = q.items[:0]
		q.head = 0
	case q.head > 64 && q.head*2 > len(q.items):
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}
	return v, true
}

func (q *fifo[T]) len() int { return len(q.items) - q.head }

// stageQueues holds one FIFO per stage, read in strict priority order.
type stageQueues struct {
	q [numStages]fifo[task]
}

func (s *stageQueues) push(t task) { s.q[t.stage].push(t) }

// pop returns the oldest task of the highest-priority non-empty stage.
func (s *stageQueues) pop() (task, bool) {
	for i := range s.q {
		if t, ok := s.q[i].pop(); ok {
			return t, true
		}
	}
	return task{}, false
}

func (s *stageQueues) empty() bool {
	for i := range s.q {
		if s.q[i].len() > 0 {
			return false
		}
	}
	return true
}

func (s *stageQueues) pending() int {
	n := 0
	for i := range s.q {
		n += s.q[i].len()
	}
	return n
}
