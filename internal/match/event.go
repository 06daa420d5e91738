package match

import "github.com/sorapuyo/ghoti/internal/puyo"

// Event is one scheduled action in the match's frame timeline: either "this
// player needs to think" (no decision yet) or "this player's chosen piece
// lands now" (decision set). ForceThink marks an event that must call the
// AI even if garbage is pending, set right after a garbage drop so the
// player takes a fresh decision rather than another garbage-absorb cycle.
type Event struct {
	Frame       int
	Player      int
	Decision    puyo.Decision
	HasDecision bool
	ForceThink  bool
}

// eventQueue is a container/heap min-heap ordered by Frame, with insertion
// order breaking ties so same-frame events resolve deterministically.
type eventQueue struct {
	items []*Event
	seq   []int
	next  int
}

func (q *eventQueue) Len() int { return len(q.items) }

func (q *eventQueue) Less(i, j int) bool {
	if q.items[i].Frame != q.items[j].Frame {
		return q.items[i].Frame < q.items[j].Frame
	}
	return q.seq[i] < q.seq[j]
}

func (q *eventQueue) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.seq[i], q.seq[j] = q.seq[j], q.seq[i]
}

func (q *eventQueue) Push(x any) {
	q.items = append(q.items, x.(*Event))
	q.seq = append(q.seq, q.next)
	q.next++
}

func (q *eventQueue) Pop() any {
	n := len(q.items)
	item := q.items[n-1]
	q.items = q.items[:n-1]
	q.seq = q.seq[:n-1]
	return item
}
