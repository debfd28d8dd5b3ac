package core

import "github.com/hoare-go/compmanager/domain"

// resultSlot is a ledger entry: an id, its computation type (kept for
// metrics/history labeling), and an optional computed value. It transitions
// from empty to filled exactly once, or is removed outright by an abort.
// Insertion order into the ledger equals submission order.
type resultSlot struct {
	id     int64
	typ    domain.ComputationType
	filled bool
	value  float64
}

// resultLedger is the ordered record of every live id, oldest submission
// first. Unlike the original implementation (which prepends and delivers
// from the back), this keeps natural insertion order and delivers from the
// front — equivalent, and reads the way the invariants in spec.md §3 are
// stated ("oldest" = head).
type resultLedger struct {
	slots []resultSlot
}

func newResultLedger() *resultLedger {
	return &resultLedger{}
}

func (l *resultLedger) Len() int { return len(l.slots) }

// Append adds a new empty slot at the tail — called at submission time,
// never at dispatch time (Design Note 9.2/9.5: this is what keeps result
// ordering independent of engine dispatch order).
func (l *resultLedger) Append(id int64, t domain.ComputationType) {
	l.slots = append(l.slots, resultSlot{id: id, typ: t})
}

// HeadReady reports whether the oldest slot exists and is filled.
func (l *resultLedger) HeadReady() bool {
	return len(l.slots) > 0 && l.slots[0].filled
}

// PopHead removes and returns the oldest slot's Result and type. Callers
// must check HeadReady first.
func (l *resultLedger) PopHead() (domain.Result, domain.ComputationType) {
	s := l.slots[0]
	l.slots = l.slots[1:]
	return domain.Result{ID: s.id, Value: s.value}, s.typ
}

// Fill marks the slot for id as computed. Returns false if no such slot
// exists (the id was aborted while the engine was still computing).
func (l *resultLedger) Fill(r domain.Result) (ok bool, t domain.ComputationType) {
	for i := range l.slots {
		if l.slots[i].id == r.ID {
			l.slots[i].filled = true
			l.slots[i].value = r.Value
			return true, l.slots[i].typ
		}
	}
	return false, 0
}

// Has reports whether a slot for id currently exists, filled or not.
func (l *resultLedger) Has(id int64) bool {
	for _, s := range l.slots {
		if s.id == id {
			return true
		}
	}
	return false
}

// Remove deletes the slot for id, if present, reporting whether it was
// still empty (i.e. the work was in flight rather than already delivered)
// and its computation type.
func (l *resultLedger) Remove(id int64) (removed bool, wasEmpty bool, t domain.ComputationType) {
	for i, s := range l.slots {
		if s.id == id {
			l.slots = append(l.slots[:i], l.slots[i+1:]...)
			return true, !s.filled, s.typ
		}
	}
	return false, false, 0
}
