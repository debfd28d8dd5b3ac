package core

import (
	"testing"

	"github.com/hoare-go/compmanager/domain"
)

// TestRequestQueue_FIFOOrder verifies PopFront returns requests in the
// order they were pushed.
func TestRequestQueue_FIFOOrder(t *testing.T) {
	q := newRequestQueue(3)

	q.PushBack(domain.Request{ID: 1})
	q.PushBack(domain.Request{ID: 2})
	q.PushBack(domain.Request{ID: 3})

	for _, want := range []int64{1, 2, 3} {
		r, ok := q.PopFront()
		if !ok {
			t.Fatalf("PopFront: want ok, got empty queue")
		}
		if r.ID != want {
			t.Fatalf("want id %d, got %d", want, r.ID)
		}
	}

	if _, ok := q.PopFront(); ok {
		t.Fatal("PopFront on empty queue should report !ok")
	}
}

// TestRequestQueue_Full verifies Full() tracks capacity exactly.
func TestRequestQueue_Full(t *testing.T) {
	q := newRequestQueue(2)

	if q.Full() {
		t.Fatal("empty queue should not be full")
	}
	q.PushBack(domain.Request{ID: 1})
	if q.Full() {
		t.Fatal("queue at 1/2 should not be full")
	}
	q.PushBack(domain.Request{ID: 2})
	if !q.Full() {
		t.Fatal("queue at 2/2 should be full")
	}
	q.PopFront()
	if q.Full() {
		t.Fatal("queue at 1/2 after pop should not be full")
	}
}

// TestRequestQueue_RemoveMiddle verifies Remove preserves the relative
// order of the remaining entries.
func TestRequestQueue_RemoveMiddle(t *testing.T) {
	q := newRequestQueue(3)
	q.PushBack(domain.Request{ID: 1})
	q.PushBack(domain.Request{ID: 2})
	q.PushBack(domain.Request{ID: 3})

	if !q.Remove(2) {
		t.Fatal("Remove(2) should report true")
	}
	if q.Remove(2) {
		t.Fatal("Remove of an already-removed id should report false")
	}

	r, _ := q.PopFront()
	if r.ID != 1 {
		t.Fatalf("want id 1, got %d", r.ID)
	}
	r, _ = q.PopFront()
	if r.ID != 3 {
		t.Fatalf("want id 3, got %d", r.ID)
	}
}

// TestResultLedger_OrderAndFill verifies the ledger only exposes a head once
// filled, and delivers strictly in append order.
func TestResultLedger_OrderAndFill(t *testing.T) {
	l := newResultLedger()

	l.Append(1, domain.TypeA)
	l.Append(2, domain.TypeB)

	if l.HeadReady() {
		t.Fatal("head should not be ready before any Fill")
	}

	ok, typ := l.Fill(domain.Result{ID: 2, Value: 9})
	if !ok || typ != domain.TypeB {
		t.Fatalf("Fill(2): want ok with TypeB, got ok=%v typ=%v", ok, typ)
	}
	if l.HeadReady() {
		t.Fatal("head (id 1) still unfilled; should not be ready")
	}

	ok, typ = l.Fill(domain.Result{ID: 1, Value: 5})
	if !ok || typ != domain.TypeA {
		t.Fatalf("Fill(1): want ok with TypeA, got ok=%v typ=%v", ok, typ)
	}
	if !l.HeadReady() {
		t.Fatal("head should be ready once id 1 is filled")
	}

	res, typ := l.PopHead()
	if res.ID != 1 || res.Value != 5 || typ != domain.TypeA {
		t.Fatalf("unexpected head: %+v %v", res, typ)
	}
	if !l.HeadReady() {
		t.Fatal("new head (id 2) was already filled; should be ready")
	}
}

// TestResultLedger_RemoveReportsEmptiness verifies Remove distinguishes an
// in-flight (unfilled) slot from an already-computed one.
func TestResultLedger_RemoveReportsEmptiness(t *testing.T) {
	l := newResultLedger()
	l.Append(1, domain.TypeA)
	l.Append(2, domain.TypeA)
	l.Fill(domain.Result{ID: 2, Value: 1})

	removed, wasEmpty, _ := l.Remove(1)
	if !removed || !wasEmpty {
		t.Fatalf("Remove(1): want removed=true wasEmpty=true, got removed=%v wasEmpty=%v", removed, wasEmpty)
	}

	removed, wasEmpty, _ = l.Remove(2)
	if !removed || wasEmpty {
		t.Fatalf("Remove(2): want removed=true wasEmpty=false, got removed=%v wasEmpty=%v", removed, wasEmpty)
	}

	if removed, _, _ := l.Remove(99); removed {
		t.Fatal("Remove of unknown id should report false")
	}
}

// TestResultLedger_Has verifies Has tracks slot presence regardless of fill state.
func TestResultLedger_Has(t *testing.T) {
	l := newResultLedger()
	l.Append(1, domain.TypeC)

	if !l.Has(1) {
		t.Fatal("Has(1) should be true while the slot exists")
	}
	if l.Has(2) {
		t.Fatal("Has(2) should be false for a never-appended id")
	}
	l.Remove(1)
	if l.Has(1) {
		t.Fatal("Has(1) should be false after removal")
	}
}
