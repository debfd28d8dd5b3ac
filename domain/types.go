// Package domain holds the data model shared between clients and compute
// engines: computation types, computations, requests, and results. The
// ledger entry that tracks a submission from acceptance through delivery
// lives in package core.
//
// Nothing in this package blocks or takes a lock. Synchronization lives in
// package core; domain only describes the shapes that cross the boundary.
package domain

import "fmt"

// ComputationType routes a Request to the compute engines that know how to
// perform it. The set is closed and fixed at compile time: NumComputationTypes
// sizes every per-type array in the monitor.
type ComputationType int

const (
	TypeA ComputationType = iota
	TypeB
	TypeC

	// NumComputationTypes is the size of the closed ComputationType set.
	NumComputationTypes
)

// String implements fmt.Stringer for log and metric labels.
func (t ComputationType) String() string {
	switch t {
	case TypeA:
		return "A"
	case TypeB:
		return "B"
	case TypeC:
		return "C"
	default:
		return fmt.Sprintf("ComputationType(%d)", int(t))
	}
}

// Valid reports whether t is one of the closed set of computation types.
func (t ComputationType) Valid() bool {
	return t >= TypeA && t < NumComputationTypes
}

// Computation is a submission payload: a type tag plus an immutable buffer
// of double-precision values. Data is shared by reference between the
// client, the Request wrapping it, and the engine that executes it — the
// caller must not mutate it after submission.
type Computation struct {
	Type ComputationType
	Data []float64
}

// Request pairs a Computation with the id the manager assigned it at
// submission time. Ids are globally unique and strictly increasing for the
// lifetime of a manager.
type Request struct {
	ID   int64
	Type ComputationType
	Data []float64
}

// NewRequest builds a Request carrying c's payload by reference.
func NewRequest(id int64, c Computation) Request {
	return Request{ID: id, Type: c.Type, Data: c.Data}
}

// Result is the (id, value) pair a compute engine reports back for a Request.
type Result struct {
	ID    int64
	Value float64
}
