package core

import "github.com/hoare-go/compmanager/domain"

// Metrics collects observability signals from the manager. Implementations
// must be non-blocking and fast — they are called while the monitor is
// held. The default NilMetrics discards everything.
type Metrics interface {
	// RecordEnqueue is called when a Request is accepted into queue[type].
	RecordEnqueue(t domain.ComputationType)

	// RecordDispatch is called when getWork hands a Request to an engine.
	RecordDispatch(t domain.ComputationType)

	// RecordDelivered is called when getNextResult successfully returns a Result.
	RecordDelivered(t domain.ComputationType)

	// RecordAborted is called when abortComputation removes a live id.
	RecordAborted(t domain.ComputationType)

	// RecordDropped is called when provideResult arrives for an id that no
	// longer has a ledger slot (aborted while computing).
	RecordDropped()

	// RecordQueueDepth records the current depth of queue[type].
	RecordQueueDepth(t domain.ComputationType, depth int)
}

// NilMetrics discards every call.
type NilMetrics struct{}

func (NilMetrics) RecordEnqueue(domain.ComputationType)         {}
func (NilMetrics) RecordDispatch(domain.ComputationType)        {}
func (NilMetrics) RecordDelivered(domain.ComputationType)       {}
func (NilMetrics) RecordAborted(domain.ComputationType)         {}
func (NilMetrics) RecordDropped()                               {}
func (NilMetrics) RecordQueueDepth(domain.ComputationType, int) {}
