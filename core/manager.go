package core

import (
	"sync"
	"time"

	"github.com/hoare-go/compmanager/domain"
)

// ComputationManager is the shared coordination buffer between clients,
// which submit Computations and later collect Results, and compute
// engines, which pull Requests and report Results back. It is a single
// monitor guarding three sub-structures: one bounded FIFO per
// ComputationType, an ordered result ledger, and the stop flag.
//
// The design is a Hoare monitor in spec.md; here it is translated to Go's
// Mesa-semantics sync.Cond by re-checking every wait guard in a for loop
// (Design Note 9.1, option (a)) and by explicitly chain-signalling the
// relevant condition before returning ErrStopped, so a stop() wakes every
// waiter on a condition through a cascade of single Signal calls rather
// than a Broadcast.
type ComputationManager struct {
	mu sync.Mutex

	cfg ManagerConfig

	nextID int64

	queues         [domain.NumComputationTypes]*requestQueue
	emptyQueueCond [domain.NumComputationTypes]*sync.Cond
	fullQueueCond  [domain.NumComputationTypes]*sync.Cond

	ledger          *resultLedger
	resultReadyCond *sync.Cond

	stopped bool

	history *submissionHistory
}

// NewComputationManager creates a manager whose per-type queues are bounded
// by cfg.MaxQueueSize (default 10, per spec.md §6).
func NewComputationManager(cfg ManagerConfig) *ComputationManager {
	cfg = cfg.withDefaults()

	m := &ComputationManager{
		cfg:     cfg,
		ledger:  newResultLedger(),
		history: newSubmissionHistory(cfg.HistorySize),
	}
	m.resultReadyCond = sync.NewCond(&m.mu)
	for t := range m.queues {
		m.queues[t] = newRequestQueue(cfg.MaxQueueSize)
		m.emptyQueueCond[t] = sync.NewCond(&m.mu)
		m.fullQueueCond[t] = sync.NewCond(&m.mu)
	}
	return m
}

// RequestComputation submits c for execution and returns the id assigned to
// it. Ids are issued in the exact order the monitor grants entry past the
// wait, so submission order, id order, and ledger insertion order all
// coincide (spec.md §4.2's ordering contract).
//
// Blocks while queue[c.Type] is at capacity. Returns domain.ErrStopped if
// the manager is stopped before or during that wait — including if it is
// already stopped on entry, so no id is ever issued after Stop.
func (m *ComputationManager) RequestComputation(c domain.Computation) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := c.Type
	if m.queues[t].Full() {
		m.cfg.Logger.Debug("queue full, submitter blocking", F("type", t.String()))
	}
	for !m.stopped && m.queues[t].Full() {
		m.fullQueueCond[t].Wait()
	}
	if m.stopped {
		m.fullQueueCond[t].Signal()
		return 0, domain.ErrStopped
	}

	id := m.nextID
	m.nextID++

	req := domain.NewRequest(id, c)
	m.queues[t].PushBack(req)
	m.ledger.Append(id, t)

	m.cfg.Metrics.RecordEnqueue(t)
	m.cfg.Metrics.RecordQueueDepth(t, m.queues[t].Len())
	m.emptyQueueCond[t].Signal()

	return id, nil
}

// AbortComputation cancels the submission with the given id, wherever it
// currently lives: still queued, in flight at an engine, or already
// computed but not yet delivered. Unknown ids are a silent no-op — abort is
// idempotent and race-tolerant against concurrent delivery (spec.md §4.2).
func (m *ComputationManager) AbortComputation(id int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for t := domain.ComputationType(0); t < domain.NumComputationTypes; t++ {
		if m.queues[t].Remove(id) {
			// Design Note 9.2: the queue entry and its ledger slot share an
			// id and were created together; remove both, or a later
			// getNextResult would stall forever on a slot that can never fill.
			// The removed slot may have been the ledger head, so wake
			// getNextResult to re-inspect the new head.
			m.ledger.Remove(id)
			m.fullQueueCond[t].Signal()
			m.resultReadyCond.Signal()
			m.cfg.Metrics.RecordAborted(t)
			m.recordHistory(id, t, StateAborted)
			return
		}
	}

	if removed, wasEmpty, t := m.ledger.Remove(id); removed {
		if wasEmpty {
			// The removed entry may have been blocking the ledger head;
			// wake getNextResult so it can re-inspect the new head.
			m.cfg.Logger.Debug("abort removed in-flight computation", F("id", id), F("type", t.String()))
			m.resultReadyCond.Signal()
		}
		m.cfg.Metrics.RecordAborted(t)
		m.recordHistory(id, t, StateAborted)
	}
}

// GetNextResult returns the next Result in submission order, skipping any
// ids that were aborted before delivery. Blocks until the oldest surviving
// ledger entry is filled. Returns domain.ErrStopped if the manager is
// stopped before or during that wait.
func (m *ComputationManager) GetNextResult() (domain.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for !m.stopped && !m.ledger.HeadReady() {
		m.resultReadyCond.Wait()
	}
	if m.stopped {
		m.resultReadyCond.Signal()
		return domain.Result{}, domain.ErrStopped
	}

	res, t := m.ledger.PopHead()
	m.cfg.Metrics.RecordDelivered(t)
	m.recordHistory(res.ID, t, StateFilled)
	return res, nil
}

// GetWork returns the oldest pending Request of the given type. Blocks
// while queue[t] is empty. Returns domain.ErrStopped if the manager is
// stopped before or during that wait.
func (m *ComputationManager) GetWork(t domain.ComputationType) (domain.Request, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for !m.stopped && m.queues[t].Len() == 0 {
		m.emptyQueueCond[t].Wait()
	}
	if m.stopped {
		m.emptyQueueCond[t].Signal()
		return domain.Request{}, domain.ErrStopped
	}

	req, _ := m.queues[t].PopFront()
	m.cfg.Metrics.RecordDispatch(t)
	m.cfg.Metrics.RecordQueueDepth(t, m.queues[t].Len())
	m.fullQueueCond[t].Signal()
	return req, nil
}

// ContinueWork reports whether the engine currently computing id should
// keep going. Non-blocking. Returns false once the manager is stopped, or
// once id's ledger slot has been removed by an abort — engines are expected
// to poll this cooperatively and unwind their own computation voluntarily
// (spec.md §4.3, Design Note 9.4).
func (m *ComputationManager) ContinueWork(id int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.stopped {
		return false
	}
	return m.ledger.Has(id)
}

// ProvideResult reports a computed Result. If id's ledger slot no longer
// exists — the submission was aborted while the engine was computing — the
// result is silently dropped. Non-blocking.
func (m *ComputationManager) ProvideResult(r domain.Result) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ok, _ := m.ledger.Fill(r)
	if !ok {
		m.cfg.Metrics.RecordDropped()
		m.recordHistory(r.ID, -1, StateDropped)
		return
	}
	m.resultReadyCond.Signal()
}

// Stop is the terminal shutdown: every thread currently blocked in
// RequestComputation, GetWork, or GetNextResult — and every future call to
// them — fails with domain.ErrStopped. Idempotent.
func (m *ComputationManager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.stopped {
		return
	}
	m.stopped = true

	m.resultReadyCond.Signal()
	for t := range m.emptyQueueCond {
		m.emptyQueueCond[t].Signal()
	}
	for t := range m.fullQueueCond {
		m.fullQueueCond[t].Signal()
	}

	m.cfg.Logger.Info("computation manager stopped")
}

// IsStopped reports whether Stop has been called.
func (m *ComputationManager) IsStopped() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopped
}

// ManagerStats is a point-in-time snapshot of the manager's internal
// sizes, used by the Prometheus snapshot poller. It is not part of the
// synchronization contract — taking a snapshot only requires the monitor
// briefly, like any other non-blocking operation.
type ManagerStats struct {
	QueueDepth [domain.NumComputationTypes]int
	LedgerSize int
	Stopped    bool
}

// Stats returns a snapshot of current queue depths, ledger size, and the
// stop flag.
func (m *ComputationManager) Stats() ManagerStats {
	m.mu.Lock()
	defer m.mu.Unlock()

	var s ManagerStats
	for t := range m.queues {
		s.QueueDepth[t] = m.queues[t].Len()
	}
	s.LedgerSize = m.ledger.Len()
	s.Stopped = m.stopped
	return s
}

// History returns up to limit most recent terminal submission events,
// newest first. limit <= 0 returns every retained event.
func (m *ComputationManager) History(limit int) []SubmissionEvent {
	return m.history.Recent(limit)
}

func (m *ComputationManager) recordHistory(id int64, t domain.ComputationType, state SubmissionState) {
	m.history.add(SubmissionEvent{ID: id, Type: t, State: state, OccurredAt: time.Now()})
}
