package prometheus

import (
	"context"
	"sync"
	"time"

	"github.com/hoare-go/compmanager/core"
	"github.com/hoare-go/compmanager/domain"
	prom "github.com/prometheus/client_golang/prometheus"
)

// SnapshotProvider provides a current ComputationManager stats snapshot.
// *core.ComputationManager satisfies this via its Stats method.
type SnapshotProvider interface {
	Stats() core.ManagerStats
}

// SnapshotPoller periodically exports a ComputationManager's Stats()
// snapshot into Prometheus gauges, for managers whose queue/ledger depth
// is otherwise only visible through the per-event counters in
// MetricsExporter.
type SnapshotPoller struct {
	interval time.Duration

	providersMu sync.RWMutex
	providers   map[string]SnapshotProvider

	queueDepth *prom.GaugeVec
	ledgerSize *prom.GaugeVec
	stopped    *prom.GaugeVec

	stateMu sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewSnapshotPoller creates a snapshot poller and registers its collectors.
func NewSnapshotPoller(namespace string, reg prom.Registerer, interval time.Duration) (*SnapshotPoller, error) {
	if namespace == "" {
		namespace = "compmanager"
	}
	if reg == nil {
		reg = prom.DefaultRegisterer
	}
	if interval <= 0 {
		interval = time.Second
	}

	queueDepth := prom.NewGaugeVec(prom.GaugeOpts{
		Namespace: namespace,
		Name:      "snapshot_queue_depth",
		Help:      "Per-type pending queue depth, polled from Stats().",
	}, []string{"manager", "type"})
	ledgerSize := prom.NewGaugeVec(prom.GaugeOpts{
		Namespace: namespace,
		Name:      "snapshot_ledger_size",
		Help:      "Result ledger size, polled from Stats().",
	}, []string{"manager"})
	stoppedGauge := prom.NewGaugeVec(prom.GaugeOpts{
		Namespace: namespace,
		Name:      "snapshot_stopped",
		Help:      "Manager stopped state (1=stopped, 0=running), polled from Stats().",
	}, []string{"manager"})

	var err error
	if queueDepth, err = registerCollector(reg, queueDepth); err != nil {
		return nil, err
	}
	if ledgerSize, err = registerCollector(reg, ledgerSize); err != nil {
		return nil, err
	}
	if stoppedGauge, err = registerCollector(reg, stoppedGauge); err != nil {
		return nil, err
	}

	return &SnapshotPoller{
		interval:   interval,
		providers:  make(map[string]SnapshotProvider),
		queueDepth: queueDepth,
		ledgerSize: ledgerSize,
		stopped:    stoppedGauge,
	}, nil
}

// Add registers a manager under name for periodic polling, replacing any
// prior provider with the same name.
func (p *SnapshotPoller) Add(name string, provider SnapshotProvider) {
	if p == nil || provider == nil {
		return
	}
	if name == "" {
		name = "default"
	}
	p.providersMu.Lock()
	p.providers[name] = provider
	p.providersMu.Unlock()
}

// Start begins periodic polling; repeated calls are no-ops.
func (p *SnapshotPoller) Start(ctx context.Context) {
	if p == nil {
		return
	}

	p.stateMu.Lock()
	if p.running {
		p.stateMu.Unlock()
		return
	}
	pollCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.done = make(chan struct{})
	p.running = true
	p.stateMu.Unlock()

	go p.loop(pollCtx)
}

// Stop stops periodic polling and waits for the in-flight tick, if any, to
// finish. Repeated calls are safe.
func (p *SnapshotPoller) Stop() {
	if p == nil {
		return
	}

	p.stateMu.Lock()
	if !p.running {
		p.stateMu.Unlock()
		return
	}
	cancel := p.cancel
	done := p.done
	p.stateMu.Unlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}

	p.stateMu.Lock()
	p.running = false
	p.cancel = nil
	p.done = nil
	p.stateMu.Unlock()
}

func (p *SnapshotPoller) loop(ctx context.Context) {
	defer close(p.done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.collectOnce()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.collectOnce()
		}
	}
}

func (p *SnapshotPoller) collectOnce() {
	p.providersMu.RLock()
	defer p.providersMu.RUnlock()

	for name, provider := range p.providers {
		stats := provider.Stats()
		for t := domain.ComputationType(0); t < domain.NumComputationTypes; t++ {
			p.queueDepth.WithLabelValues(name, t.String()).Set(float64(stats.QueueDepth[t]))
		}
		p.ledgerSize.WithLabelValues(name).Set(float64(stats.LedgerSize))
		if stats.Stopped {
			p.stopped.WithLabelValues(name).Set(1)
		} else {
			p.stopped.WithLabelValues(name).Set(0)
		}
	}
}
