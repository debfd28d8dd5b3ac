package prometheus

import (
	"errors"
	"fmt"

	"github.com/hoare-go/compmanager/core"
	"github.com/hoare-go/compmanager/domain"
	prom "github.com/prometheus/client_golang/prometheus"
)

// MetricsExporter adapts core.Metrics to Prometheus collectors.
type MetricsExporter struct {
	enqueueTotal   *prom.CounterVec
	dispatchTotal  *prom.CounterVec
	deliveredTotal *prom.CounterVec
	abortedTotal   *prom.CounterVec
	droppedTotal   prom.Counter
	queueDepth     *prom.GaugeVec
}

var _ core.Metrics = (*MetricsExporter)(nil)

// NewMetricsExporter creates and registers Prometheus collectors for core.Metrics.
func NewMetricsExporter(namespace string, reg prom.Registerer) (*MetricsExporter, error) {
	if namespace == "" {
		namespace = "compmanager"
	}
	if reg == nil {
		reg = prom.DefaultRegisterer
	}

	enqueueVec := prom.NewCounterVec(prom.CounterOpts{
		Namespace: namespace,
		Name:      "requests_enqueued_total",
		Help:      "Total number of Requests accepted into a per-type queue.",
	}, []string{"type"})
	dispatchVec := prom.NewCounterVec(prom.CounterOpts{
		Namespace: namespace,
		Name:      "requests_dispatched_total",
		Help:      "Total number of Requests handed to an engine via getWork.",
	}, []string{"type"})
	deliveredVec := prom.NewCounterVec(prom.CounterOpts{
		Namespace: namespace,
		Name:      "results_delivered_total",
		Help:      "Total number of Results returned by getNextResult.",
	}, []string{"type"})
	abortedVec := prom.NewCounterVec(prom.CounterOpts{
		Namespace: namespace,
		Name:      "computations_aborted_total",
		Help:      "Total number of computations cancelled via abortComputation.",
	}, []string{"type"})
	droppedCounter := prom.NewCounter(prom.CounterOpts{
		Namespace: namespace,
		Name:      "results_dropped_total",
		Help:      "Total number of provideResult calls for an id with no surviving ledger slot.",
	})
	queueDepthVec := prom.NewGaugeVec(prom.GaugeOpts{
		Namespace: namespace,
		Name:      "queue_depth",
		Help:      "Current per-type pending request queue depth.",
	}, []string{"type"})

	var err error
	if enqueueVec, err = registerCollector(reg, enqueueVec); err != nil {
		return nil, fmt.Errorf("registering requests_enqueued_total: %w", err)
	}
	if dispatchVec, err = registerCollector(reg, dispatchVec); err != nil {
		return nil, fmt.Errorf("registering requests_dispatched_total: %w", err)
	}
	if deliveredVec, err = registerCollector(reg, deliveredVec); err != nil {
		return nil, fmt.Errorf("registering results_delivered_total: %w", err)
	}
	if abortedVec, err = registerCollector(reg, abortedVec); err != nil {
		return nil, fmt.Errorf("registering computations_aborted_total: %w", err)
	}
	if droppedCounter, err = registerCollector(reg, droppedCounter); err != nil {
		return nil, fmt.Errorf("registering results_dropped_total: %w", err)
	}
	if queueDepthVec, err = registerCollector(reg, queueDepthVec); err != nil {
		return nil, fmt.Errorf("registering queue_depth: %w", err)
	}

	return &MetricsExporter{
		enqueueTotal:   enqueueVec,
		dispatchTotal:  dispatchVec,
		deliveredTotal: deliveredVec,
		abortedTotal:   abortedVec,
		droppedTotal:   droppedCounter,
		queueDepth:     queueDepthVec,
	}, nil
}

func (m *MetricsExporter) RecordEnqueue(t domain.ComputationType) {
	if m == nil {
		return
	}
	m.enqueueTotal.WithLabelValues(t.String()).Inc()
}

func (m *MetricsExporter) RecordDispatch(t domain.ComputationType) {
	if m == nil {
		return
	}
	m.dispatchTotal.WithLabelValues(t.String()).Inc()
}

func (m *MetricsExporter) RecordDelivered(t domain.ComputationType) {
	if m == nil {
		return
	}
	m.deliveredTotal.WithLabelValues(t.String()).Inc()
}

func (m *MetricsExporter) RecordAborted(t domain.ComputationType) {
	if m == nil {
		return
	}
	m.abortedTotal.WithLabelValues(t.String()).Inc()
}

func (m *MetricsExporter) RecordDropped() {
	if m == nil {
		return
	}
	m.droppedTotal.Inc()
}

func (m *MetricsExporter) RecordQueueDepth(t domain.ComputationType, depth int) {
	if m == nil {
		return
	}
	m.queueDepth.WithLabelValues(t.String()).Set(float64(depth))
}

func registerCollector[T prom.Collector](reg prom.Registerer, collector T) (T, error) {
	err := reg.Register(collector)
	if err == nil {
		return collector, nil
	}

	var alreadyRegisteredErr prom.AlreadyRegisteredError
	if errors.As(err, &alreadyRegisteredErr) {
		existing, ok := alreadyRegisteredErr.ExistingCollector.(T)
		if !ok {
			return collector, fmt.Errorf("collector type mismatch for %T", collector)
		}
		return existing, nil
	}

	return collector, err
}
