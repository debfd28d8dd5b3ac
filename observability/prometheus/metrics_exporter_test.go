package prometheus

import (
	"testing"

	"github.com/hoare-go/compmanager/domain"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsExporter_RecordMethods(t *testing.T) {
	reg := prom.NewRegistry()
	exporter, err := NewMetricsExporter("compmanager", reg)
	if err != nil {
		t.Fatalf("NewMetricsExporter failed: %v", err)
	}

	exporter.RecordEnqueue(domain.TypeA)
	exporter.RecordDispatch(domain.TypeA)
	exporter.RecordDelivered(domain.TypeA)
	exporter.RecordAborted(domain.TypeB)
	exporter.RecordDropped()
	exporter.RecordQueueDepth(domain.TypeC, 5)

	if got := testutil.ToFloat64(exporter.enqueueTotal.WithLabelValues("A")); got != 1 {
		t.Fatalf("enqueue total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(exporter.dispatchTotal.WithLabelValues("A")); got != 1 {
		t.Fatalf("dispatch total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(exporter.deliveredTotal.WithLabelValues("A")); got != 1 {
		t.Fatalf("delivered total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(exporter.abortedTotal.WithLabelValues("B")); got != 1 {
		t.Fatalf("aborted total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(exporter.droppedTotal); got != 1 {
		t.Fatalf("dropped total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(exporter.queueDepth.WithLabelValues("C")); got != 5 {
		t.Fatalf("queue depth = %v, want 5", got)
	}
}

func TestMetricsExporter_AlreadyRegisteredReuse(t *testing.T) {
	reg := prom.NewRegistry()
	first, err := NewMetricsExporter("compmanager", reg)
	if err != nil {
		t.Fatalf("first NewMetricsExporter failed: %v", err)
	}
	second, err := NewMetricsExporter("compmanager", reg)
	if err != nil {
		t.Fatalf("second NewMetricsExporter failed: %v", err)
	}

	first.RecordDropped()
	second.RecordDropped()

	got := testutil.ToFloat64(first.droppedTotal)
	if got != 2 {
		t.Fatalf("shared dropped counter = %v, want 2", got)
	}
}

func TestMetricsExporter_NilReceiverIsNoOp(t *testing.T) {
	var exporter *MetricsExporter
	exporter.RecordEnqueue(domain.TypeA)
	exporter.RecordDispatch(domain.TypeA)
	exporter.RecordDelivered(domain.TypeA)
	exporter.RecordAborted(domain.TypeA)
	exporter.RecordDropped()
	exporter.RecordQueueDepth(domain.TypeA, 1)
}
