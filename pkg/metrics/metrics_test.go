package metrics_test

import (
	"testing"

	"github.com/Gunvolt24/wb_shop/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMustRegister_IsIdempotent(t *testing.T) {
	// Должно выполняться без паники даже при повторном вызове.
	metrics.MustRegister()
	metrics.MustRegister()
}

func TestKafkaCounters_Inc(t *testing.T) {
	metrics.MustRegister()

	beforeConsumed := testutil.ToFloat64(metrics.KafkaMessagesConsumed.WithLabelValues("payments"))
	beforeProcessed := testutil.ToFloat64(metrics.KafkaMessagesProcessed.WithLabelValues("payments"))
	beforeFailed := testutil.ToFloat64(metrics.KafkaMessagesFailed.WithLabelValues("payments"))

	metrics.KafkaMessagesConsumed.WithLabelValues("payments").Inc()
	metrics.KafkaMessagesProcessed.WithLabelValues("payments").Inc()
	metrics.KafkaMessagesFailed.WithLabelValues("payments").Inc()

	if got := testutil.ToFloat64(metrics.KafkaMessagesConsumed.WithLabelValues("payments")); got != beforeConsumed+1 {
		t.Fatalf("KafkaMessagesConsumed: got=%v want=%v", got, beforeConsumed+1)
	}
	if got := testutil.ToFloat64(metrics.KafkaMessagesProcessed.WithLabelValues("payments")); got != beforeProcessed+1 {
		t.Fatalf("KafkaMessagesProcessed: got=%v want=%v", got, beforeProcessed+1)
	}
	if got := testutil.ToFloat64(metrics.KafkaMessagesFailed.WithLabelValues("payments")); got != beforeFailed+1 {
		t.Fatalf("KafkaMessagesFailed: got=%v want=%v", got, beforeFailed+1)
	}
}

func TestCacheOps_CountersByLabel(t *testing.T) {
	metrics.MustRegister()

	hitBefore := testutil.ToFloat64(metrics.CacheOps.WithLabelValues("hit"))
	missBefore := testutil.ToFloat64(metrics.CacheOps.WithLabelValues("miss"))

	metrics.CacheOps.WithLabelValues("hit").Inc()
	metrics.CacheOps.WithLabelValues("hit").Inc()

	if got := testutil.ToFloat64(metrics.CacheOps.WithLabelValues("hit")); got != hitBefore+2 {
		t.Fatalf("CacheOps(hit): got=%v want=%v", got, hitBefore+2)
	}
	if got := testutil.ToFloat64(metrics.CacheOps.WithLabelValues("miss")); got != missBefore {
		t.Fatalf("CacheOps(miss): got=%v want=%v", got, missBefore)
	}
}

func TestCacheSize_GaugeSet(t *testing.T) {
	metrics.MustRegister()

	cur := testutil.ToFloat64(metrics.CacheSize)

	metrics.CacheSize.Set(cur + 5)
	if got := testutil.ToFloat64(metrics.CacheSize); got != cur+5 {
		t.Fatalf("CacheSize after +5: got=%v want=%v", got, cur+5)
	}

	metrics.CacheSize.Set(cur) // вернуть как было
	if got := testutil.ToFloat64(metrics.CacheSize); got != cur {
		t.Fatalf("CacheSize restore: got=%v want=%v", got, cur)
	}
}

func TestStockReservations_CountersByOp(t *testing.T) {
	metrics.MustRegister()

	reserveBefore := testutil.ToFloat64(metrics.StockReservations.WithLabelValues("reserve"))
	oosBefore := testutil.ToFloat64(metrics.StockReservations.WithLabelValues("out_of_stock"))

	metrics.StockReservations.WithLabelValues("reserve").Inc()
	metrics.StockReservations.WithLabelValues("out_of_stock").Inc()

	if got := testutil.ToFloat64(metrics.StockReservations.WithLabelValues("reserve")); got != reserveBefore+1 {
		t.Fatalf("StockReservations(reserve): got=%v want=%v", got, reserveBefore+1)
	}
	if got := testutil.ToFloat64(metrics.StockReservations.WithLabelValues("out_of_stock")); got != oosBefore+1 {
		t.Fatalf("StockReservations(out_of_stock): got=%v want=%v", got, oosBefore+1)
	}
}

func TestOrderTransitions_CountersByStatus(t *testing.T) {
	metrics.MustRegister()

	shippedBefore := testutil.ToFloat64(metrics.OrderTransitions.WithLabelValues("Shipped"))
	cancelledBefore := testutil.ToFloat64(metrics.OrderTransitions.WithLabelValues("Cancelled"))

	metrics.OrderTransitions.WithLabelValues("Shipped").Inc()

	if got := testutil.ToFloat64(metrics.OrderTransitions.WithLabelValues("Shipped")); got != shippedBefore+1 {
		t.Fatalf("OrderTransitions(Shipped): got=%v want=%v", got, shippedBefore+1)
	}
	if got := testutil.ToFloat64(metrics.OrderTransitions.WithLabelValues("Cancelled")); got != cancelledBefore {
		t.Fatalf("OrderTransitions(Cancelled): got=%v want=%v", got, cancelledBefore)
	}
}
