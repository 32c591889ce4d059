package cache

import (
	"context"
	"time"
)

type store[T any] interface {
	Set(ctx context.Context, id string, value T) error
	Get(ctx context.Context, id string) (T, error)
	Delete(ctx context.Context, id string) error
}

type metricsCollector interface {
	ObserveLatency(operation string, duration time.Duration)
	IncrementCounter(operation, result string)
}

// MetricsDecorator times every call on the wrapped store and counts results.
type MetricsDecorator[T any] struct {
	next      store[T]
	collector metricsCollector
}

func NewMetricsDecorator[T any](next store[T], collector metricsCollector) *MetricsDecorator[T] {
	return &MetricsDecorator[T]{next: next, collector: collector}
}

func (m *MetricsDecorator[T]) Set(ctx context.Context, id string, value T) error {
	start := time.Now()
	err := m.next.Set(ctx, id, value)
	m.collector.ObserveLatency("set", time.Since(start))
	m.collector.IncrementCounter("set", result(err, "ok", "error"))
	return err
}

//nolint:ireturn
func (m *MetricsDecorator[T]) Get(ctx context.Context, id string) (T, error) {
	start := time.Now()
	v, err := m.next.Get(ctx, id)
	m.collector.ObserveLatency("get", time.Since(start))
	m.collector.IncrementCounter("get", result(err, "hit", "miss"))
	return v, err
}

func (m *MetricsDecorator[T]) Delete(ctx context.Context, id string) error {
	start := time.Now()
	err := m.next.Delete(ctx, id)
	m.collector.ObserveLatency("delete", time.Since(start))
	m.collector.IncrementCounter("delete", result(err, "ok", "error"))
	return err
}

func result(err error, ok, failed string) string {
	if err != nil {
		return failed
	}
	return ok
}
