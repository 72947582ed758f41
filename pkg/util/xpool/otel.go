package xpool

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	instrumentationName = "github.com/omeyang/poolkit/xpool"

	metricTasksSubmitted = "xpool.tasks.submitted"
	metricTasksCompleted = "xpool.tasks.completed"
	metricTasksPanicked  = "xpool.tasks.panicked"
	metricWorkersExited  = "xpool.workers.exited"
)

// poolMetrics 封装 Pool 的 OTel 计数器。
// 计数在 worker goroutine 上发生，与任何请求 context 无关，
// 因此统一使用 context.Background() 记录。
type poolMetrics struct {
	tasksSubmitted metric.Int64Counter
	tasksCompleted metric.Int64Counter
	tasksPanicked  metric.Int64Counter
	workersExited  metric.Int64Counter
	attrs          []metric.AddOption
}

func newPoolMetrics(provider metric.MeterProvider, name string) (*poolMetrics, error) {
	if provider == nil {
		provider = otel.GetMeterProvider()
	}
	meter := provider.Meter(instrumentationName)

	m := &poolMetrics{}
	var err error

	if m.tasksSubmitted, err = meter.Int64Counter(
		metricTasksSubmitted,
		metric.WithDescription("tasks accepted into the queue"),
		metric.WithUnit("1"),
	); err != nil {
		return nil, fmt.Errorf("xpool: create counter failed: %w", err)
	}
	if m.tasksCompleted, err = meter.Int64Counter(
		metricTasksCompleted,
		metric.WithDescription("tasks executed to completion"),
		metric.WithUnit("1"),
	); err != nil {
		return nil, fmt.Errorf("xpool: create counter failed: %w", err)
	}
	if m.tasksPanicked, err = meter.Int64Counter(
		metricTasksPanicked,
		metric.WithDescription("tasks that panicked during execution"),
		metric.WithUnit("1"),
	); err != nil {
		return nil, fmt.Errorf("xpool: create counter failed: %w", err)
	}
	if m.workersExited, err = meter.Int64Counter(
		metricWorkersExited,
		metric.WithDescription("worker goroutines that have exited"),
		metric.WithUnit("1"),
	); err != nil {
		return nil, fmt.Errorf("xpool: create counter failed: %w", err)
	}

	if name != "" {
		m.attrs = []metric.AddOption{
			metric.WithAttributes(attribute.String("pool", name)),
		}
	}
	return m, nil
}

func (m *poolMetrics) submitted()    { m.tasksSubmitted.Add(context.Background(), 1, m.attrs...) }
func (m *poolMetrics) completed()    { m.tasksCompleted.Add(context.Background(), 1, m.attrs...) }
func (m *poolMetrics) panicked()     { m.tasksPanicked.Add(context.Background(), 1, m.attrs...) }
func (m *poolMetrics) workerExited() { m.workersExited.Add(context.Background(), 1, m.attrs...) }
