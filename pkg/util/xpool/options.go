package xpool

import (
	"log/slog"

	"go.opentelemetry.io/otel/metric"
)

// Option 定义 Pool 可选配置函数类型。
type Option func(*options)

type options struct {
	logger        *slog.Logger
	name          string
	meterProvider metric.MeterProvider
}

func defaultOptions() options {
	return options{
		logger: slog.Default(),
	}
}

// WithLogger 设置自定义日志记录器。
// 默认使用 slog.Default()。传入 nil 将被忽略，保持使用默认值。
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithName 设置 pool 名称，用于在多实例场景下区分日志与指标来源。
// 默认为空字符串（日志与指标中不包含名称属性）。
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithMeterProvider 设置 OpenTelemetry MeterProvider。
// 默认使用 otel.GetMeterProvider()（未安装 SDK 时为 noop，开销可忽略）。
// 传入 nil 将被忽略，保持使用默认值。
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(o *options) {
		if provider != nil {
			o.meterProvider = provider
		}
	}
}
