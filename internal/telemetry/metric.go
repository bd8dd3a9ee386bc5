//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package telemetry

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"trpc.group/trpc-go/trpc-tool-go/telemetry/semconv/metrics"
)

// executeToolInstruments are swapped as a whole so a call never records with
// a half initialised pair.
type executeToolInstruments struct {
	provider metric.MeterProvider
	requests metric.Int64Counter
	duration metric.Float64Histogram
}

var (
	executeTool atomic.Pointer[executeToolInstruments]
	// initMu serialises InitExecuteToolMetrics and SetExecuteToolBuckets.
	initMu sync.Mutex
)

func loadExecuteTool() *executeToolInstruments {
	if in := executeTool.Load(); in != nil {
		return in
	}
	return &executeToolInstruments{
		provider: noop.NewMeterProvider(),
		requests: noop.Int64Counter{},
		duration: noop.Float64Histogram{},
	}
}

// MeterProvider returns the provider the execute tool metrics report to.
func MeterProvider() metric.MeterProvider {
	return loadExecuteTool().provider
}

// InitExecuteToolMetrics creates the execute tool instruments on mp.
// boundaries, when set, replace the default duration buckets.
func InitExecuteToolMetrics(mp metric.MeterProvider, boundaries []float64) error {
	if mp == nil {
		return fmt.Errorf("meter provider is nil")
	}
	initMu.Lock()
	defer initMu.Unlock()
	meter := mp.Meter(metrics.MeterNameExecuteTool)
	requests, err := meter.Int64Counter(
		metrics.MetricTRPCToolGoClientRequestCnt,
		metric.WithDescription("Total number of client requests"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("failed to create execute tool metric %s: %w", metrics.MetricTRPCToolGoClientRequestCnt, err)
	}
	histOpts := []metric.Float64HistogramOption{
		metric.WithDescription("Duration of client operation"),
		metric.WithUnit("s"),
	}
	if len(boundaries) > 0 {
		histOpts = append(histOpts, metric.WithExplicitBucketBoundaries(boundaries...))
	}
	duration, err := meter.Float64Histogram(metrics.MetricGenAIClientOperationDuration, histOpts...)
	if err != nil {
		return fmt.Errorf("failed to create execute tool metric %s: %w", metrics.MetricGenAIClientOperationDuration, err)
	}
	executeTool.Store(&executeToolInstruments{provider: mp, requests: requests, duration: duration})
	return nil
}

// SetExecuteToolBuckets recreates the duration histogram with boundaries on
// the current provider. Recorded data is not migrated.
func SetExecuteToolBuckets(boundaries []float64) error {
	in := executeTool.Load()
	if in == nil {
		return fmt.Errorf("execute tool metrics not initialized")
	}
	return InitExecuteToolMetrics(in.provider, boundaries)
}

// ExecuteToolAttributes is the attributes for tool execution metrics.
type ExecuteToolAttributes struct {
	ToolName string
	// ToolKind is empty when the tool was not found.
	ToolKind string
	Error    error
}

func (a ExecuteToolAttributes) toAttributes() []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String(KeyGenAIOperationName, OperationExecuteTool),
		attribute.String(KeyGenAISystem, SystemTRPCGoTool),
		attribute.String(KeyGenAIToolName, a.ToolName),
	}
	if a.ToolKind != "" {
		attrs = append(attrs, attribute.String(KeyTRPCToolGoToolKind, a.ToolKind))
	}
	if a.Error != nil {
		attrs = append(attrs, attribute.String(KeyErrorType, ToErrorType(a.Error, ValueDefaultErrorType)))
	}
	return attrs
}

// ReportExecuteToolMetrics reports the tool execution metrics.
func ReportExecuteToolMetrics(ctx context.Context, attrs ExecuteToolAttributes, duration time.Duration) {
	in := loadExecuteTool()
	as := metric.WithAttributes(attrs.toAttributes()...)
	in.requests.Add(ctx, 1, as)
	in.duration.Record(ctx, duration.Seconds(), as)
}
