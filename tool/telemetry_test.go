//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package tool

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	itelemetry "trpc.group/trpc-go/trpc-tool-go/internal/telemetry"
	"trpc.group/trpc-go/trpc-tool-go/telemetry/metric"
	"trpc.group/trpc-go/trpc-tool-go/telemetry/semconv/metrics"
	"trpc.group/trpc-go/trpc-tool-go/telemetry/trace"
)

func spanAttrs(s sdktrace.ReadOnlySpan) map[attribute.Key]string {
	m := make(map[attribute.Key]string)
	for _, kv := range s.Attributes() {
		m[kv.Key] = kv.Value.Emit()
	}
	return m
}

func TestCallRecordsSpanAndMetrics(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	origTracer := trace.Tracer
	trace.Tracer = tp.Tracer("test")
	t.Cleanup(func() { trace.Tracer = origTracer })

	reader := sdkmetric.NewManualReader()
	require.NoError(t, metric.InitMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))))

	set := calculatorSet(WithCallLogging(false))
	ctx := WithToolCallID(context.Background(), "call_1")
	_, err := set.Call(ctx, "add", `{"x":2,"y":3}`)
	require.NoError(t, err)
	_, err = set.Call(context.Background(), "multiply", `{}`)
	require.Error(t, err)
	_, err = set.Call(context.Background(), "add", `{"x":2}`)
	require.Error(t, err)

	spans := sr.Ended()
	require.Len(t, spans, 3)

	ok := spanAttrs(spans[0])
	assert.Equal(t, "execute_tool add", spans[0].Name())
	assert.Equal(t, "add", ok[itelemetry.KeyGenAIToolName])
	assert.Equal(t, "call_1", ok[itelemetry.KeyGenAIToolCallID])
	assert.Equal(t, `{"x":2,"y":3}`, ok[itelemetry.KeyGenAIToolCallArguments])
	assert.Equal(t, "5", ok[itelemetry.KeyGenAIToolCallResult])
	assert.Equal(t, "simple", ok[itelemetry.KeyTRPCToolGoToolKind])

	missing := spanAttrs(spans[1])
	assert.Equal(t, "execute_tool multiply", spans[1].Name())
	assert.Equal(t, "tool_not_found", missing[itelemetry.KeyErrorType])
	assert.NotEmpty(t, missing[itelemetry.KeyGenAIToolCallID])
	assert.Equal(t, codes.Error, spans[1].Status().Code)

	assert.Equal(t, "json_error", spanAttrs(spans[2])[itelemetry.KeyErrorType])

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != metrics.MetricTRPCToolGoClientRequestCnt {
				continue
			}
			sum, isSum := m.Data.(metricdata.Sum[int64])
			require.True(t, isSum)
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
		}
	}
	assert.Equal(t, int64(3), total)
}
