//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package metrics defines metric name constants following OpenTelemetry semantic conventions.
package metrics

const (
	// KeyMetricName represents the name of the metric.
	KeyMetricName = "metric.name"

	// MetricGenAIClientOperationDuration represents the duration of client operation.
	MetricGenAIClientOperationDuration = "gen_ai.client.operation.duration"
	// MetricTRPCToolGoClientRequestCnt represents the request count for client.
	MetricTRPCToolGoClientRequestCnt = "trpc_tool_go.client.request_cnt"

	// MeterNameExecuteTool is the meter name for tool execution operations.
	MeterNameExecuteTool = "trpc_tool_go.internal.execute_tool"
)
