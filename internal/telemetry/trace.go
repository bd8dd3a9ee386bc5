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
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	semconvtrace "trpc.group/trpc-go/trpc-tool-go/telemetry/semconv/trace"
)

// Span attribute keys.
const (
	KeyGenAIOperationName = semconvtrace.KeyGenAIOperationName
	KeyGenAISystem        = semconvtrace.KeyGenAISystem

	KeyGenAIToolName          = semconvtrace.KeyGenAIToolName
	KeyGenAIToolDescription   = semconvtrace.KeyGenAIToolDescription
	KeyGenAIToolCallID        = semconvtrace.KeyGenAIToolCallID
	KeyGenAIToolCallArguments = semconvtrace.KeyGenAIToolCallArguments
	KeyGenAIToolCallResult    = semconvtrace.KeyGenAIToolCallResult
	KeyTRPCToolGoToolKind     = semconvtrace.KeyTRPCToolGoToolKind

	KeyErrorType          = semconvtrace.KeyErrorType
	KeyErrorMessage       = semconvtrace.KeyErrorMessage
	ValueDefaultErrorType = semconvtrace.ValueDefaultErrorType

	SystemTRPCGoTool = semconvtrace.SystemTRPCGoTool
)

// ToolCall is what TraceToolCall records about one invocation.
type ToolCall struct {
	Name string
	// Kind is empty when the tool was not found.
	Kind      string
	CallID    string
	Arguments string
	Result    string
	Error     error
}

// TraceToolCall traces the invocation of a tool call.
func TraceToolCall(span trace.Span, call ToolCall) {
	span.SetAttributes(
		attribute.String(KeyGenAISystem, SystemTRPCGoTool),
		attribute.String(KeyGenAIOperationName, OperationExecuteTool),
		attribute.String(KeyGenAIToolName, call.Name),
		attribute.String(KeyGenAIToolCallID, call.CallID),
		// args is json-encoded.
		attribute.String(KeyGenAIToolCallArguments, call.Arguments),
	)
	if call.Kind != "" {
		span.SetAttributes(attribute.String(KeyTRPCToolGoToolKind, call.Kind))
	}
	if call.Error != nil {
		span.SetStatus(codes.Error, call.Error.Error())
		span.SetAttributes(
			attribute.String(KeyErrorType, ToErrorType(call.Error, ValueDefaultErrorType)),
			attribute.String(KeyErrorMessage, call.Error.Error()),
		)
		return
	}
	span.SetAttributes(attribute.String(KeyGenAIToolCallResult, call.Result))
}
