//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package trace defines span attribute keys following the OpenTelemetry
// GenAI semantic conventions.
package trace

const (
	KeyGenAIOperationName = "gen_ai.operation.name"
	KeyGenAISystem        = "gen_ai.system"

	KeyGenAIToolName          = "gen_ai.tool.name"
	KeyGenAIToolDescription   = "gen_ai.tool.description"
	KeyGenAIToolCallID        = "gen_ai.tool.call.id"
	KeyGenAIToolCallArguments = "gen_ai.tool.call.arguments"
	KeyGenAIToolCallResult    = "gen_ai.tool.call.result"

	// KeyTRPCToolGoToolKind records whether the tool is simple or embedding.
	KeyTRPCToolGoToolKind = "trpc_tool_go.tool.kind"

	KeyErrorType          = "error.type"
	KeyErrorMessage       = "error.message"
	ValueDefaultErrorType = "_OTHER"

	// SystemTRPCGoTool is the gen_ai.system value of spans emitted here.
	SystemTRPCGoTool = "trpc.go.tool"
)
