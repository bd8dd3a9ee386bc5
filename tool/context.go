//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package tool

import "context"

// ContextKeyToolCallID is the context key type for tool call ID.
// It's exported so that an orchestrator can inject the model's call ID.
type ContextKeyToolCallID struct{}

// WithToolCallID returns a copy of ctx carrying callID.
func WithToolCallID(ctx context.Context, callID string) context.Context {
	return context.WithValue(ctx, ContextKeyToolCallID{}, callID)
}

// ToolCallIDFromContext retrieves tool call ID from context.
// Returns the tool call ID and true if found, empty string and false
// otherwise.
func ToolCallIDFromContext(ctx context.Context) (string, bool) {
	toolCallID, ok := ctx.Value(ContextKeyToolCallID{}).(string)
	return toolCallID, ok && toolCallID != ""
}
