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

// BeforeToolArgs contains all parameters for before tool callback.
type BeforeToolArgs struct {
	// ToolName is the name of the tool.
	ToolName string
	// Kind is the variant of the registered entry.
	Kind Kind
	// Arguments is the JSON argument string. Callbacks may rewrite it.
	Arguments string
}

// BeforeToolResult contains the return value for before tool callback.
type BeforeToolResult struct {
	// Context if not nil, will be used for the call and later callbacks.
	Context context.Context
	// CustomResult if not nil, skips the tool and is returned as its output.
	CustomResult *string
	// ModifiedArguments if not nil, replaces the arguments passed to the tool.
	ModifiedArguments *string
}

// BeforeToolCallback is called before a tool is executed. A returned error
// stops the call.
type BeforeToolCallback = func(ctx context.Context, args *BeforeToolArgs) (*BeforeToolResult, error)

// AfterToolArgs contains all parameters for after tool callback.
type AfterToolArgs struct {
	ToolName  string
	Kind      Kind
	Arguments string
	// Result is the JSON output of the tool, empty when Error is set.
	Result string
	// Error is the error returned by the tool (may be nil).
	Error error
}

// AfterToolResult contains the return value for after tool callback.
type AfterToolResult struct {
	// Context if not nil, will be used by later callbacks.
	Context context.Context
	// CustomResult if not nil, replaces the tool output and clears its error.
	CustomResult *string
}

// AfterToolCallback is called after a tool is executed.
type AfterToolCallback = func(ctx context.Context, args *AfterToolArgs) (*AfterToolResult, error)

// Callbacks holds the hooks a ToolSet runs around every call.
type Callbacks struct {
	BeforeTool []BeforeToolCallback
	AfterTool  []AfterToolCallback
}

// NewCallbacks creates an empty Callbacks.
func NewCallbacks() *Callbacks {
	return &Callbacks{}
}

// RegisterBeforeTool registers a before tool callback.
func (c *Callbacks) RegisterBeforeTool(cb BeforeToolCallback) *Callbacks {
	c.BeforeTool = append(c.BeforeTool, cb)
	return c
}

// RegisterAfterTool registers an after tool callback.
func (c *Callbacks) RegisterAfterTool(cb AfterToolCallback) *Callbacks {
	c.AfterTool = append(c.AfterTool, cb)
	return c
}

// RunBeforeTool runs the before callbacks in order. Modified arguments are
// written back to args. It stops at the first error or custom result. The
// returned result always carries the context to use for the call.
func (c *Callbacks) RunBeforeTool(ctx context.Context, args *BeforeToolArgs) (*BeforeToolResult, error) {
	for _, cb := range c.BeforeTool {
		result, err := cb(ctx, args)
		if err != nil {
			return nil, err
		}
		if result == nil {
			continue
		}
		if result.Context != nil {
			ctx = result.Context
		}
		if result.ModifiedArguments != nil {
			args.Arguments = *result.ModifiedArguments
		}
		if result.CustomResult != nil {
			return &BeforeToolResult{Context: ctx, CustomResult: result.CustomResult}, nil
		}
	}
	return &BeforeToolResult{Context: ctx}, nil
}

// RunAfterTool runs the after callbacks in order and stops at the first error
// or custom result.
func (c *Callbacks) RunAfterTool(ctx context.Context, args *AfterToolArgs) (*AfterToolResult, error) {
	for _, cb := range c.AfterTool {
		result, err := cb(ctx, args)
		if err != nil {
			return nil, err
		}
		if result == nil {
			continue
		}
		if result.Context != nil {
			ctx = result.Context
		}
		if result.CustomResult != nil {
			return &AfterToolResult{Context: ctx, CustomResult: result.CustomResult}, nil
		}
	}
	return &AfterToolResult{Context: ctx}, nil
}
