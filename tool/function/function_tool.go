//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package function wraps plain Go functions as tools.
package function

import (
	"context"
	"encoding/json"

	"trpc.group/trpc-go/trpc-tool-go/log"
	"trpc.group/trpc-go/trpc-tool-go/tool"
)

// FunctionTool is a tool.Tool backed by a func(context.Context, I) (O, error).
// The advertised parameters are the JSON schema of I unless replaced with
// WithInputSchema.
type FunctionTool[I, O any] struct {
	name         string
	description  string
	inputSchema  *tool.Schema
	outputSchema *tool.Schema
	parameters   json.RawMessage
	fn           func(context.Context, I) (O, error)
}

var _ tool.Tool[struct{}, struct{}] = (*FunctionTool[struct{}, struct{}])(nil)

// Option is a function that configures a FunctionTool.
type Option func(*functionToolOptions)

type functionToolOptions struct {
	name         string
	description  string
	inputSchema  *tool.Schema
	outputSchema *tool.Schema
}

// WithName sets the name of the function tool.
//
// Note: Tool names must comply with LLM API requirements for compatibility.
// Some APIs (e.g., Kimi, DeepSeek) enforce strict naming patterns:
// - Must match pattern: ^[a-zA-Z0-9_-]+$
// - Cannot contain Chinese characters, parentheses, or special symbols
func WithName(name string) Option {
	return func(opts *functionToolOptions) {
		opts.name = name
	}
}

// WithDescription sets the description of the function tool.
func WithDescription(description string) Option {
	return func(opts *functionToolOptions) {
		opts.description = description
	}
}

// WithInputSchema sets a custom input schema for the function tool.
// When provided, the automatic schema generation will be skipped.
// Arguments are still decoded and validated against I.
func WithInputSchema(schema *tool.Schema) Option {
	return func(opts *functionToolOptions) {
		opts.inputSchema = schema
	}
}

// WithOutputSchema sets a custom output schema for the function tool.
func WithOutputSchema(schema *tool.Schema) Option {
	return func(opts *functionToolOptions) {
		opts.outputSchema = schema
	}
}

// NewFunctionTool creates a FunctionTool calling fn.
func NewFunctionTool[I, O any](fn func(context.Context, I) (O, error), opts ...Option) *FunctionTool[I, O] {
	options := &functionToolOptions{}
	for _, opt := range opts {
		opt(options)
	}
	if options.name == "" {
		log.Warnf("FunctionTool: name is empty")
	}
	if options.description == "" {
		log.Warnf("FunctionTool: description is empty")
	}

	iSchema := options.inputSchema
	if iSchema == nil {
		iSchema = tool.SchemaFor[I]()
	}
	oSchema := options.outputSchema
	if oSchema == nil {
		oSchema = tool.SchemaFor[O]()
	}

	params, err := json.Marshal(iSchema)
	if err != nil {
		log.Warnf("FunctionTool %s: encode input schema: %v", options.name, err)
		params = []byte(`{"type":"object","properties":{}}`)
	}

	return &FunctionTool[I, O]{
		name:         options.name,
		description:  options.description,
		inputSchema:  iSchema,
		outputSchema: oSchema,
		parameters:   params,
		fn:           fn,
	}
}

// Name returns the tool name.
func (ft *FunctionTool[I, O]) Name() string {
	return ft.name
}

// Definition returns the name, description and input schema of the tool.
// The prompt is not used.
func (ft *FunctionTool[I, O]) Definition(_ context.Context, _ string) tool.Definition {
	return tool.Definition{
		Name:        ft.name,
		Description: ft.description,
		Parameters:  ft.parameters,
	}
}

// Call runs the wrapped function.
func (ft *FunctionTool[I, O]) Call(ctx context.Context, input I) (O, error) {
	return ft.fn(ctx, input)
}

// InputSchema returns the schema advertised for I.
func (ft *FunctionTool[I, O]) InputSchema() *tool.Schema {
	return ft.inputSchema
}

// OutputSchema returns the schema of O.
func (ft *FunctionTool[I, O]) OutputSchema() *tool.Schema {
	return ft.outputSchema
}

// Erase returns the tool as a tool.Dyn ready for a ToolSet.
func (ft *FunctionTool[I, O]) Erase() tool.Dyn {
	return tool.Erase[I, O](ft)
}
