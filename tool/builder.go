//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package tool

// Builder collects tools and builds a ToolSet from them.
type Builder struct {
	entries []Entry
	opts    []Option
}

// NewBuilder creates an empty Builder. opts are passed to the built ToolSet.
func NewBuilder(opts ...Option) *Builder {
	return &Builder{opts: opts}
}

// StaticTool adds t as a simple entry.
func (b *Builder) StaticTool(t Dyn) *Builder {
	b.entries = append(b.entries, SimpleEntry(t))
	return b
}

// DynamicTool adds t as an embedding entry.
func (b *Builder) DynamicTool(t EmbeddingDyn) *Builder {
	b.entries = append(b.entries, EmbeddingEntry(t))
	return b
}

// Build returns a ToolSet holding the added tools. Tools are inserted in the
// order they were added, so a later tool replaces an earlier one with the
// same name.
func (b *Builder) Build() *ToolSet {
	s := NewToolSet(b.opts...)
	for _, e := range b.entries {
		s.add(e)
	}
	return s
}
