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
	"fmt"
)

// Kind tells which variant an Entry holds.
type Kind int

const (
	// KindSimple is a tool that is always offered to the model.
	KindSimple Kind = iota
	// KindEmbedding is a tool selected by similarity from a vector index.
	KindEmbedding
)

func (k Kind) String() string {
	switch k {
	case KindSimple:
		return "simple"
	case KindEmbedding:
		return "embedding"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Entry is a registered tool: exactly one of a simple Dyn or an
// EmbeddingDyn. Name, Definition and Call work the same for both.
//
// The zero Entry, and an Entry wrapping a nil tool, hold no tool. Their Name,
// Definition and Call panic; a ToolSet never stores them.
type Entry struct {
	kind      Kind
	simple    Dyn
	embedding EmbeddingDyn
}

// SimpleEntry wraps t as a simple entry.
func SimpleEntry(t Dyn) Entry {
	return Entry{kind: KindSimple, simple: t}
}

// EmbeddingEntry wraps t as an embedding entry.
func EmbeddingEntry(t EmbeddingDyn) Entry {
	return Entry{kind: KindEmbedding, embedding: t}
}

// Kind returns the variant held by e.
func (e Entry) Kind() Kind {
	return e.kind
}

// Tool returns the held tool as a Dyn, whatever its variant.
func (e Entry) Tool() Dyn {
	switch e.kind {
	case KindEmbedding:
		return e.embedding
	default:
		return e.simple
	}
}

// Embedding returns the held tool when e is an embedding entry.
func (e Entry) Embedding() (EmbeddingDyn, bool) {
	if e.kind != KindEmbedding {
		return nil, false
	}
	return e.embedding, true
}

// Valid reports whether e holds a tool.
func (e Entry) Valid() bool {
	return e.Tool() != nil
}

// Name returns the held tool's name.
func (e Entry) Name() string {
	return e.Tool().Name()
}

// Definition returns the held tool's definition.
func (e Entry) Definition(ctx context.Context, prompt string) Definition {
	return e.Tool().Definition(ctx, prompt)
}

// Call invokes the held tool.
func (e Entry) Call(ctx context.Context, args string) (string, error) {
	return e.Tool().Call(ctx, args)
}
