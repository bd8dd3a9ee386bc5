//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package tool lets an agent call typed Go functions through JSON.
//
// Authors implement Tool (and optionally Embedding) with their own argument
// and output types. Erase and EraseEmbedding hide those types behind Dyn and
// EmbeddingDyn, whose Call takes and returns JSON strings. A ToolSet keeps the
// erased tools by name and is what an orchestrator calls when a model asks
// for a function.
package tool

import "context"

// Tool is a function a model may call.
//
// A is decoded from the model's JSON arguments, O is encoded back to JSON.
// Call may be invoked concurrently; stateful tools synchronise themselves.
type Tool[A, O any] interface {
	// Name returns the unique name of the tool. It is normally a constant.
	Name() string
	// Definition describes the tool. prompt is the current user request and
	// may be used to tailor the description; it is empty for catalogs.
	Definition(ctx context.Context, prompt string) Definition
	// Call runs the tool. A returned error is reported as a CallError.
	Call(ctx context.Context, args A) (O, error)
}

// Embedding is a Tool that can be stored in a vector index and selected by
// similarity at request time.
//
// The tool's configuration is split in two. C (context) is serialisable and
// stored with the index; the runtime state S (clients, credentials) is handed
// to an InitFunc when the tool is rebuilt and is never persisted.
type Embedding[A, O, C any] interface {
	Tool[A, O]
	// EmbeddingDocs returns the texts the tool is indexed under. A tool may
	// be found from several directions; none means it is never retrieved.
	EmbeddingDocs() []string
	// Context returns the persisted configuration of the tool.
	Context() C
}

// InitFunc rebuilds a tool of type T from runtime state and the context that
// was stored with the index.
type InitFunc[S, C, T any] func(state S, context C) (T, error)
