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
	"encoding/json"

	"trpc.group/trpc-go/trpc-tool-go/internal/schema"
)

// Dyn is a Tool with its argument and output types erased to JSON strings.
// Values of different Tool types can be stored side by side as Dyn.
type Dyn interface {
	Name() string
	Definition(ctx context.Context, prompt string) Definition
	// Call decodes args into the tool's argument type, runs the tool and
	// encodes its output. Malformed args or an unencodable output yield a
	// JSONError; a failing tool yields a CallError.
	Call(ctx context.Context, args string) (string, error)
}

// EmbeddingDyn is the erased form of Embedding.
type EmbeddingDyn interface {
	Dyn
	// Context returns the JSON encoding of the tool's context.
	Context() (json.RawMessage, error)
	EmbeddingDocs() []string
}

// Erase wraps t as a Dyn.
func Erase[A, O any](t Tool[A, O]) Dyn {
	return newErased(t)
}

// EraseEmbedding wraps t as an EmbeddingDyn.
func EraseEmbedding[A, O, C any](t Embedding[A, O, C]) EmbeddingDyn {
	return &erasedEmbedding[A, O, C]{
		erased:    newErased[A, O](t),
		embedding: t,
	}
}

type erased[A, O any] struct {
	tool Tool[A, O]
	args *schema.Decoder[A]
}

func newErased[A, O any](t Tool[A, O]) *erased[A, O] {
	return &erased[A, O]{tool: t, args: schema.NewDecoder[A]()}
}

func (e *erased[A, O]) Name() string {
	return e.tool.Name()
}

func (e *erased[A, O]) Definition(ctx context.Context, prompt string) Definition {
	return e.tool.Definition(ctx, prompt)
}

func (e *erased[A, O]) Call(ctx context.Context, args string) (string, error) {
	name := e.tool.Name()
	a, err := e.args.Decode([]byte(args))
	if err != nil {
		return "", &JSONError{Tool: name, Op: "decode arguments", Err: err}
	}
	out, err := e.tool.Call(ctx, a)
	if err != nil {
		return "", &CallError{Tool: name, Err: err}
	}
	b, err := json.Marshal(out)
	if err != nil {
		return "", &JSONError{Tool: name, Op: "encode output", Err: err}
	}
	return string(b), nil
}

type erasedEmbedding[A, O, C any] struct {
	*erased[A, O]
	embedding Embedding[A, O, C]
}

func (e *erasedEmbedding[A, O, C]) Context() (json.RawMessage, error) {
	b, err := json.Marshal(e.embedding.Context())
	if err != nil {
		return nil, &JSONError{Tool: e.embedding.Name(), Op: "encode context", Err: err}
	}
	return b, nil
}

func (e *erasedEmbedding[A, O, C]) EmbeddingDocs() []string {
	return e.embedding.EmbeddingDocs()
}
