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
	"encoding/json"
	"fmt"

	"trpc.group/trpc-go/trpc-tool-go/log"
)

// Reviver rebuilds one kind of embedding tool from its persisted context.
// S is the runtime state shared by all tools revived for a request.
type Reviver[S any] interface {
	// Name is the tool name the reviver handles.
	Name() string
	// Revive decodes context with encoding/json and hands it to the tool's
	// factory. Any failure is reported as an InitError.
	Revive(state S, context json.RawMessage) (EmbeddingDyn, error)
}

// NewReviver returns a Reviver for the tool called name built by factory.
func NewReviver[S, A, O, C any](
	name string,
	factory func(state S, context C) (Embedding[A, O, C], error),
) Reviver[S] {
	return &reviver[S, A, O, C]{
		name:    name,
		factory: factory,
	}
}

type reviver[S, A, O, C any] struct {
	name    string
	factory InitFunc[S, C, Embedding[A, O, C]]
}

func (r *reviver[S, A, O, C]) Name() string {
	return r.name
}

func (r *reviver[S, A, O, C]) Revive(state S, context json.RawMessage) (EmbeddingDyn, error) {
	var c C
	if err := json.Unmarshal(context, &c); err != nil {
		return nil, &InitError{Tool: r.name, Err: fmt.Errorf("decode context: %w", err)}
	}
	t, err := r.factory(state, c)
	if err != nil {
		return nil, &InitError{Tool: r.name, Err: err}
	}
	if t.Name() != r.name {
		log.Warnf("tool: reviver %s built a tool named %s", r.name, t.Name())
	}
	return EraseEmbedding(t), nil
}

// ReviveAll rebuilds the tools described by entries and adds them to set as
// embedding entries. Nothing is added unless every entry revives.
func ReviveAll[S any](set *ToolSet, revivers []Reviver[S], state S, entries []IndexEntry) error {
	byName := make(map[string]Reviver[S], len(revivers))
	for _, r := range revivers {
		byName[r.Name()] = r
	}
	revived := make([]EmbeddingDyn, 0, len(entries))
	for _, e := range entries {
		r, ok := byName[e.Name]
		if !ok {
			return &NotFoundError{Name: e.Name}
		}
		t, err := r.Revive(state, e.Context)
		if err != nil {
			return err
		}
		revived = append(revived, t)
	}
	for _, t := range revived {
		set.AddDynamicTool(t)
	}
	return nil
}
