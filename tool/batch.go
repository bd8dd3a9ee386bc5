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

	"github.com/google/uuid"
)

// Invocation is one tool call requested by a model.
type Invocation struct {
	// ID is the model's call ID. An empty ID is replaced by a UUID.
	ID   string
	Name string
	Args string
}

// Result is the outcome of an Invocation.
type Result struct {
	ID     string
	Name   string
	Output string
	Err    error
}

// CallAll runs calls concurrently and returns their results in input order.
// Every result carries its own error; CallAll never fails as a whole.
func (s *ToolSet) CallAll(ctx context.Context, calls []Invocation) []Result {
	results := make([]Result, len(calls))
	for i, c := range calls {
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		results[i] = Result{ID: c.ID, Name: c.Name}
	}
	err := s.run(len(calls), func(i int) {
		r := &results[i]
		r.Output, r.Err = s.Call(WithToolCallID(ctx, r.ID), r.Name, calls[i].Args)
	})
	if err != nil {
		for i := range results {
			if results[i].Output == "" && results[i].Err == nil {
				results[i].Err = err
			}
		}
	}
	return results
}
