//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package schema

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/google/jsonschema-go/jsonschema"

	"trpc.group/trpc-go/trpc-tool-go/log"
)

// Decoder decodes JSON into T after checking it against the schema of T.
//
// encoding/json alone accepts objects with missing fields and leaves them at
// their zero value; Decoder rejects them when the field is required.
type Decoder[T any] struct {
	resolved *jsonschema.Resolved
}

// NewDecoder builds a Decoder for T. If the schema of T cannot be resolved
// the decoder degrades to plain json.Unmarshal.
func NewDecoder[T any]() *Decoder[T] {
	t := reflect.TypeOf((*T)(nil)).Elem()
	resolved, err := generate(t, true).Resolve(nil)
	if err != nil {
		log.Warnf("schema: argument validation disabled for %v: %v", t, err)
		return &Decoder[T]{}
	}
	return &Decoder[T]{resolved: resolved}
}

// Decode parses data into a T. It fails on malformed JSON, on a schema
// violation and on any json.Unmarshal error.
func (d *Decoder[T]) Decode(data []byte) (T, error) {
	var zero T
	if d.resolved != nil {
		var instance any
		if err := json.Unmarshal(data, &instance); err != nil {
			return zero, err
		}
		if err := d.resolved.Validate(instance); err != nil {
			return zero, fmt.Errorf("validate: %w", err)
		}
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return zero, err
	}
	return v, nil
}
