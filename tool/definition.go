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

	"github.com/google/jsonschema-go/jsonschema"

	"trpc.group/trpc-go/trpc-tool-go/internal/schema"
)

// Schema is a JSON schema document.
type Schema = jsonschema.Schema

// emptyParameters is used when a tool takes no arguments.
var emptyParameters = json.RawMessage(`{"type":"object","properties":{}}`)

// Definition describes a tool to a model: its name, what it does and the JSON
// schema of its arguments.
//
// Note: Some providers only accept names matching ^[a-zA-Z0-9_-]+$.
type Definition struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	// Parameters is any JSON value, normally a JSON schema object following
	// the target provider's function calling convention.
	Parameters json.RawMessage `json:"parameters"`
}

// NewDefinition builds a Definition. parameters may be a json.RawMessage, a
// *Schema or any value that encodes to the desired JSON. A nil parameters
// value yields an empty object schema. Parameters are stored in the form
// json.Marshal emits, so a Definition survives an encode/decode round trip.
func NewDefinition(name, description string, parameters any) (Definition, error) {
	def := Definition{Name: name, Description: description}
	switch p := parameters.(type) {
	case nil:
		def.Parameters = emptyParameters
	default:
		b, err := json.Marshal(p)
		if err != nil {
			return Definition{}, &JSONError{Tool: name, Op: "encode parameters", Err: err}
		}
		def.Parameters = b
	}
	return def, nil
}

// MustDefinition is like NewDefinition but panics on error. It is meant for
// package level tool tables.
func MustDefinition(name, description string, parameters any) Definition {
	def, err := NewDefinition(name, description, parameters)
	if err != nil {
		panic(err)
	}
	return def
}

// SchemaFor returns the JSON schema that T decodes from.
func SchemaFor[T any]() *Schema {
	return schema.For[T]()
}

// Document is a catalog entry describing one tool in prose, suitable for a
// static context block in a prompt.
type Document struct {
	ID              string            `json:"id"`
	Text            string            `json:"text"`
	AdditionalProps map[string]string `json:"additional_props,omitempty"`
}
