//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package schema derives JSON schemas from Go types and uses them to decode
// tool arguments.
package schema

import (
	"encoding"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/google/jsonschema-go/jsonschema"

	"trpc.group/trpc-go/trpc-tool-go/log"
)

var (
	timeType        = reflect.TypeOf(time.Time{})
	rawMessageType  = reflect.TypeOf(json.RawMessage(nil))
	unmarshalerType = reflect.TypeOf((*json.Unmarshaler)(nil)).Elem()
	textType        = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// For returns the schema of T. Interface types yield an unconstrained schema.
func For[T any]() *jsonschema.Schema {
	return Generate(reflect.TypeOf((*T)(nil)).Elem())
}

// Generate returns the schema of t as advertised to a model.
//
// Struct fields follow encoding/json naming. A field is required when it is
// neither a pointer nor tagged omitempty/omitzero, or when it carries the
// jsonschema:"required" tag. Self referencing structs are emitted under $defs.
func Generate(t reflect.Type) *jsonschema.Schema {
	return generate(t, false)
}

func generate(t reflect.Type, nullable bool) *jsonschema.Schema {
	g := &generator{
		visited:  make(map[reflect.Type]string),
		defs:     make(map[string]*jsonschema.Schema),
		nullable: nullable,
	}
	s := g.schema(t, true)
	if len(g.defs) > 0 {
		s.Defs = g.defs
	}
	return s
}

// generator carries the state of one Generate call.
type generator struct {
	visited map[reflect.Type]string
	defs    map[string]*jsonschema.Schema
	// nullable admits JSON null wherever encoding/json would accept it for a
	// pointer. Only the argument decoder turns it on.
	nullable bool
}

func (g *generator) schema(t reflect.Type, root bool) *jsonschema.Schema {
	if t.Kind() == reflect.Pointer {
		inner := g.schema(t.Elem(), root)
		if !g.nullable || isUnconstrained(inner) || isNullable(inner) {
			return inner
		}
		return &jsonschema.Schema{AnyOf: []*jsonschema.Schema{{Type: "null"}, inner}}
	}

	switch {
	case t == timeType:
		return &jsonschema.Schema{Type: "string", Format: "date-time"}
	case t == rawMessageType:
		return &jsonschema.Schema{}
	case t.Kind() != reflect.Interface && reflect.PointerTo(t).Implements(unmarshalerType):
		// Custom decoders define their own wire shape.
		return &jsonschema.Schema{}
	case t.Kind() != reflect.Interface && reflect.PointerTo(t).Implements(textType):
		// encoding/json decodes text unmarshalers from JSON strings.
		return &jsonschema.Schema{Type: "string"}
	}

	switch t.Kind() {
	case reflect.String:
		return &jsonschema.Schema{Type: "string"}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &jsonschema.Schema{Type: "integer"}
	case reflect.Float32, reflect.Float64:
		return &jsonschema.Schema{Type: "number"}
	case reflect.Bool:
		return &jsonschema.Schema{Type: "boolean"}
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			// encoding/json writes []byte as base64.
			return g.orNull(&jsonschema.Schema{Type: "string"})
		}
		return g.orNull(&jsonschema.Schema{Type: "array", Items: g.schema(t.Elem(), false)})
	case reflect.Array:
		return &jsonschema.Schema{Type: "array", Items: g.schema(t.Elem(), false)}
	case reflect.Map:
		return g.orNull(&jsonschema.Schema{Type: "object", AdditionalProperties: g.schema(t.Elem(), false)})
	case reflect.Struct:
		return g.structSchema(t, root)
	default:
		// interface, func, chan: nothing useful to constrain.
		return &jsonschema.Schema{}
	}
}

func (g *generator) structSchema(t reflect.Type, root bool) *jsonschema.Schema {
	if name, ok := g.visited[t]; ok {
		return &jsonschema.Schema{Ref: "#/$defs/" + name}
	}

	recursive := hasRecursiveFields(t)
	var name string
	if recursive {
		name = g.defName(t)
		g.visited[t] = name
	}

	s := &jsonschema.Schema{Type: "object", Properties: make(map[string]*jsonschema.Schema)}
	g.addFields(t, s)
	if !recursive {
		return s
	}

	g.defs[name] = s
	if root {
		// The root keeps its own body; a copy avoids the root listing itself
		// under its own $defs.
		cp := *s
		return &cp
	}
	return &jsonschema.Schema{Ref: "#/$defs/" + name}
}

func (g *generator) addFields(t reflect.Type, s *jsonschema.Schema) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "-" {
			continue
		}
		fieldName, opts, _ := strings.Cut(jsonTag, ",")

		if field.Anonymous && fieldName == "" {
			ft := field.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				// encoding/json promotes the fields of embedded structs.
				g.addFields(ft, s)
				continue
			}
		}
		if !field.IsExported() {
			continue
		}
		if fieldName == "" {
			fieldName = field.Name
		}

		fieldSchema := g.schema(field.Type, false)
		target := fieldSchema
		if isNullable(target) {
			target = target.AnyOf[1]
		}
		requiredByTag := false
		if target.Ref == "" {
			var err error
			requiredByTag, err = applyTag(field.Type, field.Tag, target)
			if err != nil {
				log.Warnf("schema: field %s.%s: %v", t.Name(), field.Name, err)
			}
		}

		omit := strings.Contains(opts, "omitempty") || strings.Contains(opts, "omitzero")
		if (field.Type.Kind() != reflect.Pointer && !omit) || requiredByTag {
			s.Required = append(s.Required, fieldName)
		}
		s.Properties[fieldName] = fieldSchema
	}
}

// defName picks a $defs key for t that is not yet taken by another type.
func (g *generator) defName(t reflect.Type) string {
	base := "anonymousStruct"
	if t.Name() != "" {
		base = strings.ToLower(t.Name())
	}
	name := base
	for n := 2; ; n++ {
		if _, taken := g.defs[name]; !taken && !g.nameVisited(name) {
			return name
		}
		name = base + strconv.Itoa(n)
	}
}

func (g *generator) nameVisited(name string) bool {
	for _, v := range g.visited {
		if v == name {
			return true
		}
	}
	return false
}

// orNull admits JSON null next to s in nullable mode. encoding/json decodes
// null into a nil slice or map.
func (g *generator) orNull(s *jsonschema.Schema) *jsonschema.Schema {
	if !g.nullable {
		return s
	}
	return &jsonschema.Schema{AnyOf: []*jsonschema.Schema{{Type: "null"}, s}}
}

// isNullable reports whether s is the null-or-inner wrapper built in
// nullable mode.
func isNullable(s *jsonschema.Schema) bool {
	return len(s.AnyOf) == 2 && s.AnyOf[0].Type == "null"
}

func isUnconstrained(s *jsonschema.Schema) bool {
	return s.Type == "" && s.Ref == "" && s.AnyOf == nil && len(s.Types) == 0
}

// hasRecursiveFields reports whether t can reach itself through its fields.
func hasRecursiveFields(t reflect.Type) bool {
	return checkRecursion(t, t, make(map[reflect.Type]bool))
}

func checkRecursion(target, current reflect.Type, visited map[reflect.Type]bool) bool {
	if visited[current] {
		return false
	}
	visited[current] = true

	var next []reflect.Type
	switch current.Kind() {
	case reflect.Struct:
		for i := 0; i < current.NumField(); i++ {
			next = append(next, current.Field(i).Type)
		}
	case reflect.Slice, reflect.Array, reflect.Pointer, reflect.Map:
		next = append(next, current.Elem())
	}

	for _, ft := range next {
		for ft.Kind() == reflect.Pointer || ft.Kind() == reflect.Slice ||
			ft.Kind() == reflect.Array || ft.Kind() == reflect.Map {
			ft = ft.Elem()
		}
		if ft == target {
			return true
		}
		if ft.Kind() == reflect.Struct && checkRecursion(target, ft, visited) {
			return true
		}
	}
	return false
}

// applyTag applies the jsonschema struct tag to s and reports whether the tag
// marks the field as required.
//
// Supported items:
//   - description=text
//   - enum=value (repeatable; parsed according to the field kind)
//   - required
func applyTag(fieldType reflect.Type, tag reflect.StructTag, s *jsonschema.Schema) (bool, error) {
	raw := tag.Get("jsonschema")
	if raw == "" {
		return false, nil
	}
	for fieldType.Kind() == reflect.Pointer {
		fieldType = fieldType.Elem()
	}

	required := false
	for _, item := range strings.Split(raw, ",") {
		key, value, hasValue := strings.Cut(item, "=")
		if !hasValue {
			if key == "required" {
				required = true
			}
			continue
		}
		switch key {
		case "description":
			s.Description = value
		case "enum":
			v, err := parseEnum(fieldType, value)
			if err != nil {
				return required, err
			}
			s.Enum = append(s.Enum, v)
		}
	}
	return required, nil
}

// parseEnum converts an enum literal to the JSON value it stands for.
// Numbers become float64 so they compare equal to decoded instances.
func parseEnum(t reflect.Type, value string) (any, error) {
	switch t.Kind() {
	case reflect.String:
		return value, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse enum value %q as integer: %w", value, err)
		}
		return float64(v), nil
	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("parse enum value %q as number: %w", value, err)
		}
		return v, nil
	case reflect.Bool:
		v, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("parse enum value %q as bool: %w", value, err)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("enum tag unsupported for field type %v", t)
	}
}
