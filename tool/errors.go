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
	"errors"
	"fmt"
)

// Sentinels matched by the typed errors below through errors.Is.
var (
	// ErrJSON reports malformed arguments or an unserialisable output/context.
	ErrJSON = errors.New("json error")
	// ErrToolCall reports a failure returned by the tool itself.
	ErrToolCall = errors.New("tool call error")
	// ErrToolNotFound reports a call to a name that is not registered.
	ErrToolNotFound = errors.New("tool not found")
	// ErrInit reports that a tool could not be rebuilt from persisted context.
	ErrInit = errors.New("tool init error")
)

// JSONError is returned when arguments cannot be decoded into the tool's
// argument type, or when its output or context cannot be encoded.
// The tool body is never run when argument decoding fails.
type JSONError struct {
	Tool string
	// Op names the step that failed, e.g. "decode arguments".
	Op  string
	Err error
}

func (e *JSONError) Error() string {
	return fmt.Sprintf("tool %s: %s: %v", e.Tool, e.Op, e.Err)
}

// Unwrap returns the underlying encoding/json or validation error.
func (e *JSONError) Unwrap() error { return e.Err }

// Is reports whether target is ErrJSON.
func (e *JSONError) Is(target error) bool { return target == ErrJSON }

// ErrorType is used as the error.type telemetry attribute.
func (e *JSONError) ErrorType() string { return "json_error" }

// CallError wraps the error returned by a tool's Call. The original error is
// kept as the cause and is reachable with errors.As.
type CallError struct {
	Tool string
	Err  error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("tool %s: call: %v", e.Tool, e.Err)
}

// Unwrap returns the tool's own error.
func (e *CallError) Unwrap() error { return e.Err }

// Is reports whether target is ErrToolCall.
func (e *CallError) Is(target error) bool { return target == ErrToolCall }

// ErrorType is used as the error.type telemetry attribute.
func (e *CallError) ErrorType() string { return "tool_call_error" }

// NotFoundError is returned when no tool is registered under Name.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("tool not found: %s", e.Name)
}

// Is reports whether target is ErrToolNotFound.
func (e *NotFoundError) Is(target error) bool { return target == ErrToolNotFound }

// ErrorType is used as the error.type telemetry attribute.
func (e *NotFoundError) ErrorType() string { return "tool_not_found" }

// InitError is returned when an embedding tool cannot be revived from its
// persisted context. It never comes out of a Call.
type InitError struct {
	Tool string
	Err  error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("tool %s: init: %v", e.Tool, e.Err)
}

// Unwrap returns the decoding error or the error returned by the factory.
func (e *InitError) Unwrap() error { return e.Err }

// Is reports whether target is ErrInit.
func (e *InitError) Is(target error) bool { return target == ErrInit }

// ErrorType is used as the error.type telemetry attribute.
func (e *InitError) ErrorType() string { return "init_error" }
