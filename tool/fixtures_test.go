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
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"trpc.group/trpc-go/trpc-tool-go/log"
)

type operationArgs struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func operationParameters(verb string) json.RawMessage {
	return json.RawMessage(fmt.Sprintf(`{
		"type": "object",
		"properties": {
			"x": {"type": "number", "description": "The first number to %[1]s"},
			"y": {"type": "number", "description": "The second number to %[1]s"}
		}
	}`, verb))
}

type adder struct {
	calls atomic.Int32
}

func (*adder) Name() string { return "add" }

func (*adder) Definition(context.Context, string) Definition {
	return MustDefinition("add", "Add x and y together", operationParameters("add"))
}

func (a *adder) Call(_ context.Context, args operationArgs) (int, error) {
	a.calls.Add(1)
	return args.X + args.Y, nil
}

type subtractor struct{}

func (subtractor) Name() string { return "subtract" }

func (subtractor) Definition(context.Context, string) Definition {
	return MustDefinition("subtract", "Subtract y from x (i.e.: x - y)", operationParameters("subtract"))
}

func (subtractor) Call(_ context.Context, args operationArgs) (int, error) {
	return args.X - args.Y, nil
}

var errMath = errors.New("math error")

type divider struct{}

func (divider) Name() string { return "divide" }

func (divider) Definition(context.Context, string) Definition {
	return MustDefinition("divide", "Divide x by y", operationParameters("divide"))
}

func (divider) Call(_ context.Context, args operationArgs) (int, error) {
	if args.Y == 0 {
		return 0, errMath
	}
	return args.X / args.Y, nil
}

// describedTool has a fixed name and description, used for collision tests.
type describedTool struct {
	name, description string
}

func (d describedTool) Name() string { return d.name }

func (d describedTool) Definition(context.Context, string) Definition {
	return Definition{Name: d.name, Description: d.description, Parameters: emptyParameters}
}

func (d describedTool) Call(context.Context, struct{}) (string, error) {
	return d.description, nil
}

// brokenDefinition advertises parameters that are not valid JSON.
type brokenDefinition struct{}

func (brokenDefinition) Name() string { return "broken" }

func (brokenDefinition) Definition(context.Context, string) Definition {
	return Definition{Name: "broken", Parameters: json.RawMessage(`{"type":`)}
}

func (brokenDefinition) Call(context.Context, struct{}) (int, error) { return 0, nil }

// channelTool returns a value encoding/json cannot encode.
type channelTool struct{}

func (channelTool) Name() string { return "channel" }

func (channelTool) Definition(context.Context, string) Definition {
	return MustDefinition("channel", "Returns a channel", nil)
}

func (channelTool) Call(context.Context, struct{}) (chan int, error) {
	return make(chan int), nil
}

// callIDTool echoes the call ID found in its context.
type callIDTool struct{}

func (callIDTool) Name() string { return "call_id" }

func (callIDTool) Definition(context.Context, string) Definition {
	return MustDefinition("call_id", "Echo the call ID", nil)
}

func (callIDTool) Call(ctx context.Context, _ struct{}) (string, error) {
	id, _ := ToolCallIDFromContext(ctx)
	return id, nil
}

type weatherArgs struct {
	City string `json:"city"`
}

type weatherContext struct {
	Region string `json:"region"`
	Units  string `json:"units"`
}

type weatherState struct {
	Temperatures map[string]float64
}

type weatherReport struct {
	City  string  `json:"city"`
	Temp  float64 `json:"temp"`
	Units string  `json:"units"`
}

type weatherTool struct {
	ctx   weatherContext
	state weatherState
}

func newWeatherTool(state weatherState, ctx weatherContext) (*weatherTool, error) {
	if ctx.Units != "celsius" && ctx.Units != "fahrenheit" {
		return nil, fmt.Errorf("unsupported units %q", ctx.Units)
	}
	return &weatherTool{ctx: ctx, state: state}, nil
}

func (*weatherTool) Name() string { return "weather" }

func (w *weatherTool) Definition(_ context.Context, prompt string) Definition {
	desc := "Current temperature in " + w.ctx.Region
	if prompt != "" {
		desc += " for: " + prompt
	}
	return MustDefinition("weather", desc, SchemaFor[weatherArgs]())
}

func (w *weatherTool) Call(_ context.Context, args weatherArgs) (weatherReport, error) {
	temp, ok := w.state.Temperatures[args.City]
	if !ok {
		return weatherReport{}, fmt.Errorf("no reading for %s", args.City)
	}
	return weatherReport{City: args.City, Temp: temp, Units: w.ctx.Units}, nil
}

func (w *weatherTool) EmbeddingDocs() []string {
	return []string{"weather forecast", "temperature in " + w.ctx.Region}
}

func (w *weatherTool) Context() weatherContext { return w.ctx }

// unencodableContext is an embedding tool whose context cannot be encoded.
type unencodableContext struct{ subtractor }

func (unencodableContext) EmbeddingDocs() []string { return []string{"broken"} }

func (unencodableContext) Context() func() { return func() {} }

func calculatorSet(opts ...Option) *ToolSet {
	s := NewToolSet(opts...)
	s.AddTool(Erase[operationArgs, int](&adder{}))
	s.AddTool(Erase[operationArgs, int](subtractor{}))
	return s
}

// captureLogs records the info lines logged through log.InfofContext.
func captureLogs() (lines func() []string, restore func()) {
	var (
		mu  sync.Mutex
		out []string
	)
	orig := log.InfofContext
	log.InfofContext = func(_ context.Context, format string, args ...any) {
		mu.Lock()
		defer mu.Unlock()
		out = append(out, fmt.Sprintf(format, args...))
	}
	return func() []string {
			mu.Lock()
			defer mu.Unlock()
			return append([]string(nil), out...)
		}, func() {
			log.InfofContext = orig
		}
}
