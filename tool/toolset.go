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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	itelemetry "trpc.group/trpc-go/trpc-tool-go/internal/telemetry"
	"trpc.group/trpc-go/trpc-tool-go/log"
	"trpc.group/trpc-go/trpc-tool-go/telemetry/trace"
)

// ToolSet is a registry of tools keyed by name.
//
// Adding a tool whose name is already present replaces the old entry.
// A ToolSet is safe for concurrent use; no lock is held while a tool runs.
type ToolSet struct {
	mu    sync.RWMutex
	tools map[string]Entry
	opts  options
}

// NewToolSet creates an empty ToolSet.
func NewToolSet(opts ...Option) *ToolSet {
	return &ToolSet{
		tools: make(map[string]Entry),
		opts:  newOptions(opts...),
	}
}

// FromTools creates a ToolSet holding tools as simple entries. Later tools
// win on duplicate names.
func FromTools(tools ...Dyn) *ToolSet {
	s := NewToolSet()
	for _, t := range tools {
		s.AddTool(t)
	}
	return s
}

// Contains reports whether a tool is registered under name.
func (s *ToolSet) Contains(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.tools[name]
	return ok
}

// AddTool registers t as a simple entry. A nil t is ignored.
func (s *ToolSet) AddTool(t Dyn) {
	s.add(SimpleEntry(t))
}

// AddDynamicTool registers t as an embedding entry. A nil t is ignored.
func (s *ToolSet) AddDynamicTool(t EmbeddingDyn) {
	s.add(EmbeddingEntry(t))
}

func (s *ToolSet) add(e Entry) {
	if !e.Valid() {
		log.Warnf("tool: ignoring %s entry without a tool", e.Kind())
		return
	}
	name := e.Name()
	s.mu.Lock()
	s.tools[name] = e
	s.mu.Unlock()
}

// AddTools merges other into s. Entries of other replace those of s with the
// same name. other is left unchanged.
func (s *ToolSet) AddTools(other *ToolSet) {
	if other == nil || other == s {
		return
	}
	entries := other.Entries()
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range entries {
		s.tools[e.Name()] = e
	}
}

// Get returns the entry registered under name.
func (s *ToolSet) Get(name string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.tools[name]
	return e, ok
}

// Len returns the number of registered tools.
func (s *ToolSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tools)
}

// Names returns the registered names in ascending order.
func (s *ToolSet) Names() []string {
	s.mu.RLock()
	names := make([]string, 0, len(s.tools))
	for name := range s.tools {
		names = append(names, name)
	}
	s.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Entries returns a snapshot of the registered entries ordered by name.
func (s *ToolSet) Entries() []Entry {
	s.mu.RLock()
	names := make([]string, 0, len(s.tools))
	for name := range s.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, s.tools[name])
	}
	s.mu.RUnlock()
	return entries
}

// Call runs the tool registered under name with the JSON args and returns its
// JSON output.
//
// An unknown name yields a NotFoundError. Errors from the tool adapter
// (JSONError, CallError) are returned unchanged. The call ID is taken from
// ctx (see WithToolCallID) or generated.
func (s *ToolSet) Call(ctx context.Context, name, args string) (string, error) {
	callID, ok := ToolCallIDFromContext(ctx)
	if !ok {
		callID = uuid.NewString()
		ctx = WithToolCallID(ctx, callID)
	}
	ctx, span := trace.Tracer.Start(ctx, itelemetry.NewExecuteToolSpanName(name))
	defer span.End()

	start := time.Now()
	kind, out, err := s.call(ctx, name, args)
	itelemetry.TraceToolCall(span, itelemetry.ToolCall{
		Name:      name,
		Kind:      kind,
		CallID:    callID,
		Arguments: args,
		Result:    out,
		Error:     err,
	})
	itelemetry.ReportExecuteToolMetrics(ctx, itelemetry.ExecuteToolAttributes{
		ToolName: name,
		ToolKind: kind,
		Error:    err,
	}, time.Since(start))
	return out, err
}

func (s *ToolSet) call(ctx context.Context, name, args string) (string, string, error) {
	entry, ok := s.Get(name)
	if !ok {
		return "", "", &NotFoundError{Name: name}
	}
	kind := entry.Kind().String()
	if s.opts.callLogging {
		log.InfofContext(ctx, "Calling tool %s with args:\n%s", name, prettyJSON(args))
	}
	if s.opts.callbacks == nil {
		out, err := entry.Call(ctx, args)
		return kind, out, err
	}
	out, err := s.callWithCallbacks(ctx, entry, name, args)
	return kind, out, err
}

func (s *ToolSet) callWithCallbacks(ctx context.Context, entry Entry, name, args string) (string, error) {
	cb := s.opts.callbacks
	before := &BeforeToolArgs{ToolName: name, Kind: entry.Kind(), Arguments: args}
	res, err := cb.RunBeforeTool(ctx, before)
	if err != nil {
		return "", fmt.Errorf("tool %s: before callback: %w", name, err)
	}
	ctx = res.Context
	if res.CustomResult != nil {
		return *res.CustomResult, nil
	}

	out, callErr := entry.Call(ctx, before.Arguments)
	after, err := cb.RunAfterTool(ctx, &AfterToolArgs{
		ToolName:  name,
		Kind:      entry.Kind(),
		Arguments: before.Arguments,
		Result:    out,
		Error:     callErr,
	})
	if err != nil {
		return "", fmt.Errorf("tool %s: after callback: %w", name, err)
	}
	if after.CustomResult != nil {
		return *after.CustomResult, nil
	}
	return out, callErr
}

// Documents returns one Document per registered tool, ordered by ID. The
// definitions are fetched concurrently with an empty prompt. If any
// definition cannot be encoded no documents are returned.
func (s *ToolSet) Documents(ctx context.Context) ([]Document, error) {
	entries := s.Entries()
	docs := make([]Document, len(entries))
	errs := make([]error, len(entries))
	if err := s.run(len(entries), func(i int) {
		docs[i], errs[i] = newDocument(ctx, entries[i])
	}); err != nil {
		return nil, err
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return docs, nil
}

func newDocument(ctx context.Context, e Entry) (Document, error) {
	name := e.Name()
	def, err := json.MarshalIndent(e.Definition(ctx, ""), "", "  ")
	if err != nil {
		return Document{}, &JSONError{Tool: name, Op: "encode definition", Err: err}
	}
	return Document{
		ID:              name,
		Text:            fmt.Sprintf("Tool: %s\nDefinition: \n%s", name, def),
		AdditionalProps: map[string]string{},
	}, nil
}

// Filter returns a new ToolSet, with the options of s, holding the entries
// accepted by f.
func (s *ToolSet) Filter(ctx context.Context, f FilterFunc) *ToolSet {
	out := &ToolSet{tools: make(map[string]Entry), opts: s.opts}
	for _, e := range s.Entries() {
		if f == nil || f(ctx, e) {
			out.tools[e.Name()] = e
		}
	}
	return out
}

// prettyJSON indents s when it is valid JSON and returns it unchanged
// otherwise.
func prettyJSON(s string) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(s), "", "  "); err != nil {
		return s
	}
	return buf.String()
}
