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
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// FilterFunc decides whether an entry is kept by ToolSet.Filter.
type FilterFunc func(ctx context.Context, entry Entry) bool

// NewIncludeToolNamesFilter creates a FilterFunc that includes only the specified tool names.
func NewIncludeToolNamesFilter(names ...string) FilterFunc {
	allowedNames := make(map[string]struct{}, len(names))
	for _, name := range names {
		allowedNames[name] = struct{}{}
	}
	return func(ctx context.Context, entry Entry) bool {
		_, isAllowed := allowedNames[entry.Name()]
		return isAllowed
	}
}

// NewExcludeToolNamesFilter creates a FilterFunc that excludes the specified tool names.
func NewExcludeToolNamesFilter(names ...string) FilterFunc {
	excludedNames := make(map[string]struct{}, len(names))
	for _, name := range names {
		excludedNames[name] = struct{}{}
	}
	return func(ctx context.Context, entry Entry) bool {
		_, isExcluded := excludedNames[entry.Name()]
		return !isExcluded
	}
}

// NewGlobFilter creates a FilterFunc keeping tools whose name matches any of
// patterns, e.g. "weather_*" or "{add,subtract}".
func NewGlobFilter(patterns ...string) (FilterFunc, error) {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid tool name pattern %q", p)
		}
	}
	return func(ctx context.Context, entry Entry) bool {
		name := entry.Name()
		for _, p := range patterns {
			// Patterns were validated above.
			if ok, _ := doublestar.Match(p, name); ok {
				return true
			}
		}
		return false
	}, nil
}

// KindFilter creates a FilterFunc keeping entries of the given kind.
func KindFilter(kind Kind) FilterFunc {
	return func(ctx context.Context, entry Entry) bool {
		return entry.Kind() == kind
	}
}
