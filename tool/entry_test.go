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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "simple", KindSimple.String())
	assert.Equal(t, "embedding", KindEmbedding.String())
	assert.Equal(t, "Kind(7)", Kind(7).String())
}

func TestEntryDispatch(t *testing.T) {
	simple := SimpleEntry(Erase[operationArgs, int](subtractor{}))
	assert.Equal(t, KindSimple, simple.Kind())
	assert.Equal(t, "subtract", simple.Name())
	assert.Equal(t, "Subtract y from x (i.e.: x - y)", simple.Definition(context.Background(), "").Description)
	_, ok := simple.Embedding()
	assert.False(t, ok)
	out, err := simple.Call(context.Background(), `{"x":5,"y":2}`)
	require.NoError(t, err)
	assert.Equal(t, "3", out)

	w, err := newWeatherTool(
		weatherState{Temperatures: map[string]float64{"Paris": 18}},
		weatherContext{Region: "europe", Units: "celsius"},
	)
	require.NoError(t, err)
	embedding := EmbeddingEntry(EraseEmbedding[weatherArgs, weatherReport, weatherContext](w))
	assert.Equal(t, KindEmbedding, embedding.Kind())
	assert.Equal(t, "weather", embedding.Name())
	assert.Equal(t, "Current temperature in europe for: rain?",
		embedding.Definition(context.Background(), "rain?").Description)

	dyn, ok := embedding.Embedding()
	require.True(t, ok)
	assert.Equal(t, []string{"weather forecast", "temperature in europe"}, dyn.EmbeddingDocs())
	assert.Same(t, dyn, embedding.Tool())

	out, err = embedding.Call(context.Background(), `{"city":"Paris"}`)
	require.NoError(t, err)
	assert.JSONEq(t, `{"city":"Paris","temp":18,"units":"celsius"}`, out)
}

func TestEntryWithoutTool(t *testing.T) {
	assert.False(t, Entry{}.Valid())
	assert.False(t, SimpleEntry(nil).Valid())
	assert.False(t, EmbeddingEntry(nil).Valid())
	assert.True(t, SimpleEntry(Erase[operationArgs, int](subtractor{})).Valid())

	set := NewToolSet()
	assert.NotPanics(t, func() {
		set.AddTool(nil)
		set.AddDynamicTool(nil)
		set.AddTools(NewBuilder().StaticTool(nil).DynamicTool(nil).Build())
	})
	assert.Zero(t, set.Len())
}

func TestEraseEmbeddingContext(t *testing.T) {
	w, err := newWeatherTool(weatherState{}, weatherContext{Region: "asia", Units: "fahrenheit"})
	require.NoError(t, err)
	dyn := EraseEmbedding[weatherArgs, weatherReport, weatherContext](w)

	raw, err := dyn.Context()
	require.NoError(t, err)
	assert.JSONEq(t, `{"region":"asia","units":"fahrenheit"}`, string(raw))

	broken := EraseEmbedding[operationArgs, int, func()](unencodableContext{})
	_, err = broken.Context()
	var jsonErr *JSONError
	require.ErrorAs(t, err, &jsonErr)
	assert.Equal(t, "encode context", jsonErr.Op)
}
