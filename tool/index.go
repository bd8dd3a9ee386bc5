//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package tool

import "encoding/json"

// IndexEntry is what a vector store keeps for one embedding tool: the texts
// to embed and the context needed to rebuild the tool with a Reviver.
type IndexEntry struct {
	Name          string          `json:"name"`
	Context       json.RawMessage `json:"context"`
	EmbeddingDocs []string        `json:"embedding_docs"`
}

// NewIndexEntry builds the IndexEntry of t.
func NewIndexEntry(t EmbeddingDyn) (IndexEntry, error) {
	ctx, err := t.Context()
	if err != nil {
		return IndexEntry{}, err
	}
	return IndexEntry{
		Name:          t.Name(),
		Context:       ctx,
		EmbeddingDocs: t.EmbeddingDocs(),
	}, nil
}

// IndexEntries returns the IndexEntry of every embedding entry, ordered by
// name. Simple entries are skipped.
func (s *ToolSet) IndexEntries() ([]IndexEntry, error) {
	var out []IndexEntry
	for _, e := range s.Entries() {
		t, ok := e.Embedding()
		if !ok {
			continue
		}
		ie, err := NewIndexEntry(t)
		if err != nil {
			return nil, err
		}
		out = append(out, ie)
	}
	return out, nil
}
