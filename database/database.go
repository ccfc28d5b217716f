//
// Tencent is pleased to support the open source community by making trpc-taubench-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-taubench-go is licensed under the Apache License Version 2.0.
//
//

// Package database provides the in-memory document store that backs one
// mock domain. Collections are keyed by entity ID and hold schema-less
// nested records; tools validate the fields they need instead of the
// store imposing a schema.
package database

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
)

// Record is one entity: a nested mapping of JSON-compatible values.
type Record = map[string]any

// Collection maps entity ID to entity record.
type Collection = map[string]Record

// Database holds the mutable domain entities for a single episode.
// It is not safe for concurrent use; each episode owns its own copy.
type Database struct {
	collections map[string]Collection
}

// New builds a Database from seed collections. The seed is deep-copied
// through a JSON round-trip so later mutations never reach the seed and
// all numbers are normalized to float64.
func New(seed map[string]Collection) (*Database, error) {
	copied, err := deepCopy(seed)
	if err != nil {
		return nil, fmt.Errorf("copy seed collections: %w", err)
	}
	if copied == nil {
		copied = map[string]Collection{}
	}
	return &Database{collections: copied}, nil
}

// FromJSON builds a Database by decoding one JSON document per
// collection name.
func FromJSON(raw map[string][]byte) (*Database, error) {
	collections := make(map[string]Collection, len(raw))
	for name, doc := range raw {
		var c Collection
		if err := json.Unmarshal(doc, &c); err != nil {
			return nil, fmt.Errorf("decode collection %s: %w", name, err)
		}
		collections[name] = c
	}
	return &Database{collections: collections}, nil
}

// Get returns the record with the given ID, or ok=false when either the
// collection or the entity is absent. Dangling references therefore
// surface as a lookup miss, never as a fault.
func (d *Database) Get(collection, id string) (Record, bool) {
	c, ok := d.collections[collection]
	if !ok {
		return nil, false
	}
	r, ok := c[id]
	return r, ok
}

// Put inserts or replaces a record.
func (d *Database) Put(collection, id string, record Record) {
	c, ok := d.collections[collection]
	if !ok {
		c = Collection{}
		d.collections[collection] = c
	}
	c[id] = record
}

// Delete removes a record. Deleting an absent record is a no-op.
func (d *Database) Delete(collection, id string) {
	if c, ok := d.collections[collection]; ok {
		delete(c, id)
	}
}

// Collection returns the named collection, or an empty one when absent.
// The returned map is live: mutations write through to the database.
func (d *Database) Collection(name string) Collection {
	c, ok := d.collections[name]
	if !ok {
		c = Collection{}
		d.collections[name] = c
	}
	return c
}

// Collections returns the collection names in sorted order.
func (d *Database) Collections() []string {
	names := make([]string, 0, len(d.collections))
	for name := range d.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot returns a deep, independent copy suitable for later
// structural comparison.
func (d *Database) Snapshot() (*Database, error) {
	copied, err := deepCopy(d.collections)
	if err != nil {
		return nil, fmt.Errorf("snapshot collections: %w", err)
	}
	return &Database{collections: copied}, nil
}

// Equal reports whether both databases hold structurally identical
// collections.
func (d *Database) Equal(other *Database) bool {
	if other == nil {
		return false
	}
	return equalNormalized(d.collections, other.collections)
}

// EqualCollections reports whether the named collections are
// structurally identical in both databases. A name absent from both
// sides compares equal.
func (d *Database) EqualCollections(other *Database, names []string) bool {
	if other == nil {
		return false
	}
	for _, name := range names {
		if !equalNormalized(d.collections[name], other.collections[name]) {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the full collection map, keys sorted, so two
// snapshots of identical state are byte-identical.
func (d *Database) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.collections)
}

// deepCopy copies arbitrary JSON-compatible data through an
// encode/decode round-trip. This both severs aliasing and normalizes
// numeric types, which keeps structural comparison honest across
// sources (embedded seed JSON vs. values built by tools in Go).
func deepCopy[T any](v T) (T, error) {
	var out T
	raw, err := json.Marshal(v)
	if err != nil {
		return out, fmt.Errorf("marshal: %w", err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("unmarshal: %w", err)
	}
	return out, nil
}

func equalNormalized(a, b any) bool {
	an, err := normalize(a)
	if err != nil {
		return false
	}
	bn, err := normalize(b)
	if err != nil {
		return false
	}
	return reflect.DeepEqual(an, bn)
}

// normalize round-trips a value through JSON so that maps, slices and
// numbers compare by shape rather than by Go type. nil and an empty
// collection normalize to the same value.
func normalize(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if out == nil {
		return map[string]any{}, nil
	}
	if m, ok := out.(map[string]any); ok && len(m) == 0 {
		return map[string]any{}, nil
	}
	return out, nil
}
