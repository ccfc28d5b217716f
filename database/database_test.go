//
// Tencent is pleased to support the open source community by making trpc-taubench-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-taubench-go is licensed under the Apache License Version 2.0.
//
//

package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeepCopiesSeed(t *testing.T) {
	seed := map[string]Collection{
		"users": {
			"u1": {"name": "ada", "balance": 100},
		},
	}
	db, err := New(seed)
	require.NoError(t, err)

	u, ok := db.Get("users", "u1")
	require.True(t, ok)
	u["name"] = "mallory"
	db.Put("users", "u2", Record{"name": "bob"})

	assert.Equal(t, "ada", seed["users"]["u1"]["name"])
	_, leaked := seed["users"]["u2"]
	assert.False(t, leaked)
}

func TestGetMissing(t *testing.T) {
	db, err := New(map[string]Collection{"users": {}})
	require.NoError(t, err)

	_, ok := db.Get("users", "nope")
	assert.False(t, ok)
	_, ok = db.Get("orders", "nope")
	assert.False(t, ok)
}

func TestPutAndDelete(t *testing.T) {
	db, err := New(nil)
	require.NoError(t, err)

	db.Put("orders", "#1", Record{"status": "pending"})
	got, ok := db.Get("orders", "#1")
	require.True(t, ok)
	assert.Equal(t, "pending", got["status"])

	db.Delete("orders", "#1")
	_, ok = db.Get("orders", "#1")
	assert.False(t, ok)

	// Deleting from an absent collection is a no-op.
	db.Delete("refunds", "#1")
}

func TestCollectionIsLive(t *testing.T) {
	db, err := New(nil)
	require.NoError(t, err)

	c := db.Collection("flights")
	c["HAT001"] = Record{"origin": "SFO"}

	got, ok := db.Get("flights", "HAT001")
	require.True(t, ok)
	assert.Equal(t, "SFO", got["origin"])
}

func TestCollectionsSorted(t *testing.T) {
	db, err := New(map[string]Collection{"users": {}, "flights": {}, "reservations": {}})
	require.NoError(t, err)
	assert.Equal(t, []string{"flights", "reservations", "users"}, db.Collections())
}

func TestSnapshotIndependent(t *testing.T) {
	db, err := New(map[string]Collection{
		"users": {"u1": {"balance": 100}},
	})
	require.NoError(t, err)

	snap, err := db.Snapshot()
	require.NoError(t, err)
	require.True(t, db.Equal(snap))

	u, _ := db.Get("users", "u1")
	u["balance"] = 50
	assert.False(t, db.Equal(snap))

	got, _ := snap.Get("users", "u1")
	assert.EqualValues(t, 100, got["balance"])
}

func TestEqualNormalizesNumericTypes(t *testing.T) {
	a, err := New(map[string]Collection{"c": {"x": {"n": 1, "items": []any{2}}}})
	require.NoError(t, err)
	b, err := New(map[string]Collection{"c": {"x": {"n": 1.0, "items": []any{2.0}}}})
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

func TestEqualCollections(t *testing.T) {
	a, err := New(map[string]Collection{
		"users":  {"u1": {"name": "ada"}},
		"orders": {"#1": {"status": "pending"}},
	})
	require.NoError(t, err)
	b, err := a.Snapshot()
	require.NoError(t, err)

	u, _ := a.Get("users", "u1")
	u["name"] = "grace"

	assert.False(t, a.EqualCollections(b, []string{"users"}))
	assert.True(t, a.EqualCollections(b, []string{"orders"}))
	// A name absent from both sides compares equal.
	assert.True(t, a.EqualCollections(b, []string{"refunds"}))
	assert.True(t, a.EqualCollections(b, nil))
	assert.False(t, a.EqualCollections(nil, nil))
}

func TestFromJSON(t *testing.T) {
	db, err := FromJSON(map[string][]byte{
		"users": []byte(`{"u1": {"name": "ada"}}`),
	})
	require.NoError(t, err)
	got, ok := db.Get("users", "u1")
	require.True(t, ok)
	assert.Equal(t, "ada", got["name"])

	_, err = FromJSON(map[string][]byte{"users": []byte(`not json`)})
	assert.Error(t, err)
}

func TestRecordAccessors(t *testing.T) {
	r := Record{
		"name":      "ada",
		"count":     3.0,
		"whole":     7,
		"active":    true,
		"nested":    map[string]any{"k": "v"},
		"items":     []any{"a"},
		"not_a_map": "x",
	}
	assert.Equal(t, "ada", Str(r, "name"))
	assert.Equal(t, "", Str(r, "missing"))
	assert.Equal(t, 3.0, Num(r, "count"))
	assert.Equal(t, 7.0, Num(r, "whole"))
	assert.Equal(t, 0.0, Num(r, "missing"))
	assert.True(t, Bool(r, "active"))
	assert.False(t, Bool(r, "missing"))
	assert.Equal(t, map[string]any{"k": "v"}, Map(r, "nested"))
	assert.Nil(t, Map(r, "not_a_map"))
	assert.Equal(t, []any{"a"}, Slice(r, "items"))
	assert.Nil(t, Slice(r, "missing"))
}
