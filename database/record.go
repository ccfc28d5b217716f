//
// Tencent is pleased to support the open source community by making trpc-taubench-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-taubench-go is licensed under the Apache License Version 2.0.
//
//

package database

// Field accessors for schema-less records. Tools project only the
// fields they need and must tolerate absent or mistyped values, so all
// accessors return zero values instead of faulting.

// Str returns the string field at key.
func Str(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// Num returns the numeric field at key. Records built from JSON hold
// all numbers as float64; int is accepted for values built in Go.
func Num(m map[string]any, key string) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

// Bool returns the boolean field at key.
func Bool(m map[string]any, key string) bool {
	b, _ := m[key].(bool)
	return b
}

// Map returns the nested mapping at key, or nil.
func Map(m map[string]any, key string) map[string]any {
	v, _ := m[key].(map[string]any)
	return v
}

// Slice returns the array field at key, or nil.
func Slice(m map[string]any, key string) []any {
	v, _ := m[key].([]any)
	return v
}
