//
// Tencent is pleased to support the open source community by making trpc-taubench-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-taubench-go is licensed under the Apache License Version 2.0.
//
//

package registry

import (
	"encoding/json"
	"fmt"
)

// JSON encodes a success payload as the tool observation. Map keys are
// marshaled in sorted order, so identical state always observes
// identically.
func JSON(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode observation: %w", err)
	}
	return string(raw), nil
}
