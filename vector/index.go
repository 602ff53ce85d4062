// Copyright 2024 The Hyperline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vector

import "fmt"

// invalidIndexMsg builds the panic message used by every concrete vector's
// Component/WithComponent for an out-of-range index.
func invalidIndexMsg(i, dim int) string {
	return fmt.Sprintf("vector: invalid index %d for a %d-dimensional vector", i, dim)
}

// resolveIndex maps a signed index i in [-dim, dim-1] to its non-negative
// slot, with i<0 counting back from the end (i.e. dim+i). Indices outside
// that range are returned unchanged so the caller's own bounds check still
// fires and panics with the original, caller-facing index.
func resolveIndex(i, dim int) int {
	if i < 0 && i >= -dim {
		return dim + i
	}
	return i
}
