// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* axis and element-wise kernels (ew*) to avoid
//     duplicating tight loops across the normalizers.
//   - Keep all loops deterministic and cache-friendly on the flat Dense buffer.
//
// Design:
//   - All ew* are UNEXPORTED (internal micro-kernels); callers validate first.
//   - Public API uses these via thin wrappers (impl_normalization.go, api.go).
//
// Determinism & Performance:
//   - Fixed loop orders (i→j).
//   - No hidden allocations beyond the output; O(r*c) time and space.

package matrix

// lineCount returns how many lines axis selects on d (columns or rows).
func lineCount(d *Dense, axis Axis) int {
	if axis == AxisRows {
		return d.r
	}

	return d.c
}

// ewReduceAxis folds every line selected by axis with f, starting from init.
// out[k] = f(...f(f(init, x0), x1)..., xn) where x are the entries of line k
// in row-major visiting order.
// Time: O(r*c). Space: O(lines).
func ewReduceAxis(d *Dense, axis Axis, init float64, f func(acc, v float64) float64) []float64 {
	out := make([]float64, lineCount(d, axis))
	for k := range out {
		out[k] = init
	}

	var i, j, base int
	for i = 0; i < d.r; i++ {
		base = i * d.c // cache the base offset for row i
		for j = 0; j < d.c; j++ {
			if axis == AxisColumns {
				out[j] = f(out[j], d.data[base+j])
			} else {
				out[i] = f(out[i], d.data[base+j])
			}
		}
	}

	return out
}

// ewBroadcastAxis computes out[i,j] = f(X[i,j], vec[k]) where k is the line
// index of (i,j) under axis. len(vec) must equal lineCount(d, axis).
// Time: O(r*c). Space: O(r*c).
func ewBroadcastAxis(d *Dense, axis Axis, vec []float64, f func(v, s float64) float64) *Dense {
	out := newDenseLike(d)

	var i, j, base int
	for i = 0; i < d.r; i++ {
		base = i * d.c
		for j = 0; j < d.c; j++ {
			if axis == AxisColumns {
				out.data[base+j] = f(d.data[base+j], vec[j])
			} else {
				out.data[base+j] = f(d.data[base+j], vec[i])
			}
		}
	}

	return out
}

// ewMap computes out[i,j] = f(X[i,j]).
// Time: O(r*c). Space: O(r*c).
func ewMap(d *Dense, f func(v float64) float64) *Dense {
	out := newDenseLike(d)
	for idx, v := range d.data {
		out.data[idx] = f(v)
	}

	return out
}

// ewFirstAxis returns the line index of the first entry (row-major order)
// satisfying pred, or -1.
func ewFirstAxis(d *Dense, axis Axis, pred func(v float64) bool) int {
	var i, j, base int
	for i = 0; i < d.r; i++ {
		base = i * d.c
		for j = 0; j < d.c; j++ {
			if pred(d.data[base+j]) {
				if axis == AxisColumns {
					return j
				}
				return i
			}
		}
	}

	return -1
}
