// SPDX-License-Identifier: MIT
package annealing

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// MaxDiameter returns a rough upper bound on the largest distance between
// points x[i] and y[j]: the diagonal of the joint bounding box of the two
// clouds. It is the usual starting scale of the epsilon-scaling heuristic.
//
// Inputs:
//   - x: (N, D) point cloud, one point per row.
//   - y: (M, D) point cloud.
//
// Errors:
//   - ErrEmptyCloud if either cloud is nil or has no rows/columns.
//   - ErrDimensionMismatch if the clouds have different D.
//
// Complexity:
//   - Time O((N+M)·D), Space O(D).
func MaxDiameter(x, y mat.Matrix) (float64, error) {
	if x == nil || y == nil {
		return 0, ErrEmptyCloud
	}
	n, d := x.Dims()
	m, dy := y.Dims()
	if n == 0 || m == 0 || d == 0 || dy == 0 {
		return 0, ErrEmptyCloud
	}
	if d != dy {
		return 0, ErrDimensionMismatch
	}

	lo := make([]float64, d)
	hi := make([]float64, d)
	for j := 0; j < d; j++ {
		lo[j], hi[j] = math.Inf(1), math.Inf(-1)
	}
	for _, cloud := range [2]mat.Matrix{x, y} {
		rows, _ := cloud.Dims()
		for i := 0; i < rows; i++ {
			for j := 0; j < d; j++ {
				v := cloud.At(i, j)
				lo[j] = math.Min(lo[j], v)
				hi[j] = math.Max(hi[j], v)
			}
		}
	}

	// Norm of the box diagonal.
	ext := mat.NewVecDense(d, nil)
	for j := 0; j < d; j++ {
		ext.SetVec(j, hi[j]-lo[j])
	}

	return mat.Norm(ext, 2), nil
}
