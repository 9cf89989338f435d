package geom

import "math"

// pivotEpsilon is the absolute threshold below which a pivot is treated as
// zero. Spec §4.1 leaves the exact tolerance to the implementation and
// suggests "near machine epsilon"; matrix/ops/inverse.go in the teacher
// library instead compares pivots against an exact ZeroPivot = 0.0, which is
// too strict for quadrics accumulated from floating-point geometry (a
// genuinely singular system rarely lands on exactly 0.0). This value is
// small enough to only reject truly ill-conditioned systems.
const pivotEpsilon = 1e-9

// Solve4 solves the 4×4 linear system m·x = b and returns x, using Gaussian
// elimination with partial pivoting (row interchange on the largest
// available pivot magnitude — an extension of matrix/ops/lu.go's
// unpivoted Doolittle decomposition, needed here because the Doolittle
// method has no recourse when a natural pivot is zero). Returns ErrSingular
// if every candidate pivot for some column falls below pivotEpsilon.
func Solve4(m Quadric, b Vec4) (Vec4, error) {
	// Work on a local copy; m and b are never mutated in place.
	var a [4][5]float64
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			a[i][j] = m[i][j]
		}
		a[i][4] = b[i]
	}

	// Forward elimination with partial pivoting.
	for col := 0; col < 4; col++ {
		pivotRow := col
		pivotMag := math.Abs(a[col][col])
		for r := col + 1; r < 4; r++ {
			if mag := math.Abs(a[r][col]); mag > pivotMag {
				pivotRow, pivotMag = r, mag
			}
		}
		if pivotMag < pivotEpsilon {
			return Vec4{}, ErrSingular
		}
		if pivotRow != col {
			a[col], a[pivotRow] = a[pivotRow], a[col]
		}

		for r := col + 1; r < 4; r++ {
			factor := a[r][col] / a[col][col]
			if factor == 0 {
				continue
			}
			for c := col; c < 5; c++ {
				a[r][c] -= factor * a[col][c]
			}
		}
	}

	// Back substitution.
	var x Vec4
	for i := 3; i >= 0; i-- {
		sum := a[i][4]
		for j := i + 1; j < 4; j++ {
			sum -= a[i][j] * x[j]
		}
		x[i] = sum / a[i][i]
	}

	return x, nil
}
