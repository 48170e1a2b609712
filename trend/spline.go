package trend

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// splineFilter detrends a possibly periodic timeseries by least-squares
// fitting a coarse piecewise cubic spline over nsegs segments.
//
// The spline is a clamped cubic B-spline with nknots-1 interior knots
// evenly spaced over the open index range, solved by QR. Few knots make
// the fit stiff enough to pass through seasonal swings instead of chasing
// them.
func splineFilter(data []float64, nsegs int) ([]float64, error) {
	n := len(data)
	nknots := nsegs + 1
	if nknots < 2 {
		nknots = 2
	}

	// interior knots: evenly spaced over (0, n-1), endpoints excluded
	stepsize := float64(n-1) / float64(nknots+1)
	interior := make([]float64, nknots-1)
	for i := range interior {
		interior[i] = float64(i+1) * stepsize
	}

	// clamped knot vector: quadruple boundary knots for a cubic basis
	knots := make([]float64, 0, len(interior)+8)
	for i := 0; i < 4; i++ {
		knots = append(knots, 0)
	}
	knots = append(knots, interior...)
	for i := 0; i < 4; i++ {
		knots = append(knots, float64(n-1))
	}

	ncoef := len(interior) + 4
	if ncoef > n {
		return nil, fmt.Errorf("%w: %d samples for %d spline coefficients", ErrInsufficientData, n, ncoef)
	}

	design := mat.NewDense(n, ncoef, nil)
	for i := 0; i < n; i++ {
		x := float64(i)
		for j := 0; j < ncoef; j++ {
			design.Set(i, j, bsplineBasis(knots, j, 3, x))
		}
	}

	var qr mat.QR
	qr.Factorize(design)
	var coef mat.VecDense
	if err := qr.SolveVecTo(&coef, false, mat.NewVecDense(n, data)); err != nil {
		return nil, fmt.Errorf("trend: spline solve: %w", err)
	}

	var fit mat.VecDense
	fit.MulVec(design, &coef)
	fitted := make([]float64, n)
	copy(fitted, fit.RawVector().Data)
	return fitted, nil
}

// bsplineBasis evaluates the i-th B-spline basis function of the given
// degree at x by the Cox-de Boor recurrence. The final knot span is
// treated as closed so the last data point is covered.
func bsplineBasis(knots []float64, i, degree int, x float64) float64 {
	if degree == 0 {
		if knots[i] <= x && x < knots[i+1] {
			return 1
		}
		// close the last nonempty span
		if x == knots[len(knots)-1] && knots[i] < knots[i+1] && knots[i+1] == x {
			return 1
		}
		return 0
	}

	var left, right float64
	if d := knots[i+degree] - knots[i]; d > 0 {
		left = (x - knots[i]) / d * bsplineBasis(knots, i, degree-1, x)
	}
	if d := knots[i+degree+1] - knots[i+1]; d > 0 {
		right = (knots[i+degree+1] - x) / d * bsplineBasis(knots, i+1, degree-1, x)
	}
	return left + right
}
