package everhart

// buildTransforms constructs the three (m+1)x(m+1) transformation
// matrices C, D, E used to convert between raw node differences and
// b-coefficients, and the mxm reciprocal-difference matrix deltaTau,
// following the recurrences of spec.md §4.6. All three start
// lower-triangular (entry [i][j] is set only for j <= i) with unit first
// column and unit diagonal.
func buildTransforms(tau []float64) (c, d, e [][]float64, deltaTau [][]float64) {
	m := len(tau)
	size := m + 1

	newSquare := func() [][]float64 {
		mat := make([][]float64, size)
		for i := range mat {
			mat[i] = make([]float64, size)
			mat[i][0] = 1
			mat[i][i] = 1
		}
		return mat
	}

	c = newSquare()
	d = newSquare()
	e = newSquare()

	for i := 0; i < m; i++ {
		for j := 0; j <= i; j++ {
			c[i+1][j+1] = c[i][j] - tau[i]*c[i][j+1]
			d[i+1][j+1] = d[i][j] + tau[j]*d[i][j+1]
			e[i+1][j+1] = e[i][j] + e[i][j+1]
		}
		scale := float64(i + 1)
		for j := 1; j <= i+1; j++ {
			c[i+1][j] /= scale
			d[i+1][j] *= scale
			e[i+1][j] *= scale
		}
	}

	deltaTau = make([][]float64, m)
	for i := range deltaTau {
		deltaTau[i] = make([]float64, m)
		for j := 0; j < i; j++ {
			deltaTau[i][j] = 1 / (tau[i] - tau[j])
		}
	}

	return c, d, e, deltaTau
}
