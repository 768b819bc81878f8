// SPDX-License-Identifier: MIT

package atoms

import "gonum.org/v1/gonum/mat"

// prependColumn returns a new matrix [v | m].
func prependColumn(m *mat.Dense, v []float64) *mat.Dense {
	r, c := m.Dims()
	out := mat.NewDense(r, c+1, nil)
	out.Slice(0, r, 1, c+1).(*mat.Dense).Copy(m)
	out.SetCol(0, v)

	return out
}

// dropColumn returns m without column j, or nil when j was the last column.
func dropColumn(m *mat.Dense, j int) *mat.Dense {
	r, c := m.Dims()
	if c == 1 {
		return nil
	}
	out := mat.NewDense(r, c-1, nil)
	if j > 0 {
		out.Slice(0, r, 0, j).(*mat.Dense).Copy(m.Slice(0, r, 0, j))
	}
	if j < c-1 {
		out.Slice(0, r, j, c-1).(*mat.Dense).Copy(m.Slice(0, r, j+1, c))
	}

	return out
}

// dropIndex returns v without entry j in a fresh slice.
func dropIndex(v []float64, j int) []float64 {
	out := make([]float64, 0, len(v)-1)
	out = append(out, v[:j]...)

	return append(out, v[j+1:]...)
}

// mulVec returns m·c. m must be non-nil with len(c) columns.
func mulVec(m *mat.Dense, c []float64) []float64 {
	r, _ := m.Dims()
	x := mat.NewVecDense(r, nil)
	x.MulVec(m, mat.NewVecDense(len(c), c))

	return x.RawVector().Data
}

// mulTransVec returns mᵀ·g. m must be non-nil with len(g) rows.
func mulTransVec(m *mat.Dense, g []float64) []float64 {
	_, c := m.Dims()
	p := mat.NewVecDense(c, nil)
	p.MulVec(m.T(), mat.NewVecDense(len(g), g))

	return p.RawVector().Data
}
