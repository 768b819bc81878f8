package atoms_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sparsity/atoms"
	"github.com/katalvlaran/sparsity/objective"
)

const eps = 1e-9

// identityLS returns f(x) = ½‖x − b‖² as a least-squares objective.
func identityLS(t testing.TB, b ...float64) *objective.LeastSquares {
	t.Helper()
	n := len(b)
	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		a.Set(i, i, 1)
	}
	f, err := objective.NewLeastSquares(a, b)
	require.NoError(t, err)

	return f
}

// mustAdd adds every (atom, coeff) pair in order, failing the test on error.
func mustAdd(t testing.TB, s *atoms.AtomSet, pairs ...any) {
	t.Helper()
	require.Zero(t, len(pairs)%2, "mustAdd wants (atom, coeff) pairs")
	for i := 0; i < len(pairs); i += 2 {
		require.NoError(t, s.AddAtom(pairs[i].([]float64), pairs[i+1].(float64)))
	}
}

// snapshot captures the observable state of a set.
type snapshot struct {
	atoms  []float64
	coeffs []float64
	len    int
}

func snap(s *atoms.AtomSet) snapshot {
	sn := snapshot{coeffs: s.Coefficients(), len: s.Len()}
	if m := s.Atoms(); m != nil {
		sn.atoms = append([]float64(nil), m.RawMatrix().Data...)
	}

	return sn
}

// shifted is f(x) = ½‖x − t‖², a Function without least-squares accessors.
type shifted struct{ t []float64 }

func (f shifted) Evaluate(x []float64) float64 {
	var v float64
	for i := range x {
		d := x[i] - f.t[i]
		v += d * d
	}

	return 0.5 * v
}

func (f shifted) Gradient(x []float64) []float64 {
	g := make([]float64, len(x))
	for i := range x {
		g[i] = x[i] - f.t[i]
	}

	return g
}

// shortGradient returns a gradient of the wrong length.
type shortGradient struct{ shifted }

func (f shortGradient) Gradient(x []float64) []float64 { return make([]float64, len(x)-1) }
