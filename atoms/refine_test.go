package atoms_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/sparsity/atoms"
	"github.com/katalvlaran/sparsity/projection"
)

// unitPair returns a set holding e1 and e2 with zero coefficients.
func unitPair(t *testing.T, opts ...atoms.Option) *atoms.AtomSet {
	t.Helper()
	s := atoms.New(opts...)
	mustAdd(t, s, []float64{1, 0}, 0.0, []float64{0, 1}, 0.0)

	return s
}

// TestRefine_ConvergesUnconstrained: with a loose ball each step halves the
// residual of f = ½‖x − (1,1)‖², so f goes 1 → ¼ → 1/16 ... and the
// decrease drops below 1e-3 on the sixth step.
func TestRefine_ConvergesUnconstrained(t *testing.T) {
	f := identityLS(t, 1, 1)
	s := unitPair(t)

	res, err := s.ProjectedGradientEnhancement(f, 10, 0.5)
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.Equal(t, 6, res.Steps)
	assert.InDelta(t, math.Pow(0.25, 6), res.Value, 1e-15)
	assert.InDeltaSlice(t, []float64{1 - 1.0/64, 1 - 1.0/64}, s.Coefficients(), 1e-15)
	assert.InDelta(t, f.Evaluate(s.RecoverVector()), res.Value, 1e-15)
}

// TestRefine_SingleIterationTakesNoStep: the loop runs 1..max-1.
func TestRefine_SingleIterationTakesNoStep(t *testing.T) {
	f := identityLS(t, 1, 1)
	s := unitPair(t)
	before := snap(s)

	res, err := s.ProjectedGradientEnhancement(f, 10, 0.5, atoms.WithMaxIterations(1))
	require.NoError(t, err)
	assert.LessOrEqual(t, res.Steps, 1)
	assert.Equal(t, 0, res.Steps)
	assert.False(t, res.Converged)
	assert.Equal(t, before, snap(s))
	assert.InDelta(t, 1.0, res.Value, eps)
}

func TestRefine_IterationCapWithoutConvergence(t *testing.T) {
	f := identityLS(t, 1, 1)
	s := unitPair(t)

	res, err := s.ProjectedGradientEnhancement(f, 10, 0.5, atoms.WithMaxIterations(3), atoms.WithTolerance(0))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Steps)
	assert.False(t, res.Converged, "exhausting the cap is silent")
}

// TestRefine_SourceProjectionOvershrinks: at τ = 1 the second step hits
// (¾, ¾); the source rule shrinks it to (¼, ¼), the objective rises and
// the stop test fires anyway.
func TestRefine_SourceProjectionOvershrinks(t *testing.T) {
	f := identityLS(t, 1, 1)
	s := unitPair(t)

	res, err := s.ProjectedGradientEnhancement(f, 1, 0.5)
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.Equal(t, 2, res.Steps)
	assert.InDeltaSlice(t, []float64{0.25, 0.25}, s.Coefficients(), eps)
	assert.InDelta(t, 0.5625, res.Value, eps, "a worsening step is kept")
	assert.LessOrEqual(t, floats.Norm(s.Coefficients(), 1), 1.0+eps)
}

// TestRefine_ExactProjection lands on (½, ½) and stalls there.
func TestRefine_ExactProjection(t *testing.T) {
	f := identityLS(t, 1, 1)
	s := unitPair(t, atoms.WithProjectionMode(projection.ModeExact))

	res, err := s.ProjectedGradientEnhancement(f, 1, 0.5)
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.Equal(t, 2, res.Steps)
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, s.Coefficients(), eps)
	assert.InDelta(t, 0.25, res.Value, eps)
}

// TestRefine_PlainFunction works with a Function lacking A and b.
func TestRefine_PlainFunction(t *testing.T) {
	f := shifted{t: []float64{0.3, -0.2, 0}}
	s := atoms.New()
	mustAdd(t, s, []float64{1, 0, 0}, 0.0, []float64{0, 1, 0}, 0.0, []float64{0, 0, 1}, 0.0)

	res, err := s.ProjectedGradientEnhancement(f, 1, 1, atoms.WithTolerance(1e-12))
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.InDeltaSlice(t, []float64{0.3, -0.2, 0}, s.RecoverVector(), eps)
	assert.Equal(t, 3, s.Len(), "refinement never adds or removes atoms")
}

// failsOnSecondGradient returns a short gradient from its second call on.
type failsOnSecondGradient struct {
	shifted
	calls *int
}

func (f failsOnSecondGradient) Gradient(x []float64) []float64 {
	*f.calls++
	if *f.calls > 1 {
		return make([]float64, len(x)-1)
	}

	return f.shifted.Gradient(x)
}

// TestRefine_ErrorKeepsLastProjectedStep: a failure mid-loop leaves the
// coefficients of the last completed step, never a half-applied one.
func TestRefine_ErrorKeepsLastProjectedStep(t *testing.T) {
	calls := 0
	f := failsOnSecondGradient{shifted: shifted{t: []float64{1, 1}}, calls: &calls}
	s := unitPair(t)

	res, err := s.ProjectedGradientEnhancement(f, 10, 0.5)
	assert.ErrorIs(t, err, atoms.ErrDimensionMismatch)
	assert.Equal(t, 1, res.Steps)
	assert.Equal(t, []float64{0.5, 0.5}, s.Coefficients())
	assert.InDelta(t, 0.25, res.Value, eps)
}

func TestRefine_Errors(t *testing.T) {
	f := identityLS(t, 1, 1)

	empty := atoms.New()
	_, err := empty.ProjectedGradientEnhancement(f, 1, 0.1)
	assert.ErrorIs(t, err, atoms.ErrEmptySupport)

	s := unitPair(t)
	_, err = s.ProjectedGradientEnhancement(nil, 1, 0.1)
	assert.ErrorIs(t, err, atoms.ErrNilObjective)

	for _, tau := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err = s.ProjectedGradientEnhancement(f, tau, 0.1)
		assert.ErrorIs(t, err, atoms.ErrInvalidParameter, "tau=%v", tau)
	}
	for _, step := range []float64{0, -0.1, math.NaN(), math.Inf(1)} {
		_, err = s.ProjectedGradientEnhancement(f, 1, step)
		assert.ErrorIs(t, err, atoms.ErrInvalidParameter, "stepSize=%v", step)
	}

	_, err = s.ProjectedGradientEnhancement(shortGradient{shifted{t: []float64{1, 1}}}, 1, 0.1)
	assert.ErrorIs(t, err, atoms.ErrDimensionMismatch)
}
