// SPDX-License-Identifier: MIT

package atoms

import (
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/sparsity/logging"
	"github.com/katalvlaran/sparsity/projection"
)

// ---------- Defaults ----------

const (
	// DefaultMaxIterations bounds ProjectedGradientEnhancement. The loop runs
	// iterations 1..max-1, so at most max-1 steps are taken.
	DefaultMaxIterations = 100

	// DefaultTolerance is the minimum per-step decrease that keeps
	// ProjectedGradientEnhancement going.
	DefaultTolerance = 1e-3

	// DefaultMaxPruneSteps of 0 caps PruneSupport at the atom count seen
	// when the call starts.
	DefaultMaxPruneSteps = 0

	// DefaultProjectionMode is the L1-ball threshold rule of refinement.
	DefaultProjectionMode = projection.DefaultMode
)

const (
	panicMaxPruneStepsInvalid = "atoms: WithMaxPruneSteps: n must be >= 0"
	panicMaxIterationsInvalid = "atoms: WithMaxIterations: n must be >= 1"
	panicToleranceInvalid     = "atoms: WithTolerance: tol must be finite"
	panicModeInvalid          = "atoms: WithProjectionMode: unknown mode"
)

// ---------- AtomSet options ----------

// Option configures an AtomSet. Constructors panic on nonsensical values.
type Option func(*Options)

// Options holds the effective AtomSet configuration.
type Options struct {
	logger        *zap.Logger
	mode          projection.Mode
	maxPruneSteps int
}

// WithLogger routes Debug traces of pruning and refinement to l.
// A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithProjectionMode selects the L1-ball threshold rule used by
// ProjectedGradientEnhancement.
func WithProjectionMode(m projection.Mode) Option {
	if !m.Valid() {
		panic(panicModeInvalid)
	}

	return func(o *Options) { o.mode = m }
}

// WithMaxPruneSteps caps the number of trial deletions per PruneSupport call.
// 0 means "as many as there are atoms".
func WithMaxPruneSteps(n int) Option {
	if n < 0 {
		panic(panicMaxPruneStepsInvalid)
	}

	return func(o *Options) { o.maxPruneSteps = n }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		logger:        logging.Nop(),
		mode:          DefaultProjectionMode,
		maxPruneSteps: DefaultMaxPruneSteps,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// ---------- Refinement options ----------

// RefineOption configures one ProjectedGradientEnhancement call.
type RefineOption func(*refineOptions)

type refineOptions struct {
	maxIterations int
	tolerance     float64
}

// WithMaxIterations sets the iteration cap (>= 1). A cap of 1 takes no step.
func WithMaxIterations(n int) RefineOption {
	if n < 1 {
		panic(panicMaxIterationsInvalid)
	}

	return func(o *refineOptions) { o.maxIterations = n }
}

// WithTolerance sets the minimum decrease per step.
func WithTolerance(tol float64) RefineOption {
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}

	return func(o *refineOptions) { o.tolerance = tol }
}

func gatherRefineOptions(opts ...RefineOption) refineOptions {
	o := refineOptions{
		maxIterations: DefaultMaxIterations,
		tolerance:     DefaultTolerance,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
