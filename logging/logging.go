// SPDX-License-Identifier: MIT

// Package logging builds the zap loggers used across sparsity and fixes the
// structured field names so solver traces stay greppable.
//
// Library code never logs through a global: every component accepts a
// *zap.Logger through its options and falls back to Nop().
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Standard field names for solver traces.
const (
	FieldComponent = "component"
	FieldOperation = "operation"

	FieldAtoms     = "atoms"
	FieldDim       = "dim"
	FieldIndex     = "index"
	FieldIteration = "iteration"
	FieldRemoved   = "removed"

	FieldValue     = "value"
	FieldValueNew  = "value_new"
	FieldThreshold = "threshold"
	FieldGap       = "gap"
	FieldTau       = "tau"
	FieldStepSize  = "step_size"
	FieldReason    = "reason"
	FieldConverged = "converged"
)

// Nop returns a logger that discards everything. It is the library default.
func Nop() *zap.Logger { return zap.NewNop() }

// New returns a console logger writing to stderr at the given level.
// Use zapcore.DebugLevel to see per-trial pruning and per-step refinement.
func New(level zapcore.Level) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.DisableStacktrace = true

	return cfg.Build()
}

// Named tags l with a component name, tolerating a nil logger.
func Named(l *zap.Logger, component string) *zap.Logger {
	if l == nil {
		l = Nop()
	}

	return l.Named(component).With(zap.String(FieldComponent, component))
}
