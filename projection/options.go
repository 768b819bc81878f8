// SPDX-License-Identifier: MIT

package projection

import "fmt"

// Mode selects the threshold divisor used after the pivot search.
type Mode int

const (
	// ModeSource divides by the 0-indexed pivot ρ.
	ModeSource Mode = iota

	// ModeExact divides by ρ+1, the count of retained components.
	ModeExact
)

// DefaultMode is the threshold rule used when no option is given.
const DefaultMode = ModeSource

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModeSource:
		return "source"
	case ModeExact:
		return "exact"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool { return m == ModeSource || m == ModeExact }

const panicModeInvalid = "projection: WithMode: unknown mode"

// Option configures a projection call. Constructors panic on nonsensical
// values (programmer error).
type Option func(*Options)

// Options holds the effective configuration after applying Option setters.
type Options struct {
	mode Mode
}

// WithMode selects the threshold rule.
func WithMode(m Mode) Option {
	if !m.Valid() {
		panic(panicModeInvalid)
	}

	return func(o *Options) { o.mode = m }
}

func gatherOptions(opts ...Option) Options {
	o := Options{mode: DefaultMode}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
