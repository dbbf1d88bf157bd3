// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for matrix construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Notes:
//   - Capacities are NOT options. They are constructor arguments because a
//     negative capacity is a user error and must surface as ErrInvalidArgument.
//   - Growth policy decides how a full grid grows before an insertion:
//     GrowLinear adds exactly one slot, GrowDoubling doubles the capacity.
//   - Numeric policy is explicit: validateNaNInf controls whether Numeric
//     ingestion and Set reject NaN/±Inf. Regular matrices ignore it.

package matrix

import "fmt"

// ---------- Defaults (single source of truth) ----------

// Capacity defaults.
const (
	// DefaultRowCapacity is the initial row capacity of NewDefaultRegular /
	// NewDefaultNumeric and the floor used when a zero-size grid grows.
	DefaultRowCapacity = 3

	// DefaultColCapacity mirrors DefaultRowCapacity for columns.
	DefaultColCapacity = 3
)

// GrowthPolicy selects how a full grid is enlarged before an insertion.
type GrowthPolicy uint8

const (
	// GrowLinear grows the capacity by exactly one slot.
	GrowLinear GrowthPolicy = iota

	// GrowDoubling doubles the capacity (amortized O(1) insertion).
	GrowDoubling
)

// String returns the policy name.
func (p GrowthPolicy) String() string {
	switch p {
	case GrowLinear:
		return "linear"
	case GrowDoubling:
		return "doubling"
	default:
		return fmt.Sprintf("GrowthPolicy(%d)", uint8(p))
	}
}

// next returns the capacity to grow to when a buffer of capacity c is full.
func (p GrowthPolicy) next(c int) int {
	if p == GrowDoubling && c > 0 {
		return 2 * c
	}

	return c + 1
}

// Numeric policy.
const (
	// DefaultGrowth keeps the linear policy; each full insertion grows by one.
	DefaultGrowth = GrowLinear

	// DefaultValidateNaNInf toggles strict finite-value validation on Numeric ingestion and Set.
	DefaultValidateNaNInf = true
)

// ---------- Panic messages ----------

const panicGrowthInvalid = "matrix: WithGrowth: unknown growth policy"

// ---------- Types ----------

// Option configures matrix construction.
type Option func(*Options)

// Options holds the resolved configuration of a matrix.
// Fields are unexported; use the WithX constructors.
type Options struct {
	growth         GrowthPolicy
	validateNaNInf bool
}

// WithGrowth selects the capacity growth policy.
// Panics on an unknown policy (programmer error).
func WithGrowth(p GrowthPolicy) Option {
	if p != GrowLinear && p != GrowDoubling {
		panic(panicGrowthInvalid)
	}

	return func(o *Options) { o.growth = p }
}

// WithValidateNaNInf makes Numeric ingestion and Set reject NaN and ±Inf.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf lets NaN and ±Inf flow into Numeric matrices.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewMatrixOptions resolves opts over the defaults.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Growth returns the configured growth policy.
func (o Options) Growth() GrowthPolicy { return o.growth }

// ValidateNaNInf reports whether the finite-value policy is on.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

func defaultOptions() Options {
	return Options{
		growth:         DefaultGrowth,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies user options in order; later options win.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
