// options.go — functional options for constraint construction, in the
// teacher's builder.BuilderOption style: option constructors validate and
// panic on meaningless inputs rather than returning an error a caller could
// silently ignore (per spec.md §6's options table, none of these affect
// correctness, only behavior, so a bad option value is a programmer error,
// not a data error).
package symretope

import "github.com/rs/zerolog"

// Options holds every configurable behavior of spec.md §6's table, plus the
// constraint's logger (construction can already have something to warn
// about — a truncated power list — so the logger must arrive with the other
// options rather than after the fact via SetLogger). Zero value is NOT the
// default — use DefaultOptions() or New, which applies it.
type Options struct {
	ForceCopy            bool
	Peek                 bool
	PeekInProbing        bool
	MaxOrder             int // <= 0 means uncapped
	MaxOrderTimesN       int // <= 0 means uncapped
	SeparateAllViolating bool
	Logger               zerolog.Logger
}

// DefaultOptions returns spec.md §6's baseline behavior: peek enabled
// outside probing, no caps, only the first violated power separated,
// logging discarded.
func DefaultOptions() Options {
	return Options{
		ForceCopy:            true,
		Peek:                 true,
		PeekInProbing:        false,
		MaxOrder:             0,
		MaxOrderTimesN:       0,
		SeparateAllViolating: false,
		Logger:               zerolog.Nop(),
	}
}

// Option mutates an Options value before constraint construction.
type Option func(*Options)

// WithForceCopy sets Options.ForceCopy (spec.md §6). The value is stored
// only; nothing in this module reads it, since no copy callback exists.
func WithForceCopy(v bool) Option { return func(o *Options) { o.ForceCopy = v } }

// WithPeek enables or disables the peek driver.
func WithPeek(v bool) Option { return func(o *Options) { o.Peek = v } }

// WithPeekInProbing controls whether peek runs during the solver's probing
// phase.
func WithPeekInProbing(v bool) Option { return func(o *Options) { o.PeekInProbing = v } }

// WithMaxOrder caps the number of non-identity powers tracked. Panics on a
// negative cap — "uncapped" is expressed as 0, not a negative sentinel.
func WithMaxOrder(n int) Option {
	if n < 0 {
		panic("symretope: WithMaxOrder(negative)")
	}
	return func(o *Options) { o.MaxOrder = n }
}

// WithMaxOrderTimesN caps tracked-powers times n as a memory guard. Panics
// on a negative cap.
func WithMaxOrderTimesN(n int) Option {
	if n < 0 {
		panic("symretope: WithMaxOrderTimesN(negative)")
	}
	return func(o *Options) { o.MaxOrderTimesN = n }
}

// WithSeparateAllViolating controls whether separation adds cuts for every
// violated power or only the first.
func WithSeparateAllViolating(v bool) Option { return func(o *Options) { o.SeparateAllViolating = v } }

// WithLogger installs the constraint's logger (default: discard). It is
// propagated to the owned orchestrator and its trees, and carries the
// group-too-large warning of spec.md §7 during construction itself.
func WithLogger(l zerolog.Logger) Option { return func(o *Options) { o.Logger = l } }
