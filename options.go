package planar

import (
	"log/slog"
)

// DegeneratePolicy sets how zero-length segments are handled.
type DegeneratePolicy int

const (
	// DropDegenerate removes zero-length segments from the output. Their point still splits any segment it lies on.
	DropDegenerate DegeneratePolicy = iota
	// RejectDegenerate returns an error wrapping ErrDegenerate.
	RejectDegenerate
)

func (p DegeneratePolicy) String() string {
	switch p {
	case DropDegenerate:
		return "drop"
	case RejectDegenerate:
		return "reject"
	}
	return "unknown"
}

// Options are the settings for RemoveCrossings.
type Options struct {
	// Tolerance is relative to the largest absolute coordinate or the extent of the network, whichever is larger. Points closer than the resulting distance are merged.
	Tolerance float64

	// Box is the extent of the domain. If set, all points are snapped to a grid with spacing Box*SnapTolerance first.
	Box           *Point
	SnapTolerance float64

	MaxPasses  int // maximum number of passes before ConvergenceError
	Workers    int // goroutines used to classify candidate pairs
	Degenerate DegeneratePolicy
	Logger     *slog.Logger // nil discards
}

// DefaultOptions are the default settings.
var DefaultOptions = Options{
	Tolerance:     1e-8,
	SnapTolerance: DefaultSnapTolerance,
	MaxPasses:     100,
	Workers:       1,
	Degenerate:    DropDegenerate,
}

func (opts Options) normalize() (Options, error) {
	if opts.Tolerance < 0.0 {
		return opts, inputErrorf("option", -1, "negative tolerance %v", opts.Tolerance)
	}
	if opts.SnapTolerance <= 0.0 {
		opts.SnapTolerance = DefaultOptions.SnapTolerance
	}
	if opts.MaxPasses <= 0 {
		opts.MaxPasses = DefaultOptions.MaxPasses
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return opts, nil
}
