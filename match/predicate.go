package match

import (
	"github.com/userisgone/UROP/feature"
	"github.com/userisgone/UROP/interval"
)

// Predicate decides whether two records correspond.  Every predicate returned
// by NewPredicate requires both records to share a normalized sequence name,
// so it is safe to call outside a grouped comparison.
type Predicate interface {
	Match(a, b feature.Record) bool
}

// NewPredicate returns the predicate selected by opts.Strategy.
func NewPredicate(opts Opts) (Predicate, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	switch opts.Strategy {
	case EndpointTolerance:
		return endpointPredicate{tolerance: opts.Tolerance}, nil
	case Overlap:
		return overlapPredicate{}, nil
	case LengthScaled:
		return lengthScaledPredicate{fraction: opts.Fraction}, nil
	default:
		return proximityPredicate{window: opts.Window}, nil
	}
}

func sameSequence(a, b feature.Record) bool {
	return a.SeqName == b.SeqName || a.Key() == b.Key()
}

type endpointPredicate struct {
	tolerance int
}

func (p endpointPredicate) Match(a, b feature.Record) bool {
	return sameSequence(a, b) && interval.EndpointsWithin(a.Start, a.End, b.Start, b.End, p.tolerance)
}

type overlapPredicate struct{}

func (overlapPredicate) Match(a, b feature.Record) bool {
	return sameSequence(a, b) && interval.Overlaps(a.Start, a.End, b.Start, b.End)
}

// lengthScaledPredicate treats a as the reference: the padding is derived
// from a's length only.
type lengthScaledPredicate struct {
	fraction float64
}

// Padding returns floor(span(r)*fraction).
func (p lengthScaledPredicate) Padding(r feature.Record) int {
	return int(float64(r.Span()) * p.fraction)
}

func (p lengthScaledPredicate) Match(a, b feature.Record) bool {
	if a.Strand != b.Strand || !sameSequence(a, b) {
		return false
	}
	tol := p.Padding(a)
	return interval.Overlaps(a.Start-tol, a.End+tol, b.Start, b.End)
}

type proximityPredicate struct {
	window int
}

func (p proximityPredicate) Match(a, b feature.Record) bool {
	return sameSequence(a, b) && interval.WithinWindow(a.Start, a.End, b.Start, b.End, p.window)
}

// Score returns the percent overlap of a and b.  It is only meaningful for
// pairs accepted by a Scored strategy.
func Score(a, b feature.Record) float64 {
	return interval.OverlapPercent(a.Start, a.End, b.Start, b.End)
}
