package match

import (
	"fmt"
	"strings"

	"github.com/grailbio/base/errors"
)

// Strategy selects the predicate used to decide whether two records
// correspond.
type Strategy int

const (
	// EndpointTolerance matches when the starts, or the ends, differ by at
	// most Opts.Tolerance.
	EndpointTolerance Strategy = iota
	// Overlap matches when the closed intervals share a position.
	Overlap
	// LengthScaled pads the left-hand (reference) record by
	// floor(length*Opts.Fraction) on both sides before testing overlap, and
	// also requires equal strands.
	LengthScaled
	// Proximity matches when any endpoint of one record is at most
	// Opts.Window from any endpoint of the other.
	Proximity
)

var strategyNames = []string{
	EndpointTolerance: "endpoint",
	Overlap:           "overlap",
	LengthScaled:      "fuzzy",
	Proximity:         "proximity",
}

// String returns the flag spelling of the strategy.
func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
	return strategyNames[s]
}

// ParseStrategy converts a flag value ("endpoint", "overlap", "fuzzy",
// "proximity") to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range strategyNames {
		if n == name {
			return Strategy(i), nil
		}
	}
	return 0, errors.E(errors.Invalid, fmt.Sprintf("match: unknown strategy %q (want one of %s)", name, strings.Join(strategyNames, ", ")))
}

// Scored reports whether pairs found with s get an overlap percentage.  The
// endpoint and proximity strategies do not guarantee that the two intervals
// overlap, so their pairs are reported by coordinates only.
func (s Strategy) Scored() bool {
	return s == Overlap || s == LengthScaled
}

// Policy selects which right-hand candidate a left-hand record is paired with
// when more than one is acceptable.
type Policy int

const (
	// PolicyFirst pairs with the first acceptable candidate in input order.
	PolicyFirst Policy = iota
	// PolicyBestOverlap pairs with the acceptable candidate that has the
	// highest overlap percentage, the earliest one on ties.  The left-hand
	// scan is still greedy, so the overall pairing is not a global optimum.
	PolicyBestOverlap
)

var policyNames = []string{
	PolicyFirst:       "first",
	PolicyBestOverlap: "best",
}

// String returns the flag spelling of the policy.
func (p Policy) String() string {
	if p < 0 || int(p) >= len(policyNames) {
		return fmt.Sprintf("Policy(%d)", int(p))
	}
	return policyNames[p]
}

// ParsePolicy converts "first" or "best" to a Policy.
func ParsePolicy(name string) (Policy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range policyNames {
		if n == name {
			return Policy(i), nil
		}
	}
	return 0, errors.E(errors.Invalid, fmt.Sprintf("match: unknown policy %q (want first or best)", name))
}

// Opts configures a comparison.
type Opts struct {
	Strategy Strategy
	// Tolerance is the maximum start-to-start or end-to-end distance for
	// EndpointTolerance.
	Tolerance int
	// Fraction of the reference record's length used as padding by
	// LengthScaled.  Must be in (0, 1].
	Fraction float64
	// Window is the maximum endpoint distance for Proximity.
	Window int
	// Policy is the candidate choice rule.
	Policy Policy
}

// DefaultOpts sets the default values to Opts.
var DefaultOpts = Opts{
	Strategy:  EndpointTolerance,
	Tolerance: 100,
	Fraction:  0.10,
	Window:    1000,
	Policy:    PolicyFirst,
}

// Validate checks the options before any matching begins.  All numeric
// parameters are checked, whichever strategy is selected.
func (o Opts) Validate() error {
	if o.Strategy < EndpointTolerance || o.Strategy > Proximity {
		return errors.E(errors.Invalid, fmt.Sprintf("match: unknown strategy %v", o.Strategy))
	}
	if o.Policy < PolicyFirst || o.Policy > PolicyBestOverlap {
		return errors.E(errors.Invalid, fmt.Sprintf("match: unknown policy %v", o.Policy))
	}
	if o.Tolerance < 0 {
		return errors.E(errors.Invalid, fmt.Sprintf("match: negative tolerance %d", o.Tolerance))
	}
	if !(o.Fraction > 0 && o.Fraction <= 1) {
		return errors.E(errors.Invalid, fmt.Sprintf("match: fraction %v not in (0, 1]", o.Fraction))
	}
	if o.Window < 0 {
		return errors.E(errors.Invalid, fmt.Sprintf("match: negative window %d", o.Window))
	}
	return nil
}
