package match

import (
	"fmt"
	"sort"
	"strconv"

	farm "github.com/dgryski/go-farm"
	"github.com/userisgone/UROP/feature"
)

// Pair is one matched left/right record pair.
type Pair struct {
	Left  feature.Record
	Right feature.Record
	// Percent is the overlap percentage.  It is valid only if HasScore is set,
	// i.e. the pair was found by a Scored strategy.
	Percent  float64
	HasScore bool
}

// Result is the classification produced by Comparator.Compare.
//
// Matched is in discovery order: groups in order of the first appearance of
// their sequence in the left collection (then sequences only present on the
// right), and left-hand records in input order within a group.
// UnmatchedLeft and UnmatchedRight keep the order of their source collection.
type Result struct {
	Strategy       Strategy
	Matched        []Pair
	UnmatchedLeft  []feature.Record
	UnmatchedRight []feature.Record
}

// String summarizes the counts.
func (r Result) String() string {
	return fmt.Sprintf("strategy=%v matched=%d unmatched_left=%d unmatched_right=%d",
		r.Strategy, len(r.Matched), len(r.UnmatchedLeft), len(r.UnmatchedRight))
}

func appendRecord(buf []byte, r feature.Record) []byte {
	buf = append(buf, r.SeqName...)
	buf = append(buf, 0)
	buf = strconv.AppendInt(buf, int64(r.Start), 10)
	buf = append(buf, 0)
	buf = strconv.AppendInt(buf, int64(r.End), 10)
	buf = append(buf, 0, byte(r.Strand), 0)
	buf = append(buf, r.ID...)
	buf = append(buf, 0)
	buf = strconv.AppendInt(buf, int64(r.Length), 10)
	buf = append(buf, 0)
	buf = append(buf, r.Metadata...)
	return append(buf, 0)
}

// Fingerprint returns a digest of the ordered content of r.  Two runs over the
// same inputs with the same options produce the same fingerprint.
func (r Result) Fingerprint() uint64 {
	var buf []byte
	buf = append(buf, r.Strategy.String()...)
	buf = append(buf, '\n')
	for _, p := range r.Matched {
		buf = appendRecord(buf, p.Left)
		buf = appendRecord(buf, p.Right)
		if p.HasScore {
			buf = strconv.AppendFloat(buf, p.Percent, 'g', -1, 64)
		}
		buf = append(buf, '\n')
	}
	buf = append(buf, '\n')
	for _, rec := range r.UnmatchedLeft {
		buf = appendRecord(buf, rec)
	}
	buf = append(buf, '\n')
	for _, rec := range r.UnmatchedRight {
		buf = appendRecord(buf, rec)
	}
	return farm.Fingerprint64(buf)
}

// Comparator runs comparisons with a fixed, validated configuration.  It holds
// no per-run state; one Comparator may serve concurrent Compare calls.
type Comparator struct {
	opts Opts
	pred Predicate
}

// NewComparator validates opts and builds a Comparator.  Configuration errors
// are reported here, before any matching.
func NewComparator(opts Opts) (*Comparator, error) {
	pred, err := NewPredicate(opts)
	if err != nil {
		return nil, err
	}
	return &Comparator{opts: opts, pred: pred}, nil
}

// Opts returns the comparator's configuration.
func (c *Comparator) Opts() Opts {
	return c.opts
}

// Predicate returns the predicate selected by the configured strategy.
func (c *Comparator) Predicate() Predicate {
	return c.pred
}

func (c *Comparator) newPair(a, b feature.Record) Pair {
	p := Pair{Left: a, Right: b}
	if c.opts.Strategy.Scored() {
		p.Percent = Score(a, b)
		p.HasScore = true
	}
	return p
}

// pick returns the position in candidates of the record a is paired with, or
// -1.  consumed[j] marks candidates[j] as already paired.
func (c *Comparator) pick(a feature.Record, right *feature.Groups, candidates []int, consumed []bool) int {
	best := -1
	bestScore := -1.0
	for j, ri := range candidates {
		if consumed[j] {
			continue
		}
		b := right.Record(ri)
		if !c.pred.Match(a, b) {
			continue
		}
		if c.opts.Policy == PolicyFirst {
			return j
		}
		if s := Score(a, b); s > bestScore {
			best, bestScore = j, s
		}
	}
	return best
}

// Compare classifies left and right.  Every left record ends up in exactly
// one of Matched or UnmatchedLeft, and every right record in exactly one of
// Matched or UnmatchedRight.
func (c *Comparator) Compare(left, right []feature.Record) Result {
	lg, rg := feature.Group(left), feature.Group(right)
	res := Result{Strategy: c.opts.Strategy}
	var onlyLeft, onlyRight []int
	for _, key := range feature.UnionKeys(lg, rg) {
		candidates := rg.Indexes(key)
		consumed := make([]bool, len(candidates))
		for _, li := range lg.Indexes(key) {
			a := lg.Record(li)
			j := c.pick(a, rg, candidates, consumed)
			if j < 0 {
				onlyLeft = append(onlyLeft, li)
				continue
			}
			consumed[j] = true
			res.Matched = append(res.Matched, c.newPair(a, rg.Record(candidates[j])))
		}
		for j, used := range consumed {
			if !used {
				onlyRight = append(onlyRight, candidates[j])
			}
		}
	}
	res.UnmatchedLeft = selectRecords(left, onlyLeft)
	res.UnmatchedRight = selectRecords(right, onlyRight)
	return res
}

// selectRecords returns records[idx...] in increasing index order.
func selectRecords(records []feature.Record, idx []int) []feature.Record {
	if len(idx) == 0 {
		return nil
	}
	sort.Ints(idx)
	out := make([]feature.Record, len(idx))
	for i, j := range idx {
		out[i] = records[j]
	}
	return out
}
