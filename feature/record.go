package feature

import (
	"fmt"
	"strings"

	"github.com/grailbio/base/errors"
)

// Strand is the orientation of a feature relative to its sequence.
type Strand uint8

const (
	// StrandNone means the source did not report an orientation.
	StrandNone Strand = iota
	// StrandForward is '+'.
	StrandForward
	// StrandReverse is '-'.
	StrandReverse
)

// ParseStrand converts "+"/"-" to a Strand.  Anything else, including the
// empty string and GTF's ".", yields StrandNone.
func ParseStrand(s string) Strand {
	switch strings.TrimSpace(s) {
	case "+":
		return StrandForward
	case "-":
		return StrandReverse
	}
	return StrandNone
}

// String returns "+", "-", or "" for StrandNone.
func (s Strand) String() string {
	switch s {
	case StrandForward:
		return "+"
	case StrandReverse:
		return "-"
	}
	return ""
}

// Record is one feature.  Start and End are 1-based and inclusive, with
// Start <= End once the record has been through New.
type Record struct {
	// SeqName is the raw sequence identifier, version suffix included.
	SeqName string
	Start   int
	End     int
	Strand  Strand
	// ID is an opaque label carried through for reporting.
	ID string
	// Length is End-Start+1 unless the source supplied its own value.
	Length int
	// Metadata holds caller-specific text (GTF attributes, the original report
	// line, ...).  The matching code never looks at it.
	Metadata string
}

// New creates a Record, swapping start and end when the source lists a
// reverse-strand feature as end..start.  A swapped record without an explicit
// strand is marked StrandReverse.
func New(seqName string, start, end int, strand Strand, id string) Record {
	if start > end {
		start, end = end, start
		if strand == StrandNone {
			strand = StrandReverse
		}
	}
	return Record{
		SeqName: seqName,
		Start:   start,
		End:     end,
		Strand:  strand,
		ID:      id,
		Length:  end - start + 1,
	}
}

// Span returns End-Start+1, ignoring any source-supplied Length.
func (r Record) Span() int {
	return r.End - r.Start + 1
}

// Key returns the normalized sequence identifier, see SeqKey.
func (r Record) Key() string {
	return SeqKey(r.SeqName)
}

// Validate checks the invariants every record must satisfy before it reaches
// a comparison.
func (r Record) Validate() error {
	if r.SeqName == "" {
		return errors.E(errors.Invalid, "feature: empty sequence name")
	}
	if r.Start > r.End {
		return errors.E(errors.Invalid, fmt.Sprintf("feature %s: start %d > end %d", r.SeqName, r.Start, r.End))
	}
	if r.Length < 1 {
		return errors.E(errors.Invalid, fmt.Sprintf("feature %s:%d-%d: length %d", r.SeqName, r.Start, r.End, r.Length))
	}
	return nil
}

// String renders the record as "seq:start-end".
func (r Record) String() string {
	return fmt.Sprintf("%s:%d-%d", r.SeqName, r.Start, r.End)
}

// SeqKey strips the version suffix (everything from the first '.') from a
// sequence identifier.
func SeqKey(seqName string) string {
	if i := strings.IndexByte(seqName, '.'); i >= 0 {
		return seqName[:i]
	}
	return seqName
}
