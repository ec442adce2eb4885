package interval

import (
	"sort"

	itree "github.com/biogo/store/interval"
	"github.com/userisgone/UROP/feature"
)

// treeEntry adapts one record to the biogo interval tree.  The tree works on
// half-open ranges, so the closed [Start, End] is stored as [Start, End+1).
type treeEntry struct {
	idx   int
	start int
	limit int
}

func (e treeEntry) Overlap(b itree.IntRange) bool {
	return e.start < b.End && b.Start < e.limit
}

func (e treeEntry) ID() uintptr { return uintptr(e.idx) }

func (e treeEntry) Range() itree.IntRange {
	return itree.IntRange{Start: e.start, End: e.limit}
}

// treeQuery is a half-open search range.
type treeQuery struct {
	start, limit int
}

func (q treeQuery) Overlap(b itree.IntRange) bool {
	return q.start < b.End && b.Start < q.limit
}

// ProximityIndex answers "which features lie within a window of this region"
// over one collection.  Lookups use the exact sequence name; version suffixes
// are not stripped.  A ProximityIndex is immutable once built and may be
// queried concurrently.
type ProximityIndex struct {
	records []feature.Record
	trees   map[string]*itree.IntTree
}

// NewProximityIndex indexes records.  The slice is retained, not copied.
func NewProximityIndex(records []feature.Record) *ProximityIndex {
	idx := &ProximityIndex{
		records: records,
		trees:   make(map[string]*itree.IntTree),
	}
	for i, r := range records {
		tree := idx.trees[r.SeqName]
		if tree == nil {
			tree = &itree.IntTree{}
			idx.trees[r.SeqName] = tree
		}
		start, end := r.Start, r.End
		if start > end {
			start, end = end, start
		}
		// IDs are unique record indexes, so Insert cannot fail.
		if err := tree.Insert(treeEntry{idx: i, start: start, limit: end + 1}, true); err != nil {
			panic(err)
		}
	}
	for _, tree := range idx.trees {
		tree.AdjustRanges()
	}
	return idx
}

// Len returns the number of indexed records.
func (p *ProximityIndex) Len() int {
	return len(p.records)
}

// Nearby returns every record on seqName with an endpoint at most window away
// from qStart or qEnd, in the order the records were given to
// NewProximityIndex.  It returns nil when nothing is close or the sequence is
// unknown.
func (p *ProximityIndex) Nearby(seqName string, qStart, qEnd, window int) []feature.Record {
	tree := p.trees[seqName]
	if tree == nil || window < 0 {
		return nil
	}
	// Any record passing WithinWindow intersects [lo-window, hi+window], so the
	// tree only has to produce candidates from that range.
	lo, hi := min(qStart, qEnd), max(qStart, qEnd)
	candidates := tree.Get(treeQuery{start: lo - window, limit: hi + window + 1})
	hits := make([]int, 0, len(candidates))
	for _, c := range candidates {
		i := c.(treeEntry).idx
		r := p.records[i]
		if WithinWindow(r.Start, r.End, qStart, qEnd, window) {
			hits = append(hits, i)
		}
	}
	if len(hits) == 0 {
		return nil
	}
	sort.Ints(hits)
	out := make([]feature.Record, len(hits))
	for i, h := range hits {
		out[i] = p.records[h]
	}
	return out
}

// Nearby is a one-shot form of ProximityIndex.Nearby that scans records
// directly.
func Nearby(records []feature.Record, seqName string, qStart, qEnd, window int) []feature.Record {
	var out []feature.Record
	for _, r := range records {
		if r.SeqName != seqName {
			continue
		}
		if WithinWindow(r.Start, r.End, qStart, qEnd, window) {
			out = append(out, r)
		}
	}
	return out
}
