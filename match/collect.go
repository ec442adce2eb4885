package match

import "github.com/userisgone/UROP/feature"

// Hit is a reference record with every query record it matched.
type Hit struct {
	Reference feature.Record
	Matches   []feature.Record
}

// Collection is the result of Comparator.Collect.
type Collection struct {
	// Hits lists references with at least one match, in reference order.
	Hits []Hit
	// Unmatched lists references with no match, in reference order.
	Unmatched []feature.Record
}

// NumMatches returns the total number of (reference, query) matches.
func (c Collection) NumMatches() int {
	n := 0
	for _, h := range c.Hits {
		n += len(h.Matches)
	}
	return n
}

// Collect finds, for every reference record, all query records on the same
// sequence accepted by the predicate, in query order.  Unlike Compare, a query
// record may match any number of references.  With the LengthScaled strategy
// the padding is taken from the reference record.
func (c *Comparator) Collect(reference, query []feature.Record) Collection {
	qg := feature.Group(query)
	var out Collection
	for _, ref := range reference {
		var matches []feature.Record
		for _, qi := range qg.Indexes(ref.Key()) {
			if q := qg.Record(qi); c.pred.Match(ref, q) {
				matches = append(matches, q)
			}
		}
		if len(matches) == 0 {
			out.Unmatched = append(out.Unmatched, ref)
			continue
		}
		out.Hits = append(out.Hits, Hit{Reference: ref, Matches: matches})
	}
	return out
}
