package feature

// Groups partitions a record collection by SeqKey.  Members of each group keep
// their original relative order, and keys are listed in order of first
// appearance so that iterating over a Groups is deterministic.
type Groups struct {
	records []Record
	keys    []string
	// members maps a key to positions in records.
	members map[string][]int
}

// Group builds a Groups from records.  It never copies or drops a record; the
// slice is retained.
func Group(records []Record) *Groups {
	g := &Groups{
		records: records,
		members: make(map[string][]int),
	}
	for i, r := range records {
		key := r.Key()
		if _, ok := g.members[key]; !ok {
			g.keys = append(g.keys, key)
		}
		g.members[key] = append(g.members[key], i)
	}
	return g
}

// Keys returns the normalized sequence names in first-appearance order.
func (g *Groups) Keys() []string {
	return g.keys
}

// Get returns the records on the given normalized sequence, or nil.
func (g *Groups) Get(key string) []Record {
	idx := g.members[key]
	if len(idx) == 0 {
		return nil
	}
	out := make([]Record, len(idx))
	for i, j := range idx {
		out[i] = g.records[j]
	}
	return out
}

// Indexes returns the positions, in the collection passed to Group, of the
// records on the given normalized sequence.
func (g *Groups) Indexes(key string) []int {
	return g.members[key]
}

// Record returns the i'th record of the collection passed to Group.
func (g *Groups) Record(i int) Record {
	return g.records[i]
}

// Len returns the number of groups.
func (g *Groups) Len() int {
	return len(g.keys)
}

// UnionKeys lists the keys of a followed by the keys present only in b.
func UnionKeys(a, b *Groups) []string {
	keys := make([]string, 0, a.Len()+b.Len())
	keys = append(keys, a.keys...)
	for _, k := range b.keys {
		if _, ok := a.members[k]; !ok {
			keys = append(keys, k)
		}
	}
	return keys
}
