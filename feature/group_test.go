package feature

import (
	"testing"

	"github.com/grailbio/testutil/expect"
)

func rec(seq string, start, end int, id string) Record {
	return New(seq, start, end, StrandNone, id)
}

func TestGroupPartitions(t *testing.T) {
	records := []Record{
		rec("chr2", 10, 20, "a"),
		rec("chr1.1", 10, 20, "b"),
		rec("chr2.3", 30, 40, "c"),
		rec("chr1.2", 50, 60, "d"),
		rec("chr3", 1, 2, "e"),
		rec("chr2", 5, 6, "f"),
	}
	g := Group(records)
	expect.EQ(t, g.Keys(), []string{"chr2", "chr1", "chr3"})
	expect.EQ(t, g.Len(), 3)

	ids := func(rs []Record) (out []string) {
		for _, r := range rs {
			out = append(out, r.ID)
		}
		return
	}
	expect.EQ(t, ids(g.Get("chr2")), []string{"a", "c", "f"})
	expect.EQ(t, ids(g.Get("chr1")), []string{"b", "d"})
	expect.EQ(t, ids(g.Get("chr3")), []string{"e"})
	expect.EQ(t, len(g.Get("chrX")), 0)

	total := 0
	for _, k := range g.Keys() {
		total += len(g.Get(k))
	}
	expect.EQ(t, total, len(records))
}

func TestGroupEmpty(t *testing.T) {
	g := Group(nil)
	expect.EQ(t, g.Len(), 0)
	expect.EQ(t, len(UnionKeys(g, g)), 0)
}

func TestUnionKeys(t *testing.T) {
	a := Group([]Record{rec("chr1", 1, 2, ""), rec("chr3.1", 1, 2, "")})
	b := Group([]Record{rec("chr2", 1, 2, ""), rec("chr3.2", 1, 2, ""), rec("chr4", 1, 2, "")})
	expect.EQ(t, UnionKeys(a, b), []string{"chr1", "chr3", "chr2", "chr4"})
}

func TestGroupIndexes(t *testing.T) {
	records := []Record{rec("chr1", 1, 2, "a"), rec("chr2", 1, 2, "b"), rec("chr1.2", 3, 4, "c")}
	g := Group(records)
	expect.EQ(t, g.Indexes("chr1"), []int{0, 2})
	expect.EQ(t, g.Indexes("chr2"), []int{1})
	expect.EQ(t, g.Record(2).ID, "c")
	expect.EQ(t, len(g.Indexes("chr9")), 0)
}
