package featuretable

import (
	"strings"
	"testing"

	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
	"github.com/userisgone/UROP/feature"
)

const table = `>Feature gb|DS571145.1|
1001	1500	repeat_region
			rpt_family	SINE1
			note	full length
2300	2001	repeat_region
			rpt_family	EhSINE1
3000	3400	repeat_region
			rpt_family	LINE1
>Feature gb|DS571146.1|
<10	>90	repeat_region
			rpt_family	SINE1
12a	9x	gene
			rpt_family	SINE1
`

func TestRead(t *testing.T) {
	records, err := Read(strings.NewReader(table), DefaultOpts)
	assert.NoError(t, err)
	expect.EQ(t, records, []feature.Record{
		{SeqName: "DS571145.1", Start: 1001, End: 1500, Strand: feature.StrandForward, ID: "1", Length: 500},
		{SeqName: "DS571145.1", Start: 2001, End: 2300, Strand: feature.StrandReverse, ID: "2", Length: 300},
		{SeqName: "DS571146.1", Start: 10, End: 90, Strand: feature.StrandForward, ID: "3", Length: 81},
	})
}

func TestReadOtherFamily(t *testing.T) {
	opts := DefaultOpts
	opts.Family = "LINE"
	records, err := Read(strings.NewReader(table), opts)
	assert.NoError(t, err)
	assert.EQ(t, len(records), 1)
	expect.EQ(t, records[0].Start, 3000)
	expect.EQ(t, records[0].ID, "1")
}

func TestReadSingleBase(t *testing.T) {
	const single = ">Feature gb|DS571147.1|\n500\t500\trepeat_region\n\t\t\trpt_family\tSINE1\n"
	records, err := Read(strings.NewReader(single), DefaultOpts)
	assert.NoError(t, err)
	expect.EQ(t, records, []feature.Record{
		{SeqName: "DS571147.1", Start: 500, End: 500, Strand: feature.StrandReverse, ID: "1", Length: 1},
	})
}

func TestSeqIDFromHeader(t *testing.T) {
	expect.EQ(t, seqIDFromHeader(">Feature gb|DS571145.1|"), "DS571145.1")
	expect.EQ(t, seqIDFromHeader(">Feature ref|NC_000001.11|chr1"), "NC_000001.11")
	expect.EQ(t, seqIDFromHeader(">Feature DS1"), "DS1")
}
