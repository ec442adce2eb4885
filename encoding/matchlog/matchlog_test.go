package matchlog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
	"github.com/userisgone/UROP/feature"
	"github.com/userisgone/UROP/match"
)

func hits() []match.Hit {
	s1 := feature.New("DS571145.1", 1001, 2000, feature.StrandForward, "s1")
	s1.Metadata = `gene_id "s1";`
	t1 := feature.New("DS571145.1", 900, 1500, feature.StrandForward, "t1")
	t1.Metadata = `gene_id "STRG.1";`
	t2 := feature.New("DS571145.1", 2050, 3000, feature.StrandForward, "t2")
	return []match.Hit{{Reference: s1, Matches: []feature.Record{t1, t2}}}
}

func TestWriteHits(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, WriteHits(&buf, hits(), "±10% tolerance"))
	expect.EQ(t, buf.String(), `Found 1 SINEs with matching features (±10% tolerance):

🔹 SINE 1 → DS571145.1:1001-2000 |+|gene_id "s1";
    Match 1: DS571145.1:900-1500 | gene_id "STRG.1";
    Match 2: DS571145.1:2050-3000 | 

`)
}

func TestWriteUnmatched(t *testing.T) {
	var buf bytes.Buffer
	r := feature.New("DS571146.1", 101, 300, feature.StrandReverse, "s3")
	assert.NoError(t, WriteUnmatched(&buf, []feature.Record{r}, "±10% tolerance"))
	expect.EQ(t, buf.String(), "1 SINEs did not match any feature (±10% tolerance):\n\nUnmatched 1 → DS571146.1:101-300 | - | \n")
}

func TestReadBack(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, WriteHits(&buf, hits(), "test"))
	records, err := Read(&buf)
	assert.NoError(t, err)
	assert.EQ(t, len(records), 3)
	expect.EQ(t, records[0].ID, KindReference)
	expect.EQ(t, records[0].String(), "DS571145.1:1001-2000")
	expect.EQ(t, records[0].Metadata, `🔹 SINE 1 → DS571145.1:1001-2000 |+|gene_id "s1";`)
	expect.EQ(t, records[1].ID, KindMatch)
	expect.EQ(t, records[1].String(), "DS571145.1:900-1500")
	expect.EQ(t, records[2].String(), "DS571145.1:2050-3000")
}

func TestReadSkipsNoise(t *testing.T) {
	records, err := Read(strings.NewReader("Found 0 SINEs\nMatch without coords\n🔹 SINE 1 → broken\n"))
	assert.NoError(t, err)
	expect.EQ(t, len(records), 0)
}

func TestDetect(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, WriteHits(&buf, hits(), "test"))
	for _, test := range []struct {
		text string
		want bool
	}{
		{buf.String(), true},
		{"SINE ID\tSeqID\tOrientation\tStart\tStop\tLength\ns1\tDS571145.1\t+\t1001\t2000\t1000\n", false},
		{"", false},
		{"Found 0 SINEs with matching features (test):\n\n", false},
	} {
		got, err := Detect(strings.NewReader(test.text))
		assert.NoError(t, err)
		expect.EQ(t, got, test.want, test.text)
	}
}
