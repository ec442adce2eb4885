package report

import (
	"bytes"
	"io"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/testutil"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
	"github.com/userisgone/UROP/encoding/textio"
	"github.com/userisgone/UROP/feature"
	"github.com/userisgone/UROP/match"
)

func compare(t *testing.T, s match.Strategy) match.Result {
	opts := match.DefaultOpts
	opts.Strategy = s
	c, err := match.NewComparator(opts)
	assert.NoError(t, err)
	return c.Compare(
		[]feature.Record{
			feature.New("chr1.1", 100, 200, feature.StrandForward, "a"),
			feature.New("chr2.3", 10, 20, feature.StrandNone, "c"),
		},
		[]feature.Record{
			feature.New("chr1.2", 250, 150, feature.StrandNone, "b"),
			feature.New("chr3", 5, 9, feature.StrandForward, "d"),
		})
}

func TestWriteOverlap(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, Write(&buf, compare(t, match.Overlap), DefaultOpts))
	expect.EQ(t, buf.String(), strings.Join([]string{
		"=== COMMON SINEs ===",
		"SeqID\tOrientation1\tStart1\tStop1\tSINEID1\tOrientation2\tStart2\tStop2\tSINEID2\t%Overlap",
		"chr1\t+\t100\t200\ta\t-\t150\t250\tb\t33.77%",
		"=== ONLY IN FILE 1 ===",
		"SeqID\tOrientation\tStart\tStop\tLength\tSINEID",
		"chr2\t\t10\t20\t11\tc",
		"=== ONLY IN FILE 2 ===",
		"SeqID\tOrientation\tStart\tStop\tLength\tSINEID",
		"chr3\t+\t5\t9\t5\td",
		""}, "\n"))
}

func TestWriteEndpointHasNoScore(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, Write(&buf, compare(t, match.EndpointTolerance), Opts{LeftName: "A", RightName: "B"}))
	lines := strings.Split(buf.String(), "\n")
	expect.EQ(t, lines[1], "SeqID\tOrientation1\tStart1\tStop1\tSINEID1\tOrientation2\tStart2\tStop2\tSINEID2")
	expect.EQ(t, lines[2], "chr1\t+\t100\t200\ta\t-\t150\t250\tb")
	expect.EQ(t, lines[3], "=== ONLY IN A ===")
}

func TestFormatPercent(t *testing.T) {
	expect.EQ(t, FormatPercent(100), "100.00%")
	expect.EQ(t, FormatPercent(51.0/151.0*100), "33.77%")
	expect.EQ(t, FormatPercent(0), "0.00%")
}

func TestWriteFileGzip(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	ctx := vcontext.Background()
	path := filepath.Join(tempDir, "report.tsv.gz")
	res := compare(t, match.Overlap)
	assert.NoError(t, WriteFile(ctx, path, res, DefaultOpts))

	var want bytes.Buffer
	assert.NoError(t, Write(&want, res, DefaultOpts))
	var got []byte
	assert.NoError(t, textio.ReadFile(ctx, path, func(r io.Reader) (err error) {
		got, err = ioutil.ReadAll(r)
		return
	}))
	expect.EQ(t, string(got), want.String())
}

func TestWriteRecords(t *testing.T) {
	r := feature.New("DS572490.1", 890, 1120, feature.StrandNone, "SINE")
	r.Metadata = "🔹 SINE 1 → DS572490.1:890-1120 |+|x"
	var buf bytes.Buffer
	assert.NoError(t, WriteRecords(&buf, []feature.Record{r}))
	expect.EQ(t, buf.String(), "SeqID\tStart\tStop\tOrientation\tID\tInfo\nDS572490.1\t890\t1120\t\tSINE\t🔹 SINE 1 → DS572490.1:890-1120 |+|x\n")
}
