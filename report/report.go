// Package report formats comparison results as tab-separated text.
package report

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/grailbio/base/log"
	"github.com/grailbio/base/tsv"
	"github.com/userisgone/UROP/encoding/textio"
	"github.com/userisgone/UROP/feature"
	"github.com/userisgone/UROP/match"
)

// Section titles.  They are written as single-column lines.
const (
	commonTitle = "=== COMMON SINEs ==="
	onlyTitle   = "=== ONLY IN %s ==="
)

// Opts names the two inputs in section titles.
type Opts struct {
	LeftName  string
	RightName string
}

// DefaultOpts matches the historical report layout.
var DefaultOpts = Opts{LeftName: "FILE 1", RightName: "FILE 2"}

// FormatPercent renders an overlap percentage with two decimals, e.g.
// "33.77%".
func FormatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', 2, 64) + "%"
}

func writeRecordColumns(out *tsv.Writer, r feature.Record) {
	out.WriteString(r.Strand.String())
	out.WriteInt64(int64(r.Start))
	out.WriteInt64(int64(r.End))
	out.WriteString(r.ID)
}

func writeOnly(out *tsv.Writer, title string, records []feature.Record) error {
	out.WriteString(title)
	if err := out.EndLine(); err != nil {
		return err
	}
	out.WriteString("SeqID\tOrientation\tStart\tStop\tLength\tSINEID")
	if err := out.EndLine(); err != nil {
		return err
	}
	for _, r := range records {
		out.WriteString(r.Key())
		out.WriteString(r.Strand.String())
		out.WriteInt64(int64(r.Start))
		out.WriteInt64(int64(r.End))
		out.WriteInt64(int64(r.Length))
		out.WriteString(r.ID)
		if err := out.EndLine(); err != nil {
			return err
		}
	}
	return nil
}

// Write writes the matched pairs, then the records unique to each side.  The
// SeqID column always holds the normalized sequence name (see feature.SeqKey).
// The %Overlap column is present only for strategies that score their pairs.
func Write(w io.Writer, res match.Result, opts Opts) error {
	out := tsv.NewWriter(w)
	out.WriteString(commonTitle)
	if err := out.EndLine(); err != nil {
		return err
	}
	out.WriteString("SeqID\tOrientation1\tStart1\tStop1\tSINEID1\tOrientation2\tStart2\tStop2\tSINEID2")
	if res.Strategy.Scored() {
		out.WriteString("%Overlap")
	}
	if err := out.EndLine(); err != nil {
		return err
	}
	for _, p := range res.Matched {
		out.WriteString(p.Left.Key())
		writeRecordColumns(out, p.Left)
		writeRecordColumns(out, p.Right)
		if p.HasScore {
			out.WriteString(FormatPercent(p.Percent))
		}
		if err := out.EndLine(); err != nil {
			return err
		}
	}
	if err := writeOnly(out, fmt.Sprintf(onlyTitle, opts.LeftName), res.UnmatchedLeft); err != nil {
		return err
	}
	if err := writeOnly(out, fmt.Sprintf(onlyTitle, opts.RightName), res.UnmatchedRight); err != nil {
		return err
	}
	return out.Flush()
}

// WriteFile writes the report to path (gzip-compressed if path ends in .gz)
// and logs the counts.
func WriteFile(ctx context.Context, path string, res match.Result, opts Opts) error {
	if err := textio.WriteFile(ctx, path, func(w io.Writer) error {
		return Write(w, res, opts)
	}); err != nil {
		return err
	}
	log.Printf("%s: matched %d, unique to %s %d, unique to %s %d",
		path, len(res.Matched), opts.LeftName, len(res.UnmatchedLeft), opts.RightName, len(res.UnmatchedRight))
	return nil
}

// WriteRecords writes one line per record: sequence, start, stop, strand, ID
// and metadata.
func WriteRecords(w io.Writer, records []feature.Record) error {
	out := tsv.NewWriter(w)
	out.WriteString("SeqID\tStart\tStop\tOrientation\tID\tInfo")
	if err := out.EndLine(); err != nil {
		return err
	}
	for _, r := range records {
		out.WriteString(r.SeqName)
		out.WriteInt64(int64(r.Start))
		out.WriteInt64(int64(r.End))
		out.WriteString(r.Strand.String())
		out.WriteString(r.ID)
		out.WriteString(r.Metadata)
		if err := out.EndLine(); err != nil {
			return err
		}
	}
	return out.Flush()
}
