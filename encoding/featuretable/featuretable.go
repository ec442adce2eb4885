// Package featuretable extracts repeat features from NCBI five-column feature
// tables:
//
//   >Feature gb|DS571145.1|
//   1001	1500	repeat_region
//   			rpt_family	SINE1
//   2300	2001	repeat_region
//   			rpt_family	SINE1
//
// A location line gives the feature's start and stop (stop < start on the
// reverse strand; '<' and '>' partial markers are stripped).  A feature is
// emitted when a following rpt_family qualifier names the wanted family.
package featuretable

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/grailbio/base/log"
	"github.com/pkg/errors"
	"github.com/userisgone/UROP/encoding/textio"
	"github.com/userisgone/UROP/feature"
)

// Opts controls extraction.
type Opts struct {
	// Family is matched case-insensitively as a substring of the rpt_family
	// qualifier value.
	Family string
	// Qualifier is the qualifier key that carries the family.
	Qualifier string
}

// DefaultOpts extracts SINE1 repeats.
var DefaultOpts = Opts{
	Family:    "sine1",
	Qualifier: "rpt_family",
}

// seqIDFromHeader returns the accession of a ">Feature" line, which is the
// second-to-last '|'-separated field ("gb|DS571145.1|" -> "DS571145.1").
func seqIDFromHeader(line string) string {
	fields := strings.Split(line, "|")
	if len(fields) < 2 {
		return strings.TrimSpace(strings.TrimPrefix(line, ">Feature"))
	}
	return strings.TrimSpace(fields[len(fields)-2])
}

func parsePos(s string) (int, error) {
	return strconv.Atoi(strings.TrimLeft(strings.TrimSpace(s), "<>"))
}

func isLocationLine(line string) bool {
	c := line[0]
	return (c >= '0' && c <= '9') || c == '<' || c == '>'
}

// Read scans a feature table and returns the matching features in file order.
// IDs are assigned as a 1-based counter over emitted features.
func Read(r io.Reader, opts Opts) ([]feature.Record, error) {
	family := strings.ToLower(opts.Family)
	qualifier := strings.ToLower(opts.Qualifier)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64<<10), 16<<20)

	var (
		records []feature.Record
		seqID   string
		// Location of the current feature; valid iff haveLoc.
		start, stop int
		haveLoc     bool
	)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">Feature") {
			seqID = seqIDFromHeader(line)
			haveLoc = false
			continue
		}
		if isLocationLine(line) {
			parts := strings.Split(line, "\t")
			if len(parts) < 2 {
				continue
			}
			var err1, err2 error
			start, err1 = parsePos(parts[0])
			stop, err2 = parsePos(parts[1])
			haveLoc = err1 == nil && err2 == nil
			continue
		}
		if !haveLoc {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) < 2 {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(parts[0]))
		value := strings.ToLower(strings.TrimSpace(parts[1]))
		if !strings.Contains(key, qualifier) || !strings.Contains(value, family) {
			continue
		}
		rec := feature.New(seqID, start, stop, feature.StrandForward, strconv.Itoa(len(records)+1))
		// Single-base features count as reverse, as in the NCBI-derived lists.
		if start >= stop {
			rec.Strand = feature.StrandReverse
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "featuretable")
	}
	return records, nil
}

// ReadFile extracts features from the feature table at path.
func ReadFile(ctx context.Context, path string, opts Opts) (records []feature.Record, err error) {
	err = textio.ReadFile(ctx, path, func(r io.Reader) (err error) {
		records, err = Read(r, opts)
		return
	})
	if err == nil {
		log.Printf("%s: extracted %d %s features", path, len(records), opts.Family)
	}
	return
}
