// Package matchlog writes and reads the grouped-match report: one block per
// reference feature followed by every feature it matched.
//
//   Found 2 SINEs with matching transcripts (fuzzy, fraction 0.1):
//
//   🔹 SINE 1 → DS571145.1:1001-2000 |+|gene_id "s1";
//       Match 1: DS571145.1:900-1500 | gene_id "STRG.1";
//
// Read recovers the SINE and Match lines as feature records so a report can
// be searched again, e.g. with interval.ProximityIndex.
package matchlog

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/grailbio/base/log"
	"github.com/pkg/errors"
	"github.com/userisgone/UROP/encoding/textio"
	"github.com/userisgone/UROP/feature"
	"github.com/userisgone/UROP/interval"
	"github.com/userisgone/UROP/match"
)

const (
	// KindReference is the ID given to records read from reference lines.
	KindReference = "SINE"
	// KindMatch is the ID given to records read from match lines.
	KindMatch = "Match"

	referenceMarker = "🔹 SINE"
	arrow           = "→"
)

// WriteHits writes the hits of a Collect run.  description is appended to the
// summary line, e.g. "±10% tolerance".
func WriteHits(w io.Writer, hits []match.Hit, description string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Found %d SINEs with matching features (%s):\n\n", len(hits), description)
	for i, h := range hits {
		ref := h.Reference
		fmt.Fprintf(bw, "%s %d %s %s |%s|%s\n", referenceMarker, i+1, arrow, ref, ref.Strand, ref.Metadata)
		for j, m := range h.Matches {
			fmt.Fprintf(bw, "    %s %d: %s | %s\n", KindMatch, j+1, m, m.Metadata)
		}
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}

// WriteUnmatched writes the references a Collect run found no match for.
func WriteUnmatched(w io.Writer, unmatched []feature.Record, description string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d SINEs did not match any feature (%s):\n\n", len(unmatched), description)
	for i, r := range unmatched {
		fmt.Fprintf(bw, "Unmatched %d %s %s | %s | %s\n", i+1, arrow, r, r.Strand, r.Metadata)
	}
	return bw.Flush()
}

// Read parses reference and match lines.  Each record's ID is KindReference
// or KindMatch and its Metadata is the trimmed line.  Lines whose coordinates
// cannot be parsed are skipped.
func Read(r io.Reader) ([]feature.Record, error) {
	var records []feature.Record
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64<<10), 16<<20)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		var kind string
		switch {
		case strings.HasPrefix(line, referenceMarker):
			kind = KindReference
		case strings.HasPrefix(line, KindMatch):
			kind = KindMatch
		default:
			continue
		}
		region, ok := interval.FindRegion(line)
		if !ok {
			log.Debug.Printf("matchlog: no coordinates in %q", line)
			continue
		}
		rec := feature.New(region.SeqName, region.Start, region.End, feature.StrandNone, kind)
		rec.Metadata = line
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "matchlog")
	}
	return records, nil
}

// detectLines bounds how far Detect looks into a stream.
const detectLines = 100

// Detect reports whether r looks like a grouped-match report, i.e. one of
// its first lines is a SINE or Match line.
func Detect(r io.Reader) (bool, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64<<10), 16<<20)
	for n := 0; n < detectLines && scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, referenceMarker) || strings.HasPrefix(line, KindMatch+" ") {
			return true, nil
		}
	}
	return false, errors.Wrap(scanner.Err(), "matchlog")
}

// ReadFile reads a grouped-match report from path.
func ReadFile(ctx context.Context, path string) (records []feature.Record, err error) {
	err = textio.ReadFile(ctx, path, func(r io.Reader) (err error) {
		records, err = Read(r)
		return
	})
	if err == nil {
		log.Printf("%s: read %d SINE/Match lines", path, len(records))
	}
	return
}
