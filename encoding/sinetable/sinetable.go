// Package sinetable reads and writes tab-separated SINE lists: one feature per
// row, with a header naming the columns.  Typical headers are
//   SINE ID  SeqID  Orientation  Start  Stop  Length
// or, for curated lists,
//   SINE ID  EHA2 Accession  Start  End  ...
// Header cells are matched case-insensitively with spaces removed, so "SINE ID"
// and "sineid" are the same column.  Lines before the header are skipped.
package sinetable

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/grailbio/base/log"
	"github.com/grailbio/base/tsv"
	"github.com/pkg/errors"
	"github.com/userisgone/UROP/encoding/textio"
	"github.com/userisgone/UROP/feature"
)

// headerKeywords identify the header line.
var headerKeywords = []string{"seqid", "start", "stop", "end", "orientation"}

// Column names, after normalization.  Each slice is tried in order.
var (
	seqColumns    = []string{"seqid", "eha2accession"}
	startColumns  = []string{"start"}
	endColumns    = []string{"stop", "end"}
	strandColumns = []string{"orientation", "strand"}
	idColumns     = []string{"sineid", "id"}
	lengthColumns = []string{"length"}
)

// Stats counts what Read did with the data lines it saw.
type Stats struct {
	Rows    int
	Dropped int
}

func normalizeHeader(cell string) string {
	return strings.ToLower(strings.Replace(strings.TrimSpace(cell), " ", "", -1))
}

func isHeader(line string) bool {
	line = strings.ToLower(line)
	for _, k := range headerKeywords {
		if strings.Contains(line, k) {
			return true
		}
	}
	return false
}

type columns map[string]int

func (c columns) find(names []string) int {
	for _, n := range names {
		if i, ok := c[n]; ok {
			return i
		}
	}
	return -1
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// Read parses a SINE list.  Rows whose start or end is not an integer, or
// that lack a sequence ID, are dropped and counted in Stats.Dropped.
func Read(r io.Reader) ([]feature.Record, Stats, error) {
	var stats Stats
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64<<10), 16<<20)

	var cols columns
	for scanner.Scan() {
		line := scanner.Text()
		if !isHeader(line) {
			continue
		}
		cols = columns{}
		for i, c := range strings.Split(strings.TrimSpace(line), "\t") {
			if _, dup := cols[normalizeHeader(c)]; !dup {
				cols[normalizeHeader(c)] = i
			}
		}
		break
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, errors.Wrap(err, "sinetable: read header")
	}
	if cols == nil {
		return nil, stats, nil
	}
	var (
		seqCol    = cols.find(seqColumns)
		startCol  = cols.find(startColumns)
		endCol    = cols.find(endColumns)
		strandCol = cols.find(strandColumns)
		idCol     = cols.find(idColumns)
		lengthCol = cols.find(lengthColumns)
	)
	if startCol < 0 || endCol < 0 {
		return nil, stats, errors.Errorf("sinetable: header lacks start/stop columns: %v", cols)
	}

	var records []feature.Record
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		stats.Rows++
		row := strings.Split(line, "\t")
		start, err1 := strconv.Atoi(cell(row, startCol))
		end, err2 := strconv.Atoi(cell(row, endCol))
		seq := cell(row, seqCol)
		if err1 != nil || err2 != nil || seq == "" {
			log.Debug.Printf("sinetable: dropping data line %d: %q", lineno, line)
			stats.Dropped++
			continue
		}
		rec := feature.New(seq, start, end, feature.ParseStrand(cell(row, strandCol)), cell(row, idCol))
		if n, err := strconv.Atoi(cell(row, lengthCol)); err == nil && n > 0 {
			rec.Length = n
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, errors.Wrap(err, "sinetable: read rows")
	}
	return records, stats, nil
}

// ReadFile reads a SINE list from path, which may be compressed.
func ReadFile(ctx context.Context, path string) (records []feature.Record, err error) {
	var stats Stats
	err = textio.ReadFile(ctx, path, func(r io.Reader) (err error) {
		records, stats, err = Read(r)
		return
	})
	if err == nil {
		log.Printf("%s: read %d SINEs, dropped %d malformed rows", path, len(records), stats.Dropped)
	}
	return
}

// Header is the header line written by Write.
const Header = "SINE ID\tSeqID\tOrientation\tStart\tStop\tLength"

// Write writes records as a SINE list that Read accepts.
func Write(w io.Writer, records []feature.Record) error {
	out := tsv.NewWriter(w)
	out.WriteString(Header)
	if err := out.EndLine(); err != nil {
		return err
	}
	for _, r := range records {
		out.WriteString(r.ID)
		out.WriteString(r.SeqName)
		out.WriteString(r.Strand.String())
		out.WriteInt64(int64(r.Start))
		out.WriteInt64(int64(r.End))
		out.WriteInt64(int64(r.Length))
		if err := out.EndLine(); err != nil {
			return err
		}
	}
	return out.Flush()
}

// WriteFile writes records to path.
func WriteFile(ctx context.Context, path string, records []feature.Record) error {
	return textio.WriteFile(ctx, path, func(w io.Writer) error {
		return Write(w, records)
	})
}
