// Package gtf reads feature lines (by default "transcript") from GTF
// annotations into feature records.  The attribute column is kept verbatim as
// the record's Metadata.
package gtf

import (
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

// gtfRecord will store data read from one line of the GTF file.  Coordinates
// are kept as text so that malformed lines can be dropped instead of failing
// the whole read.
type gtfRecord struct {
	Chrom    string
	Source   string
	Molecule string
	Start    string
	Stop     string
	Score    string // unused floating point value, but may be "."
	Strand   string
	Frame    string
	Fields   string
}

// Opts controls which lines become records.
type Opts struct {
	// FeatureType is the value of the third column to keep.  Empty keeps
	// every line.
	FeatureType string
}

// DefaultOpts keeps transcript lines only.
var DefaultOpts = Opts{FeatureType: "transcript"}

// Stats counts the lines Read saw.
type Stats struct {
	Lines   int
	Kept    int
	Dropped int
}

// ParseAttributes parses the attribute column ("key \"value\"; ...") into a
// map.
func ParseAttributes(info string) map[string]string {
	parsed := map[string]string{}
	for _, field := range strings.Split(strings.TrimSpace(info), ";") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		pair := strings.SplitN(field, " ", 2)
		if len(pair) != 2 {
			parsed[pair[0]] = ""
			continue
		}
		parsed[pair[0]] = strings.Trim(strings.TrimSpace(pair[1]), "\"")
	}
	return parsed
}

func recordID(attrs map[string]string) string {
	if id := attrs["transcript_id"]; id != "" {
		return id
	}
	return attrs["gene_id"]
}

// Read parses GTF text from r.
func Read(r io.Reader, opts Opts) ([]feature.Record, Stats, error) {
	var stats Stats
	scanner := tsv.NewReader(r)
	scanner.Comment = '#'
	scanner.LazyQuotes = true
	var (
		records []feature.Record
		line    gtfRecord
	)
	for {
		if err := scanner.Read(&line); err != nil {
			if err == io.EOF {
				break
			}
			return nil, stats, errors.Wrapf(err, "gtf: line %d", stats.Lines+1)
		}
		stats.Lines++
		if opts.FeatureType != "" && line.Molecule != opts.FeatureType {
			continue
		}
		start, err1 := strconv.Atoi(line.Start)
		stop, err2 := strconv.Atoi(line.Stop)
		if err1 != nil || err2 != nil || line.Chrom == "" {
			log.Debug.Printf("gtf: dropping line %d: bad coordinates %q-%q", stats.Lines, line.Start, line.Stop)
			stats.Dropped++
			continue
		}
		rec := feature.New(line.Chrom, start, stop, feature.ParseStrand(line.Strand), recordID(ParseAttributes(line.Fields)))
		rec.Metadata = line.Fields
		records = append(records, rec)
		stats.Kept++
	}
	return records, stats, nil
}

// ReadFile reads the GTF at path, which may be compressed.
func ReadFile(ctx context.Context, path string, opts Opts) (records []feature.Record, err error) {
	var stats Stats
	err = textio.ReadFile(ctx, path, func(r io.Reader) (err error) {
		records, stats, err = Read(r, opts)
		return
	})
	if err == nil {
		log.Printf("%s: read %d lines, kept %d %q records, dropped %d", path, stats.Lines, stats.Kept, opts.FeatureType, stats.Dropped)
	}
	return
}
