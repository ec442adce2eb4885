package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/userisgone/UROP/feature"
	"github.com/userisgone/UROP/interval"
	"github.com/userisgone/UROP/report"
)

type nearbyFlags struct {
	load   *loadFlags
	region string
	window int
	tsv    bool
}

func writeLines(w io.Writer, records []feature.Record) error {
	bw := bufio.NewWriter(w)
	for _, r := range records {
		if r.Metadata != "" {
			fmt.Fprintf(bw, "[%s] %s\n", r.ID, r.Metadata)
		} else {
			fmt.Fprintf(bw, "[%s] %s %s\n", r.ID, r, r.Strand)
		}
	}
	return bw.Flush()
}

// nearby prints the features of path that lie within flags.window bases of
// flags.region.
func nearby(ctx context.Context, flags nearbyFlags, path string, stdout io.Writer) error {
	if flags.window < 0 {
		return errors.E(errors.Invalid, fmt.Sprintf("nearby: window must be >= 0, got %d", flags.window))
	}
	region, err := interval.ParseRegion(flags.region)
	if err != nil {
		return err
	}
	records, err := load(ctx, path, *flags.load)
	if err != nil {
		return err
	}
	index := interval.NewProximityIndex(records)
	hits := index.Nearby(region.SeqName, region.Start, region.End, flags.window)
	log.Printf("%s: %d of %d features within %d bp of %v", path, len(hits), index.Len(), flags.window, region)
	if flags.tsv {
		return report.WriteRecords(stdout, hits)
	}
	return writeLines(stdout, hits)
}
