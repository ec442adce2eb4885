package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/grailbio/base/log"
	"github.com/userisgone/UROP/encoding/matchlog"
	"github.com/userisgone/UROP/encoding/textio"
	"github.com/userisgone/UROP/match"
)

type collectFlags struct {
	match     *matchFlags
	load      *loadFlags
	out       string
	unmatched string
}

// describe renders the matching rule for report headers.
func describe(opts match.Opts) string {
	switch opts.Strategy {
	case match.EndpointTolerance:
		return fmt.Sprintf("endpoints within %d bp", opts.Tolerance)
	case match.LengthScaled:
		return fmt.Sprintf("±%g%% tolerance", opts.Fraction*100)
	case match.Proximity:
		return fmt.Sprintf("within %d bp", opts.Window)
	}
	return "overlapping"
}

func writeTo(ctx context.Context, path string, stdout io.Writer, write func(io.Writer) error) error {
	if path == "" {
		return write(stdout)
	}
	return textio.WriteFile(ctx, path, write)
}

// collect groups the query features under every reference feature they match.
// Hits go to flags.out and unmatched references to flags.unmatched; an empty
// path means stdout.
func collect(ctx context.Context, flags collectFlags, refPath, queryPath string, stdout io.Writer) error {
	opts, err := flags.match.opts()
	if err != nil {
		return err
	}
	c, err := match.NewComparator(opts)
	if err != nil {
		return err
	}
	reference, query, err := loadPair(ctx, refPath, queryPath, *flags.load)
	if err != nil {
		return err
	}
	coll := c.Collect(reference, query)
	log.Printf("%s: %d of %d references matched %d features of %s",
		refPath, len(coll.Hits), len(reference), coll.NumMatches(), queryPath)
	desc := describe(opts)
	if err := writeTo(ctx, flags.out, stdout, func(w io.Writer) error {
		return matchlog.WriteHits(w, coll.Hits, desc)
	}); err != nil {
		return err
	}
	return writeTo(ctx, flags.unmatched, stdout, func(w io.Writer) error {
		return matchlog.WriteUnmatched(w, coll.Unmatched, desc)
	})
}
