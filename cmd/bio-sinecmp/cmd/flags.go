package cmd

import (
	"flag"

	"github.com/userisgone/UROP/match"
)

const formatHelp = `Input format: auto, sinelist, gtf, bed, featuretable or matchlog.
With auto, the format is guessed from the file extension (.gtf, .bed, .tbl,
.txt); anything else is read as a tab-separated SINE list.`

// matchFlags are the flags that configure a match.Comparator.
type matchFlags struct {
	strategy  string
	policy    string
	tolerance int
	fraction  float64
	window    int
}

func addMatchFlags(fs *flag.FlagSet, defaultStrategy match.Strategy) *matchFlags {
	f := &matchFlags{}
	fs.StringVar(&f.strategy, "strategy", defaultStrategy.String(), `Matching strategy.
  endpoint: both start and end within -tolerance bases
  overlap: intervals share at least one base, scored by percent overlap
  fuzzy: reference interval padded by -fraction of its length, same strand
  proximity: any endpoint within -window bases`)
	fs.StringVar(&f.policy, "policy", match.DefaultOpts.Policy.String(), `Candidate choice: "first" takes the first unconsumed match,
"best" takes the unconsumed match with the highest percent overlap.`)
	fs.IntVar(&f.tolerance, "tolerance", match.DefaultOpts.Tolerance, "Endpoint tolerance in bases")
	fs.Float64Var(&f.fraction, "fraction", match.DefaultOpts.Fraction, "Padding fraction of the reference length for -strategy=fuzzy")
	fs.IntVar(&f.window, "window", match.DefaultOpts.Window, "Proximity window in bases")
	return f
}

func (f *matchFlags) opts() (match.Opts, error) {
	opts := match.DefaultOpts
	var err error
	if opts.Strategy, err = match.ParseStrategy(f.strategy); err != nil {
		return opts, err
	}
	if opts.Policy, err = match.ParsePolicy(f.policy); err != nil {
		return opts, err
	}
	opts.Tolerance = f.tolerance
	opts.Fraction = f.fraction
	opts.Window = f.window
	return opts, opts.Validate()
}

func addLoadFlags(fs *flag.FlagSet) *loadFlags {
	f := &loadFlags{}
	fs.StringVar(&f.format, "format", "auto", formatHelp)
	fs.StringVar(&f.featureType, "feature-type", "", `GTF feature type to read (default "transcript")`)
	fs.StringVar(&f.family, "family", "", `Repeat family to extract from feature tables (default "sine1")`)
	return f
}
