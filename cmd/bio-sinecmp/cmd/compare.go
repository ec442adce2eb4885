package cmd

import (
	"context"
	"io"

	"github.com/grailbio/base/log"
	"github.com/userisgone/UROP/match"
	"github.com/userisgone/UROP/report"
)

type compareFlags struct {
	match     *matchFlags
	load      *loadFlags
	out       string
	leftName  string
	rightName string
}

// compare matches the features of leftPath against rightPath one-to-one and
// writes the report to flags.out, or to stdout if flags.out is empty.
func compare(ctx context.Context, flags compareFlags, leftPath, rightPath string, stdout io.Writer) error {
	opts, err := flags.match.opts()
	if err != nil {
		return err
	}
	c, err := match.NewComparator(opts)
	if err != nil {
		return err
	}
	left, right, err := loadPair(ctx, leftPath, rightPath, *flags.load)
	if err != nil {
		return err
	}
	res := c.Compare(left, right)
	log.Printf("%s vs %s: %v fingerprint=%016x", leftPath, rightPath, res, res.Fingerprint())
	reportOpts := report.Opts{LeftName: flags.leftName, RightName: flags.rightName}
	if flags.out == "" {
		return report.Write(stdout, res, reportOpts)
	}
	return report.WriteFile(ctx, flags.out, res, reportOpts)
}
