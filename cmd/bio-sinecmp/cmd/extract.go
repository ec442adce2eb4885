package cmd

import (
	"context"

	"github.com/userisgone/UROP/encoding/featuretable"
	"github.com/userisgone/UROP/encoding/sinetable"
)

// extract converts the repeats of one family in an NCBI feature table into a
// SINE list.
func extract(ctx context.Context, opts featuretable.Opts, inPath, outPath string) error {
	records, err := featuretable.ReadFile(ctx, inPath, opts)
	if err != nil {
		return err
	}
	return sinetable.WriteFile(ctx, outPath, records)
}
