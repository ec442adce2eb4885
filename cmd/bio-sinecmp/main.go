// bio-sinecmp compares two sets of genomic features (typically SINE
// annotations) and reports which features correspond.
//
// Example: compare two SINE lists by overlap.
//
//   bio-sinecmp compare -strategy=overlap -out=comparison.tsv old.tsv new.tsv
//
// Example: group de novo transcripts under the SINEs they hit.
//
//   bio-sinecmp collect -strategy=fuzzy -fraction=0.1 -out=hits.txt sines.tsv stringtie.gtf
//
// Example: list the hits of a grouped report within 1kb of a region.
//
//   bio-sinecmp nearby -region=DS572490.1:890-1120 -window=1000 hits.txt
package main

import (
	"github.com/grailbio/base/grail"
	"github.com/userisgone/UROP/cmd/bio-sinecmp/cmd"
)

func main() {
	shutdown := grail.Init()
	defer shutdown()
	cmd.Run()
}
