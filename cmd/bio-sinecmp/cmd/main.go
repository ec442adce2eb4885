package cmd

import (
	"fmt"

	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/base/vcontext"
	"github.com/userisgone/UROP/encoding/featuretable"
	"github.com/userisgone/UROP/match"
	"github.com/userisgone/UROP/report"
	"v.io/x/lib/cmdline"
)

func newCmdCompare() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "compare",
		Short:    "Match two feature sets one-to-one and report common and unique features",
		ArgsName: "leftpath rightpath",
	}
	flags := compareFlags{
		match: addMatchFlags(&cmd.Flags, match.DefaultOpts.Strategy),
		load:  addLoadFlags(&cmd.Flags),
	}
	cmd.Flags.StringVar(&flags.out, "out", "", "Report path; .gz output is compressed. Empty means stdout")
	cmd.Flags.StringVar(&flags.leftName, "left-name", report.DefaultOpts.LeftName, "Name of the first input in the report")
	cmd.Flags.StringVar(&flags.rightName, "right-name", report.DefaultOpts.RightName, "Name of the second input in the report")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 2 {
			return fmt.Errorf("compare takes leftpath rightpath, but found %v", argv)
		}
		return compare(vcontext.Background(), flags, argv[0], argv[1], env.Stdout)
	})
	return cmd
}

func newCmdCollect() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "collect",
		Short:    "List every query feature that matches each reference feature",
		ArgsName: "refpath querypath",
	}
	flags := collectFlags{
		match: addMatchFlags(&cmd.Flags, match.LengthScaled),
		load:  addLoadFlags(&cmd.Flags),
	}
	cmd.Flags.StringVar(&flags.out, "out", "", "Path of the grouped report. Empty means stdout")
	cmd.Flags.StringVar(&flags.unmatched, "unmatched", "", "Path of the unmatched-reference report. Empty means stdout")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 2 {
			return fmt.Errorf("collect takes refpath querypath, but found %v", argv)
		}
		return collect(vcontext.Background(), flags, argv[0], argv[1], env.Stdout)
	})
	return cmd
}

func newCmdNearby() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "nearby",
		Short:    "Show features near a region",
		ArgsName: "path",
	}
	flags := nearbyFlags{load: addLoadFlags(&cmd.Flags)}
	cmd.Flags.StringVar(&flags.region, "region", "", `Query region, 'seq:start-end' (1-based, closed), 'seq:pos' or 'seq'`)
	cmd.Flags.IntVar(&flags.window, "window", match.DefaultOpts.Window, "Maximum endpoint distance in bases")
	cmd.Flags.BoolVar(&flags.tsv, "tsv", false, "Print tab-separated rows instead of the original lines")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 1 {
			return fmt.Errorf("nearby takes one pathname argument, but got %v", argv)
		}
		if flags.region == "" {
			return fmt.Errorf("nearby: -region is required")
		}
		return nearby(vcontext.Background(), flags, argv[0], env.Stdout)
	})
	return cmd
}

func newCmdExtract() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "extract",
		Short:    "Convert the repeats of one family in an NCBI feature table to a SINE list",
		ArgsName: "srcpath destpath",
	}
	opts := featuretable.DefaultOpts
	cmd.Flags.StringVar(&opts.Family, "family", opts.Family, "Repeat family to keep (case-insensitive substring)")
	cmd.Flags.StringVar(&opts.Qualifier, "qualifier", opts.Qualifier, "Qualifier that carries the repeat family")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 2 {
			return fmt.Errorf("extract takes srcpath destpath, but found %v", argv)
		}
		return extract(vcontext.Background(), opts, argv[0], argv[1])
	})
	return cmd
}

// Run parses the command line and runs the chosen subcommand.
func Run() {
	cmdline.HideGlobalFlagsExcept()
	cmdline.Main(
		&cmdline.Command{
			Name:     "bio-sinecmp",
			Short:    "Tools for comparing sets of genomic features",
			LookPath: false,
			Children: []*cmdline.Command{
				newCmdCompare(),
				newCmdCollect(),
				newCmdNearby(),
				newCmdExtract(),
			},
		})
}
