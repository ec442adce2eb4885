package cmd

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/grailbio/base/log"
	"github.com/grailbio/base/traverse"
	"github.com/userisgone/UROP/encoding/bed"
	"github.com/userisgone/UROP/encoding/featuretable"
	"github.com/userisgone/UROP/encoding/gtf"
	"github.com/userisgone/UROP/encoding/matchlog"
	"github.com/userisgone/UROP/encoding/sinetable"
	"github.com/userisgone/UROP/encoding/textio"
	"github.com/userisgone/UROP/feature"
)

type fileFormat int

const (
	formatAuto fileFormat = iota
	formatSineList
	formatGTF
	formatBED
	formatFeatureTable
	formatMatchLog
)

var formatNames = map[string]fileFormat{
	"auto":         formatAuto,
	"sinelist":     formatSineList,
	"gtf":          formatGTF,
	"bed":          formatBED,
	"featuretable": formatFeatureTable,
	"matchlog":     formatMatchLog,
}

func parseFormat(name string) (fileFormat, error) {
	f, ok := formatNames[strings.ToLower(name)]
	if !ok {
		return formatAuto, fmt.Errorf("unknown format %q", name)
	}
	return f, nil
}

func (f fileFormat) String() string {
	for name, v := range formatNames {
		if v == f {
			return name
		}
	}
	return "unknown"
}

func extension(path string) string {
	return strings.ToLower(filepath.Ext(strings.TrimSuffix(path, ".gz")))
}

// guessFormat picks a format from the file extension, ignoring a trailing
// .gz.  Anything unrecognized, including .txt, is read as a SINE list.
func guessFormat(path string) fileFormat {
	switch extension(path) {
	case ".gtf", ".gff":
		return formatGTF
	case ".bed":
		return formatBED
	case ".tbl":
		return formatFeatureTable
	case ".log":
		return formatMatchLog
	}
	return formatSineList
}

// detectFormat is guessFormat, except that a .txt file is read as a grouped
// match report when its content looks like one.  SINE lists are commonly
// saved as .txt too.
func detectFormat(ctx context.Context, path string) (fileFormat, error) {
	format := guessFormat(path)
	if extension(path) != ".txt" {
		return format, nil
	}
	var isLog bool
	if err := textio.ReadFile(ctx, path, func(r io.Reader) (err error) {
		isLog, err = matchlog.Detect(r)
		return
	}); err != nil {
		return format, err
	}
	if isLog {
		return formatMatchLog, nil
	}
	return format, nil
}

type loadFlags struct {
	format      string
	featureType string
	family      string
}

// load reads path in the format named by flags.  An input that yields no
// records is logged as an error, since it usually means the wrong -format.
func load(ctx context.Context, path string, flags loadFlags) ([]feature.Record, error) {
	format, err := parseFormat(flags.format)
	if err != nil {
		return nil, err
	}
	if format == formatAuto {
		if format, err = detectFormat(ctx, path); err != nil {
			return nil, err
		}
	}
	records, err := read(ctx, path, format, flags)
	if err == nil && len(records) == 0 {
		log.Error.Printf("%s: no features read as %v; check -format", path, format)
	}
	return records, err
}

func read(ctx context.Context, path string, format fileFormat, flags loadFlags) ([]feature.Record, error) {
	switch format {
	case formatGTF:
		opts := gtf.DefaultOpts
		if flags.featureType != "" {
			opts.FeatureType = flags.featureType
		}
		return gtf.ReadFile(ctx, path, opts)
	case formatBED:
		return bed.ReadFile(ctx, path)
	case formatFeatureTable:
		opts := featuretable.DefaultOpts
		if flags.family != "" {
			opts.Family = flags.family
		}
		return featuretable.ReadFile(ctx, path, opts)
	case formatMatchLog:
		return matchlog.ReadFile(ctx, path)
	default:
		return sinetable.ReadFile(ctx, path)
	}
}

// loadPair reads two inputs in parallel.
func loadPair(ctx context.Context, leftPath, rightPath string, flags loadFlags) (left, right []feature.Record, err error) {
	paths := []string{leftPath, rightPath}
	results := make([][]feature.Record, len(paths))
	err = traverse.Each(len(paths), func(i int) (err error) {
		results[i], err = load(ctx, paths[i], flags)
		return
	})
	return results[0], results[1], err
}
