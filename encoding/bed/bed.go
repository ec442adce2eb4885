// Package bed reads BED intervals as feature records.  BED coordinates are
// 0-based half-open; records are converted to 1-based closed.  Column 4, if
// present, becomes the record ID and column 6 the strand.
package bed

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strconv"

	"github.com/grailbio/base/log"
	gunsafe "github.com/grailbio/base/unsafe"
	"github.com/pkg/errors"
	"github.com/userisgone/UROP/encoding/textio"
	"github.com/userisgone/UROP/feature"
)

// getTokens identifies up to the first len(tokens) tokens from curLine,
// returning the number of tokens saved.  Any (group of) characters <= ' ' is
// treated as a delimiter.
func getTokens(tokens [][]byte, curLine []byte) int {
	posEnd := 0
	lineLen := len(curLine)
	for tokenIdx := range tokens {
		pos := posEnd
		for ; pos != lineLen; pos++ {
			if curLine[pos] > ' ' {
				break
			}
		}
		if pos == lineLen {
			return tokenIdx
		}
		posEnd = pos
		for ; posEnd != lineLen; posEnd++ {
			if curLine[posEnd] <= ' ' {
				break
			}
		}
		tokens[tokenIdx] = curLine[pos:posEnd]
	}
	return len(tokens)
}

var (
	trackPrefix   = []byte("track")
	browserPrefix = []byte("browser")
)

// Stats counts the lines Read saw.
type Stats struct {
	Lines   int
	Dropped int
}

// Read parses BED text.  Blank, comment, track and browser lines are skipped;
// lines with fewer than three columns, unparseable coordinates, or an empty
// interval are dropped.
func Read(r io.Reader) ([]feature.Record, Stats, error) {
	var (
		stats   Stats
		records []feature.Record
		tokens  [6][]byte
	)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		stats.Lines++
		curLine := scanner.Bytes()
		nToken := getTokens(tokens[:], curLine)
		if nToken == 0 || tokens[0][0] == '#' || bytes.HasPrefix(curLine, trackPrefix) || bytes.HasPrefix(curLine, browserPrefix) {
			continue
		}
		if nToken < 3 {
			log.Debug.Printf("bed: line %d has fewer tokens than expected", stats.Lines)
			stats.Dropped++
			continue
		}
		start0, err1 := strconv.Atoi(gunsafe.BytesToString(tokens[1]))
		end, err2 := strconv.Atoi(gunsafe.BytesToString(tokens[2]))
		if err1 != nil || err2 != nil || start0 < 0 || end <= start0 {
			log.Debug.Printf("bed: invalid coordinate pair on line %d", stats.Lines)
			stats.Dropped++
			continue
		}
		var id string
		if nToken >= 4 {
			id = string(tokens[3])
		}
		strand := feature.StrandNone
		if nToken >= 6 {
			strand = feature.ParseStrand(gunsafe.BytesToString(tokens[5]))
		}
		// The chromosome name must be copied; tokens refer to the scanner's
		// buffer.
		records = append(records, feature.New(string(tokens[0]), start0+1, end, strand, id))
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, errors.Wrap(err, "bed")
	}
	return records, stats, nil
}

// ReadFile reads a BED file, which may be gzip-compressed.
func ReadFile(ctx context.Context, path string) (records []feature.Record, err error) {
	var stats Stats
	err = textio.ReadFile(ctx, path, func(r io.Reader) (err error) {
		records, stats, err = Read(r)
		return
	})
	if err == nil {
		log.Printf("%s: read %d intervals, dropped %d lines", path, len(records), stats.Dropped)
	}
	return
}
