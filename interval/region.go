package interval

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RegionMax is the End of a region that names a whole sequence.
const RegionMax = math.MaxInt32

// Region is a 1-based closed interval on a named sequence.
type Region struct {
	SeqName string
	Start   int
	End     int
}

// String renders the region as "seq:start-end".
func (r Region) String() string {
	return fmt.Sprintf("%s:%d-%d", r.SeqName, r.Start, r.End)
}

// ParseRegion parses a region string of one of the forms
//   [sequence ID]:[1-based first pos]-[last pos]
//   [sequence ID]:[1-based pos]
//   [sequence ID]
// The sequence ID may itself contain '.', e.g. "DS572490.1:890-1120".  The
// interval [1, RegionMax] is returned if there is no positional restriction.
// Thousands separators (",") in positions are accepted.
func ParseRegion(region string) (result Region, err error) {
	region = strings.TrimSpace(region)
	if len(region) == 0 {
		err = fmt.Errorf("interval.ParseRegion: empty region string")
		return
	}
	colonPos := strings.LastIndexByte(region, ':')
	if colonPos == -1 {
		result.SeqName = region
		result.Start = 1
		result.End = RegionMax
		return
	}
	if colonPos == 0 {
		err = fmt.Errorf("interval.ParseRegion: empty sequence ID in %q", region)
		return
	}
	result.SeqName = region[:colonPos]
	rangeStr := strings.Replace(region[colonPos+1:], ",", "", -1)
	dashPos := strings.IndexByte(rangeStr, '-')
	if dashPos == -1 {
		var pos int
		if pos, err = strconv.Atoi(rangeStr); err != nil {
			return
		}
		if pos <= 0 {
			err = fmt.Errorf("interval.ParseRegion: position %v in region string out of range", rangeStr)
			return
		}
		result.Start = pos
		result.End = pos
		return
	}
	startStr := rangeStr[:dashPos]
	endStr := rangeStr[dashPos+1:]
	if result.Start, err = strconv.Atoi(startStr); err != nil {
		return
	}
	if result.Start <= 0 {
		err = fmt.Errorf("interval.ParseRegion: position %v in region string out of range", startStr)
		return
	}
	if result.End, err = strconv.Atoi(endStr); err != nil {
		return
	}
	if result.End < result.Start || result.End > RegionMax {
		err = fmt.Errorf("interval.ParseRegion: invalid range string %v", rangeStr)
		return
	}
	return
}

// FindRegion locates the first "seq:start-end" token in a line of free text and
// parses it.  Tokens are delimited by whitespace and '|'.  It returns false if
// no token parses as a bounded region.
func FindRegion(line string) (Region, bool) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == '|' || r == ' ' || r == '\t'
	})
	for _, f := range fields {
		if strings.IndexByte(f, ':') <= 0 || strings.IndexByte(f, '-') < 0 {
			continue
		}
		if r, err := ParseRegion(f); err == nil {
			return r, true
		}
	}
	return Region{}, false
}
