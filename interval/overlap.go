package interval

// Overlaps reports whether the closed intervals [aStart, aEnd] and
// [bStart, bEnd] share at least one position.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return max(aStart, bStart) <= min(aEnd, bEnd)
}

// OverlapLength returns the number of positions shared by the two closed
// intervals, or 0 if they are disjoint.
func OverlapLength(aStart, aEnd, bStart, bEnd int) int {
	return max(0, min(aEnd, bEnd)-max(aStart, bStart)+1)
}

// UnionLength returns the length of the smallest closed interval covering
// both inputs.
func UnionLength(aStart, aEnd, bStart, bEnd int) int {
	return max(aEnd, bEnd) - min(aStart, bStart) + 1
}

// OverlapPercent returns OverlapLength/UnionLength*100.  The result is in
// [0, 100], and is exactly 100 iff the two intervals are identical.
func OverlapPercent(aStart, aEnd, bStart, bEnd int) float64 {
	union := UnionLength(aStart, aEnd, bStart, bEnd)
	if union <= 0 {
		return 0
	}
	return float64(OverlapLength(aStart, aEnd, bStart, bEnd)) / float64(union) * 100
}

// EndpointsWithin reports whether the two starts, or the two ends, are at most
// tolerance apart.
func EndpointsWithin(aStart, aEnd, bStart, bEnd, tolerance int) bool {
	return abs(aStart-bStart) <= tolerance || abs(aEnd-bEnd) <= tolerance
}

// WithinWindow reports whether any endpoint of a is at most window away from
// any endpoint of b.
func WithinWindow(aStart, aEnd, bStart, bEnd, window int) bool {
	return abs(aStart-bStart) <= window ||
		abs(aStart-bEnd) <= window ||
		abs(aEnd-bStart) <= window ||
		abs(aEnd-bEnd) <= window
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
