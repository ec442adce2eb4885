package interval

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlapPercent(t *testing.T) {
	tests := []struct {
		aStart, aEnd, bStart, bEnd int
		overlap, union             int
		overlaps                   bool
		percent                    float64
	}{
		{100, 200, 150, 250, 51, 151, true, 51.0 / 151.0 * 100},
		{100, 200, 100, 200, 101, 101, true, 100},
		{100, 200, 200, 300, 1, 201, true, 1.0 / 201.0 * 100},
		{100, 200, 201, 300, 0, 201, false, 0},
		{100, 200, 500, 600, 0, 501, false, 0},
		{10, 10, 10, 10, 1, 1, true, 100},
		{1, 1000, 400, 500, 101, 1000, true, 10.1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.overlaps, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
		assert.Equal(t, tt.overlaps, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		assert.Equal(t, tt.overlap, OverlapLength(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
		assert.Equal(t, tt.union, UnionLength(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
		assert.InDelta(t, tt.percent, OverlapPercent(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd), 1e-9)
	}
	assert.InDelta(t, 33.77, OverlapPercent(100, 200, 150, 250), 0.005)
}

func TestOverlapPercentBounds(t *testing.T) {
	r := rand.New(rand.NewSource(0))
	for i := 0; i < 10000; i++ {
		aStart := r.Intn(1000) + 1
		aEnd := aStart + r.Intn(300)
		bStart := r.Intn(1000) + 1
		bEnd := bStart + r.Intn(300)
		p := OverlapPercent(aStart, aEnd, bStart, bEnd)
		assert.True(t, p >= 0 && p <= 100)
		assert.Equal(t, p == 100, aStart == bStart && aEnd == bEnd)
		assert.Equal(t, p, OverlapPercent(bStart, bEnd, aStart, aEnd))
	}
}

func TestEndpointsWithin(t *testing.T) {
	assert.True(t, EndpointsWithin(100, 200, 200, 300, 100))
	assert.True(t, EndpointsWithin(100, 200, 5000, 250, 100))
	assert.False(t, EndpointsWithin(100, 200, 201, 301, 100))
	assert.True(t, EndpointsWithin(100, 200, 100, 9999, 0))
}

func TestWithinWindow(t *testing.T) {
	// Query [5000, 6000], window 1000.
	assert.True(t, WithinWindow(3500, 4000, 5000, 6000, 1000))
	assert.True(t, WithinWindow(7000, 8000, 5000, 6000, 1000))
	assert.True(t, WithinWindow(5200, 5300, 5000, 6000, 1000))
	assert.False(t, WithinWindow(3000, 3999, 5000, 6000, 1000))
	assert.False(t, WithinWindow(7001, 9000, 5000, 6000, 1000))
	// A feature covering the query with both ends far away is not "near".
	assert.False(t, WithinWindow(1, 100000, 5000, 6000, 1000))
}
