package match

import (
	"testing"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

func TestParseStrategy(t *testing.T) {
	for _, s := range []Strategy{EndpointTolerance, Overlap, LengthScaled, Proximity} {
		got, err := ParseStrategy(s.String())
		assert.NoError(t, err)
		expect.EQ(t, got, s)
	}
	got, err := ParseStrategy(" Overlap ")
	assert.NoError(t, err)
	expect.EQ(t, got, Overlap)

	_, err = ParseStrategy("nearest")
	expect.True(t, errors.Is(errors.Invalid, err))
	expect.EQ(t, Strategy(9).String(), "Strategy(9)")
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("best")
	assert.NoError(t, err)
	expect.EQ(t, p, PolicyBestOverlap)
	p, err = ParsePolicy("first")
	assert.NoError(t, err)
	expect.EQ(t, p, PolicyFirst)
	_, err = ParsePolicy("optimal")
	expect.True(t, errors.Is(errors.Invalid, err))
}

func TestScored(t *testing.T) {
	expect.False(t, EndpointTolerance.Scored())
	expect.True(t, Overlap.Scored())
	expect.True(t, LengthScaled.Scored())
	expect.False(t, Proximity.Scored())
}

func TestValidate(t *testing.T) {
	assert.NoError(t, DefaultOpts.Validate())

	bad := []func(o *Opts){
		func(o *Opts) { o.Strategy = Strategy(7) },
		func(o *Opts) { o.Strategy = Strategy(-1) },
		func(o *Opts) { o.Policy = Policy(3) },
		func(o *Opts) { o.Tolerance = -1 },
		func(o *Opts) { o.Fraction = 0 },
		func(o *Opts) { o.Fraction = 1.5 },
		func(o *Opts) { o.Window = -10 },
	}
	for i, mutate := range bad {
		opts := DefaultOpts
		mutate(&opts)
		err := opts.Validate()
		expect.True(t, errors.Is(errors.Invalid, err), "case %d", i)
		_, err = NewComparator(opts)
		expect.True(t, errors.Is(errors.Invalid, err), "case %d", i)
	}

	opts := DefaultOpts
	opts.Fraction = 1
	opts.Tolerance = 0
	opts.Window = 0
	assert.NoError(t, opts.Validate())
}
