// Package textio opens line-oriented annotation files for reading and writing
// through grailbio file paths (local or s3://).  Inputs are transparently
// decompressed; outputs whose path ends in ".gz" are gzip-compressed.
package textio

import (
	"bufio"
	"context"
	"io"

	"github.com/grailbio/base/compress"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

type reader struct {
	io.Reader
	ctx    context.Context
	in     file.File
	decomp io.ReadCloser
}

func (r *reader) Close() error {
	var err error
	if r.decomp != nil {
		err = r.decomp.Close()
	}
	if cerr := r.in.Close(r.ctx); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

// Open opens path for reading.  The caller must Close the result.
func Open(ctx context.Context, path string) (io.ReadCloser, error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, errors.Wrapf(err, "textio: open %s", path)
	}
	r := &reader{ctx: ctx, in: in}
	var inr io.Reader = in.Reader(ctx)
	if u := compress.NewReaderPath(inr, in.Name()); u != nil {
		r.decomp = u
		inr = u
	}
	r.Reader = bufio.NewReaderSize(inr, 64<<10)
	return r, nil
}

type writer struct {
	io.Writer
	ctx context.Context
	out file.File
	gz  *gzip.Writer
}

func (w *writer) Close() error {
	var err error
	if w.gz != nil {
		err = w.gz.Close()
	}
	if cerr := w.out.Close(w.ctx); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

// Create creates path for writing.  Close must be called, and its error
// checked, for the data to be committed.
func Create(ctx context.Context, path string) (io.WriteCloser, error) {
	out, err := file.Create(ctx, path)
	if err != nil {
		return nil, errors.Wrapf(err, "textio: create %s", path)
	}
	w := &writer{ctx: ctx, out: out, Writer: out.Writer(ctx)}
	if fileio.DetermineType(path) == fileio.Gzip {
		w.gz = gzip.NewWriter(w.Writer)
		w.Writer = w.gz
	}
	return w, nil
}

// ReadFile opens path, hands the stream to parse, and closes it.
func ReadFile(ctx context.Context, path string, parse func(io.Reader) error) (err error) {
	in, err := Open(ctx, path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := in.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "textio: close %s", path)
		}
	}()
	if err = parse(in); err != nil {
		err = errors.Wrap(err, path)
	}
	return
}

// WriteFile creates path, hands the stream to write, and closes it.
func WriteFile(ctx context.Context, path string, write func(io.Writer) error) (err error) {
	out, err := Create(ctx, path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "textio: close %s", path)
		}
	}()
	if err = write(out); err != nil {
		err = errors.Wrap(err, path)
	}
	return
}
