package endf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"runtime"
	"sync"
)

type materialResult struct {
	ext      Extent
	m        *Material
	warnings []*Error
	err      error
}

// DecodeParallel decodes the materials of data concurrently. A BuildIndex
// pass locates the materials, then up to workers decoders run on their byte
// ranges. The tape, its warnings and its first fatal error are the same as
// Decode would produce for the same options. The warning handler is called
// from the calling goroutine in tape order. Input the index pass rejects is
// decoded sequentially.
func DecodeParallel(data []byte, workers int, opts ...Option) (*Tape, error) {
	o := newOptions(opts)
	idx, err := BuildIndex(bytes.NewReader(data), opts...)
	if err != nil {
		return Decode(bytes.NewReader(data), opts...)
	}
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	t := &Tape{Terminated: idx.Terminated}
	prefix := int64(len(data))
	if len(idx.Materials) > 0 {
		prefix = idx.Materials[0].Offset
	}
	if prefix > 0 {
		d := newDecoder(bytes.NewReader(data[:prefix]), o)
		if _, err := d.Next(); err != nil && err != io.EOF {
			return t, err
		}
		t.ID = d.id
	}

	results := make([]materialResult, len(idx.Materials))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i := range idx.Materials {
		ext := idx.Materials[i].Extent
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = decodeExtent(data, ext, o)
		}()
	}
	wg.Wait()

	prevMAT, haveMAT := 0, false
	for _, res := range results {
		// Index of the first warning reported by the worker itself; a
		// material order warning is prepended to those.
		own := 0
		if res.m != nil {
			if haveMAT && res.m.MAT < prevMAT {
				w := &Error{
					Kind:     OutOfOrderSection,
					File:     o.file,
					Line:     res.m.At,
					Expected: fmt.Sprintf("MAT >= %d", prevMAT),
					Found:    fmt.Sprintf("MAT %d", res.m.MAT),
				}
				res.warnings = append([]*Error{w}, res.warnings...)
				own = 1
			}
			prevMAT, haveMAT = res.m.MAT, true
		}
		for i, w := range res.warnings {
			t.Warnings = append(t.Warnings, w)
			if o.onWarning == nil {
				continue
			}
			if err := o.onWarning(w); err != nil {
				err = withFile(err, o.file)
				t.Terminated = false
				if i < own {
					t.Materials = append(t.Materials, &Material{MAT: res.m.MAT, At: res.m.At})
				} else {
					t.Materials = append(t.Materials, stopAtWarning(data, res.ext, o, i-own))
				}
				return t, err
			}
		}
		if res.m != nil {
			t.Materials = append(t.Materials, res.m)
		}
		if res.err != nil {
			t.Terminated = false
			return t, res.err
		}
	}
	return t, nil
}

func decodeExtent(data []byte, ext Extent, o *options) materialResult {
	mo := *o
	mo.startLine = ext.FirstLine
	mo.onWarning = nil
	chunk := data[ext.Offset : ext.Offset+ext.Length]
	d := newDecoder(bytes.NewReader(chunk), &mo)
	m, err := d.Next()
	if err == io.EOF {
		err = nil
	}
	return materialResult{ext: ext, m: m, warnings: d.warnings, err: err}
}

// stopAtWarning decodes the material at ext again and stops it at its n-th
// warning, leaving the material as a sequential decode escalating that
// warning would.
func stopAtWarning(data []byte, ext Extent, o *options, n int) *Material {
	stop := errors.New("stop")
	seen := 0
	mo := *o
	mo.startLine = ext.FirstLine
	mo.onWarning = func(*Error) error {
		if seen == n {
			return stop
		}
		seen++
		return nil
	}
	d := newDecoder(bytes.NewReader(data[ext.Offset:ext.Offset+ext.Length]), &mo)
	m, _ := d.Next()
	return m
}
