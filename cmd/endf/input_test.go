package main

import (
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/DataDog/zstd"

	"github.com/dhamidi/endf/internal/endftest"
)

func writeTape(t *testing.T, name string, compress bool) (string, []byte) {
	t.Helper()
	b := endftest.New().TPID("input test", 1)
	b.Section(125, 3, 1).Cont(1001, 0.9991673, 0, 0, 0, 0).
		Tab1(0, 0, 0, 0, 2, []float64{1e-5, 2e7}, []float64{20.4, 0.5}).
		SEND().FEND().MEND()
	b.Section(128, 3, 2).Cont(1002, 1.996, 0, 0, 0, 0).
		Tab1(0, 0, 0, 0, 2, []float64{1e-5, 2e7}, []float64{3.4, 2.1}).
		SEND().FEND().MEND().TEND()
	data := b.Bytes()
	out := data
	if compress {
		var err error
		if out, err = zstd.Compress(nil, data); err != nil {
			t.Fatal(err)
		}
	}
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, out, 0o644); err != nil {
		t.Fatal(err)
	}
	return path, data
}

func TestReadInput(t *testing.T) {
	for _, compress := range []bool{false, true} {
		name := "tape.endf"
		if compress {
			name += ".zst"
		}
		t.Run(name, func(t *testing.T) {
			path, want := writeTape(t, name, compress)

			got, err := readInput(path)
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != string(want) {
				t.Errorf("readInput returned %d bytes, want %d", len(got), len(want))
			}

			r, err := openInput(path)
			if err != nil {
				t.Fatal(err)
			}
			defer r.Close()
			streamed, err := io.ReadAll(r)
			if err != nil {
				t.Fatal(err)
			}
			if string(streamed) != string(want) {
				t.Errorf("openInput returned %d bytes, want %d", len(streamed), len(want))
			}
		})
	}
}

func TestAppDecode(t *testing.T) {
	path, _ := writeTape(t, "tape.endf.zst", true)

	sequential, err := (&app{workers: 1}).decode(path)
	if err != nil {
		t.Fatal(err)
	}
	parallel, err := (&app{workers: 4}).decode(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(sequential.Materials) != 2 || !sequential.Terminated {
		t.Errorf("tape = %+v", sequential)
	}
	if !reflect.DeepEqual(sequential, parallel) {
		t.Error("parallel decode differs from sequential decode")
	}
}
