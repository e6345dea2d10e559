package endf

import (
	"strings"
	"testing"

	"github.com/dhamidi/endf/internal/endftest"
)

func TestBuildIndex(t *testing.T) {
	data := sampleTape().String()
	idx, err := BuildIndex(strings.NewReader(data))
	if err != nil {
		t.Fatalf("BuildIndex: %v", err)
	}
	if !idx.Terminated || idx.Lines != 34 {
		t.Errorf("Terminated, Lines = %v, %d; want true, 34", idx.Terminated, idx.Lines)
	}
	if len(idx.Materials) != 2 {
		t.Fatalf("got %d materials, want 2", len(idx.Materials))
	}

	const width = LineWidth + 1
	tests := []struct {
		name        string
		got         Extent
		first, last int
	}{
		{"MAT 125", idx.Materials[0].Extent, 2, 25},
		{"MAT 125 MF 1", idx.Materials[0].Files[0].Extent, 2, 11},
		{"MAT 125 MF 3", idx.Materials[0].Files[1].Extent, 12, 24},
		{"MAT 125 MF 3 MT 1", idx.Materials[0].Files[1].Sections[0], 12, 17},
		{"MAT 125 MF 3 MT 2", idx.Materials[0].Files[1].Sections[1], 18, 23},
		{"MAT 9228", idx.Materials[1].Extent, 26, 33},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got.FirstLine != tt.first || tt.got.LastLine != tt.last {
				t.Errorf("lines = %d-%d, want %d-%d", tt.got.FirstLine, tt.got.LastLine, tt.first, tt.last)
			}
			if want := int64((tt.first - 1) * width); tt.got.Offset != want {
				t.Errorf("Offset = %d, want %d", tt.got.Offset, want)
			}
			if want := int64((tt.last - tt.first + 1) * width); tt.got.Length != want {
				t.Errorf("Length = %d, want %d", tt.got.Length, want)
			}
		})
	}

	t.Run("extents slice the input", func(t *testing.T) {
		sec := idx.Materials[0].Files[1].Sections[1]
		chunk := data[sec.Offset : sec.Offset+sec.Length]
		lines := strings.Split(strings.TrimSuffix(chunk, "\n"), "\n")
		if len(lines) != 6 {
			t.Fatalf("section spans %d lines, want 6", len(lines))
		}
		if !strings.HasSuffix(lines[5], " 3  099999") {
			t.Errorf("last line %q is not the SEND record", lines[5])
		}
		if sec.Ident != (Ident{MAT: 125, MF: 3, MT: 2}) {
			t.Errorf("Ident = %v", sec.Ident)
		}
	})
}

func TestBuildIndexUnterminated(t *testing.T) {
	b := endftest.New().Section(125, 6, 2).Text("a").Text("b")
	idx, err := BuildIndex(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("BuildIndex: %v", err)
	}
	if idx.Terminated || idx.Lines != 2 {
		t.Errorf("Terminated, Lines = %v, %d", idx.Terminated, idx.Lines)
	}
	if len(idx.Materials) != 1 || idx.Materials[0].LastLine != 2 {
		t.Errorf("materials = %+v", idx.Materials)
	}
}

func TestBuildIndexStrict(t *testing.T) {
	_, err := BuildIndex(strings.NewReader("short line\n"), WithStrictColumns(), WithFile("x.endf"))
	e, ok := err.(*Error)
	if !ok || e.Kind != TruncatedLine || e.Line != 1 || e.File != "x.endf" {
		t.Errorf("error = %v, want TruncatedLine at x.endf:1", err)
	}
}

func BenchmarkBuildIndex(b *testing.B) {
	data := largeTape(50, 200).String()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := BuildIndex(strings.NewReader(data)); err != nil {
			b.Fatal(err)
		}
	}
}
