package endf

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/dhamidi/endf/internal/endftest"
)

func TestDecodeLine(t *testing.T) {
	raw := endftest.Line(endftest.Real(1001)+endftest.Real(0.9991673)+endftest.Int(0)+endftest.Int(0)+endftest.Int(2)+endftest.Int(0), 125, 1, 451, 1)
	l, err := DecodeLine([]byte(raw), 7, true)
	if err != nil {
		t.Fatalf("DecodeLine: %v", err)
	}

	t.Run("ident", func(t *testing.T) {
		want := Ident{MAT: 125, MF: 1, MT: 451}
		if l.Ident != want {
			t.Errorf("Ident = %v, want %v", l.Ident, want)
		}
		if l.NS != 1 {
			t.Errorf("NS = %d, want 1", l.NS)
		}
		if l.Number != 7 {
			t.Errorf("Number = %d, want 7", l.Number)
		}
	})

	t.Run("cont", func(t *testing.T) {
		c, err := l.Cont()
		if err != nil {
			t.Fatal(err)
		}
		if c.C1 != 1001 || c.N1 != 2 || c.At != 7 {
			t.Errorf("Cont = %+v", c)
		}
	})

	t.Run("raw", func(t *testing.T) {
		if got := string(l.Raw()); got != raw {
			t.Errorf("Raw() = %q, want %q", got, raw)
		}
		if len(l.Data()) != DataWidth {
			t.Errorf("len(Data()) = %d", len(l.Data()))
		}
	})
}

func TestDecodeLineColumns(t *testing.T) {
	full := endftest.Line("", 125, 1, 451, 1)
	tests := []struct {
		name   string
		raw    string
		strict bool
		kind   ErrorKind
	}{
		{"exact", full, true, 0},
		{"carriage return", full + "\r", true, 0},
		{"short padded", strings.TrimRight(full[:75], " "), false, 0},
		{"short strict", full[:75], true, TruncatedLine},
		{"blank excess", full + "    ", true, 0},
		{"long", full + "  X", false, MalformedField},
		{"bad MAT", strings.Repeat(" ", 66) + "12x4 1451    1", false, MalformedField},
		{"tab in text", "author\tname" + full[11:], false, MalformedField},
		{"control byte", full[:20] + "\x00" + full[21:], true, MalformedField},
		{"delete", full[:79] + "\x7f", true, MalformedField},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeLine([]byte(tt.raw), 3, tt.strict)
			if tt.kind == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.kind) {
				t.Fatalf("error = %v, want %v", err, tt.kind)
			}
			var e *Error
			if errors.As(err, &e) && e.Line != 3 {
				t.Errorf("error line = %d, want 3", e.Line)
			}
		})
	}
}

func TestSentinel(t *testing.T) {
	tests := []struct {
		id   Ident
		want Sentinel
	}{
		{Ident{125, 1, 451}, NotSentinel},
		{Ident{125, 1, 0}, SectionEnd},
		{Ident{125, 0, 0}, FileEnd},
		{Ident{0, 0, 0}, MaterialEnd},
		{Ident{-1, 0, 0}, TapeEnd},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			if got := tt.id.Sentinel(); got != tt.want {
				t.Errorf("%v.Sentinel() = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestLineFieldErrorColumns(t *testing.T) {
	raw := endftest.Line(endftest.Real(1)+"   1.0x+00", 125, 3, 1, 2)
	l, err := DecodeLine([]byte(raw), 12, true)
	if err != nil {
		t.Fatal(err)
	}
	_, err = l.Float(1)
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("error = %v, want *Error", err)
	}
	if e.Line != 12 || !strings.Contains(e.Expected, "columns 12-22") {
		t.Errorf("error = %+v", e)
	}
}

func TestLineReader(t *testing.T) {
	b := endftest.New().Section(125, 1, 451).Cont(1, 2, 0, 0, 0, 0).SEND()
	lr := NewLineReader(strings.NewReader(b.String()), WithStartLine(10))
	var numbers []int
	for {
		l, err := lr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		numbers = append(numbers, l.Number)
	}
	if len(numbers) != 2 || numbers[0] != 10 || numbers[1] != 11 {
		t.Errorf("line numbers = %v, want [10 11]", numbers)
	}
}

func TestTextColumns(t *testing.T) {
	txt := &Text{Value: fmt.Sprintf("%-11s%-11s%-11s%s", " 1-H -  1", "LANL", "EVAL-JUL16", "G.M.Hale")}
	tests := []struct {
		from, to int
		want     string
	}{
		{1, 11, " 1-H -  1  "},
		{12, 22, "LANL       "},
		{23, 33, "EVAL-JUL16 "},
		{34, 44, "G.M.Hale   "},
		{60, 66, "       "},
		{5, 4, ""},
	}
	for _, tt := range tests {
		if got := txt.Columns(tt.from, tt.to); got != tt.want {
			t.Errorf("Columns(%d, %d) = %q, want %q", tt.from, tt.to, got, tt.want)
		}
	}
}
