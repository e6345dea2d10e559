package format

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/dhamidi/endf/endf"
	"github.com/dhamidi/endf/internal/endftest"
)

func testTape(t *testing.T) *endf.Tape {
	t.Helper()
	b := endftest.New().TPID("format test", 1)
	b.Section(125, 3, 1).
		Cont(1001, 0.9991673, 0, 0, 0, 0).
		Tab1(0, 0, 0, 0, 2, []float64{1e-5, 2e7}, []float64{20.4, 0.5}).
		SEND().FEND()
	b.Section(125, 6, 2).Text("opaque").Text("second").SEND().FEND()
	b.MEND().TEND()
	tape, err := endf.Decode(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	return tape
}

func TestJSONEncoder(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONEncoder(&buf).Encode(testTape(t)); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var got jsonTape
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}

	t.Run("tape", func(t *testing.T) {
		if got.ID != "format test" || !got.Terminated {
			t.Errorf("id, terminated = %q, %v", got.ID, got.Terminated)
		}
		if len(got.Materials) != 1 || len(got.Materials[0].Files) != 2 {
			t.Fatalf("materials = %+v", got.Materials)
		}
	})

	t.Run("tab1", func(t *testing.T) {
		s := got.Materials[0].Files[0].Sections[0]
		if s.MT != 1 || len(s.Records) != 2 {
			t.Fatalf("section = %+v", s)
		}
		r := s.Records[1]
		if r.Kind != "TAB1" || r.Head == nil || r.Head.N2 != 2 {
			t.Errorf("record = %+v", r)
		}
		if len(r.X) != 2 || r.Y[0] != 20.4 {
			t.Errorf("x, y = %v, %v", r.X, r.Y)
		}
		if len(r.Regions) != 1 || r.Regions[0].Name != "lin-lin" {
			t.Errorf("regions = %+v", r.Regions)
		}
	})

	t.Run("text", func(t *testing.T) {
		s := got.Materials[0].Files[1].Sections[0]
		if len(s.Records) != 2 || s.Records[1].Text == nil || *s.Records[1].Text != "second" {
			t.Errorf("records = %+v", s.Records)
		}
	})
}

func TestJSONEncoderSummary(t *testing.T) {
	e := NewJSONEncoder(nil)
	e.Summary = true
	e.tape = testTape(t)
	text, err := e.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	var got jsonTape
	if err := json.Unmarshal(text, &got); err != nil {
		t.Fatal(err)
	}
	s := got.Materials[0].Files[0].Sections[0]
	if len(s.Records) != 0 {
		t.Errorf("summary carries %d records", len(s.Records))
	}
	if s.Counts["TEXT"] != 1 || s.Counts["TAB1"] != 1 {
		t.Errorf("counts = %v", s.Counts)
	}
}

func TestLineEncoder(t *testing.T) {
	var buf bytes.Buffer
	if err := NewLineEncoder(&buf).Encode(testTape(t)); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	want := []string{
		"tape\t\"format test\"\tterminated",
		"material\t125\t2",
		"file\t125\t3\t2",
		"section\t125\t3\t1\t2\t2",
		"record\tTEXT\t2\t",
		"record\tTAB1\t3\t0,0,0,0,1,2\tnp=2\t2:lin-lin",
		"file\t125\t6\t8",
		"section\t125\t6\t2\t8\t2",
		"record\tTEXT\t8\t\"opaque\"",
		"record\tTEXT\t9\t\"second\"",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), buf.String())
	}
	for i, w := range want {
		if !strings.HasPrefix(lines[i], w) {
			t.Errorf("line %d = %q, want prefix %q", i, lines[i], w)
		}
	}
}

func TestNew(t *testing.T) {
	for _, name := range Names {
		if New(name, nil) == nil {
			t.Errorf("New(%q) = nil", name)
		}
	}
	if New("xml", nil) != nil {
		t.Error("New(\"xml\") != nil")
	}
}
