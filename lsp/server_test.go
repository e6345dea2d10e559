package lsp

import (
	"strings"
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/endf/internal/endftest"
)

func TestDiagnose(t *testing.T) {
	t.Run("clean tape", func(t *testing.T) {
		b := endftest.New().Section(125, 1, 451).Text("x").SEND().FEND().MEND().TEND()
		if got := Diagnose(b.Bytes(), "clean.endf"); len(got) != 0 {
			t.Errorf("diagnostics = %+v", got)
		}
	})

	t.Run("warning and error", func(t *testing.T) {
		b := endftest.New()
		b.Section(200, 6, 1).Text("a").SEND().FEND().MEND()
		b.Section(125, 3, 1).Cont(0, 0, 0, 0, 0, 0).Cont(0, 0, 0, 0, 1, 4).Ints(4, 2).Reals(1, 1)
		got := Diagnose(b.Bytes(), "broken.endf")
		if len(got) != 2 {
			t.Fatalf("got %d diagnostics, want 2: %+v", len(got), got)
		}

		w := got[0]
		if *w.Severity != protocol.DiagnosticSeverityWarning || w.Range.Start.Line != 4 {
			t.Errorf("warning = %+v", w)
		}
		if !strings.Contains(w.Message, "out of order") {
			t.Errorf("warning message = %q", w.Message)
		}

		e := got[1]
		if *e.Severity != protocol.DiagnosticSeverityError || e.Range.Start.Line != 7 {
			t.Errorf("error = %+v", e)
		}
		if !strings.Contains(e.Message, "count mismatch") || strings.Contains(e.Message, "broken.endf") {
			t.Errorf("error message = %q", e.Message)
		}
	})
}

func TestDescribe(t *testing.T) {
	text := endftest.New().Section(125, 3, 1).Cont(1001, 0.9991673, 0, 0, 2, 0).SEND().Bytes()

	tests := []struct {
		name      string
		line, col int
		want      []string
	}{
		{"real field", 0, 3, []string{"**MAT** 125", "**MT** 1", "field 1 (columns 1-11)", "real 1001"}},
		{"integer field", 0, 50, []string{"field 5 (columns 45-55)", "integer 2"}},
		{"identifier columns", 0, 70, []string{"**MF** 3"}},
		{"sentinel", 1, 70, []string{"SEND"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Describe(text, tt.line, tt.col)
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("Describe = %q, want it to contain %q", got, w)
				}
			}
		})
	}

	if got := Describe(text, 10, 0); got != "" {
		t.Errorf("Describe past the end = %q", got)
	}
}

func TestURIToPath(t *testing.T) {
	if got := uriToPath("file:///data/n-001_H_001.endf"); got != "/data/n-001_H_001.endf" {
		t.Errorf("uriToPath = %q", got)
	}
}
