package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dhamidi/endf/endf"
)

// LineEncoder writes one tab-separated line per scope and record, suited to
// grep and cut.
type LineEncoder struct {
	w    io.Writer
	tape *endf.Tape
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(tape *endf.Tape) error {
	e.tape = tape
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	t := e.tape

	id := "-"
	if t.ID != nil {
		id = strconv.Quote(t.ID.Value)
	}
	fmt.Fprintf(&sb, "tape\t%s\t%s\n", id, terminatedStr(t.Terminated))

	for _, m := range t.Materials {
		fmt.Fprintf(&sb, "material\t%d\t%d\n", m.MAT, m.At)
		for _, f := range m.Files {
			fmt.Fprintf(&sb, "file\t%d\t%d\t%d\n", f.MAT, f.MF, f.At)
			for _, s := range f.Sections {
				fmt.Fprintf(&sb, "section\t%d\t%d\t%d\t%d\t%d\n", s.MAT, s.MF, s.MT, s.At, len(s.Records))
				for _, r := range s.Records {
					fmt.Fprintf(&sb, "record\t%s\t%d\t%s\n", r.Kind(), r.Line(), recordStr(r))
				}
			}
		}
	}

	for _, w := range t.Warnings {
		fmt.Fprintf(&sb, "warning\t%d\t%s\n", w.Line, w.Error())
	}

	return []byte(sb.String()), nil
}

func terminatedStr(terminated bool) string {
	if terminated {
		return "terminated"
	}
	return "open"
}

func contStr(c *endf.Cont) string {
	return fmt.Sprintf("%g,%g,%d,%d,%d,%d", c.C1, c.C2, c.L1, c.L2, c.N1, c.N2)
}

func regionsStr(regions []endf.Region) string {
	if len(regions) == 0 {
		return "-"
	}
	parts := make([]string, len(regions))
	for i, r := range regions {
		parts[i] = fmt.Sprintf("%d:%s", r.NBT, r.Law)
	}
	return strings.Join(parts, ",")
}

func recordStr(r endf.Record) string {
	switch r := r.(type) {
	case *endf.Cont:
		return contStr(r)
	case *endf.Text:
		return strconv.Quote(r.Value)
	case *endf.List:
		return fmt.Sprintf("%s\tnpl=%d", contStr(&r.Head), r.NPL())
	case *endf.Tab1:
		return fmt.Sprintf("%s\tnp=%d\t%s", contStr(&r.Head), r.NP(), regionsStr(r.Regions))
	case *endf.Tab2:
		return fmt.Sprintf("%s\tnz=%d\t%s", contStr(&r.Head), r.NZ(), regionsStr(r.Regions))
	case *endf.Intg:
		return fmt.Sprintf("%s\tndigit=%d\trows=%d", contStr(&r.Head), r.NDigit(), len(r.Rows))
	}
	return "-"
}
