package format

import (
	"encoding"
	"io"

	"github.com/dhamidi/endf/endf"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(tape *endf.Tape) error
}

// New returns the encoder registered under name, or nil.
func New(name string, w io.Writer) Encoder {
	switch name {
	case "json":
		return NewJSONEncoder(w)
	case "summary":
		e := NewJSONEncoder(w)
		e.Summary = true
		return e
	case "line":
		return NewLineEncoder(w)
	}
	return nil
}

// Names lists the encoders known to New.
var Names = []string{"json", "summary", "line"}
