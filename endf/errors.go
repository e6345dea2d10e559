package endf

import (
	"fmt"
	"strings"
)

// ErrorKind classifies decode failures. An ErrorKind is itself an error so
// callers can match on it with errors.Is.
type ErrorKind int

const (
	MalformedField ErrorKind = iota + 1
	TruncatedLine
	UnexpectedEndOfInput
	CountMismatch
	OutOfOrderSection
	UnterminatedSection
	UnterminatedFile
	UnterminatedMaterial
)

var errorKindNames = map[ErrorKind]string{
	MalformedField:       "malformed field",
	TruncatedLine:        "truncated line",
	UnexpectedEndOfInput: "unexpected end of input",
	CountMismatch:        "count mismatch",
	OutOfOrderSection:    "out of order section",
	UnterminatedSection:  "unterminated section",
	UnterminatedFile:     "unterminated file",
	UnterminatedMaterial: "unterminated material",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return "unknown error"
}

func (k ErrorKind) Error() string {
	return k.String()
}

// Fatal reports whether an error of this kind stops decoding. Only ordering
// anomalies are recoverable.
func (k ErrorKind) Fatal() bool {
	return k != OutOfOrderSection
}

// Error is a decode failure located at a line of the input.
type Error struct {
	Kind     ErrorKind
	File     string
	Line     int
	Text     string
	Expected string
	Found    string
	Err      error
}

func (e *Error) Error() string {
	var sb strings.Builder
	if e.File != "" {
		sb.WriteString(e.File)
		sb.WriteByte(':')
	}
	if e.Line > 0 {
		fmt.Fprintf(&sb, "%d: ", e.Line)
	} else if e.File != "" {
		sb.WriteByte(' ')
	}
	sb.WriteString(e.Kind.String())
	if e.Text != "" {
		fmt.Fprintf(&sb, " %q", e.Text)
	}
	switch {
	case e.Expected != "" && e.Found != "":
		fmt.Fprintf(&sb, ": expected %s, found %s", e.Expected, e.Found)
	case e.Expected != "":
		fmt.Fprintf(&sb, ": expected %s", e.Expected)
	case e.Found != "":
		fmt.Fprintf(&sb, ": found %s", e.Found)
	}
	if e.Err != nil {
		fmt.Fprintf(&sb, ": %v", e.Err)
	}
	return sb.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches an *Error against its ErrorKind.
func (e *Error) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == e.Kind
}

func newError(kind ErrorKind, line int, expected, found string) *Error {
	return &Error{Kind: kind, Line: line, Expected: expected, Found: found}
}
