// Package endf decodes ENDF-6 formatted evaluated nuclear data.
//
// # Overview
//
// An ENDF tape is a sequence of 80-column lines. Columns 1-66 hold six
// 11-column data fields, columns 67-75 identify the material (MAT), file (MF)
// and section (MT) the line belongs to, and columns 76-80 carry a sequence
// number. Scopes are closed by end records instead of length prefixes:
//
//	SEND  MAT MF  0    closes a section
//	FEND  MAT  0  0    closes a file
//	MEND    0  0  0    closes a material
//	TEND   -1  0  0    closes the tape
//
// Decoding happens in layers, each usable on its own:
//
//	┌─────────┐   ┌─────────┐   ┌──────────┐   ┌──────────────────────────┐
//	│  bytes  │──▶│  Line   │──▶│  Record  │──▶│ Tape/Material/File/Sect. │
//	└─────────┘   └─────────┘   └──────────┘   └──────────────────────────┘
//	 LineReader    DecodeLine    RecordReader   Decoder, Decode
//
// # Fields
//
// ParseInt, ParseFloat and ParseText decode single fields. Reals use the
// ENDF convention where the exponent is introduced by its sign alone:
//
//	" 1.234567+5"  →  123456.7
//	" -2.5000-3"   →  -0.0025
//	"   1.5E+03"   →  1500
//
// A blank numeric field is zero.
//
// # Records
//
// Record is a closed set of types: *Cont, *Text, *List, *Tab1, *Tab2 and
// *Intg. Which kind comes next is not encoded in the data; it follows from
// (MF, MT) and from flags in previously read records. Layout functions carry
// that knowledge. Built-in layouts cover MF=1 MT=451, 452, 455, 456, 460 and
// every section of MF=3; other sections keep their lines as TEXT records
// unless a layout is registered with WithLayout.
//
// # Errors
//
// Every failure is an *Error carrying the 1-based line number. Ordering
// anomalies (MAT, MF or MT going backwards) are collected as warnings and do
// not stop decoding unless a WithWarningHandler callback returns an error:
//
//	tape, err := endf.Decode(r, endf.WithFile(path))
//	if errors.Is(err, endf.CountMismatch) {
//	    // tape holds everything decoded before the failure
//	}
//
// # Parallel decoding
//
// BuildIndex reads only the identifier columns to locate every material,
// file and section. DecodeParallel uses it to decode materials concurrently.
package endf
