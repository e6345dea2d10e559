package endf

type Option func(*options)

type options struct {
	file          string
	startLine     int
	strictColumns bool
	sequenceCheck bool
	opaque        bool
	layouts       map[layoutKey]Layout
	onWarning     func(*Error) error
}

func newOptions(opts []Option) *options {
	o := &options{startLine: 1}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithFile names the input in errors and warnings.
func WithFile(path string) Option {
	return func(o *options) {
		o.file = path
	}
}

// WithStartLine sets the number of the first line read. Used when decoding
// a slice of a larger tape.
func WithStartLine(line int) Option {
	return func(o *options) {
		o.startLine = line
	}
}

// WithStrictColumns rejects lines shorter than 80 columns instead of padding
// them.
func WithStrictColumns() Option {
	return func(o *options) {
		o.strictColumns = true
	}
}

// WithSequenceCheck reports sequence numbers that do not increase within a
// section as OutOfOrderSection warnings.
func WithSequenceCheck() Option {
	return func(o *options) {
		o.sequenceCheck = true
	}
}

// WithLayout registers the record layout of the sections (mf, mt). Use
// AnySection as mt to cover every section of file mf.
func WithLayout(mf, mt int, layout Layout) Option {
	return func(o *options) {
		if o.layouts == nil {
			o.layouts = make(map[layoutKey]Layout)
		}
		o.layouts[layoutKey{mf, mt}] = layout
	}
}

// WithOpaqueSections disables the built-in layouts. Sections without a
// registered layout keep every line as a TEXT record.
func WithOpaqueSections() Option {
	return func(o *options) {
		o.opaque = true
	}
}

// WithWarningHandler is called for every ordering anomaly. Returning a
// non-nil error escalates the warning and stops decoding.
func WithWarningHandler(fn func(*Error) error) Option {
	return func(o *options) {
		o.onWarning = fn
	}
}

func (o *options) layout(mf, mt int) Layout {
	for _, key := range []layoutKey{{mf, mt}, {mf, AnySection}} {
		if l, ok := o.layouts[key]; ok {
			return l
		}
	}
	if o.opaque {
		return nil
	}
	for _, key := range []layoutKey{{mf, mt}, {mf, AnySection}} {
		if l, ok := defaultLayouts[key]; ok {
			return l
		}
	}
	return nil
}
