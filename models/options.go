package models

// Dialect selects the segmentation strategy for a source document.
type Dialect string

const (
	DialectAuto     Dialect = "auto"
	DialectLaTeX    Dialect = "latex"
	DialectMarkdown Dialect = "markdown"
)

// SubjectRange maps a span of question numbers to a subject, for papers
// that follow a fixed numbering convention (e.g. 1-25 Physics).
type SubjectRange struct {
	Low     int    `yaml:"low" json:"low"`
	High    int    `yaml:"high" json:"high"`
	Subject string `yaml:"subject" json:"subject"`
}

// ParseOptions holds the runtime knobs for a single parse call. The two
// length thresholds are tuning constants with no derivation behind them;
// real documents may need different values, so they are settable.
type ParseOptions struct {
	Dialect        Dialect
	DefaultSubject string
	SubjectRanges  []SubjectRange

	// MinBlockLen rejects candidate question blocks shorter than this many
	// trimmed characters (filters stray page numbers and the like).
	MinBlockLen int

	// MaxOptionLen rejects captured options longer than this (a long
	// capture usually means trailing prose was swallowed, not an option).
	MaxOptionLen int
}

const (
	DefaultMinBlockLen  = 20
	DefaultMaxOptionLen = 200
)

// DefaultParseOptions returns the options used when the caller supplies
// none.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		Dialect:        DialectAuto,
		DefaultSubject: SubjectMixed,
		MinBlockLen:    DefaultMinBlockLen,
		MaxOptionLen:   DefaultMaxOptionLen,
	}
}

// Normalize fills zero-valued knobs with their defaults.
func (o ParseOptions) Normalize() ParseOptions {
	if o.Dialect == "" {
		o.Dialect = DialectAuto
	}
	if o.DefaultSubject == "" {
		o.DefaultSubject = SubjectMixed
	}
	if o.MinBlockLen <= 0 {
		o.MinBlockLen = DefaultMinBlockLen
	}
	if o.MaxOptionLen <= 0 {
		o.MaxOptionLen = DefaultMaxOptionLen
	}
	return o
}

// RangeSubject resolves a question number against the configured ranges.
// Returns "" when no range covers the number, the ranges are absent, or
// the number is non-positive (unparseable numbers arrive as 0).
func (o ParseOptions) RangeSubject(number int) string {
	if number <= 0 {
		return ""
	}
	for _, r := range o.SubjectRanges {
		if number >= r.Low && number <= r.High {
			return r.Subject
		}
	}
	return ""
}
