package ai

// DataType describes the encodable character set of an AI value.
type DataType byte

const (
	// Numeric restricts values to digits 0-9.
	Numeric DataType = 'N'
	// Alphanumeric allows the GS1 CSET 82 character set.
	Alphanumeric DataType = 'X'
)

// DateFormat identifies the date encoding of a numeric AI value.
type DateFormat string

const (
	DateNone     DateFormat = ""
	DateYYMMDD   DateFormat = "YYMMDD"
	DateYYMMD0   DateFormat = "YYMMD0" // day 00 allowed (unspecified day)
	DateYYYYMMDD DateFormat = "YYYYMMDD"
	DateYYMMDDHH DateFormat = "YYMMDDHH"
)

// Component is one sub-field of an AI value specification, e.g. the N13 and
// X..17 parts of a GDTI.
type Component struct {
	Type    DataType
	Min     int
	Max     int
	Linters []string
}

// Entry describes a single Application Identifier.
//
// FixedLength is zero for variable-length AIs; such fields must be terminated
// by a separator unless they end the element string. DecimalPositions is -1
// unless the AI belongs to a decimal-suffix family (310n etc.), in which case
// it carries the implied decimal place count baked into the code's last digit.
type Entry struct {
	Code              string
	Title             string
	DataType          DataType
	FixedLength       int
	MinLength         int
	MaxLength         int
	SeparatorRequired bool
	CheckDigit        bool
	DateFormat        DateFormat
	DecimalPositions  int
	RequiredAIs       []string
	ExclusiveAIs      []string
	Components        []Component
	DigitalLinkKey    bool
}

// Fixed reports whether the AI has a predefined length.
func (e *Entry) Fixed() bool { return e.FixedLength > 0 }
