package parse

import (
	"github.com/MeKo-Tech/gs1parse/ai"
	"github.com/MeKo-Tech/gs1parse/validate"
)

// Default hard bounds. These guarantee termination on adversarial input and
// are part of the contract, not just tuning.
const (
	DefaultMaxAlternatives = 5
	DefaultBeamWidth       = 200
	DefaultMaxBeamRounds   = 20
	maxSolverDepth         = 50
)

// Options configures parsing behavior.
type Options struct {
	// AllowAmbiguous permits the solver/beam engines when boundaries are
	// ambiguous. When false, ambiguous input is returned best-effort with
	// reduced confidence.
	AllowAmbiguous bool

	// StrictMode makes a validation failure fatal to the candidate it
	// occurs in instead of merely being flagged.
	StrictMode bool

	// MaxAlternatives bounds the alternatives list on the result.
	MaxAlternatives int

	// CenturyPivot resolves two-digit years: YY >= pivot means 19YY.
	CenturyPivot int

	// NormalizeSeparators converts the separator stand-ins in
	// SeparatorChars to the canonical GS control character.
	NormalizeSeparators bool

	// SeparatorChars are the textual stand-ins recognized as separators.
	SeparatorChars []string

	// BeamWidth and MaxBeamRounds bound the no-separator beam search.
	BeamWidth     int
	MaxBeamRounds int

	// VendorInternalAIs whitelists internal-use codes (90-99) that a vendor
	// legitimately emits; whitelisted codes escape the absorption penalties.
	VendorInternalAIs []string

	// Weights overrides the beam scoring weights; nil uses the defaults.
	Weights *Weights

	// Dictionary overrides the shared catalog; nil uses ai.Default().
	Dictionary *ai.Dictionary
}

// DefaultOptions returns the standard parsing configuration.
func DefaultOptions() Options {
	return Options{
		AllowAmbiguous:      true,
		StrictMode:          false,
		MaxAlternatives:     DefaultMaxAlternatives,
		CenturyPivot:        validate.DefaultCenturyPivot,
		NormalizeSeparators: true,
		SeparatorChars:      []string{gsChar, "<GS>", "~", "|", "^"},
		BeamWidth:           DefaultBeamWidth,
		MaxBeamRounds:       DefaultMaxBeamRounds,
	}
}

// normalized fills unset fields with their defaults.
func (o Options) normalized() Options {
	def := DefaultOptions()
	if o.MaxAlternatives <= 0 {
		o.MaxAlternatives = def.MaxAlternatives
	}
	if o.CenturyPivot <= 0 {
		o.CenturyPivot = def.CenturyPivot
	}
	if len(o.SeparatorChars) == 0 {
		o.SeparatorChars = def.SeparatorChars
	}
	if o.BeamWidth <= 0 {
		o.BeamWidth = def.BeamWidth
	}
	if o.MaxBeamRounds <= 0 {
		o.MaxBeamRounds = def.MaxBeamRounds
	}
	return o
}

func (o *Options) dictionary() *ai.Dictionary {
	if o.Dictionary != nil {
		return o.Dictionary
	}
	return ai.Default()
}

func (o *Options) weights() *Weights {
	if o.Weights != nil {
		return o.Weights
	}
	return &defaultWeights
}
