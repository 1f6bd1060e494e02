package schema

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"biodex/internal/domain"
)

// Draft is the working copy a dialog edits. Values are raw: strings are not
// yet trimmed and TotalPopulation may hold text that did not parse.
type Draft struct {
	ScientificName  string
	CommonName      *string
	Kingdom         domain.Kingdom
	TotalPopulation *Number
	Image           *string
	Description     *string
}

// Number is parsed numeric text. Integer text that fits int64 is kept exact
// in Int; anything else only has Float, which is NaN when the text did not
// parse at all.
type Number struct {
	Float float64
	Int   int64
	Exact bool
}

// IntNumber wraps an exact integer.
func IntNumber(n int64) *Number {
	return &Number{Float: float64(n), Int: n, Exact: true}
}

// FloatNumber wraps an approximate value.
func FloatNumber(f float64) *Number {
	return &Number{Float: f}
}

func (n Number) String() string {
	switch {
	case n.Exact:
		return strconv.FormatInt(n.Int, 10)
	case math.IsNaN(n.Float):
		return ""
	}
	return strconv.FormatFloat(n.Float, 'f', -1, 64)
}

// DefaultDraft returns the values a new species starts from.
func DefaultDraft() Draft {
	return Draft{Kingdom: domain.DefaultKingdom}
}

// DraftFrom initialises a draft from an existing species.
func DraftFrom(s domain.Species) Draft {
	return DraftFromInput(s.Input())
}

// DraftFromInput lifts a normalized input back into a draft.
func DraftFromInput(in domain.SpeciesInput) Draft {
	d := Draft{
		ScientificName: in.ScientificName,
		CommonName:     cloneString(in.CommonName),
		Kingdom:        in.Kingdom,
		Image:          cloneString(in.Image),
		Description:    cloneString(in.Description),
	}
	if in.TotalPopulation != nil {
		d.TotalPopulation = IntNumber(*in.TotalPopulation)
	}
	return d
}

// Set writes raw widget text into the field named key. Kingdom only accepts
// exact enumeration members; anything else is rejected and the draft is left
// untouched. Unknown keys are rejected as well.
func (d *Draft) Set(key, raw string) bool {
	switch key {
	case KeyScientificName:
		d.ScientificName = raw
	case KeyCommonName:
		d.CommonName = &raw
	case KeyKingdom:
		k := domain.Kingdom(raw)
		if k.Validate() != nil {
			return false
		}
		d.Kingdom = k
	case KeyTotalPopulation:
		d.TotalPopulation = ParseNumber(raw)
	case KeyImage:
		d.Image = &raw
	case KeyDescription:
		d.Description = &raw
	default:
		return false
	}
	return true
}

// Text returns the display string for key. Absent values display as "".
func (d Draft) Text(key string) string {
	switch key {
	case KeyScientificName:
		return d.ScientificName
	case KeyCommonName:
		return deref(d.CommonName)
	case KeyKingdom:
		return string(d.Kingdom)
	case KeyTotalPopulation:
		if d.TotalPopulation == nil {
			return ""
		}
		return d.TotalPopulation.String()
	case KeyImage:
		return deref(d.Image)
	case KeyDescription:
		return deref(d.Description)
	}
	return ""
}

// ParseNumber converts numeric widget text. Blank text is absent. Integer
// text is parsed exactly; other text falls back to a float so fractions and
// exponents can be reported, and text that does not parse becomes NaN.
// Out-of-range text keeps its infinite value.
func ParseNumber(raw string) *Number {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return IntNumber(n)
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		f = math.NaN()
	}
	return FloatNumber(f)
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
