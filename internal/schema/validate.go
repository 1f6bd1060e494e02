// Package schema holds the species form rules: field descriptors, the raw
// Draft a dialog edits, and validation that turns a Draft into a normalized
// domain.SpeciesInput or a set of per-field messages.
package schema

import (
	"errors"
	"math"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"biodex/internal/domain"
)

const (
	MsgScientificNameRequired = "Scientific name is required"
	MsgInvalidURL             = "Invalid url"
	MsgInvalidKingdom         = "Invalid kingdom"
	MsgExpectedNumber         = "Expected a number"
	MsgExpectedInteger        = "Expected an integer"
	MsgAtLeastOne             = "Must be at least 1"
	MsgTooLarge               = "Number is too large"
)

// FieldErrors maps field keys to a single message each.
type FieldErrors map[string]string

// Error lists the failing fields in form order.
func (fe FieldErrors) Error() string {
	order := make(map[string]int)
	for i, f := range Fields() {
		order[f.Key] = i
	}
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		oi, iok := order[keys[i]]
		oj, jok := order[keys[j]]
		if iok != jok {
			return iok
		}
		if oi != oj {
			return oi < oj
		}
		return keys[i] < keys[j]
	})

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + fe[k]
	}
	return strings.Join(parts, "; ")
}

// record is the normalized shape the tag rules run against.
type record struct {
	ScientificName  string   `json:"scientific_name" validate:"required"`
	Kingdom         string   `json:"kingdom" validate:"kingdom"`
	TotalPopulation *float64 `json:"total_population" validate:"omitempty,min=1"`
	Image           *string  `json:"image" validate:"omitempty,url"`
}

var tagMessages = map[string]string{
	KeyScientificName + ".required": MsgScientificNameRequired,
	KeyKingdom + ".kingdom":         MsgInvalidKingdom,
	KeyTotalPopulation + ".min":     MsgAtLeastOne,
	KeyImage + ".url":               MsgInvalidURL,
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func rules() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			return name
		})
		_ = v.RegisterValidation("kingdom", func(fl validator.FieldLevel) bool {
			return domain.Kingdom(fl.Field().String()).Validate() == nil
		})
		validate = v
	})
	return validate
}

// Validate runs every rule against d. On success the returned input is fully
// normalized and errs is nil. Fields are checked independently.
func Validate(d Draft) (domain.SpeciesInput, FieldErrors) {
	errs := FieldErrors{}
	in := domain.SpeciesInput{
		ScientificName: strings.TrimSpace(d.ScientificName),
		CommonName:     normalizeOptional(d.CommonName),
		Kingdom:        d.Kingdom,
		Image:          normalizeOptional(d.Image),
		Description:    normalizeOptional(d.Description),
	}

	population, msg := checkPopulation(d.TotalPopulation)
	if msg != "" {
		errs[KeyTotalPopulation] = msg
	}

	rec := record{
		ScientificName: in.ScientificName,
		Kingdom:        string(in.Kingdom),
		Image:          in.Image,
	}
	if msg == "" && d.TotalPopulation != nil {
		rec.TotalPopulation = &d.TotalPopulation.Float
	}

	var verrs validator.ValidationErrors
	if err := rules().Struct(rec); errors.As(err, &verrs) {
		for _, fe := range verrs {
			key := fe.Field()
			if _, seen := errs[key]; seen {
				continue
			}
			if text, ok := tagMessages[key+"."+fe.Tag()]; ok {
				errs[key] = text
			} else {
				errs[key] = "Invalid " + strings.ReplaceAll(key, "_", " ")
			}
		}
	}

	if len(errs) > 0 {
		return domain.SpeciesInput{}, errs
	}
	in.TotalPopulation = population
	return in, nil
}

// ValidateField returns the live message for one field, or "" when it passes.
func ValidateField(d Draft, key string) string {
	_, errs := Validate(d)
	return errs[key]
}

// checkPopulation handles what the tag rules cannot express: NaN, fractions
// and the int64 range. Values below 1 are left to the min rule.
func checkPopulation(num *Number) (*int64, string) {
	if num == nil {
		return nil, ""
	}
	if num.Exact {
		if num.Int < 1 {
			return nil, ""
		}
		n := num.Int
		return &n, ""
	}
	v := num.Float
	switch {
	case math.IsNaN(v):
		return nil, MsgExpectedNumber
	case math.IsInf(v, 1) || v >= math.MaxInt64:
		return nil, MsgTooLarge
	case v < 1:
		return nil, ""
	case v != math.Trunc(v):
		return nil, MsgExpectedInteger
	}
	n := int64(v)
	return &n, ""
}

func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
