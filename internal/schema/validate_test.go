package schema

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"biodex/internal/domain"
)

func str(s string) *string  { return &s }
func num(f float64) *Number { return FloatNumber(f) }
func count(n int64) *int64  { return &n }

func TestValidate_NormalizesScenarioDraft(t *testing.T) {
	d := Draft{
		ScientificName:  " Cavia porcellus ",
		CommonName:      str(""),
		Kingdom:         domain.KingdomAnimalia,
		TotalPopulation: num(300000),
		Image:           str(""),
		Description:     nil,
	}

	in, errs := Validate(d)
	require.Nil(t, errs)
	require.Equal(t, domain.SpeciesInput{
		ScientificName:  "Cavia porcellus",
		CommonName:      nil,
		Kingdom:         domain.KingdomAnimalia,
		TotalPopulation: count(300000),
		Image:           nil,
		Description:     nil,
	}, in)
}

func TestValidate_BlankScientificNameFails(t *testing.T) {
	for _, name := range []string{"", " ", "\t\n  "} {
		d := DefaultDraft()
		d.ScientificName = name
		_, errs := Validate(d)
		require.Equal(t, MsgScientificNameRequired, errs[KeyScientificName], "name %q", name)
	}
}

func TestValidate_OptionalStringsBecomeAbsent(t *testing.T) {
	for _, blank := range []string{"", "   "} {
		d := Draft{
			ScientificName: "Felis catus",
			CommonName:     str(blank),
			Kingdom:        domain.KingdomAnimalia,
			Image:          str(blank),
			Description:    str(blank),
		}
		in, errs := Validate(d)
		require.Nil(t, errs)
		require.Nil(t, in.CommonName)
		require.Nil(t, in.Image)
		require.Nil(t, in.Description)
	}
}

func TestValidate_TrimsPresentOptionals(t *testing.T) {
	d := Draft{
		ScientificName: "Felis catus",
		CommonName:     str("  Cat "),
		Kingdom:        domain.KingdomAnimalia,
		Image:          str(" https://example.com/cat.jpg "),
		Description:    str(" Small and fluffy.\n"),
	}
	in, errs := Validate(d)
	require.Nil(t, errs)
	require.Equal(t, "Cat", *in.CommonName)
	require.Equal(t, "https://example.com/cat.jpg", *in.Image)
	require.Equal(t, "Small and fluffy.", *in.Description)
}

func TestValidate_TotalPopulation(t *testing.T) {
	cases := []struct {
		name string
		in   *Number
		msg  string
		want *int64
	}{
		{"absent", nil, "", nil},
		{"one", num(1), "", count(1)},
		{"large", num(8e9), "", count(8000000000)},
		{"zero", num(0), MsgAtLeastOne, nil},
		{"negative", num(-4), MsgAtLeastOne, nil},
		{"negative infinity", num(math.Inf(-1)), MsgAtLeastOne, nil},
		{"fraction", num(2.5), MsgExpectedInteger, nil},
		{"unparsable", num(math.NaN()), MsgExpectedNumber, nil},
		{"infinite", num(math.Inf(1)), MsgTooLarge, nil},
		{"beyond int64", num(1e19), MsgTooLarge, nil},
		{"exact one", IntNumber(1), "", count(1)},
		{"exact zero", IntNumber(0), MsgAtLeastOne, nil},
		{"exact beyond float precision", IntNumber(9007199254740993), "", count(9007199254740993)},
		{"exact max", IntNumber(math.MaxInt64), "", count(math.MaxInt64)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := DefaultDraft()
			d.ScientificName = "Bos taurus"
			d.TotalPopulation = tc.in

			in, errs := Validate(d)
			require.Equal(t, tc.msg, errs[KeyTotalPopulation])
			if tc.msg == "" {
				require.Nil(t, errs)
				require.Equal(t, tc.want, in.TotalPopulation)
			}
		})
	}
}

func TestValidate_Image(t *testing.T) {
	good := []string{"https://example.com/image.jpg", "http://localhost:8080/a.png"}
	for _, u := range good {
		d := DefaultDraft()
		d.ScientificName = "x"
		d.Image = str(u)
		_, errs := Validate(d)
		require.Nil(t, errs, "url %q", u)
	}

	bad := []string{"not a url", "example.com/image.jpg", "/relative/path"}
	for _, u := range bad {
		d := DefaultDraft()
		d.ScientificName = "x"
		d.Image = str(u)
		_, errs := Validate(d)
		require.Equal(t, MsgInvalidURL, errs[KeyImage], "url %q", u)
	}
}

func TestValidate_KingdomMustBeExactMember(t *testing.T) {
	for _, k := range []domain.Kingdom{"", "animalia", "Animals", " Plantae"} {
		d := DefaultDraft()
		d.ScientificName = "x"
		d.Kingdom = k
		_, errs := Validate(d)
		require.Equal(t, MsgInvalidKingdom, errs[KeyKingdom], "kingdom %q", k)
	}
}

func TestValidate_FieldsAreIndependent(t *testing.T) {
	d := Draft{
		ScientificName:  "",
		Kingdom:         "Nope",
		TotalPopulation: num(0),
		Image:           str("nope"),
	}
	_, errs := Validate(d)
	require.Len(t, errs, 4)
	require.Equal(t, MsgScientificNameRequired, errs[KeyScientificName])
	require.Equal(t, MsgInvalidKingdom, errs[KeyKingdom])
	require.Equal(t, MsgAtLeastOne, errs[KeyTotalPopulation])
	require.Equal(t, MsgInvalidURL, errs[KeyImage])

	require.Equal(t, "", ValidateField(d, KeyCommonName))
	require.Equal(t, MsgInvalidURL, ValidateField(d, KeyImage))
}

func TestValidate_Idempotent(t *testing.T) {
	d := Draft{
		ScientificName:  "  Panthera leo",
		CommonName:      str(" Lion "),
		Kingdom:         domain.KingdomAnimalia,
		TotalPopulation: num(23000),
		Image:           str("https://example.com/lion.jpg "),
		Description:     str(""),
	}
	first, errs := Validate(d)
	require.Nil(t, errs)

	second, errs := Validate(DraftFromInput(first))
	require.Nil(t, errs)
	require.Equal(t, first, second)
}

func TestFieldErrors_ErrorOrdersByForm(t *testing.T) {
	errs := FieldErrors{
		KeyImage:          MsgInvalidURL,
		KeyScientificName: MsgScientificNameRequired,
	}
	require.Equal(t, "scientific_name: Scientific name is required; image: Invalid url", errs.Error())

	var err error = errs
	var target FieldErrors
	require.True(t, errors.As(err, &target))
	require.Len(t, target, 2)
}
