package detail

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"biodex/internal/domain"
)

func str(s string) *string { return &s }
func num(n int64) *int64   { return &n }

func TestSpeciesOmitsAbsentFields(t *testing.T) {
	rows := Species(domain.Species{
		ID:              1,
		ScientificName:  "Cavia porcellus",
		Kingdom:         domain.KingdomAnimalia,
		TotalPopulation: num(300000),
	})

	require.Equal(t, []Row{
		{Label: "Scientific Name", Value: "Cavia porcellus", Italic: true},
		{Label: "Kingdom", Value: "Animalia"},
		{Label: "Total Population", Value: "300,000"},
	}, rows)
}

func TestSpeciesAllFields(t *testing.T) {
	rows := Species(domain.Species{
		ScientificName:  "Quercus robur",
		CommonName:      str("English oak"),
		Kingdom:         domain.KingdomPlantae,
		TotalPopulation: num(1234567890),
		Image:           str("https://example.com/oak.jpg"),
		Description:     str("A <b>long-lived</b> tree & a <script>alert(1)</script>keystone species."),
	})

	require.Len(t, rows, 5, "image is not a detail line")
	require.Equal(t, "English oak", rows[1].Value)
	require.Equal(t, "1,234,567,890", rows[3].Value)
	require.Equal(t, "A long-lived tree & a keystone species.", rows[4].Value)
	require.True(t, rows[4].Markdown)
}

func TestPlainTextIsShownAsWritten(t *testing.T) {
	rows := Species(domain.Species{
		ScientificName: "<b>Homo</b> sapiens",
		CommonName:     str("Human & <i>friends</i>"),
		Kingdom:        domain.KingdomAnimalia,
	})
	require.Equal(t, "<b>Homo</b> sapiens", rows[0].Value)
	require.Equal(t, "Human & <i>friends</i>", rows[1].Value)

	p := domain.Profile{DisplayName: "<Ada>", Email: "ada@example.com", Biography: str("Likes <b>ferns</b>.")}
	rows = Profile(p)
	require.Equal(t, "<Ada>", rows[0].Value)
	require.Equal(t, "Likes ferns.", rows[2].Value)
}

func TestProfileRows(t *testing.T) {
	p := domain.Profile{ID: uuid.New(), Email: "ada@example.com", DisplayName: "Ada"}
	require.Equal(t, []Row{
		{Label: "Name", Value: "Ada"},
		{Label: "Email", Value: "ada@example.com", Italic: true},
	}, Profile(p))

	p.Biography = str("Field botanist.")
	rows := Profile(p)
	require.Len(t, rows, 3)
	require.Equal(t, "Bio", rows[2].Label)
}

func TestProjectHandlesValueKinds(t *testing.T) {
	var nilString *string
	var nilInt *int64
	rows := Project([]Field{
		{Label: "a", Value: nil},
		{Label: "b", Value: nilString},
		{Label: "c", Value: nilInt},
		{Label: "d", Value: 4200},
		{Label: "e", Value: int64(-1500)},
		{Label: "f", Value: 3.5},
	})
	require.Equal(t, []Row{
		{Label: "d", Value: "4,200"},
		{Label: "e", Value: "-1,500"},
	}, rows)
}

func TestPlain(t *testing.T) {
	out := Plain([]Row{{Label: "Name", Value: "Ada"}, {Label: "Email", Value: "ada@example.com"}})
	require.Equal(t, "Name: Ada\nEmail: ada@example.com", out)
	require.Equal(t, "", Plain(nil))
}
