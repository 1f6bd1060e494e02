package schema

import "biodex/internal/domain"

// Kind selects the widget a field is edited with.
type Kind int

const (
	KindText Kind = iota
	KindTextarea
	KindSelect
	KindNumber
	KindURL
)

// Field keys, shared by descriptors, drafts and error maps.
const (
	KeyScientificName  = "scientific_name"
	KeyCommonName      = "common_name"
	KeyKingdom         = "kingdom"
	KeyTotalPopulation = "total_population"
	KeyImage           = "image"
	KeyDescription     = "description"
)

// Field describes one editable species field.
type Field struct {
	Key         string
	Label       string
	Placeholder string
	Kind        Kind
	Options     []string
}

// Fields returns the species form fields in display order.
func Fields() []Field {
	return []Field{
		{Key: KeyScientificName, Label: "Scientific Name", Placeholder: "Cavia porcellus", Kind: KindText},
		{Key: KeyCommonName, Label: "Common Name", Placeholder: "Guinea pig", Kind: KindText},
		{Key: KeyKingdom, Label: "Kingdom", Placeholder: "Select a kingdom", Kind: KindSelect, Options: domain.KingdomNames()},
		{Key: KeyTotalPopulation, Label: "Total Population", Placeholder: "300000", Kind: KindNumber},
		{Key: KeyImage, Label: "Image URL", Placeholder: "https://example.com/image.jpg", Kind: KindURL},
		{Key: KeyDescription, Label: "Description", Placeholder: "Enter species description...", Kind: KindTextarea},
	}
}

