package domain

import "strings"

// Kingdom is the taxonomic kingdom a species belongs to.
type Kingdom string

const (
	KingdomAnimalia Kingdom = "Animalia"
	KingdomPlantae  Kingdom = "Plantae"
	KingdomFungi    Kingdom = "Fungi"
	KingdomProtista Kingdom = "Protista"
	KingdomArchaea  Kingdom = "Archaea"
	KingdomBacteria Kingdom = "Bacteria"
)

// DefaultKingdom seeds new drafts.
const DefaultKingdom = KingdomAnimalia

var kingdoms = []Kingdom{
	KingdomAnimalia,
	KingdomPlantae,
	KingdomFungi,
	KingdomProtista,
	KingdomArchaea,
	KingdomBacteria,
}

// Kingdoms returns the enumeration in display order.
func Kingdoms() []Kingdom {
	return append([]Kingdom(nil), kingdoms...)
}

// KingdomNames returns the enumeration as strings, in display order.
func KingdomNames() []string {
	names := make([]string, len(kingdoms))
	for i, k := range kingdoms {
		names[i] = string(k)
	}
	return names
}

// Validate requires an exact member of the enumeration.
func (k Kingdom) Validate() error {
	for _, known := range kingdoms {
		if k == known {
			return nil
		}
	}
	return invalidKingdomError(string(k))
}

// ParseKingdom accepts case-insensitive, untrimmed input such as a command
// line flag and returns the canonical member.
func ParseKingdom(raw string) (Kingdom, error) {
	trimmed := strings.TrimSpace(raw)
	for _, known := range kingdoms {
		if strings.EqualFold(trimmed, string(known)) {
			return known, nil
		}
	}
	return "", invalidKingdomError(raw)
}

