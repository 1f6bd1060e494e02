package ui

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"biodex/internal/domain"
)

type speciesSource []domain.Species

func (s speciesSource) String(i int) string {
	name := s[i].ScientificName
	if s[i].CommonName != nil {
		name += " " + *s[i].CommonName
	}
	return strings.ToLower(name)
}

func (s speciesSource) Len() int { return len(s) }

// filterSpecies returns the indices of species matching query, best match
// first. A blank query keeps every species in list order.
func filterSpecies(list []domain.Species, query string) []int {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		idx := make([]int, len(list))
		for i := range list {
			idx[i] = i
		}
		return idx
	}
	matches := fuzzy.FindFrom(query, speciesSource(list))
	idx := make([]int, 0, len(matches))
	for _, match := range matches {
		idx = append(idx, match.Index)
	}
	return idx
}
