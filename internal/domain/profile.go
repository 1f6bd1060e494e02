package domain

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// BioPreviewLength is how many characters of a biography a card shows.
const BioPreviewLength = 150

// Profile is a read-only user record.
type Profile struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Biography   *string   `json:"biography"`
}

// Initials returns the first two characters of the display name, upper-cased.
func (p Profile) Initials() string {
	name := p.DisplayName
	n := 0
	for i := range name {
		if n == 2 {
			return strings.ToUpper(name[:i])
		}
		n++
	}
	return strings.ToUpper(name)
}

// BioPreview cuts the biography to limit characters, trims it and appends an
// ellipsis. An absent or empty biography yields "".
func (p Profile) BioPreview(limit int) string {
	if p.Biography == nil || *p.Biography == "" {
		return ""
	}
	bio := *p.Biography
	if utf8.RuneCountInString(bio) > limit {
		bio = string([]rune(bio)[:limit])
	}
	return strings.TrimSpace(bio) + "..."
}
