package dialog

import (
	"fmt"

	appErrors "biodex/internal/errors"
)

// Variant is the severity of a notification.
type Variant int

const (
	VariantDefault Variant = iota
	VariantDestructive
)

func (v Variant) String() string {
	if v == VariantDestructive {
		return "destructive"
	}
	return "default"
}

// Notification is what a dialog asks the page to announce.
type Notification struct {
	Title       string
	Description string
	Variant     Variant
}

const (
	failureTitle    = "Something went wrong."
	fallbackMessage = "An unknown error occurred."
)

// Added is the notification for a created species.
func Added(scientificName string) Notification {
	return Notification{
		Title:       "New species added!",
		Description: fmt.Sprintf("Successfully added %s.", scientificName),
	}
}

// Edited is the notification for an updated species.
func Edited(scientificName string) Notification {
	return Notification{
		Title:       "Species edited!",
		Description: fmt.Sprintf("Successfully edited %s.", scientificName),
	}
}

// Deleted is the notification for a removed species.
func Deleted() Notification {
	return Notification{Title: "Species successfully deleted!"}
}

// Failed turns a remote error into a destructive notification carrying the
// service message, or a fixed fallback when there is none.
func Failed(err error) Notification {
	msg := appErrors.MessageOf(err)
	if msg == "" {
		msg = fallbackMessage
	}
	return Notification{
		Title:       failureTitle,
		Description: msg,
		Variant:     VariantDestructive,
	}
}
