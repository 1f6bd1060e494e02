package dialog

// Kind names a species dialog.
type Kind int

const (
	KindAdd Kind = iota
	KindEdit
	KindDelete
)

func (k Kind) String() string {
	switch k {
	case KindEdit:
		return "edit"
	case KindDelete:
		return "delete"
	default:
		return "add"
	}
}

// Title is the dialog heading.
func (k Kind) Title() string {
	switch k {
	case KindEdit:
		return "Edit Species"
	case KindDelete:
		return "Delete Species"
	default:
		return "Add Species"
	}
}

// Description is the line under the heading.
func (k Kind) Description() string {
	switch k {
	case KindEdit:
		return `Edit species here. Press "Edit Species" below when you're done.`
	case KindDelete:
		return "Are you sure you want to delete this species? This action cannot be undone."
	default:
		return `Add a new species here. Press "Add Species" below when you're done.`
	}
}

// SubmitLabel is the submit button text for the given state.
func (k Kind) SubmitLabel(submitting bool) string {
	switch k {
	case KindEdit:
		if submitting {
			return "Saving..."
		}
		return "Edit Species"
	case KindDelete:
		if submitting {
			return "Deleting..."
		}
		return "Delete"
	default:
		if submitting {
			return "Adding..."
		}
		return "Add Species"
	}
}
