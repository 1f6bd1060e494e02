package dialog

import (
	"context"

	"github.com/google/uuid"

	"biodex/internal/domain"
	"biodex/internal/schema"
)

// Writer is the slice of the store the species dialogs call.
type Writer interface {
	CreateSpecies(ctx context.Context, author uuid.UUID, in domain.SpeciesInput) (domain.Species, error)
	UpdateSpecies(ctx context.Context, id int64, in domain.SpeciesInput) ([]domain.Species, error)
	DeleteSpecies(ctx context.Context, id int64) error
}

// NewAdd builds the controller for the add dialog. draft returns the form's
// current working copy at submit time.
func NewAdd(w Writer, author uuid.UUID, draft func() schema.Draft, opts ...Option) *Controller {
	return New(KindAdd, func() (Submission, error) {
		in, errs := schema.Validate(draft())
		if errs != nil {
			return Submission{}, errs
		}
		return Submission{
			Run: func(ctx context.Context) error {
				_, err := w.CreateSpecies(ctx, author, in)
				return err
			},
			Success: Added(in.ScientificName),
		}, nil
	}, opts...)
}

// NewEdit builds the controller for editing species id.
func NewEdit(w Writer, id int64, draft func() schema.Draft, opts ...Option) *Controller {
	return New(KindEdit, func() (Submission, error) {
		in, errs := schema.Validate(draft())
		if errs != nil {
			return Submission{}, errs
		}
		return Submission{
			Run: func(ctx context.Context) error {
				_, err := w.UpdateSpecies(ctx, id, in)
				return err
			},
			Success: Edited(in.ScientificName),
		}, nil
	}, opts...)
}

// NewDelete builds the controller for deleting species id. There is no form,
// so submit is always accepted.
func NewDelete(w Writer, id int64, opts ...Option) *Controller {
	return New(KindDelete, func() (Submission, error) {
		return Submission{
			Run: func(ctx context.Context) error {
				return w.DeleteSpecies(ctx, id)
			},
			Success: Deleted(),
		}, nil
	}, opts...)
}
