package dialog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"biodex/internal/domain"
	appErrors "biodex/internal/errors"
	"biodex/internal/schema"
	"biodex/internal/store"
)

var author = uuid.MustParse("5f1c4a52-5b3e-4d2a-9c4e-0d7f1b2a3c4d")

func validDraft() schema.Draft {
	d := schema.DefaultDraft()
	d.ScientificName = "Cavia porcellus"
	return d
}

func TestOpenRunsHookAndIsIdempotent(t *testing.T) {
	opened := 0
	c := New(KindDelete, func() (Submission, error) { return Submission{}, nil }, WithOnOpen(func() { opened++ }))

	require.Equal(t, StateClosed, c.State())
	c.Open()
	c.Open()
	require.Equal(t, StateOpenIdle, c.State())
	require.Equal(t, 1, opened)

	c.Cancel()
	c.Open()
	require.Equal(t, 2, opened, "each closed → open transition reinitialises")
}

func TestSubmitWhileClosedIsIgnored(t *testing.T) {
	mock := store.NewMockClient()
	c := NewDelete(mock, 4)

	dispatch, ok := c.Submit()
	require.False(t, ok)
	require.Nil(t, dispatch)
	_, _, deletes := mock.Calls()
	require.Zero(t, deletes)
}

func TestInvalidDraftBlocksDispatch(t *testing.T) {
	mock := store.NewMockClient()
	draft := schema.DefaultDraft()
	draft.ScientificName = "   "
	c := NewAdd(mock, author, func() schema.Draft { return draft })

	c.Open()
	dispatch, ok := c.Submit()
	require.False(t, ok)
	require.Nil(t, dispatch)
	require.Equal(t, StateOpenIdle, c.State())

	var fe schema.FieldErrors
	require.True(t, errors.As(c.Err(), &fe))
	require.Equal(t, schema.MsgScientificNameRequired, fe[schema.KeyScientificName])

	create, _, _ := mock.Calls()
	require.Zero(t, create)
}

func TestReentrantSubmitDispatchesOnce(t *testing.T) {
	mock := store.NewMockClient()
	c := NewAdd(mock, author, validDraft)

	c.Open()
	first, ok := c.Submit()
	require.True(t, ok)
	require.Equal(t, StateOpenSubmitting, c.State())

	second, ok := c.Submit()
	require.False(t, ok)
	require.Nil(t, second)

	result := first(context.Background())
	create, _, _ := mock.Calls()
	require.Equal(t, 1, create)

	out := c.Resolve(result)
	require.Equal(t, StateClosed, c.State())
	require.True(t, out.Refresh)
	require.True(t, out.Reset)
	require.Equal(t, Added("Cavia porcellus"), out.Notification)
	require.Equal(t, "Successfully added Cavia porcellus.", out.Notification.Description)

	require.Len(t, mock.CreateSpeciesCallArgs, 1)
	require.Equal(t, author, mock.CreateSpeciesCallArgs[0].Author)
	require.Equal(t, "Cavia porcellus", mock.CreateSpeciesCallArgs[0].Input.ScientificName)
}

func TestCreateFailureKeepsDialogOpenAndDraft(t *testing.T) {
	mock := store.NewMockClient()
	mock.CreateSpeciesFn = func(context.Context, uuid.UUID, domain.SpeciesInput) (domain.Species, error) {
		return domain.Species{}, appErrors.New(appErrors.CodeRemoteFailed, "duplicate key", errors.New("http 409"))
	}
	draft := validDraft()
	before := draft
	c := NewAdd(mock, author, func() schema.Draft { return draft })

	c.Open()
	dispatch, ok := c.Submit()
	require.True(t, ok)
	out := c.Resolve(dispatch(context.Background()))

	require.Equal(t, StateOpenIdle, c.State())
	require.False(t, out.Refresh)
	require.False(t, out.Reset)
	require.Equal(t, Notification{
		Title:       "Something went wrong.",
		Description: "duplicate key",
		Variant:     VariantDestructive,
	}, out.Notification)
	require.Equal(t, before, draft)

	// A retry is allowed once the failure has resolved.
	_, ok = c.Submit()
	require.True(t, ok)
}

func TestFailureWithoutMessageUsesFallback(t *testing.T) {
	mock := store.NewMockClient()
	mock.DeleteSpeciesFn = func(context.Context, int64) error {
		return appErrors.New(appErrors.CodeRemoteFailed, "", nil)
	}
	c := NewDelete(mock, 3)

	c.Open()
	dispatch, ok := c.Submit()
	require.True(t, ok)
	out := c.Resolve(dispatch(context.Background()))
	require.Equal(t, "An unknown error occurred.", out.Notification.Description)
	require.Equal(t, VariantDestructive, out.Notification.Variant)
}

func TestDeleteSuccessClosesAndRefreshesOnce(t *testing.T) {
	mock := store.NewMockClient()
	c := NewDelete(mock, 12)

	c.Open()
	dispatch, ok := c.Submit()
	require.True(t, ok)
	out := c.Resolve(dispatch(context.Background()))

	require.Equal(t, StateClosed, c.State())
	require.True(t, out.Refresh)
	require.Equal(t, Notification{Title: "Species successfully deleted!"}, out.Notification)
	require.Equal(t, []int64{12}, mock.DeleteSpeciesCallArgs)

	_, ok = c.Submit()
	require.False(t, ok, "closed dialogs do not submit")
}

func TestEditSendsFullFieldSet(t *testing.T) {
	mock := store.NewMockClient()
	original := domain.Species{
		ID:             9,
		Author:         author,
		ScientificName: "Canis lupus",
		CommonName:     ptr("Wolf"),
		Kingdom:        domain.KingdomAnimalia,
	}
	var draft schema.Draft
	c := NewEdit(mock, original.ID, func() schema.Draft { return draft },
		WithOnOpen(func() { draft = schema.DraftFrom(original) }))

	c.Open()
	draft.Set(schema.KeyCommonName, "  ")
	dispatch, ok := c.Submit()
	require.True(t, ok)
	out := c.Resolve(dispatch(context.Background()))

	require.Equal(t, Edited("Canis lupus"), out.Notification)
	require.Len(t, mock.UpdateSpeciesCallArgs, 1)
	arg := mock.UpdateSpeciesCallArgs[0]
	require.Equal(t, int64(9), arg.ID)
	require.Equal(t, domain.SpeciesInput{
		ScientificName: "Canis lupus",
		Kingdom:        domain.KingdomAnimalia,
	}, arg.Input)
}

func TestCancelDiscardsWithoutCall(t *testing.T) {
	mock := store.NewMockClient()
	c := NewAdd(mock, author, validDraft)

	c.Open()
	c.Cancel()
	require.Equal(t, StateClosed, c.State())
	create, update, del := mock.Calls()
	require.Zero(t, create+update+del)
}

func TestResultAfterCancelIsStillApplied(t *testing.T) {
	mock := store.NewMockClient()
	c := NewDelete(mock, 5)

	c.Open()
	dispatch, ok := c.Submit()
	require.True(t, ok)
	c.Cancel()
	require.Equal(t, StateClosed, c.State())
	require.True(t, c.Submitting())

	// Reopening while the call is outstanding must not allow a second call.
	c.Open()
	require.Equal(t, StateOpenSubmitting, c.State())
	_, ok = c.Submit()
	require.False(t, ok)

	out := c.Resolve(dispatch(context.Background()))
	require.True(t, out.Refresh)
	require.Equal(t, Deleted(), out.Notification)
	require.Equal(t, StateClosed, c.State())
	require.False(t, c.Submitting())
}

func TestInstancesAreIndependent(t *testing.T) {
	mock := store.NewMockClient()
	a := NewDelete(mock, 1)
	b := NewDelete(mock, 2)

	a.Open()
	b.Open()
	da, ok := a.Submit()
	require.True(t, ok)
	db, ok := b.Submit()
	require.True(t, ok, "a call in flight on one instance does not block another")

	ra := da(context.Background())
	require.True(t, a.Owns(ra))
	require.False(t, b.Owns(ra))
	require.Equal(t, Outcome{}, b.Resolve(ra))
	require.Equal(t, StateOpenSubmitting, b.State())

	require.True(t, a.Resolve(ra).Refresh)
	require.True(t, b.Resolve(db(context.Background())).Refresh)
	require.ElementsMatch(t, []int64{1, 2}, mock.DeleteSpeciesCallArgs)
}

func TestSubmitLabels(t *testing.T) {
	require.Equal(t, "Add Species", KindAdd.SubmitLabel(false))
	require.Equal(t, "Adding...", KindAdd.SubmitLabel(true))
	require.Equal(t, "Edit Species", KindEdit.SubmitLabel(false))
	require.Equal(t, "Saving...", KindEdit.SubmitLabel(true))
	require.Equal(t, "Delete", KindDelete.SubmitLabel(false))
	require.Equal(t, "Deleting...", KindDelete.SubmitLabel(true))
	require.Equal(t, "open-submitting", StateOpenSubmitting.String())
}

func ptr(s string) *string { return &s }
