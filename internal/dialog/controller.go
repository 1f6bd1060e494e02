// Package dialog implements the submission lifecycle shared by the add, edit
// and delete dialogs.
//
// A Controller moves between three states:
//
//	closed ──Open──▶ open-idle ──Submit──▶ open-submitting
//	   ▲                 │  ▲                    │
//	   └─────Cancel──────┘  └──Resolve(failure)──┤
//	   ▲                                         │
//	   └────────────Resolve(success)─────────────┘
//
// Submit hands back a Dispatch: the one remote call for that submission. The
// caller runs it off the event loop and feeds the Result back into Resolve.
// While a call is outstanding further submits are ignored, so an instance
// never has two calls in flight.
package dialog

import (
	"context"
	"sync/atomic"

	"biodex/internal/debug"
)

// State is the visible lifecycle state of a dialog.
type State int

const (
	StateClosed State = iota
	StateOpenIdle
	StateOpenSubmitting
)

func (s State) String() string {
	switch s {
	case StateOpenIdle:
		return "open-idle"
	case StateOpenSubmitting:
		return "open-submitting"
	default:
		return "closed"
	}
}

// Submission is a validated request ready to be sent.
type Submission struct {
	// Run performs the remote call.
	Run func(ctx context.Context) error
	// Success is announced when Run returns nil.
	Success Notification
}

// Prepare validates the dialog's current input and builds the submission.
// Returning an error blocks dispatch and leaves the controller open-idle.
type Prepare func() (Submission, error)

// Dispatch runs one remote call and reports how it ended.
type Dispatch func(ctx context.Context) Result

// Result is the settled outcome of a Dispatch. It is tagged with the
// controller that issued it.
type Result struct {
	owner   uint64
	Err     error
	success Notification
}

// Outcome lists the effects the page should apply after Resolve.
type Outcome struct {
	Notification Notification
	// Refresh asks the page to reload its list.
	Refresh bool
	// Reset asks the dialog to discard its draft.
	Reset bool
}

var nextID atomic.Uint64

// Controller drives one dialog instance.
type Controller struct {
	id       uint64
	kind     Kind
	prepare  Prepare
	onOpen   func()
	open     bool
	inFlight bool
	lastErr  error
}

// Option configures a Controller.
type Option func(*Controller)

// WithOnOpen registers a hook that runs on every closed → open transition.
// Dialogs use it to reinitialise their draft.
func WithOnOpen(fn func()) Option {
	return func(c *Controller) {
		c.onOpen = fn
	}
}

// New returns a closed controller.
func New(kind Kind, prepare Prepare, opts ...Option) *Controller {
	c := &Controller{
		id:      nextID.Add(1),
		kind:    kind,
		prepare: prepare,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Kind reports which dialog this controller drives.
func (c *Controller) Kind() Kind { return c.kind }

// State reports the current state.
func (c *Controller) State() State {
	switch {
	case !c.open:
		return StateClosed
	case c.inFlight:
		return StateOpenSubmitting
	default:
		return StateOpenIdle
	}
}

// IsOpen reports whether the dialog is visible.
func (c *Controller) IsOpen() bool { return c.open }

// Submitting reports whether a call is outstanding, visible or not.
func (c *Controller) Submitting() bool { return c.inFlight }

// Err returns the error from the most recent rejected Submit, if any.
func (c *Controller) Err() error { return c.lastErr }

// Owns reports whether r was issued by this controller.
func (c *Controller) Owns(r Result) bool { return r.owner == c.id }

// Open shows the dialog and reinitialises its draft. Opening an open dialog
// does nothing.
func (c *Controller) Open() {
	if c.open {
		return
	}
	c.open = true
	c.lastErr = nil
	if c.onOpen != nil {
		c.onOpen()
	}
	c.trace("open")
}

// Submit validates and, when valid, moves to open-submitting and returns the
// single Dispatch for this attempt. It returns false when the dialog is closed,
// a call is already outstanding, or validation fails.
func (c *Controller) Submit() (Dispatch, bool) {
	if !c.open || c.inFlight {
		c.trace("submit.ignored")
		return nil, false
	}
	sub, err := c.prepare()
	if err != nil {
		c.lastErr = err
		c.trace("submit.invalid")
		return nil, false
	}
	c.lastErr = nil
	c.inFlight = true
	c.trace("submit")

	owner := c.id
	return func(ctx context.Context) Result {
		return Result{owner: owner, Err: sub.Run(ctx), success: sub.Success}
	}, true
}

// Resolve applies a settled Dispatch. Success closes the dialog and asks for a
// refresh and a draft reset; failure returns to open-idle with the draft kept.
// Results arriving after Cancel are still applied. A Result from another
// controller yields an empty Outcome.
func (c *Controller) Resolve(r Result) Outcome {
	if !c.Owns(r) {
		return Outcome{}
	}
	c.inFlight = false
	if r.Err != nil {
		c.trace("resolve.failure")
		return Outcome{Notification: Failed(r.Err)}
	}
	c.open = false
	c.trace("resolve.success")
	return Outcome{Notification: r.success, Refresh: true, Reset: true}
}

// Cancel closes the dialog without a call. An outstanding call keeps running
// and is still resolved.
func (c *Controller) Cancel() {
	if !c.open {
		return
	}
	c.open = false
	c.lastErr = nil
	c.trace("cancel")
}

func (c *Controller) trace(event string) {
	debug.Event("dialog."+event, map[string]any{
		"id":    c.id,
		"kind":  c.kind,
		"state": c.State(),
	})
}
