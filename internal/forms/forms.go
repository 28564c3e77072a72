// Package forms holds the per-screen form state and the submit lifecycle shared by
// every form: validate locally, send one request, then reset or keep the fields.
package forms

import (
	"context"
	"errors"
	"sync"

	"highfields/pkg/types"

	"github.com/sirupsen/logrus"
)

// ErrSubmitting is returned when a form is submitted while its previous submission
// is still in flight.
var ErrSubmitting = errors.New("a submission is already in progress")

// API is the subset of the remote API the forms submit to.
type API interface {
	CreateCheckIn(ctx context.Context, in *types.CheckInCreate) (*types.CheckIn, error)
	CreatePrayerRequest(ctx context.Context, in *types.PrayerRequestCreate) (*types.PrayerRequest, error)
	CreateQuestion(ctx context.Context, in *types.QuestionCreate) (*types.Question, error)
	CreateVolunteer(ctx context.Context, in *types.VolunteerCreate) (*types.Volunteer, error)
	CreateDonation(ctx context.Context, in *types.DonationCreate) (*types.Donation, error)
	CreateConnectRequest(ctx context.Context, in *types.ConnectRequestCreate) (*types.ConnectRequest, error)
	SignupLifeGroup(ctx context.Context, in *types.LifeGroupSignupCreate) (*types.LifeGroupSignup, error)
}

// Dialog is the blocking message shown after a submit attempt.
type Dialog struct {
	Title   string
	Message string
}

type Status int

const (
	Succeeded Status = iota
	Invalid
	Failed
	Busy
)

func (s Status) String() string {
	switch s {
	case Succeeded:
		return "succeeded"
	case Invalid:
		return "invalid"
	case Failed:
		return "failed"
	case Busy:
		return "busy"
	}
	return "unknown"
}

// Outcome is the result of one Submit call.
type Outcome struct {
	Status Status
	Dialog Dialog
	Err    error
}

// ValidationError names the field that blocked a submission and the message shown for it.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// Form is implemented by every form in this package.
type Form interface {
	Validate() error
	Reset()
	Close()
	Submitting() bool

	name() string
	send(ctx context.Context, api API) (Dialog, error)
	failure() Dialog
	state() *base
}

// base carries the modal flag and the in-flight flag every form owns.
type base struct {
	mu         sync.Mutex
	open       bool
	submitting bool
}

func (b *base) Open() {
	b.mu.Lock()
	b.open = true
	b.mu.Unlock()
}

// Close dismisses the modal. Field values are kept.
func (b *base) Close() {
	b.mu.Lock()
	b.open = false
	b.mu.Unlock()
}

func (b *base) IsOpen() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.open
}

// Submitting reports whether a request is in flight; the submit control is disabled while true.
func (b *base) Submitting() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.submitting
}

func (b *base) state() *base { return b }

// Controller runs the submit lifecycle against the remote API.
type Controller struct {
	api    API
	logger *logrus.Logger
}

func NewController(api API, logger *logrus.Logger) *Controller {
	return &Controller{api: api, logger: logger}
}

// Submit validates f and, when valid, issues exactly one request. On success the form
// is reset and closed; on failure its fields are left as they were.
func (c *Controller) Submit(ctx context.Context, f Form) Outcome {
	st := f.state()

	st.mu.Lock()
	if st.submitting {
		st.mu.Unlock()
		return Outcome{Status: Busy, Err: ErrSubmitting}
	}

	if err := f.Validate(); err != nil {
		st.mu.Unlock()
		return Outcome{Status: Invalid, Dialog: errorDialog(validationMessage(err)), Err: err}
	}

	st.submitting = true
	st.mu.Unlock()

	defer func() {
		st.mu.Lock()
		st.submitting = false
		st.mu.Unlock()
	}()

	dialog, err := f.send(ctx, c.api)
	if err != nil {
		c.logger.WithError(err).WithField("form", f.name()).Error("form submission failed")
		return Outcome{Status: Failed, Dialog: f.failure(), Err: err}
	}

	f.Reset()
	f.Close()

	return Outcome{Status: Succeeded, Dialog: dialog}
}

func errorDialog(message string) Dialog {
	return Dialog{Title: "Error", Message: message}
}

func validationMessage(err error) string {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	return err.Error()
}

func blank(values ...string) bool {
	for _, v := range values {
		if isBlank(v) {
			return true
		}
	}
	return false
}
