// Package waitlist implements interest registration for placeholder
// services. One form instance exists per coming-soon page, bound to its
// service at construction.
package waitlist

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/wellnesshub/platform/internal/forms"
)

// User-facing messages.
const (
	msgEmailRequired = "Email is required"
	msgEmailInvalid  = "Please enter a valid email address"
	msgSubmitFailed  = "Something went wrong. Please try again."
)

// ErrorKeySubmit is the form-level error key for collaborator failures.
const ErrorKeySubmit = "submit"

var (
	ErrValidationFailed = errors.New("waitlist: validation failed")
	ErrSubmitInFlight   = errors.New("waitlist: submission already in flight")
	ErrAlreadySubmitted = errors.New("waitlist: form already submitted")
	ErrSubmissionFailed = errors.New("waitlist: submission failed")
)

// State is the form lifecycle position.
type State int

const (
	StateEditing State = iota
	StateSubmitting
	StateSucceeded
)

// Fields is the waitlist field set. Only email is required.
type Fields struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Validate collects all applicable errors for the field set.
func Validate(f Fields) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(f.Email) == "" {
		errs["email"] = msgEmailRequired
	} else if !forms.ValidEmail(f.Email) {
		errs["email"] = msgEmailInvalid
	}

	return errs
}

// Form owns the state of one waitlist registration. The bound service
// identifier and display name are fixed at construction and embedded
// unmodified into the payload and confirmation message.
type Form struct {
	mu        sync.Mutex
	serviceID string
	service   string
	fields    Fields
	errors    map[string]string
	state     State
	submitter forms.Submitter
}

// NewForm creates an empty waitlist form for the named service.
func NewForm(serviceID, serviceName string, submitter forms.Submitter) *Form {
	return &Form{
		serviceID: serviceID,
		service:   serviceName,
		errors:    make(map[string]string),
		submitter: submitter,
	}
}

// Service returns the bound service display name.
func (f *Form) Service() string {
	return f.service
}

// State returns the current lifecycle position.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Errors returns a copy of the current error map.
func (f *Form) Errors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]string, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

// SetFields replaces the field set. Ignored unless the form is editable.
func (f *Form) SetFields(fields Fields) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateEditing {
		return
	}
	f.fields = fields
}

// UpdateField sets a single named field and clears that field's error.
func (f *Form) UpdateField(name, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateEditing {
		return
	}
	switch name {
	case "name":
		f.fields.Name = value
	case "email":
		f.fields.Email = value
	case "phone":
		f.fields.Phone = value
	default:
		return
	}
	delete(f.errors, name)
}

// Reset discards all state and returns the form to empty editing.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields = Fields{}
	f.errors = make(map[string]string)
	f.state = StateEditing
}

// ConfirmationMessage is the inline confirmation shown after success.
func (f *Form) ConfirmationMessage() string {
	return "We'll notify you as soon as " + f.service + " launches. Thank you for your interest!"
}

// Submit validates and, when clean, invokes the submission collaborator
// exactly once. Duplicate calls while in flight are rejected before
// reaching the collaborator. Success is terminal for this instance.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	switch f.state {
	case StateSubmitting:
		f.mu.Unlock()
		return ErrSubmitInFlight
	case StateSucceeded:
		f.mu.Unlock()
		return ErrAlreadySubmitted
	}

	errs := Validate(f.fields)
	if len(errs) > 0 {
		f.errors = errs
		f.mu.Unlock()
		return ErrValidationFailed
	}

	f.errors = make(map[string]string)
	f.state = StateSubmitting
	fields := f.fields
	f.mu.Unlock()

	err := f.submitter.Submit(ctx, forms.Payload{
		"form":         "waitlist",
		"submissionId": uuid.NewString(),
		"serviceId":    f.serviceID,
		"service":      f.service,
		"name":         fields.Name,
		"email":        fields.Email,
		"phone":        fields.Phone,
	})

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.state = StateEditing
		f.errors[ErrorKeySubmit] = msgSubmitFailed
		return ErrSubmissionFailed
	}

	f.state = StateSucceeded
	return nil
}
