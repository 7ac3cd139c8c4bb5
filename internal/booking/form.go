// Package booking implements the booking request form: field state,
// validation, and the submission state machine. The HTTP handler in this
// package is its server-side surface; rendering stays with the client.
package booking

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/wellnesshub/platform/internal/forms"
)

// Session types a visitor can request.
const (
	SessionInPerson = "in-person"
	SessionVirtual  = "virtual"
)

// ErrorKeySubmit is the form-level error key: submission failures and
// rejected submissions land here rather than on any single field.
const ErrorKeySubmit = "submit"

// User-facing validation messages.
const (
	msgFullNameRequired    = "Full name is required"
	msgEmailRequired       = "Email is required"
	msgEmailInvalid        = "Please enter a valid email address"
	msgPhoneRequired       = "Phone number is required"
	msgSessionTypeRequired = "Please select a session type"
	msgConsentRequired     = "You must agree to be contacted and accept the privacy policy"
	// Shown for trapped automated submissions. Kept generic on purpose;
	// it must read like any other validation failure.
	msgInvalidSubmission = "Invalid submission"
	msgSubmitFailed      = "There was an error submitting your form. Please try again."
)

var (
	// ErrValidationFailed means Submit stopped at validation; the field
	// errors carry the details.
	ErrValidationFailed = errors.New("booking: validation failed")
	// ErrSubmitInFlight means a submission is already awaiting the
	// collaborator; the duplicate attempt was a no-op.
	ErrSubmitInFlight = errors.New("booking: submission already in flight")
	// ErrAlreadySubmitted means the form reached its terminal state.
	ErrAlreadySubmitted = errors.New("booking: form already submitted")
	// ErrSubmissionFailed means the external collaborator rejected the
	// submission; the form returned to editing with the generic retry
	// message set.
	ErrSubmissionFailed = errors.New("booking: submission failed")
)

// State is the form lifecycle position.
type State int

const (
	StateEditing State = iota
	StateSubmitting
	StateSucceeded
)

// Fields is the full booking field set. The honeypot field is never shown
// to legitimate users and is expected to stay empty.
type Fields struct {
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	SessionType    string `json:"sessionType"`
	Consultant     string `json:"consultant"`
	PreferredTimes string `json:"preferredTimes"`
	Reason         string `json:"reason"`
	Consent        bool   `json:"consent"`
	Honeypot       string `json:"honeypot"`
}

// Handoff is the contextual data carried to the confirmation view after a
// successful submission.
type Handoff struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	SessionType string `json:"sessionType"`
}

// Validate runs every applicable rule against the field set and returns the
// collected errors keyed by field name. It never short-circuits and has no
// side effects, so repeated calls on the same fields yield the same map.
func Validate(f Fields) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(f.FullName) == "" {
		errs["fullName"] = msgFullNameRequired
	}

	if strings.TrimSpace(f.Email) == "" {
		errs["email"] = msgEmailRequired
	} else if !forms.ValidEmail(f.Email) {
		errs["email"] = msgEmailInvalid
	}

	if strings.TrimSpace(f.Phone) == "" {
		errs["phone"] = msgPhoneRequired
	}

	if f.SessionType != SessionInPerson && f.SessionType != SessionVirtual {
		errs["sessionType"] = msgSessionTypeRequired
	}

	if !f.Consent {
		errs["consent"] = msgConsentRequired
	}

	if f.Honeypot != "" {
		errs[ErrorKeySubmit] = msgInvalidSubmission
	}

	return errs
}

// Form owns the mutable state of one booking attempt. Each instance is
// independent; nothing is shared across forms.
type Form struct {
	mu        sync.Mutex
	fields    Fields
	errors    map[string]string
	state     State
	submitter forms.Submitter
}

// NewForm creates an empty form bound to a submission collaborator.
func NewForm(submitter forms.Submitter) *Form {
	return &Form{
		errors:    make(map[string]string),
		submitter: submitter,
	}
}

// State returns the current lifecycle position.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Fields returns a snapshot of the current field values.
func (f *Form) Fields() Fields {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
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

// SetFields replaces the whole field set. Ignored unless the form is
// editable.
func (f *Form) SetFields(fields Fields) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateEditing {
		return
	}
	f.fields = fields
}

// UpdateField sets a single named field and clears that field's error.
// Unknown names and non-editing states are ignored; re-validation waits for
// the next Submit.
func (f *Form) UpdateField(name, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateEditing {
		return
	}
	switch name {
	case "fullName":
		f.fields.FullName = value
	case "email":
		f.fields.Email = value
	case "phone":
		f.fields.Phone = value
	case "sessionType":
		f.fields.SessionType = value
	case "consultant":
		f.fields.Consultant = value
	case "preferredTimes":
		f.fields.PreferredTimes = value
	case "reason":
		f.fields.Reason = value
	case "honeypot":
		f.fields.Honeypot = value
	default:
		return
	}
	delete(f.errors, name)
}

// SetConsent sets the consent checkbox and clears its error.
func (f *Form) SetConsent(v bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateEditing {
		return
	}
	f.fields.Consent = v
	delete(f.errors, "consent")
}

// Reset discards all state and returns the form to empty editing.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields = Fields{}
	f.errors = make(map[string]string)
	f.state = StateEditing
}

// Submit validates the current fields and, when clean, invokes the
// submission collaborator exactly once. While the call is in flight,
// further Submit calls are rejected without reaching the collaborator.
// Success is terminal and returns the confirmation hand-off; collaborator
// failure sets the generic retry message and returns the form to editing.
func (f *Form) Submit(ctx context.Context) (*Handoff, error) {
	f.mu.Lock()
	switch f.state {
	case StateSubmitting:
		f.mu.Unlock()
		return nil, ErrSubmitInFlight
	case StateSucceeded:
		f.mu.Unlock()
		return nil, ErrAlreadySubmitted
	}

	errs := Validate(f.fields)
	if len(errs) > 0 {
		f.errors = errs
		f.mu.Unlock()
		return nil, ErrValidationFailed
	}

	f.errors = make(map[string]string)
	f.state = StateSubmitting
	fields := f.fields
	f.mu.Unlock()

	err := f.submitter.Submit(ctx, payloadFor(fields))

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.state = StateEditing
		f.errors[ErrorKeySubmit] = msgSubmitFailed
		return nil, ErrSubmissionFailed
	}

	f.state = StateSucceeded
	return &Handoff{
		Name:        fields.FullName,
		Email:       fields.Email,
		SessionType: fields.SessionType,
	}, nil
}

// payloadFor builds the relay payload from the field set. The honeypot
// field never leaves the process.
func payloadFor(f Fields) forms.Payload {
	return forms.Payload{
		"form":           "booking",
		"submissionId":   uuid.NewString(),
		"fullName":       f.FullName,
		"email":          f.Email,
		"phone":          f.Phone,
		"sessionType":    f.SessionType,
		"consultant":     f.Consultant,
		"preferredTimes": f.PreferredTimes,
		"reason":         f.Reason,
		"consent":        f.Consent,
	}
}
