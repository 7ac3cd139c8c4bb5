package booking

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wellnesshub/platform/internal/forms"
)

// recordingSubmitter counts invocations and records payloads.
type recordingSubmitter struct {
	mu       sync.Mutex
	payloads []forms.Payload
	err      error
	block    chan struct{} // when non-nil, Submit waits until closed
}

func (s *recordingSubmitter) Submit(ctx context.Context, payload forms.Payload) error {
	s.mu.Lock()
	s.payloads = append(s.payloads, payload)
	block := s.block
	s.mu.Unlock()
	if block != nil {
		<-block
	}
	return s.err
}

func (s *recordingSubmitter) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.payloads)
}

func validFields() Fields {
	return Fields{
		FullName:    "Jane Doe",
		Email:       "jane@example.com",
		Phone:       "555-0100",
		SessionType: SessionVirtual,
		Consent:     true,
	}
}

func TestValidate_CleanFields(t *testing.T) {
	assert.Empty(t, Validate(validFields()))
}

func TestValidate_RequiredFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Fields)
		field  string
	}{
		{"blank full name", func(f *Fields) { f.FullName = "" }, "fullName"},
		{"whitespace full name", func(f *Fields) { f.FullName = "   " }, "fullName"},
		{"blank email", func(f *Fields) { f.Email = "" }, "email"},
		{"whitespace email", func(f *Fields) { f.Email = " \t" }, "email"},
		{"blank phone", func(f *Fields) { f.Phone = "" }, "phone"},
		{"unset session type", func(f *Fields) { f.SessionType = "" }, "sessionType"},
		{"unknown session type", func(f *Fields) { f.SessionType = "telepathic" }, "sessionType"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fields := validFields()
			tc.mutate(&fields)

			errs := Validate(fields)
			require.Len(t, errs, 1)
			assert.Contains(t, errs, tc.field)
		})
	}
}

func TestValidate_EmailFormat(t *testing.T) {
	for _, email := range []string{"no-at.example.com", "missing-dot@example", "a@b"} {
		fields := validFields()
		fields.Email = email

		errs := Validate(fields)
		require.Len(t, errs, 1, "email %q", email)
		assert.Equal(t, "Please enter a valid email address", errs["email"])
	}
}

func TestValidate_MissingConsent(t *testing.T) {
	fields := validFields()
	fields.Consent = false

	errs := Validate(fields)
	require.Len(t, errs, 1)
	assert.Contains(t, errs, "consent")
}

func TestValidate_Honeypot(t *testing.T) {
	fields := validFields()
	fields.Honeypot = "http://spam"

	errs := Validate(fields)
	require.NotEmpty(t, errs)
	// The trap must not announce itself: no honeypot-keyed error, and the
	// message reads like an ordinary validation failure.
	assert.NotContains(t, errs, "honeypot")
	assert.Contains(t, errs, ErrorKeySubmit)
	assert.NotContains(t, errs[ErrorKeySubmit], "bot")
	assert.NotContains(t, errs[ErrorKeySubmit], "honeypot")
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	errs := Validate(Fields{})
	assert.Len(t, errs, 5) // fullName, email, phone, sessionType, consent
}

func TestValidate_Idempotent(t *testing.T) {
	fields := Fields{Email: "bad-email", Honeypot: "x"}

	first := Validate(fields)
	second := Validate(fields)
	assert.True(t, reflect.DeepEqual(first, second))
}

func TestSubmit_ValidBooking(t *testing.T) {
	submitter := &recordingSubmitter{}
	form := NewForm(submitter)
	form.SetFields(validFields())

	handoff, err := form.Submit(context.Background())
	require.NoError(t, err)
	require.NotNil(t, handoff)

	assert.Equal(t, "Jane Doe", handoff.Name)
	assert.Equal(t, "jane@example.com", handoff.Email)
	assert.Equal(t, SessionVirtual, handoff.SessionType)
	assert.Equal(t, StateSucceeded, form.State())
	require.Equal(t, 1, submitter.calls())

	payload := submitter.payloads[0]
	assert.Equal(t, "booking", payload["form"])
	assert.Equal(t, "Jane Doe", payload["fullName"])
	assert.Equal(t, true, payload["consent"])
	assert.NotEmpty(t, payload["submissionId"])
	_, hasHoneypot := payload["honeypot"]
	assert.False(t, hasHoneypot, "honeypot must never be submitted")
}

func TestSubmit_ValidationBlocksCollaborator(t *testing.T) {
	submitter := &recordingSubmitter{}
	form := NewForm(submitter)
	fields := validFields()
	fields.Phone = ""
	form.SetFields(fields)

	_, err := form.Submit(context.Background())
	require.ErrorIs(t, err, ErrValidationFailed)

	assert.Equal(t, 0, submitter.calls())
	assert.Equal(t, StateEditing, form.State())
	assert.Contains(t, form.Errors(), "phone")
}

func TestSubmit_HoneypotBlocksCollaborator(t *testing.T) {
	submitter := &recordingSubmitter{}
	form := NewForm(submitter)
	fields := validFields()
	fields.Honeypot = "http://spam"
	form.SetFields(fields)

	_, err := form.Submit(context.Background())
	require.ErrorIs(t, err, ErrValidationFailed)
	assert.Equal(t, 0, submitter.calls())
}

func TestSubmit_CollaboratorFailure(t *testing.T) {
	submitter := &recordingSubmitter{err: errors.New("relay down")}
	form := NewForm(submitter)
	form.SetFields(validFields())

	_, err := form.Submit(context.Background())
	require.ErrorIs(t, err, ErrSubmissionFailed)

	assert.Equal(t, StateEditing, form.State())
	assert.Equal(t, "There was an error submitting your form. Please try again.", form.Errors()[ErrorKeySubmit])

	// Retry after the collaborator recovers.
	submitter.err = nil
	handoff, err := form.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", handoff.Name)
	assert.Empty(t, form.Errors())
}

func TestSubmit_DuplicateWhileInFlight(t *testing.T) {
	block := make(chan struct{})
	submitter := &recordingSubmitter{block: block}
	form := NewForm(submitter)
	form.SetFields(validFields())

	done := make(chan error, 1)
	go func() {
		_, err := form.Submit(context.Background())
		done <- err
	}()

	// Wait for the first submit to reach the collaborator.
	require.Eventually(t, func() bool { return submitter.calls() == 1 }, time.Second, time.Millisecond)

	_, err := form.Submit(context.Background())
	require.ErrorIs(t, err, ErrSubmitInFlight)

	close(block)
	require.NoError(t, <-done)
	assert.Equal(t, 1, submitter.calls(), "collaborator must be invoked exactly once")
}

func TestSubmit_TerminalAfterSuccess(t *testing.T) {
	submitter := &recordingSubmitter{}
	form := NewForm(submitter)
	form.SetFields(validFields())

	_, err := form.Submit(context.Background())
	require.NoError(t, err)

	_, err = form.Submit(context.Background())
	require.ErrorIs(t, err, ErrAlreadySubmitted)
	assert.Equal(t, 1, submitter.calls())

	// The normal input path must not mutate a submitted form.
	form.UpdateField("fullName", "Someone Else")
	assert.Equal(t, "Jane Doe", form.Fields().FullName)
}

func TestUpdateField_ClearsFieldError(t *testing.T) {
	submitter := &recordingSubmitter{}
	form := NewForm(submitter)

	_, err := form.Submit(context.Background())
	require.ErrorIs(t, err, ErrValidationFailed)
	require.Contains(t, form.Errors(), "email")
	require.Contains(t, form.Errors(), "phone")

	form.UpdateField("email", "jane@example.com")

	errs := form.Errors()
	assert.NotContains(t, errs, "email")
	assert.Contains(t, errs, "phone", "other errors stay until the next submit")
}

func TestSetConsent_ClearsConsentError(t *testing.T) {
	form := NewForm(&recordingSubmitter{})
	fields := validFields()
	fields.Consent = false
	form.SetFields(fields)

	_, err := form.Submit(context.Background())
	require.ErrorIs(t, err, ErrValidationFailed)
	require.Contains(t, form.Errors(), "consent")

	form.SetConsent(true)
	assert.NotContains(t, form.Errors(), "consent")
}

func TestReset(t *testing.T) {
	form := NewForm(&recordingSubmitter{})
	form.SetFields(validFields())
	form.UpdateField("fullName", "")
	_, _ = form.Submit(context.Background())

	form.Reset()

	assert.Equal(t, StateEditing, form.State())
	assert.Empty(t, form.Errors())
	assert.Equal(t, Fields{}, form.Fields())
}
