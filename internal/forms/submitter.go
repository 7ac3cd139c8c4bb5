// Package forms defines the submission collaborator shared by the booking
// and waitlist controllers: one asynchronous operation taking a payload of
// named string/bool fields and returning success or failure. Callers map
// every failure to a single generic retry message; no granular cause is
// surfaced to the end user.
package forms

import "context"

// Payload is the named field set of an accepted submission. Values are
// strings and bools only.
type Payload map[string]any

// Submitter delivers an accepted form submission to an external system.
type Submitter interface {
	Submit(ctx context.Context, payload Payload) error
}
