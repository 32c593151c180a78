// Package contact implements the contact-form submission pipeline. The
// current sender is a simulated collaborator stub (fixed delay, fixed success
// probability) behind the Submitter interface, meant to be replaced by a real
// transport. It manages message lifecycle, explicit status transitions, and
// progress propagation to the UI.
package contact
