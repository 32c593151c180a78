package model

// MessageStatus represents the status of a contact message submission
type MessageStatus string

const (
	// MessageStatusPending means the message is created but not yet sent
	MessageStatusPending MessageStatus = "Pending"

	// MessageStatusSending means the submission is in progress
	MessageStatusSending MessageStatus = "Sending"

	// MessageStatusSent means the submission finished successfully
	MessageStatusSent MessageStatus = "Sent"

	// MessageStatusError means the submission failed
	MessageStatusError MessageStatus = "Error"
)

// String returns the string representation of MessageStatus
func (ms MessageStatus) String() string {
	return string(ms)
}

// IsActive returns true if the submission is in flight
func (ms MessageStatus) IsActive() bool {
	return ms == MessageStatusSending
}

// IsFinished returns true if the submission reached a terminal state (sent or error)
func (ms MessageStatus) IsFinished() bool {
	return ms == MessageStatusSent || ms == MessageStatusError
}
