package model

import "testing"

func TestMessageStatusString(t *testing.T) {
	if MessageStatusPending.String() != "Pending" {
		t.Errorf("Expected 'Pending', got '%s'", MessageStatusPending.String())
	}

	if MessageStatusSent.String() != "Sent" {
		t.Errorf("Expected 'Sent', got '%s'", MessageStatusSent.String())
	}
}

func TestMessageStatusIsActive(t *testing.T) {
	activeStatuses := []MessageStatus{MessageStatusSending}
	inactiveStatuses := []MessageStatus{MessageStatusPending, MessageStatusSent, MessageStatusError}

	for _, status := range activeStatuses {
		if !status.IsActive() {
			t.Errorf("Expected status %s to be active", status)
		}
	}

	for _, status := range inactiveStatuses {
		if status.IsActive() {
			t.Errorf("Expected status %s to not be active", status)
		}
	}
}

func TestMessageStatusIsFinished(t *testing.T) {
	finishedStatuses := []MessageStatus{MessageStatusSent, MessageStatusError}
	unfinishedStatuses := []MessageStatus{MessageStatusPending, MessageStatusSending}

	for _, status := range finishedStatuses {
		if !status.IsFinished() {
			t.Errorf("Expected status %s to be finished", status)
		}
	}

	for _, status := range unfinishedStatuses {
		if status.IsFinished() {
			t.Errorf("Expected status %s to not be finished", status)
		}
	}
}
