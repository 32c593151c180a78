package contact

import (
	"strings"
	"testing"
	"time"

	"github.com/ricar232/Portafolio/internal/model"
)

func TestNewService(t *testing.T) {
	service := NewService(DefaultDelay, DefaultSuccessRate)

	if service.delay != DefaultDelay {
		t.Errorf("Expected delay %v, got %v", DefaultDelay, service.delay)
	}

	if service.successRate != DefaultSuccessRate {
		t.Errorf("Expected success rate %v, got %v", DefaultSuccessRate, service.successRate)
	}

	if len(service.messages) != 0 {
		t.Errorf("Expected empty messages map, got %d items", len(service.messages))
	}
}

func TestSubmit(t *testing.T) {
	service := NewService(time.Hour, 1.0) // long delay keeps the message in flight

	msg, err := service.Submit("Ada", "ada@example.com", "Hi", "Let's talk")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if msg.Email != "ada@example.com" {
		t.Errorf("Expected email 'ada@example.com', got '%s'", msg.Email)
	}

	if msg.Status != model.MessageStatusPending && msg.Status != model.MessageStatusSending {
		t.Errorf("Expected status Pending or Sending, got %s", msg.Status)
	}

	// Identical resubmission while in flight is rejected
	_, err = service.Submit("Ada", "ada@example.com", "Hi", "Let's talk")
	if err == nil {
		t.Error("Expected error for duplicate in-flight submission, got nil")
	}

	// A different message is accepted
	_, err = service.Submit("Ada", "ada@example.com", "Hi", "Another message")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
}

func TestGetMessage(t *testing.T) {
	service := NewService(time.Hour, 1.0)

	msg, err := service.Submit("Ada", "ada@example.com", "", "Hello")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	retrieved, exists := service.GetMessage(msg.ID)
	if !exists {
		t.Error("Expected message to exist")
	}

	if retrieved.ID != msg.ID {
		t.Errorf("Expected message ID '%s', got '%s'", msg.ID, retrieved.ID)
	}

	_, exists = service.GetMessage("non-existing-id")
	if exists {
		t.Error("Expected message to not exist")
	}
}

func waitForFinished(t *testing.T, service *Service, id string) *model.ContactMessage {
	t.Helper()

	maxAttempts := 50
	for attempt := 0; attempt < maxAttempts; attempt++ {
		msg, exists := service.GetMessage(id)
		if exists && msg.Status.IsFinished() {
			return msg
		}
		time.Sleep(10 * time.Millisecond)
	}

	t.Fatalf("Message %s did not finish in time", id)
	return nil
}

func TestDeliverySuccess(t *testing.T) {
	service := NewService(time.Millisecond, 1.0)
	service.chance = func() float64 { return 0.5 } // always below rate 1.0

	msg, err := service.Submit("Ada", "ada@example.com", "", "Hello")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	finished := waitForFinished(t, service, msg.ID)

	if finished.Status != model.MessageStatusSent {
		t.Errorf("Expected status Sent, got %s", finished.Status)
	}

	if finished.LastError != "" {
		t.Errorf("Expected no error message, got '%s'", finished.LastError)
	}

	if finished.FinishedAt.IsZero() {
		t.Error("Expected FinishedAt to be set")
	}
}

func TestDeliveryFailure(t *testing.T) {
	service := NewService(time.Millisecond, 0.9)
	service.chance = func() float64 { return 0.95 } // above rate: forced failure

	msg, err := service.Submit("Ada", "ada@example.com", "", "Hello")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	finished := waitForFinished(t, service, msg.ID)

	if finished.Status != model.MessageStatusError {
		t.Errorf("Expected status Error, got %s", finished.Status)
	}

	if finished.LastError != ErrSubmissionFailed {
		t.Errorf("Expected error '%s', got '%s'", ErrSubmissionFailed, finished.LastError)
	}
}

func TestUpdateCallback(t *testing.T) {
	service := NewService(time.Millisecond, 1.0)
	service.chance = func() float64 { return 0.0 }

	statuses := make(chan model.MessageStatus, 8)
	service.SetUpdateCallback(func(msg *model.ContactMessage) {
		statuses <- msg.Status
	})

	_, err := service.Submit("Ada", "ada@example.com", "", "Hello")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	sawSending := false
	sawSent := false
	timeout := time.After(2 * time.Second)
	for !sawSent {
		select {
		case status := <-statuses:
			if status == model.MessageStatusSending {
				sawSending = true
			}
			if status == model.MessageStatusSent {
				sawSent = true
			}
		case <-timeout:
			t.Fatal("Timed out waiting for status updates")
		}
	}

	if !sawSending {
		t.Error("Expected a Sending update before the terminal one")
	}
}

func TestGenerateMessageID(t *testing.T) {
	id1 := generateMessageID()
	id2 := generateMessageID()

	if id1 == id2 {
		t.Error("Expected different message IDs")
	}

	if !strings.HasPrefix(id1, "msg-") {
		t.Errorf("Expected ID to start with 'msg-', got: %s", id1)
	}

	// msg- + 36 chars for UUID
	if len(id1) != len("msg-")+36 {
		t.Errorf("Expected ID length %d, got %d for ID: %s", len("msg-")+36, len(id1), id1)
	}
}
