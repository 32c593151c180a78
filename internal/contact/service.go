package contact

import (
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ricar232/Portafolio/internal/model"
)

// Simulation parameters for the stubbed sender
const (
	DefaultDelay       = 2 * time.Second
	DefaultSuccessRate = 0.9
)

// ErrSubmissionFailed is the generic user-facing failure message
const ErrSubmissionFailed = "submission failed: the message could not be delivered"

// Service handles contact message submissions
type Service struct {
	messages      map[string]*model.ContactMessage
	messagesMutex sync.RWMutex
	delay         time.Duration
	successRate   float64
	chance        func() float64              // injectable randomness source
	onUpdate      func(*model.ContactMessage) // callback for UI updates
}

// NewService creates a new contact submission service
func NewService(delay time.Duration, successRate float64) *Service {
	return &Service{
		messages:    make(map[string]*model.ContactMessage),
		delay:       delay,
		successRate: successRate,
		chance:      rand.Float64,
	}
}

// SetUpdateCallback sets the callback function for message status updates
func (s *Service) SetUpdateCallback(callback func(*model.ContactMessage)) {
	s.onUpdate = callback
}

// Submit creates a new contact message and starts its delivery. It rejects a
// resubmission while an identical message is still in flight.
func (s *Service) Submit(name, email, subject, body string) (*model.ContactMessage, error) {
	s.messagesMutex.Lock()
	defer s.messagesMutex.Unlock()

	for _, msg := range s.messages {
		if msg.Email == email && msg.Body == body && !msg.Status.IsFinished() {
			return nil, fmt.Errorf("a submission is already in progress for this message")
		}
	}

	msg := &model.ContactMessage{
		ID:        generateMessageID(),
		Name:      name,
		Email:     email,
		Subject:   subject,
		Body:      body,
		Status:    model.MessageStatusPending,
		CreatedAt: time.Now(),
	}

	s.messages[msg.ID] = msg

	go s.deliver(msg)

	return msg, nil
}

// GetMessage returns a message by ID
func (s *Service) GetMessage(id string) (*model.ContactMessage, bool) {
	s.messagesMutex.RLock()
	defer s.messagesMutex.RUnlock()
	msg, exists := s.messages[id]
	return msg, exists
}

// GetAllMessages returns all messages
func (s *Service) GetAllMessages() []*model.ContactMessage {
	s.messagesMutex.RLock()
	defer s.messagesMutex.RUnlock()

	messages := make([]*model.ContactMessage, 0, len(s.messages))
	for _, msg := range s.messages {
		messages = append(messages, msg)
	}
	return messages
}

// deliver runs the simulated send: a fixed delay, then success with the
// configured probability. There is no automatic retry; resubmission is the
// recovery path.
func (s *Service) deliver(msg *model.ContactMessage) {
	s.messagesMutex.Lock()
	msg.Status = model.MessageStatusSending
	s.messagesMutex.Unlock()
	s.notifyUpdate(msg)

	time.Sleep(s.delay)

	s.messagesMutex.Lock()
	if s.chance() < s.successRate {
		msg.Status = model.MessageStatusSent
	} else {
		msg.Status = model.MessageStatusError
		msg.LastError = ErrSubmissionFailed
	}
	msg.FinishedAt = time.Now()
	s.messagesMutex.Unlock()

	log.Printf("Message %s finished with status %s", msg.ID, msg.Status)
	s.notifyUpdate(msg)
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(msg *model.ContactMessage) {
	if s.onUpdate != nil {
		s.onUpdate(msg)
	}
}

// generateMessageID generates a unique message ID
func generateMessageID() string {
	return "msg-" + uuid.NewString()
}
