package model

import (
	"strings"
	"time"
)

// Subject preview constants
const (
	SubjectPreviewLen = 40
	Ellipsis          = "…"
)

// ContactMessage represents a single contact form submission
type ContactMessage struct {
	ID         string
	Name       string
	Email      string
	Subject    string // optional
	Body       string
	Status     MessageStatus
	LastError  string    // last error message if any
	CreatedAt  time.Time // when the message was created
	FinishedAt time.Time // when the submission finished
}

// GetDisplaySubject returns the subject, or a trimmed excerpt of the body
// when no subject was given
func (cm *ContactMessage) GetDisplaySubject() string {
	subject := strings.TrimSpace(cm.Subject)
	if subject != "" {
		return subject
	}

	body := strings.TrimSpace(cm.Body)
	body = strings.ReplaceAll(body, "\n", " ")
	body = strings.ReplaceAll(body, "\r", " ")
	if body == "" {
		return ""
	}

	runes := []rune(body)
	if len(runes) <= SubjectPreviewLen {
		return body
	}
	return string(runes[:SubjectPreviewLen]) + Ellipsis
}

// GetDisplaySender returns the sender name, falling back to the email address
func (cm *ContactMessage) GetDisplaySender() string {
	if strings.TrimSpace(cm.Name) != "" {
		return strings.TrimSpace(cm.Name)
	}
	return strings.TrimSpace(cm.Email)
}
