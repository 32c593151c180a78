package contact

import (
	"github.com/ricar232/Portafolio/internal/model"
)

// Submitter defines the interface for the contact submission service.
type Submitter interface {
	SetUpdateCallback(func(*model.ContactMessage))
	Submit(name, email, subject, body string) (*model.ContactMessage, error)
	GetMessage(id string) (*model.ContactMessage, bool)
	GetAllMessages() []*model.ContactMessage
}
