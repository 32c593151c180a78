package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ricar232/Portafolio/internal/contact"
	"github.com/ricar232/Portafolio/internal/model"
	"github.com/ricar232/Portafolio/internal/validate"
)

// MessageMinLen is the minimum message body length accepted by the form
const MessageMinLen = 10

// ContactForm collects and validates a contact message, then hands it to the
// submission service. While a submission is in flight the send button is
// disabled and a spinner shows; the outcome arrives through the service's
// update callback.
type ContactForm struct {
	widget.BaseWidget

	loc     *Localization
	canvas  fyne.Canvas
	service contact.Submitter

	nameEntry    *widget.Entry
	emailEntry   *widget.Entry
	phoneEntry   *widget.Entry
	subjectEntry *widget.Entry
	messageEntry *widget.Entry

	nameError    *widget.Label
	emailError   *widget.Label
	phoneError   *widget.Label
	messageError *widget.Label

	sendButton *widget.Button
	spinner    *widget.ProgressBarInfinite

	pendingID string
}

// NewContactForm creates the contact form wired to the submission service
func NewContactForm(loc *Localization, canvas fyne.Canvas, service contact.Submitter) *ContactForm {
	cf := &ContactForm{loc: loc, canvas: canvas, service: service}
	cf.ExtendBaseWidget(cf)

	cf.nameEntry = widget.NewEntry()
	cf.nameEntry.SetPlaceHolder(loc.GetText(KeyFormName))
	cf.emailEntry = widget.NewEntry()
	cf.emailEntry.SetPlaceHolder(loc.GetText(KeyFormEmail))
	cf.phoneEntry = widget.NewEntry()
	cf.phoneEntry.SetPlaceHolder(loc.GetText(KeyFormPhone))
	cf.subjectEntry = widget.NewEntry()
	cf.subjectEntry.SetPlaceHolder(loc.GetText(KeyFormSubject))
	cf.messageEntry = widget.NewMultiLineEntry()
	cf.messageEntry.SetPlaceHolder(loc.GetText(KeyFormMessage))
	cf.messageEntry.Wrapping = fyne.TextWrapWord
	cf.messageEntry.SetMinRowsVisible(4)

	cf.nameError = newFieldError()
	cf.emailError = newFieldError()
	cf.phoneError = newFieldError()
	cf.messageError = newFieldError()

	cf.sendButton = widget.NewButton(loc.GetText(KeySend), cf.onSubmit)
	cf.sendButton.Importance = widget.HighImportance

	cf.spinner = widget.NewProgressBarInfinite()
	cf.spinner.Stop()
	cf.spinner.Hide()

	service.SetUpdateCallback(cf.onMessageUpdate)

	return cf
}

// CreateRenderer builds the form layout
func (cf *ContactForm) CreateRenderer() fyne.WidgetRenderer {
	form := container.NewVBox(
		cf.nameEntry, cf.nameError,
		cf.emailEntry, cf.emailError,
		cf.phoneEntry, cf.phoneError,
		cf.subjectEntry,
		cf.messageEntry, cf.messageError,
		container.NewBorder(nil, nil, nil, cf.sendButton, cf.spinner),
	)
	return widget.NewSimpleRenderer(form)
}

// newFieldError creates a hidden inline error label
func newFieldError() *widget.Label {
	label := widget.NewLabel("")
	label.TextStyle = fyne.TextStyle{Italic: true}
	label.Importance = widget.DangerImportance
	label.Hide()
	return label
}

// Validate checks every field and updates the inline errors. It returns true
// when the form can be submitted.
func (cf *ContactForm) Validate() bool {
	checks := []struct {
		result validate.Result
		label  *widget.Label
	}{
		{validate.All(cf.nameEntry.Text, validate.Required), cf.nameError},
		{validate.All(cf.emailEntry.Text, validate.Required, validate.Email), cf.emailError},
		{validate.All(cf.phoneEntry.Text, validate.Phone), cf.phoneError},
		{validate.All(cf.messageEntry.Text, validate.Required, validate.MinLen(MessageMinLen)), cf.messageError},
	}

	ok := true
	for _, check := range checks {
		applyFieldError(check.label, check.result)
		if !check.result.OK {
			ok = false
		}
	}
	return ok
}

// applyFieldError shows or clears one inline error label
func applyFieldError(label *widget.Label, result validate.Result) {
	if result.OK {
		label.SetText("")
		label.Hide()
		return
	}
	label.SetText(result.Message)
	label.Show()
}

// onSubmit validates the form and starts the submission
func (cf *ContactForm) onSubmit() {
	if !cf.Validate() {
		ShowToast(cf.canvas, IconError, cf.loc.GetText(KeyFixFormErrors))
		return
	}

	body := cf.messageEntry.Text
	if phone := cf.phoneEntry.Text; phone != "" {
		body += "\n\n" + cf.loc.GetText(KeyFormPhone) + ": " + phone
	}

	msg, err := cf.service.Submit(cf.nameEntry.Text, cf.emailEntry.Text, cf.subjectEntry.Text, body)
	if err != nil {
		log.Printf("Submit rejected: %v", err)
		ShowToast(cf.canvas, IconError, cf.loc.GetText(KeyMessageFailed))
		return
	}

	cf.pendingID = msg.ID
	cf.setBusy(true)
}

// onMessageUpdate reacts to submission status changes. It is called from the
// service goroutine, so UI mutations are funneled through fyne.Do.
func (cf *ContactForm) onMessageUpdate(msg *model.ContactMessage) {
	if msg.ID != cf.pendingID || !msg.Status.IsFinished() {
		return
	}

	sent := msg.Status == model.MessageStatusSent
	fyne.Do(func() {
		cf.pendingID = ""
		cf.setBusy(false)

		if sent {
			cf.clearFields()
			ShowToast(cf.canvas, IconMail, cf.loc.GetText(KeyMessageSent))
		} else {
			ShowToast(cf.canvas, IconError, cf.loc.GetText(KeyMessageFailed))
		}
	})

	outcome := cf.loc.GetText(KeyMessageSent)
	if !sent {
		outcome = cf.loc.GetText(KeyMessageFailed)
	}
	fyne.CurrentApp().SendNotification(&fyne.Notification{
		Title:   cf.loc.GetText(KeyAppTitle),
		Content: outcome,
	})
}

// setBusy toggles the in-flight state of the send button and spinner
func (cf *ContactForm) setBusy(busy bool) {
	if busy {
		cf.sendButton.SetText(cf.loc.GetText(KeySending))
		cf.sendButton.Disable()
		cf.spinner.Show()
		cf.spinner.Start()
		return
	}
	cf.sendButton.SetText(cf.loc.GetText(KeySend))
	cf.sendButton.Enable()
	cf.spinner.Stop()
	cf.spinner.Hide()
}

// clearFields resets the form after a successful send
func (cf *ContactForm) clearFields() {
	cf.nameEntry.SetText("")
	cf.emailEntry.SetText("")
	cf.phoneEntry.SetText("")
	cf.subjectEntry.SetText("")
	cf.messageEntry.SetText("")
}
