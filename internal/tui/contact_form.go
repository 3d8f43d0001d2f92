package tui

import (
	"log"
	"strings"

	"github.com/akyairhashvil/zannat/internal/config"
	"github.com/akyairhashvil/zannat/internal/models"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldName = iota
	fieldEmail
	fieldMessage
	fieldCount
)

// ContactForm collects a name, an email and a message. There is no endpoint
// behind it: Submit only records that it was pressed.
type ContactForm struct {
	name    textinput.Model
	email   textinput.Model
	message textarea.Model
	focus   int
	submits int
}

func newContactForm() ContactForm {
	name := textinput.New()
	name.Placeholder = "Your Name"
	name.CharLimit = config.MaxNameLength
	name.Width = config.FormInputWidth

	email := textinput.New()
	email.Placeholder = "Your Email"
	email.CharLimit = config.MaxEmailLength
	email.Width = config.FormInputWidth

	message := textarea.New()
	message.Placeholder = "Your Message"
	message.ShowLineNumbers = false
	message.CharLimit = 0
	message.SetWidth(config.FormInputWidth)
	message.SetHeight(config.FormMessageHeight)
	message.Blur()

	return ContactForm{name: name, email: email, message: message, focus: -1}
}

func (f ContactForm) Focused() bool {
	return f.focus >= 0
}

func (f ContactForm) FocusedField() int {
	return f.focus
}

// Focus moves the cursor to field i, blurring the others.
func (f ContactForm) Focus(i int) (ContactForm, tea.Cmd) {
	f = f.Blur()
	f.focus = ((i % fieldCount) + fieldCount) % fieldCount
	var cmd tea.Cmd
	switch f.focus {
	case fieldName:
		cmd = f.name.Focus()
	case fieldEmail:
		cmd = f.email.Focus()
	case fieldMessage:
		cmd = f.message.Focus()
	}
	return f, cmd
}

func (f ContactForm) Next() (ContactForm, tea.Cmd) {
	return f.Focus(f.focus + 1)
}

func (f ContactForm) Prev() (ContactForm, tea.Cmd) {
	return f.Focus(f.focus - 1)
}

func (f ContactForm) Blur() ContactForm {
	f.name.Blur()
	f.email.Blur()
	f.message.Blur()
	f.focus = -1
	return f
}

// SetWidth resizes every field to width columns.
func (f ContactForm) SetWidth(width int) ContactForm {
	if width < 10 {
		width = 10
	}
	f.name.Width = width
	f.email.Width = width
	f.message.SetWidth(width)
	return f
}

func (f ContactForm) Update(msg tea.Msg) (ContactForm, tea.Cmd) {
	var cmd tea.Cmd
	switch f.focus {
	case fieldName:
		f.name, cmd = f.name.Update(msg)
	case fieldEmail:
		f.email, cmd = f.email.Update(msg)
	case fieldMessage:
		f.message, cmd = f.message.Update(msg)
	}
	return f, cmd
}

func (f ContactForm) Value() models.ContactForm {
	return models.ContactForm{
		Name:    strings.TrimSpace(f.name.Value()),
		Email:   strings.TrimSpace(f.email.Value()),
		Message: strings.TrimSpace(f.message.Value()),
	}
}

// Submit is deliberately inert: nothing is validated, sent or cleared.
func (f ContactForm) Submit() ContactForm {
	f.submits++
	log.Printf("contact form: submit ignored, no endpoint configured")
	return f
}

func (f ContactForm) Submits() int {
	return f.submits
}

// Fields returns the rendered inputs in tab order.
func (f ContactForm) Fields() []string {
	return []string{f.name.View(), f.email.View(), f.message.View()}
}
