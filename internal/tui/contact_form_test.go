package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeInto(f ContactForm, s string) ContactForm {
	for _, r := range s {
		f, _ = f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return f
}

func TestContactFormFocusCycles(t *testing.T) {
	f := newContactForm()
	if f.Focused() {
		t.Fatalf("form must start blurred")
	}
	f, _ = f.Focus(fieldName)
	f, _ = f.Next()
	if f.FocusedField() != fieldEmail {
		t.Fatalf("expected email focused, got %d", f.FocusedField())
	}
	f, _ = f.Next()
	f, _ = f.Next()
	if f.FocusedField() != fieldName {
		t.Fatalf("expected focus to wrap to name, got %d", f.FocusedField())
	}
	f, _ = f.Prev()
	if f.FocusedField() != fieldMessage {
		t.Fatalf("expected focus to wrap back to message, got %d", f.FocusedField())
	}
	f = f.Blur()
	if f.Focused() {
		t.Fatalf("expected blurred form")
	}
}

func TestContactFormTypingGoesToFocusedField(t *testing.T) {
	f := newContactForm()
	f = typeInto(f, "ignored")
	if f.Value().Name != "" {
		t.Fatalf("blurred form must ignore input")
	}
	f, _ = f.Focus(fieldName)
	f = typeInto(f, "Ada")
	f, _ = f.Focus(fieldEmail)
	f = typeInto(f, "ada@example.com")
	f, _ = f.Focus(fieldMessage)
	f = typeInto(f, "hello")

	v := f.Value()
	if v.Name != "Ada" || v.Email != "ada@example.com" || v.Message != "hello" {
		t.Fatalf("Value() = %+v", v)
	}
}

func TestContactFormSubmitIsNoop(t *testing.T) {
	f := newContactForm()
	f, _ = f.Focus(fieldName)
	f = typeInto(f, "Ada")
	before := f.Value()
	f = f.Submit()
	if f.Value() != before {
		t.Fatalf("submit must not change the form")
	}
	if f.Submits() != 1 {
		t.Fatalf("Submits() = %d, want 1", f.Submits())
	}
	if len(f.Fields()) != fieldCount {
		t.Fatalf("expected %d rendered fields", fieldCount)
	}
}
