package tui

import (
	"sort"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyHandler returns handled=false to let lower priority bindings run.
type KeyHandler func(m MainModel, msg tea.KeyMsg) (MainModel, tea.Cmd, bool)

type KeyBinding struct {
	Binding  key.Binding
	Handler  KeyHandler
	Modes    []Mode
	Priority int
}

func (b KeyBinding) AppliesToMode(mode Mode) bool {
	if len(b.Modes) == 0 {
		return true
	}
	for _, m := range b.Modes {
		if m == mode {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m MainModel, msg tea.KeyMsg) (MainModel, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.AppliesToMode(m.mode) && key.Matches(msg, b.Binding) {
			next, cmd, handled := b.Handler(m, msg)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

// BindingsForMode lists the bindings with help text, one per help key.
func (r *HandlerRegistry) BindingsForMode(mode Mode) []key.Binding {
	seen := make(map[string]bool)
	var out []key.Binding
	for _, b := range r.bindings {
		if !b.AppliesToMode(mode) {
			continue
		}
		h := b.Binding.Help()
		if h.Desc == "" || seen[h.Key] {
			continue
		}
		seen[h.Key] = true
		out = append(out, b.Binding)
	}
	return out
}

// helpKeys adapts a binding list to help.KeyMap.
type helpKeys []key.Binding

func (h helpKeys) ShortHelp() []key.Binding { return h }
func (h helpKeys) FullHelp() [][]key.Binding {
	const perColumn = 4
	var cols [][]key.Binding
	for i := 0; i < len(h); i += perColumn {
		cols = append(cols, h[i:min(i+perColumn, len(h))])
	}
	return cols
}
