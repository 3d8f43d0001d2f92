package tui

import (
	"github.com/akyairhashvil/zannat/internal/config"
	"github.com/akyairhashvil/zannat/internal/drawer"
	"github.com/akyairhashvil/zannat/internal/input"
	tea "github.com/charmbracelet/bubbletea"
)

func (m MainModel) handleWindowSize(msg tea.WindowSizeMsg) (MainModel, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-config.HeaderHeight-config.HelpHeight, 1)
	m.help.Width = m.width
	m.form = m.form.SetWidth(m.formWidth())
	m = m.refreshBody()
	return m.scrollTo(m.viewport.YOffset), nil
}

// handleFrame evaluates every animation exactly once and schedules the next
// frame. Input handlers never step anything themselves. A page at rest only
// keeps the loop alive.
func (m MainModel) handleFrame() (MainModel, tea.Cmd) {
	if m.atRest() {
		return m, frameCmd(m.frame)
	}
	entering := !m.entrances.Settled()
	m.marker.Step()
	m.entrances.Advance(m.frame)
	m.drawer.Advance(m.frame)
	m.fade.Advance(m.frame)
	m.frames++
	if entering {
		m = m.refreshBody()
	}
	return m, frameCmd(m.frame)
}

// atRest reports whether no animation has anything left to do. Only the
// entrances live in the body; the header, drawer and marker are drawn by View.
func (m MainModel) atRest() bool {
	return m.entrances.Settled() &&
		m.marker.Settled(config.SpringTolerance) &&
		!m.drawer.Sliding() &&
		m.fade.Settled()
}

func (m MainModel) handleMouse(msg tea.MouseMsg) (MainModel, tea.Cmd) {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		return m.scrollBy(-config.WheelStep), nil
	case msg.Button == tea.MouseButtonWheelDown:
		return m.scrollBy(config.WheelStep), nil
	case msg.Action == tea.MouseActionMotion:
		m.session.bus.PublishPointer(input.PointerEvent{X: float64(msg.X), Y: float64(msg.Y)})
		return m, nil
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		return m.handleClick(msg.X, msg.Y)
	}
	return m, nil
}

func (m MainModel) handleClick(x, y int) (MainModel, tea.Cmd) {
	if m.drawerCloseHit(x, y) {
		m.drawer.Close()
		return m, nil
	}
	if m.menuButtonHit(x, y) {
		m.drawer.Toggle()
	}
	return m, nil
}

func (m MainModel) handleKey(msg tea.KeyMsg) (MainModel, tea.Cmd) {
	if next, cmd, handled := m.registry.Handle(m, msg); handled {
		return next, cmd
	}
	if m.mode == ModeForm {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		m = m.refreshBody()
		return m, cmd
	}
	return m, nil
}

// scrollTo moves the viewport and publishes the new offset in pixels.
func (m MainModel) scrollTo(row int) MainModel {
	m.viewport.SetYOffset(row)
	m.session.bus.PublishScroll(input.ScrollEvent{Offset: m.viewport.YOffset * config.RowHeightPx})
	return m
}

func (m MainModel) scrollBy(rows int) MainModel {
	return m.scrollTo(m.viewport.YOffset + rows)
}

func (m MainModel) menuButtonHit(x, y int) bool {
	if m.wideLayout() || y != config.HeaderHeight/2 {
		return false
	}
	start, end := m.menuButtonSpan()
	return x >= start && x < end
}

func (m MainModel) drawerCloseHit(x, y int) bool {
	if m.drawer.Presence() != drawer.Mounted {
		return false
	}
	return y == drawerCloseRow && x >= m.drawerColumn()
}

func newPageRegistry(k KeyMap) *HandlerRegistry {
	r := NewHandlerRegistry()
	browse := []Mode{ModeBrowse}
	form := []Mode{ModeForm}

	r.Register(KeyBinding{Binding: k.ForceQuit, Priority: 100, Handler: quitHandler})
	r.Register(KeyBinding{Binding: k.Quit, Modes: browse, Handler: quitHandler})
	r.Register(KeyBinding{Binding: k.Help, Modes: browse, Handler: func(m MainModel, _ tea.KeyMsg) (MainModel, tea.Cmd, bool) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil, true
	}})
	r.Register(KeyBinding{Binding: k.Menu, Modes: browse, Handler: func(m MainModel, _ tea.KeyMsg) (MainModel, tea.Cmd, bool) {
		m.drawer.Toggle()
		return m, nil, true
	}})
	r.Register(KeyBinding{Binding: k.Close, Modes: browse, Handler: func(m MainModel, _ tea.KeyMsg) (MainModel, tea.Cmd, bool) {
		if !m.drawer.IsOpen() {
			return m, nil, false
		}
		m.drawer.Close()
		return m, nil, true
	}})
	r.Register(KeyBinding{Binding: k.Up, Modes: browse, Handler: scrollHandler(func(m MainModel) int { return m.viewport.YOffset - 1 })})
	r.Register(KeyBinding{Binding: k.Down, Modes: browse, Handler: scrollHandler(func(m MainModel) int { return m.viewport.YOffset + 1 })})
	r.Register(KeyBinding{Binding: k.PageUp, Modes: browse, Handler: scrollHandler(func(m MainModel) int { return m.viewport.YOffset - m.viewport.Height })})
	r.Register(KeyBinding{Binding: k.PageDown, Modes: browse, Handler: scrollHandler(func(m MainModel) int { return m.viewport.YOffset + m.viewport.Height })})
	r.Register(KeyBinding{Binding: k.Top, Modes: browse, Handler: scrollHandler(func(MainModel) int { return 0 })})
	r.Register(KeyBinding{Binding: k.Bottom, Modes: browse, Handler: scrollHandler(func(m MainModel) int { return m.viewport.TotalLineCount() })})
	r.Register(KeyBinding{Binding: k.Contact, Modes: browse, Handler: func(m MainModel, _ tea.KeyMsg) (MainModel, tea.Cmd, bool) {
		var cmd tea.Cmd
		m.mode = ModeForm
		m.form, cmd = m.form.Focus(fieldName)
		m = m.refreshBody()
		return m.scrollTo(m.contactRow), cmd, true
	}})

	r.Register(KeyBinding{Binding: k.NextField, Modes: form, Handler: func(m MainModel, _ tea.KeyMsg) (MainModel, tea.Cmd, bool) {
		var cmd tea.Cmd
		m.form, cmd = m.form.Next()
		return m.refreshBody(), cmd, true
	}})
	r.Register(KeyBinding{Binding: k.PrevField, Modes: form, Handler: func(m MainModel, _ tea.KeyMsg) (MainModel, tea.Cmd, bool) {
		var cmd tea.Cmd
		m.form, cmd = m.form.Prev()
		return m.refreshBody(), cmd, true
	}})
	r.Register(KeyBinding{Binding: k.Submit, Modes: form, Handler: func(m MainModel, _ tea.KeyMsg) (MainModel, tea.Cmd, bool) {
		m.form = m.form.Submit()
		return m, nil, true
	}})
	r.Register(KeyBinding{Binding: k.Leave, Modes: form, Handler: func(m MainModel, _ tea.KeyMsg) (MainModel, tea.Cmd, bool) {
		m.mode = ModeBrowse
		m.form = m.form.Blur()
		return m.refreshBody(), nil, true
	}})
	return r
}

func quitHandler(m MainModel, _ tea.KeyMsg) (MainModel, tea.Cmd, bool) {
	m.Close()
	return m, tea.Quit, true
}

func scrollHandler(target func(MainModel) int) KeyHandler {
	return func(m MainModel, _ tea.KeyMsg) (MainModel, tea.Cmd, bool) {
		return m.scrollTo(target(m)), nil, true
	}
}
