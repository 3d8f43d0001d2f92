package tui

import (
	"time"

	"github.com/akyairhashvil/zannat/internal/config"
	"github.com/akyairhashvil/zannat/internal/drawer"
	"github.com/akyairhashvil/zannat/internal/input"
	"github.com/akyairhashvil/zannat/internal/models"
	"github.com/akyairhashvil/zannat/internal/motion"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Mode decides which key bindings are live.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeForm
)

// Entrance sequence names.
const (
	listTitle       = "title"
	listNav         = "nav"
	listHero        = "hero"
	listCategories  = "categories"
	listArticles    = "articles"
	listContactInfo = "contact-info"
	listContactForm = "contact-form"
)

// session is shared by every copy of MainModel. bubbletea hands the model
// around by value, teardown has to reach all of them.
type session struct {
	bus    *input.Bus
	scope  input.Scope
	closed bool
}

// MainModel is the root bubbletea model: the whole homepage.
type MainModel struct {
	settings config.Settings
	content  models.Content
	theme    Theme
	keys     KeyMap
	registry *HandlerRegistry
	help     help.Model

	session   *session
	marker    *motion.Spring2D
	pointer   *input.PointerTracker
	scroll    *input.ScrollTracker
	fade      *motion.HeaderFade
	drawer    *drawer.Controller
	entrances *motion.EntranceAnimator

	viewport   viewport.Model
	form       ContactForm
	mode       Mode
	frame      time.Duration
	frames     int
	contactRow int
	width      int
	height     int
}

// NewMainModel mounts the page: every subscription it takes is owned by the
// session scope and released by Close.
func NewMainModel(settings config.Settings, content models.Content) MainModel {
	s := &session{bus: input.NewBus()}
	marker := motion.NewSpring2D(settings.FrameRate, settings.SpringStiffness, settings.SpringDamping, config.MarkerStart)
	fade := motion.NewHeaderFade(config.HeaderFadeDuration)

	pointer := input.NewPointerTracker(marker, config.MarkerWidth, config.MarkerHeight)
	scroll := input.NewScrollTracker(fade.Follow)
	s.scope.Add(pointer.Subscribe(s.bus))
	s.scope.Add(scroll.Subscribe(s.bus))

	keys := DefaultKeyMap()
	m := MainModel{
		settings:  settings,
		content:   content,
		theme:     ThemeByName(settings.Theme),
		keys:      keys,
		registry:  newPageRegistry(keys),
		help:      help.New(),
		session:   s,
		marker:    marker,
		pointer:   pointer,
		scroll:    scroll,
		fade:      fade,
		drawer:    drawer.NewController(config.DrawerSlideDuration),
		entrances: motion.NewEntranceAnimator(),
		viewport:  viewport.New(0, 0),
		form:      newContactForm(),
		frame:     settings.FrameInterval(),
	}
	m.mountEntrances()
	return m
}

func (m MainModel) mountEntrances() {
	unit, dur := m.settings.StaggerUnit, m.settings.EntranceDuration
	down := motion.Offset{Y: config.EntranceShiftPx}
	up := motion.Offset{Y: -config.EntranceShiftPx}

	m.entrances.Mount(listTitle, motion.NewSequence([]time.Duration{0}, dur, up))
	m.entrances.Mount(listNav, motion.Stagger(len(m.content.RenderableNav()), unit, dur, up))
	m.entrances.Mount(listHero, motion.NewSequence([]time.Duration{
		config.HeroHeadingDelay, config.HeroTaglineDelay, config.HeroActionDelay,
	}, dur, down))
	m.entrances.Mount(listCategories, motion.Stagger(len(m.content.RenderableCategories()), unit, dur, down))
	m.entrances.Mount(listArticles, motion.Stagger(len(m.content.RenderableArticles()), unit, dur, down))
	m.entrances.Mount(listContactInfo, motion.NewSequence([]time.Duration{0}, dur, motion.Offset{X: -config.EntranceShiftPx}))
	m.entrances.Mount(listContactForm, motion.NewSequence([]time.Duration{0}, dur, motion.Offset{X: config.EntranceShiftPx}))
}

func (m MainModel) Init() tea.Cmd {
	return frameCmd(m.frame)
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.session.closed {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case FrameMsg:
		return m.handleFrame()
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.mode == ModeForm {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}
	return m, nil
}

// Close tears the page down. Subscriptions are released, in-flight
// animations are dropped and later messages are ignored. Safe to call more
// than once.
func (m MainModel) Close() {
	if m.session.closed {
		return
	}
	m.session.closed = true
	m.session.scope.Close()
	m.entrances.Discard()
}

func (m MainModel) Closed() bool {
	return m.session.closed
}

func (m MainModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	return m.renderScreen()
}
