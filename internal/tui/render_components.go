package tui

import (
	"math"
	"strings"

	"github.com/akyairhashvil/zannat/internal/config"
	"github.com/akyairhashvil/zannat/internal/drawer"
	"github.com/charmbracelet/lipgloss"
)

const (
	pagePadding    = 2
	drawerCloseRow = 1
	menuLabel      = "≡ Menu"
	closeLabel     = "✕ Close"
)

type card struct {
	title string
	body  string
	link  string
}

func (m MainModel) wideLayout() bool {
	return m.width >= config.WideLayoutMin
}

func (m MainModel) contentWidth() int {
	return max(min(m.width, config.MaxContentWidth)-2*pagePadding, 20)
}

func (m MainModel) gridColumns() int {
	switch {
	case m.width >= config.ThreeColumnMin:
		return 3
	case m.width >= config.TwoColumnMin:
		return 2
	}
	return 1
}

func (m MainModel) formWidth() int {
	w := m.contentWidth()
	if m.width >= config.TwoColumnMin {
		w = (w - config.CardGap) / 2
	}
	// Room for the entrance slide, the field border and the input prompt.
	return w - 2*pxToCols(config.EntranceShiftPx) - 6
}

func (m MainModel) menuButtonSpan() (start, end int) {
	end = m.width - pagePadding
	return end - lipgloss.Width(menuLabel), end
}

func (m MainModel) drawerColumn() int {
	return m.width - int(math.Round(float64(config.DrawerWidth)*m.drawer.Progress()))
}

func (m MainModel) pageBg() lipgloss.Color {
	return lipgloss.Color(m.theme.Page)
}

// ink is a text color faded toward the page by opacity.
func (m MainModel) ink(hex string, opacity float64) lipgloss.Color {
	return blend(m.theme.Page, hex, opacity)
}

func blankBlock(width, height int, bg lipgloss.Color) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Width(width).Height(height).Background(bg).Render("")
}

func (m MainModel) center(block string) string {
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, block, lipgloss.WithWhitespaceBackground(m.pageBg()))
}

func (m MainModel) renderScreen() string {
	help := m.renderHelp()
	body := max(m.height-config.HeaderHeight-lipgloss.Height(help), 0)
	screen := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		fitLines(m.viewport.View(), body),
		help,
	)
	screen = fitLines(screen, m.height)
	if m.drawer.Presence() == drawer.Mounted {
		screen = overlay(screen, m.renderDrawer(), m.drawerColumn(), 0)
	}
	if col, row, ok := m.markerCell(); ok {
		screen = overlay(screen, m.renderMarker(), col, row)
	}
	return screen
}

func (m MainModel) renderHeader() string {
	bg := blend(m.theme.Page, m.theme.Header, m.fade.Alpha())
	maxDY := config.HeaderHeight / 2
	text := func(hex string, opacity float64) lipgloss.Style {
		return lipgloss.NewStyle().Background(bg).Foreground(blend(string(bg), hex, opacity))
	}

	v := m.entrances.Visual(listTitle, 0)
	title := shiftBlock(text(m.theme.Text, v.Opacity).Bold(true).Render(m.content.Title), 0, pxToRows(v.Offset.Y), 0, maxDY, bg)

	var right string
	if m.wideLayout() {
		var items []string
		for i, item := range m.content.RenderableNav() {
			if i > 0 {
				items = append(items, blankBlock(3, config.HeaderHeight, bg))
			}
			nv := m.entrances.Visual(listNav, i)
			items = append(items, shiftBlock(text(m.theme.Text, nv.Opacity).Render(item), 0, pxToRows(nv.Offset.Y), 0, maxDY, bg))
		}
		right = lipgloss.JoinHorizontal(lipgloss.Top, items...)
	} else {
		label := menuLabel
		if m.drawer.IsOpen() {
			label = closeLabel
		}
		right = shiftBlock(text(m.theme.Text, 1).Render(label), 0, 0, 0, maxDY, bg)
	}

	spacer := m.width - 2*pagePadding - lipgloss.Width(title) - lipgloss.Width(right)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		blankBlock(pagePadding, config.HeaderHeight, bg),
		title,
		blankBlock(spacer, config.HeaderHeight, bg),
		right,
		blankBlock(pagePadding, config.HeaderHeight, bg),
	)
}

// refreshBody re-renders the scrolling part of the page into the viewport.
func (m MainModel) refreshBody() MainModel {
	if m.width == 0 {
		return m
	}
	top := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHero(),
		m.renderCategories(),
		m.renderArticles(),
	)
	m.contactRow = lipgloss.Height(top)
	m.viewport.SetContent(lipgloss.JoinVertical(lipgloss.Left, top, m.renderContact(), m.renderFooter()))
	return m
}

func (m MainModel) renderHero() string {
	bg := m.pageBg()
	maxDY := pxToRows(config.EntranceShiftPx)
	width := min(m.contentWidth(), 72)

	pieces := []string{m.content.Heading, m.content.Tagline, m.content.ActionLabel + " ›"}
	var blocks []string
	for i, piece := range pieces {
		v := m.entrances.Visual(listHero, i)
		style := lipgloss.NewStyle().Background(bg).Foreground(m.ink(m.theme.Text, v.Opacity))
		var block string
		switch i {
		case 0:
			block = style.Bold(true).Render(strings.ToUpper(piece))
		case 1:
			block = style.Width(width).Align(lipgloss.Center).Render(piece)
		default:
			block = style.Bold(true).Padding(0, 2).
				Border(lipgloss.NormalBorder()).
				BorderForeground(m.ink(m.theme.Text, v.Opacity)).
				BorderBackground(bg).
				Render(piece)
		}
		block = shiftBlock(block, 0, pxToRows(v.Offset.Y), 0, maxDY, bg)
		blocks = append(blocks, m.center(block))
	}
	hero := lipgloss.JoinVertical(lipgloss.Left, blocks...)
	height := max(m.viewport.Height, lipgloss.Height(hero))
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, hero, lipgloss.WithWhitespaceBackground(bg))
}

func (m MainModel) renderSectionTitle(title string) string {
	style := lipgloss.NewStyle().Bold(true).Background(m.pageBg()).Foreground(lipgloss.Color(m.theme.Text)).Padding(1, 0)
	return m.center(style.Render(title))
}

func (m MainModel) renderCategories() string {
	cats := m.content.RenderableCategories()
	cards := make([]card, len(cats))
	for i, c := range cats {
		cards[i] = card{title: c.Name, body: c.Description}
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderSectionTitle("Categories"),
		m.renderGrid(listCategories, cards, false),
	)
}

func (m MainModel) renderArticles() string {
	articles := m.content.RenderableArticles()
	cards := make([]card, len(articles))
	for i, a := range articles {
		cards[i] = card{title: a.Title, body: a.Excerpt, link: "Read More"}
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderSectionTitle("Latest Articles"),
		m.renderGrid(listArticles, cards, true),
	)
}

func (m MainModel) renderGrid(list string, cards []card, bordered bool) string {
	if len(cards) == 0 {
		return ""
	}
	bg := m.pageBg()
	cols := m.gridColumns()
	maxDY := pxToRows(config.EntranceShiftPx)
	width := (m.contentWidth() - (cols-1)*config.CardGap) / cols

	var rows []string
	for start := 0; start < len(cards); start += cols {
		var row []string
		for i := start; i < min(start+cols, len(cards)); i++ {
			if i > start {
				row = append(row, blankBlock(config.CardGap, 1, bg))
			}
			v := m.entrances.Visual(list, i)
			row = append(row, shiftBlock(m.renderCard(cards[i], width, v.Opacity, bordered), 0, pxToRows(v.Offset.Y), 0, maxDY, bg))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return m.center(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m MainModel) renderCard(c card, width int, opacity float64, bordered bool) string {
	surfaceHex := m.theme.Card
	if bordered {
		surfaceHex = m.theme.Page
	}
	surface := blend(m.theme.Page, surfaceHex, opacity)
	inner := width - 4
	if bordered {
		inner -= 2
	}
	inner = max(inner, 4)
	text := func(hex string) lipgloss.Style {
		return lipgloss.NewStyle().Width(inner).Background(surface).Foreground(blend(string(surface), hex, opacity))
	}

	parts := []string{
		text(m.theme.Text).Bold(true).Render(c.title),
		text(m.theme.Muted).Render(c.body),
	}
	if c.link != "" {
		parts = append(parts, text(m.theme.Text).Bold(true).Underline(true).Render(c.link))
	}
	style := lipgloss.NewStyle().Background(surface).Padding(1, 2)
	if bordered {
		style = style.Border(lipgloss.RoundedBorder()).
			BorderForeground(blend(m.theme.Page, m.theme.Border, opacity)).
			BorderBackground(m.pageBg())
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m MainModel) renderContact() string {
	bg := lipgloss.Color(m.theme.Card)
	maxDX := pxToCols(config.EntranceShiftPx)

	iv := m.entrances.Visual(listContactInfo, 0)
	infoStyle := lipgloss.NewStyle().Background(bg).Foreground(blend(m.theme.Card, m.theme.Text, iv.Opacity))
	labelStyle := infoStyle.Bold(true).Width(10)
	c := m.content.Contact
	info := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render("Email"), infoStyle.Render(c.Email)),
		infoStyle.Render(" "),
		lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render("Phone"), infoStyle.Render(c.Phone)),
		infoStyle.Render(" "),
		lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render("Location"), infoStyle.Render(c.Location)),
	)
	info = shiftBlock(info, pxToCols(iv.Offset.X), 0, maxDX, 0, bg)

	fv := m.entrances.Visual(listContactForm, 0)
	var fields []string
	for i, field := range m.form.Fields() {
		border := blend(m.theme.Card, m.theme.Border, fv.Opacity)
		if m.form.FocusedField() == i {
			border = blend(m.theme.Card, m.theme.Accent, fv.Opacity)
		}
		fields = append(fields, lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			BorderBackground(bg).
			Render(field))
	}
	button := lipgloss.NewStyle().Padding(0, 2).
		Background(blend(m.theme.Card, m.theme.Text, fv.Opacity)).
		Foreground(lipgloss.Color(m.theme.Card)).
		Render("Send Message")
	fields = append(fields, infoStyle.Render(" "), button)
	form := shiftBlock(lipgloss.JoinVertical(lipgloss.Left, fields...), pxToCols(fv.Offset.X), 0, maxDX, 0, bg)

	var columns string
	if m.width >= config.TwoColumnMin {
		columns = lipgloss.JoinHorizontal(lipgloss.Top, info, blankBlock(config.CardGap*2, 1, bg), form)
	} else {
		columns = lipgloss.JoinVertical(lipgloss.Left, info, infoStyle.Render(" "), form)
	}

	title := lipgloss.NewStyle().Bold(true).Background(bg).Foreground(lipgloss.Color(m.theme.Text)).Padding(1, 0).Render("Contact Me")
	block := lipgloss.JoinVertical(lipgloss.Center, title, columns, " ")
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, block, lipgloss.WithWhitespaceBackground(bg))
}

func (m MainModel) renderFooter() string {
	style := lipgloss.NewStyle().Background(m.pageBg()).Foreground(lipgloss.Color(m.theme.Muted)).Padding(1, 0)
	return m.center(style.Render(m.content.Footer))
}

func (m MainModel) renderHelp() string {
	m.help.Width = m.width
	view := m.help.View(helpKeys(m.registry.BindingsForMode(m.mode)))
	return lipgloss.NewStyle().Width(m.width).MaxWidth(m.width).Background(m.pageBg()).Render(view)
}

func (m MainModel) renderDrawer() string {
	p := m.drawer.Progress()
	bg := blend(m.theme.Page, m.theme.Drawer, p)
	fg := blend(string(bg), m.theme.Text, p)

	lines := make([]string, 0, 3+2*len(m.content.NavItems))
	lines = append(lines, "", " "+closeLabel, "")
	for _, item := range m.content.RenderableNav() {
		lines = append(lines, "  "+item, "")
	}
	return lipgloss.NewStyle().
		Width(config.DrawerWidth-1).
		Height(m.height).
		Background(bg).
		Foreground(fg).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(blend(m.theme.Page, m.theme.Border, p)).
		BorderBackground(bg).
		Render(strings.Join(lines, "\n"))
}

// markerCell is the top-left cell of the cursor marker. The marker is hidden
// while any part of it lies outside the screen.
func (m MainModel) markerCell() (col, row int, ok bool) {
	x, y := m.marker.Position()
	col, row = int(math.Round(x)), int(math.Round(y))
	ok = col >= 0 && row >= 0 && col+config.MarkerWidth <= m.width && row+config.MarkerHeight <= m.height
	return col, row, ok
}

func (m MainModel) renderMarker() string {
	tint := blend(m.theme.Page, m.theme.Marker, config.MarkerTint)
	line := strings.Repeat(" ", config.MarkerWidth)
	lines := make([]string, config.MarkerHeight)
	for i := range lines {
		lines[i] = line
	}
	return lipgloss.NewStyle().Background(tint).Render(strings.Join(lines, "\n"))
}
