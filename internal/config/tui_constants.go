package config

// Terminal cell geometry used to translate page pixels into cells.
const (
	// ColumnWidthPx approximates the width of one terminal column.
	ColumnWidthPx = 8

	// RowHeightPx approximates the height of one terminal row.
	RowHeightPx = 16
)

// Layout constants.
const (
	// HeaderHeight is the number of rows reserved for the fixed header.
	HeaderHeight = 3

	// HelpHeight is the number of rows reserved for the help line.
	HelpHeight = 1

	// DrawerWidth is the drawer panel width in columns.
	DrawerWidth = 32

	// WideLayoutMin shows the inline navigation instead of the menu button.
	WideLayoutMin = 100

	// TwoColumnMin and ThreeColumnMin select the card grid width.
	TwoColumnMin   = 80
	ThreeColumnMin = 120

	// CardGap separates grid cards.
	CardGap = 2

	// MaxContentWidth caps the body width on large terminals.
	MaxContentWidth = 132
)

// Cursor marker.
const (
	// MarkerWidth and MarkerHeight are the marker size in cells.
	MarkerWidth  = 2
	MarkerHeight = 1

	// MarkerTint is the marker's alpha over the page background.
	MarkerTint = 0.2
)

// Scrolling.
const (
	// WheelStep is the number of rows scrolled per wheel notch.
	WheelStep = 3
)

// Contact form.
const (
	FormInputWidth    = 40
	FormMessageHeight = 4
	MaxNameLength     = 80
	MaxEmailLength    = 120
)
