package ui

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the header drops labels.
	LayoutCompactWidth = 100

	// LayoutDetailMaxWidth caps the detail modal width.
	LayoutDetailMaxWidth = 96
)

// Gallery grid geometry.
const (
	// CardWidth is the outer width of one gallery card.
	CardWidth = 28

	// CardGap is the horizontal gap between cards.
	CardGap = 2

	// CardRowGap is the number of blank lines between card rows.
	CardRowGap = 1

	// BandHeight is the number of rows of colored band at the top of a card.
	BandHeight = 2
)

// List row geometry.
const (
	listMarkerWidth = 2
	listDateWidth   = 12
	listBadgeWidth  = 8
)

// chromeHeight is the number of rows taken by the header and command bar.
const chromeHeight = 2

// gridColumns returns how many cards fit across width.
func gridColumns(width int) int {
	cols := (width + CardGap) / (CardWidth + CardGap)
	if cols < 1 {
		return 1
	}
	return cols
}
