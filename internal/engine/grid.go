package engine

import "time"

// GridSize is the number of cells in every month grid: six full Sunday-first
// weeks. Keeping the cell count constant keeps the rendered height constant
// across months.
const GridSize = 42

// Cell is one slot of a month grid.
type Cell struct {
	// Date is the day this cell represents, at day granularity.
	Date time.Time
	// OutsideMonth marks lead-in and tail cells borrowed from the previous
	// and next months.
	OutsideMonth bool
}

// BuildGrid produces the 42-cell grid for a month. The first cells are the
// trailing days of the previous month up to the month's first weekday
// (Sunday-first), followed by every day of the month, followed by the leading
// days of the next month. Pure and deterministic; safe to call on every
// render.
func BuildGrid(year int, month time.Month) []Cell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	lead := int(first.Weekday())

	cells := make([]Cell, 0, GridSize)
	for i := 0; i < GridSize; i++ {
		date := first.AddDate(0, 0, i-lead)
		cells = append(cells, Cell{
			Date:         date,
			OutsideMonth: date.Month() != first.Month() || date.Year() != first.Year(),
		})
	}
	return cells
}
