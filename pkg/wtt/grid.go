package wtt

import "strings"

// Fixed columns of the schedule grid: station labels on the left, the
// arrival/departure indicator next to them, one service per column after
// that.
const (
	GridStationColumn   = 0
	GridIndicatorColumn = 1
	GridFirstServiceColumn = 2
)

// Grid is one direction's schedule table, already materialised as cell text.
// Rows may be ragged; out of range lookups read as blank.
type Grid struct {
	Direction Direction
	Rows      [][]string
}

// Cell returns the trimmed cell text at (row, col), or "" when out of range.
func (g *Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g.Rows) {
		return ""
	}
	cells := g.Rows[row]
	if col < 0 || col >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[col])
}

// StationLabel returns the station-label cell for the row.
func (g *Grid) StationLabel(row int) string {
	return g.Cell(row, GridStationColumn)
}

// Indicator returns the arrival/departure indicator cell for the row,
// upper-cased ("A", "D" or "").
func (g *Grid) Indicator(row int) string {
	return strings.ToUpper(g.Cell(row, GridIndicatorColumn))
}

// ColumnCount returns the width of the widest row.
func (g *Grid) ColumnCount() int {
	width := 0
	for _, cells := range g.Rows {
		if len(cells) > width {
			width = len(cells)
		}
	}
	return width
}

// Column returns the trimmed cells of one column, padded to the grid's row
// count.
func (g *Grid) Column(col int) []string {
	cells := make([]string, len(g.Rows))
	for row := range g.Rows {
		cells[row] = g.Cell(row, col)
	}
	return cells
}
