package components

import (
	"strconv"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/abhisek/showrank/internal/quiz"
	"github.com/abhisek/showrank/internal/ui/theme"
)

// PointsTable builds a table of the points each item earns per position,
// with items listed in reference order. The cell for an item's true
// position is highlighted.
func PointsTable(q *quiz.Quiz) *table.Table {
	headers := []string{"#", "Show"}
	for pos := 0; pos < q.Len(); pos++ {
		headers = append(headers, strconv.Itoa(pos+1))
	}

	rows := make([][]string, 0, q.Len())
	for i, e := range q.Entries() {
		row := []string{strconv.Itoa(i + 1), e.Name}
		for _, p := range e.Points {
			row = append(row, strconv.Itoa(p))
		}
		rows = append(rows, row)
	}

	header := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Foreground(theme.Text).Padding(0, 1)
	dim := cell.Foreground(theme.TextDim)
	home := cell.Foreground(theme.Success).Bold(true)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case col == 0:
				return dim
			case col-2 == row:
				return home
			default:
				return cell
			}
		})
}
