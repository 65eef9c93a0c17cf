package ui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// TableColumn defines a table column with name and width.
type TableColumn struct {
	Title string
	Width int
}

// NewTable creates a Bubbles table styled with the theme.
func NewTable(t Theme, columns []TableColumn, rows []table.Row) table.Model {
	cols := make([]table.Column, len(columns))
	for i, c := range columns {
		cols[i] = table.Column{
			Title: c.Title,
			Width: c.Width,
		}
	}

	tbl := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1), // +1 for header
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(t.Border).
		BorderBottom(true).
		Bold(true).
		Foreground(t.Foreground)
	s.Cell = s.Cell.
		Foreground(t.Foreground)
	s.Selected = s.Selected.
		Foreground(t.Foreground).
		Bold(false)

	tbl.SetStyles(s)
	return tbl
}

// RenderSimpleTable renders a non-interactive table string for CLI output.
func RenderSimpleTable(t Theme, columns []TableColumn, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		tableRows[i] = table.Row(row)
	}

	return NewTable(t, columns, tableRows).View()
}

// ColumnWidths sizes columns to fit their titles and cells, with a floor of
// min for every column.
func ColumnWidths(titles []string, rows [][]string, min int) []TableColumn {
	cols := make([]TableColumn, len(titles))
	for i, title := range titles {
		w := lipgloss.Width(title)
		for _, row := range rows {
			if i < len(row) && lipgloss.Width(row[i]) > w {
				w = lipgloss.Width(row[i])
			}
		}
		if w < min {
			w = min
		}
		cols[i] = TableColumn{Title: title, Width: w}
	}
	return cols
}
