package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// TableStyle provides consistent styling for tables across the CLI.
type TableStyle struct {
	Header lipgloss.Style
	Cell   lipgloss.Style
	Border lipgloss.Style
}

// DefaultTableStyle returns the default table styling.
func DefaultTableStyle() TableStyle {
	return TableStyle{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),
		Cell: lipgloss.NewStyle().
			Foreground(ColorPrimary),
		Border: lipgloss.NewStyle().
			Foreground(ColorMuted),
	}
}

// TableColumn defines a table column with name and width.
type TableColumn struct {
	Title string
	Width int
}

// NewTable creates a new Bubbles table with default styling.
func NewTable(columns []TableColumn, rows []table.Row) table.Model {
	cols := make([]table.Column, len(columns))
	for i, c := range columns {
		cols[i] = table.Column{
			Title: c.Title,
			Width: c.Width,
		}
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1), // +1 for header
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		BorderBottom(true).
		Bold(true).
		Foreground(ColorPrimary)
	s.Cell = s.Cell.
		Foreground(ColorPrimary)
	s.Selected = s.Cell

	t.SetStyles(s)
	return t
}

// RenderSimpleTable renders a non-interactive table string.
func RenderSimpleTable(columns []TableColumn, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		tableRows[i] = table.Row(row)
	}

	t := NewTable(columns, tableRows)
	return t.View()
}

// BindingRow is one line of the key binding listing.
type BindingRow struct {
	Key       string // Descriptor as written in config
	Canonical string // Parsed form, e.g. "ctrl+c"
	Action    string // Action name plus detail
	Shadowed  bool   // An earlier binding has the same canonical form
}

// RenderBindingTable renders bindings in match order. Shadowed bindings are
// marked since they can never fire.
func RenderBindingTable(rows []BindingRow) string {
	if len(rows) == 0 {
		return MutedStyle().Render("No key bindings configured") + "\n"
	}

	headerStyle := DefaultTableStyle().Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(ColorMuted)
	keyStyle := InfoStyle()
	mutedStyle := MutedStyle()
	warnStyle := WarningStyle()

	keyWidth := len("KEY")
	canonWidth := len("MATCHES")
	for _, row := range rows {
		keyWidth = max(keyWidth, lipgloss.Width(row.Key))
		canonWidth = max(canonWidth, lipgloss.Width(row.Canonical))
	}
	keyWidth += 2
	canonWidth += 2

	var b strings.Builder
	b.WriteString(headerStyle.Render("  #  "+padRight("KEY", keyWidth)+padRight("MATCHES", canonWidth)+"ACTION") + "\n")

	for i, row := range rows {
		action := row.Action
		if row.Shadowed {
			action = warnStyle.Render(SymbolShadowed + " " + action + " (shadowed)")
		}
		fmt.Fprintf(&b, "  %-3d%s%s%s\n",
			i+1,
			padRight(keyStyle.Render(row.Key), keyWidth),
			padRight(mutedStyle.Render(row.Canonical), canonWidth),
			action)
	}

	b.WriteString(mutedStyle.Render("  escape always quits") + "\n")
	return b.String()
}

// padRight pads s with spaces up to width visible columns.
func padRight(s string, width int) string {
	visibleLen := lipgloss.Width(s)
	if visibleLen >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visibleLen)
}
