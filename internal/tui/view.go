package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/nikbrunner/cbm/internal/list"
	"github.com/nikbrunner/cbm/internal/session"
	"github.com/nikbrunner/cbm/internal/tui/layout"
)

// listRow is one entry of the bookmarks or labels list.
type listRow struct {
	pos   int
	id    int
	value string
}

// renderView renders the complete UI.
func (a App) renderView() string {
	if a.err != "" {
		return a.styles.Error.Render("ERROR: " + a.err)
	}

	cfg := a.layout.List
	if a.height < cfg.MinRows || a.width < cfg.MinCols {
		return a.styles.Error.Render(fmt.Sprintf(
			"ERROR: the panel is too small. It needs at least %d rows and %d columns, but it has %d rows and %d columns.",
			cfg.MinRows, cfg.MinCols, a.height, a.width))
	}

	s := a.session
	switch s.View() {
	case session.ViewBookmarks:
		w := s.VisibleWindow(a.height, cfg.ReservedRows)
		var rows []listRow
		for pos, b := range s.Bookmarks().Visible(w) {
			value := b.Name
			if s.ShowDescription() {
				value = b.Desc
			}
			rows = append(rows, listRow{pos: pos, id: b.ID, value: value})
		}
		return a.renderList(w, rows, s.Bookmarks().Position(), s.Bookmarks().Len())

	case session.ViewLabels:
		w := s.VisibleWindow(a.height, cfg.ReservedRows)
		var rows []listRow
		for pos, l := range s.Labels().Visible(w) {
			rows = append(rows, listRow{pos: pos, id: l.ID, value: l.Name})
		}
		return a.renderList(w, rows, s.Labels().Position(), s.Labels().Len())

	default:
		return a.renderUsage()
	}
}

func (a App) renderMode() string {
	return a.indent() + a.styles.Label.Render("Mode:") + " " + a.session.View().String()
}

func (a App) indent() string {
	return strings.Repeat(" ", a.layout.List.Indent)
}

// renderList lays out the header, the visible rows and the footer so that
// the result is exactly a.height lines tall.
func (a App) renderList(w list.Window, rows []listRow, selected, count int) string {
	s := a.session
	lines := make([]string, 0, a.height)

	lines = append(lines, a.renderMode())
	lines = append(lines, a.indent()+a.styles.Label.Render("Search")+
		fmt.Sprintf(" (by %s) %s_", s.Mode(), s.Filter()))
	lines = append(lines, a.renderCounter(w.HiddenAbove, layout.AlignRight))

	for _, row := range rows {
		text, _ := layout.TruncateText(strconv.Itoa(row.id)+". "+row.value, a.width, a.layout.Text)
		style := a.styles.Item
		if row.pos == selected {
			style = a.styles.ItemSelected
		}
		lines = append(lines, style.Render(text))
	}

	for len(lines) < a.height-1 {
		lines = append(lines, "")
	}

	all := a.indent() + a.styles.Label.Render(fmt.Sprintf("All: %d", count))
	footer := all
	if w.HiddenBelow > 0 {
		footer = layout.JoinEnds(all, a.counterText(w.HiddenBelow), a.width)
	}
	lines = append(lines, footer)

	return strings.Join(lines, "\n")
}

func (a App) counterText(n int) string {
	return a.styles.Counter.Render(fmt.Sprintf("+ %d more  ", n))
}

func (a App) renderCounter(n int, align func(string, int) string) string {
	if n == 0 {
		return ""
	}
	return align(a.counterText(n), a.width)
}

func (a App) renderUsage() string {
	rows := UsageRows(a.keys)
	data := make([][]string, len(rows))
	for i, r := range rows {
		configurable := "False"
		if r.Configurable {
			configurable = "True"
		}
		data[i] = []string{r.Key, r.Action, r.View, configurable}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(a.styles.TableBorder).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return a.styles.TableHeader
			}
			return a.styles.TableCell
		}).
		Headers("KeyBinding", "Action", "View", "Configurable").
		Rows(data...)

	return a.renderMode() + "\n\n" + t.Render()
}
