package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/nikbrunner/cbm/internal/session"
)

// UsageRow describes one keybinding in the usage view.
type UsageRow struct {
	Key          string
	Action       string
	View         string // "*" means every view
	Configurable bool
}

// UsageRows lists every keybinding of km in display order.
func UsageRows(km KeyMap) []UsageRow {
	lists := joinViews(session.ViewBookmarks, session.ViewLabels)
	bookmarks := session.ViewBookmarks.String()
	labels := session.ViewLabels.String()

	return []UsageRow{
		{helpKey(km.Quit), "Exit the picker.", "*", false},
		{helpKey(km.Down) + " " + helpKey(km.Up), "Navigate through the list of bookmarks or labels.", lists, false},
		{helpKey(km.PrevView) + " " + helpKey(km.NextView), "Switch between views.", "*", false},
		{helpKey(km.Backspace), "Remove the last character from the filter.", lists, false},
		{helpKey(km.Enter), "Paste the selected bookmark into the terminal.", bookmarks, false},
		{helpKey(km.Enter), "Find all bookmarks associated with the selected label.", labels, false},
		{helpKey(km.BookmarksView), "Switch to the Bookmarks view.", "*", false},
		{helpKey(km.LabelsView), "Switch to the Labels view.", "*", false},
		{helpKey(km.UsageView), "Switch to the Usage view to read these instructions.", "*", false},

		{helpKey(km.Edit), "Open the bookmark file in an editor.", "*", true},
		{helpKey(km.Reload), "Reload bookmarks. Happens on its own when the file changes.", "*", true},
		{helpKey(km.SwitchFilterLabel), "Switch to label filtering mode.", bookmarks, true},
		{helpKey(km.SwitchFilterID), "Switch to id filtering mode.", lists, true},
		{helpKey(km.Describe), "Show the description of the bookmarks.", bookmarks, true},
	}
}

func helpKey(b key.Binding) string {
	return b.Help().Key
}

func joinViews(views ...session.View) string {
	names := make([]string, len(views))
	for i, v := range views {
		names[i] = v.String()
	}
	return strings.Join(names, "|")
}
