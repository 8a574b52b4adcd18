package tui_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/cbm/internal/model"
	"github.com/nikbrunner/cbm/internal/session"
	"github.com/nikbrunner/cbm/internal/tui"
	"github.com/nikbrunner/cbm/internal/tui/layout"
	"gotest.tools/v3/assert"
	"gotest.tools/v3/golden"
)

func longCatalogApp(t *testing.T) tui.App {
	t.Helper()
	names := []string{
		"list pods",
		"deploy",
		"devserver",
		"a very long bookmark name that overflows the row",
		"ssh prod",
		"tail logs",
		"cleanup",
	}
	bookmarks := make([]model.Bookmark, len(names))
	for i, name := range names {
		bookmarks[i] = model.Bookmark{Name: name, Cmds: []string{"true"}}
	}
	catalog, err := model.NewCatalog(nil, nil, bookmarks)
	assert.NilError(t, err)

	s := session.New(catalog, session.Options{IgnoreCase: true, AutodetectFilterMode: true})
	return tui.NewApp(tui.AppParams{Session: s}).WithDimensions(40, 10)
}

func TestView_Bookmarks(t *testing.T) {
	app := longCatalogApp(t)

	golden.Assert(t, layout.StripANSI(app.View()), "golden/bookmarks.golden")
}

func TestView_BookmarksScrolled(t *testing.T) {
	app := longCatalogApp(t)
	for range 6 {
		app, _ = press(t, app, keyType(tea.KeyDown))
	}

	golden.Assert(t, layout.StripANSI(app.View()), "golden/bookmarks_scrolled.golden")
}

func TestView_Labels(t *testing.T) {
	app := newApp(t, nil).WithDimensions(30, 8)
	app, _ = press(t, app, keyType(tea.KeyRight), runes("2"))

	golden.Assert(t, layout.StripANSI(app.View()), "golden/labels_by_id.golden")
}

func TestView_HeightIsExact(t *testing.T) {
	app := newApp(t, nil).WithDimensions(30, 15)

	lines := 1
	for _, r := range app.View() {
		if r == '\n' {
			lines++
		}
	}
	assert.Equal(t, lines, 15)
}
