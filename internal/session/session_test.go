package session_test

import (
	"errors"
	"testing"

	"github.com/nikbrunner/cbm/internal/filter"
	"github.com/nikbrunner/cbm/internal/model"
	"github.com/nikbrunner/cbm/internal/resolve"
	"github.com/nikbrunner/cbm/internal/session"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func testCatalog(t *testing.T) *model.Catalog {
	t.Helper()
	catalog, err := model.NewCatalog(
		map[string]string{"ns": "default"},
		map[string]string{"pods": "kubectl get pods -n {{ns}}"},
		[]model.Bookmark{
			{Name: "list pods", Desc: "Show pods", Cmds: []string{"cmd::pods"}, Labels: []string{"k8s"}},
			{Name: "deploy", Desc: "Deploy the app", Cmds: []string{"make deploy"}, Labels: []string{"dev", "k8s"}},
			{Name: "devserver", Desc: "Run locally", Cmds: []string{"npm run dev"}, Labels: []string{"node"}},
			{Name: "broken", Cmds: []string{"bookmark::missing"}},
		},
	)
	assert.NilError(t, err)
	return catalog
}

func newSession(t *testing.T) *session.Session {
	t.Helper()
	return session.New(testCatalog(t), session.Options{IgnoreCase: true, AutodetectFilterMode: true})
}

func bookmarkNames(s *session.Session) []string {
	var names []string
	for _, b := range s.Bookmarks().All() {
		names = append(names, b.Name)
	}
	return names
}

func labelNames(s *session.Session) []string {
	var names []string
	for _, l := range s.Labels().All() {
		names = append(names, l.Name)
	}
	return names
}

func typeText(s *session.Session, text string) {
	for _, r := range text {
		s.AppendFilter(r)
	}
}

func TestView_NextPrevWrap(t *testing.T) {
	assert.Equal(t, session.ViewBookmarks.Next(), session.ViewLabels)
	assert.Equal(t, session.ViewLabels.Next(), session.ViewUsage)
	assert.Equal(t, session.ViewUsage.Next(), session.ViewBookmarks)
	assert.Equal(t, session.ViewBookmarks.Prev(), session.ViewUsage)
	assert.Equal(t, session.ViewUsage.Prev(), session.ViewLabels)

	v, ok := session.ViewByNumber(2)
	assert.Assert(t, ok)
	assert.Equal(t, v, session.ViewLabels)
	_, ok = session.ViewByNumber(4)
	assert.Assert(t, !ok)
}

func TestSession_SetFilter(t *testing.T) {
	s := newSession(t)

	s.SetFilter("DEV", filter.ModeName, true)
	assert.DeepEqual(t, bookmarkNames(s), []string{"devserver"})

	s.SetFilter("DEV", filter.ModeName, false)
	assert.Equal(t, s.Bookmarks().Len(), 0)

	s.SetFilter("dev", filter.ModeLabel, true)
	assert.DeepEqual(t, bookmarkNames(s), []string{"deploy"})

	s.SetFilter("de", filter.ModeLabel, true)
	assert.Equal(t, s.Bookmarks().Len(), 0)

	s.SetFilter("", filter.ModeLabel, true)
	assert.Equal(t, s.Bookmarks().Len(), 4)
}

func TestSession_AutodetectFilterMode(t *testing.T) {
	s := newSession(t)

	assert.Assert(t, s.AppendFilter('2'))
	assert.Equal(t, s.Mode(), filter.ModeID)
	assert.DeepEqual(t, bookmarkNames(s), []string{"deploy"})

	// Letters are rejected while filtering by id.
	assert.Assert(t, !s.AppendFilter('x'))
	assert.Equal(t, s.Filter(), "2")

	s.Backspace()
	assert.Equal(t, s.Filter(), "")
	assert.Assert(t, s.AppendFilter('d'))
	assert.Equal(t, s.Mode(), filter.ModeName)
	assert.DeepEqual(t, bookmarkNames(s), []string{"list pods", "deploy", "devserver"})
}

func TestSession_IDFilterRejectsLeadingZero(t *testing.T) {
	s := newSession(t)
	s.SwitchFilterMode(filter.ModeID)

	assert.Assert(t, !s.AppendFilter('0'))
	assert.Equal(t, s.Filter(), "")
	assert.Assert(t, s.AppendFilter('1'))
	assert.Assert(t, s.AppendFilter('0'))
	assert.Equal(t, s.Filter(), "10")
	assert.Equal(t, s.Bookmarks().Len(), 0)
}

func TestSession_AutodetectDisabled(t *testing.T) {
	s := session.New(testCatalog(t), session.Options{IgnoreCase: true})

	assert.Assert(t, s.AppendFilter('1'))
	assert.Equal(t, s.Mode(), filter.ModeName)
	assert.Equal(t, s.Bookmarks().Len(), 0)
}

func TestSession_SwitchFilterMode(t *testing.T) {
	s := newSession(t)

	assert.Assert(t, s.SwitchFilterMode(filter.ModeLabel))
	assert.Equal(t, s.Mode(), filter.ModeLabel)
	assert.Assert(t, s.SwitchFilterMode(filter.ModeLabel))
	assert.Equal(t, s.Mode(), filter.ModeName)

	s.SetView(session.ViewLabels)
	assert.Assert(t, !s.SwitchFilterMode(filter.ModeLabel))
	assert.Assert(t, s.SwitchFilterMode(filter.ModeID))
	assert.Equal(t, s.Mode(), filter.ModeID)

	s.SetView(session.ViewUsage)
	assert.Assert(t, !s.SwitchFilterMode(filter.ModeID))
}

func TestSession_ViewChangeReappliesFilter(t *testing.T) {
	s := newSession(t)
	s.SwitchFilterMode(filter.ModeLabel)
	typeText(s, "k8s")
	assert.Equal(t, s.Bookmarks().Len(), 2)

	s.NextView()
	assert.Equal(t, s.View(), session.ViewLabels)
	assert.Equal(t, s.Mode(), filter.ModeName)
	assert.Equal(t, s.Filter(), "k8s")
	assert.DeepEqual(t, labelNames(s), []string{"k8s"})

	s.PrevView()
	assert.Equal(t, s.View(), session.ViewBookmarks)
	// Back in the bookmarks view the same text now matches names only.
	assert.Equal(t, s.Bookmarks().Len(), 0)
}

func TestSession_UsageViewIgnoresInput(t *testing.T) {
	s := newSession(t)
	s.SetView(session.ViewUsage)

	assert.Assert(t, !s.AppendFilter('a'))
	assert.Assert(t, !s.Backspace())
	assert.Assert(t, !s.SelectDown())
	assert.Assert(t, !s.ToggleDescription())
	assert.Equal(t, s.VisibleWindow(20, 5), s.VisibleWindow(0, 0))
}

func TestSession_ChooseLabel(t *testing.T) {
	s := newSession(t)
	s.ToggleDescription()
	s.SetView(session.ViewLabels)
	assert.DeepEqual(t, labelNames(s), []string{"k8s", "dev", "node"})

	s.SelectDown()
	assert.Assert(t, s.ChooseLabel())

	assert.Equal(t, s.View(), session.ViewBookmarks)
	assert.Equal(t, s.Mode(), filter.ModeLabel)
	assert.Equal(t, s.Filter(), "dev")
	assert.Assert(t, !s.ShowDescription())
	assert.DeepEqual(t, bookmarkNames(s), []string{"deploy"})
}

func TestSession_ChooseLabelWithoutSelection(t *testing.T) {
	s := newSession(t)
	s.SetView(session.ViewLabels)
	typeText(s, "nothing")
	assert.Equal(t, s.Labels().Len(), 0)

	assert.Assert(t, s.ChooseLabel())
	assert.Equal(t, s.Filter(), "")
	assert.Equal(t, s.Bookmarks().Len(), 4)
}

func TestSession_ResolveSelected(t *testing.T) {
	s := newSession(t)

	got, err := s.ResolveSelected(true)
	assert.NilError(t, err)
	assert.Equal(t, got, "kubectl get pods -n default\n")

	s.SetFilter("broken", filter.ModeName, true)
	_, err = s.ResolveSelected(false)
	var notFound *resolve.BookmarkNotFoundError
	assert.Assert(t, errors.As(err, &notFound))

	s.SetFilter("zzz", filter.ModeName, true)
	_, err = s.ResolveSelected(false)
	assert.Assert(t, errors.Is(err, session.ErrNoSelection))
}

func TestSession_Reload(t *testing.T) {
	s := newSession(t)
	s.SwitchFilterMode(filter.ModeLabel)
	typeText(s, "k8s")
	s.SelectDown()

	next, err := model.NewCatalog(nil, nil, []model.Bookmark{
		{Name: "only", Cmds: []string{"true"}, Labels: []string{"x"}},
	})
	assert.NilError(t, err)
	s.Reload(next)

	assert.Equal(t, s.Filter(), "")
	assert.Equal(t, s.Mode(), filter.ModeLabel)
	assert.Equal(t, s.Bookmarks().Position(), 0)
	assert.DeepEqual(t, bookmarkNames(s), []string{"only"})
	assert.DeepEqual(t, labelNames(s), []string{"x"})
	assert.Check(t, is.Equal(s.Catalog(), next))
}

func TestSession_VisibleWindow(t *testing.T) {
	bookmarks := make([]model.Bookmark, 10)
	for i := range bookmarks {
		bookmarks[i] = model.Bookmark{Name: string(rune('a' + i)), Cmds: []string{"true"}}
	}
	catalog, err := model.NewCatalog(nil, nil, bookmarks)
	assert.NilError(t, err)
	s := session.New(catalog, session.Options{})

	for range 7 {
		s.SelectDown()
	}
	w := s.VisibleWindow(8, 5)
	assert.Equal(t, w.Begin, 5)
	assert.Equal(t, w.End, 7)
	assert.Equal(t, w.HiddenAbove, 5)
	assert.Equal(t, w.HiddenBelow, 2)
}

func TestSession_NilCatalog(t *testing.T) {
	s := session.New(nil, session.Options{})

	assert.Equal(t, s.Bookmarks().Len(), 0)
	_, err := s.ResolveSelected(false)
	assert.Assert(t, errors.Is(err, session.ErrNoSelection))
}
