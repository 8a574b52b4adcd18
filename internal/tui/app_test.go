package tui_test

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/cbm/internal/filter"
	"github.com/nikbrunner/cbm/internal/model"
	"github.com/nikbrunner/cbm/internal/session"
	"github.com/nikbrunner/cbm/internal/storage"
	"github.com/nikbrunner/cbm/internal/tui"
	"github.com/nikbrunner/cbm/internal/tui/layout"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

type fakeLoader struct {
	catalog *model.Catalog
	err     error
	loads   int
}

func (f *fakeLoader) Load() (*model.Catalog, error) {
	f.loads++
	return f.catalog, f.err
}

func (f *fakeLoader) Path() string { return "/tmp/bookmarks.yaml" }

func testCatalog(t *testing.T) *model.Catalog {
	t.Helper()
	catalog, err := model.NewCatalog(
		map[string]string{"ns": "default"},
		map[string]string{"pods": "kubectl get pods -n {{ns}}"},
		[]model.Bookmark{
			{Name: "list pods", Desc: "Show the pods", Cmds: []string{"cmd::pods"}, Labels: []string{"k8s"}},
			{Name: "deploy", Desc: "Ship it", Cmds: []string{"make build", "make deploy"}, Labels: []string{"k8s", "dev"}},
			{Name: "devserver", Cmds: []string{"npm run dev"}, Labels: []string{"node"}},
			{Name: "broken", Cmds: []string{"cmd::missing"}},
		},
	)
	assert.NilError(t, err)
	return catalog
}

func newApp(t *testing.T, loader *fakeLoader) tui.App {
	t.Helper()
	s := session.New(testCatalog(t), session.Options{IgnoreCase: true, AutodetectFilterMode: true})
	params := tui.AppParams{Session: s}
	if loader != nil {
		params.Loader = loader
	}
	return tui.NewApp(params).WithDimensions(60, 12)
}

func press(t *testing.T, app tui.App, msgs ...tea.KeyMsg) (tui.App, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var updated tea.Model
		updated, cmd = app.Update(msg)
		app = updated.(tui.App)
	}
	return app, cmd
}

func keyType(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func alt(r rune) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: true} }

func TestApp_NavigationClamps(t *testing.T) {
	app := newApp(t, nil)
	bookmarks := app.Session().Bookmarks()

	app, _ = press(t, app, keyType(tea.KeyUp))
	assert.Equal(t, bookmarks.Position(), 0)

	app, _ = press(t, app, keyType(tea.KeyDown), keyType(tea.KeyTab), keyType(tea.KeyDown), keyType(tea.KeyDown))
	assert.Equal(t, bookmarks.Position(), 3)

	_, _ = press(t, app, keyType(tea.KeyUp))
	assert.Equal(t, bookmarks.Position(), 2)
}

func TestApp_TypingFilters(t *testing.T) {
	app := newApp(t, nil)

	app, _ = press(t, app, runes("dep"))
	assert.Equal(t, app.Session().Filter(), "dep")
	assert.Equal(t, app.Session().Bookmarks().Len(), 1)

	app, _ = press(t, app, keyType(tea.KeyBackspace), keyType(tea.KeyBackspace))
	assert.Equal(t, app.Session().Filter(), "d")
	assert.Equal(t, app.Session().Bookmarks().Len(), 3)

	// Letters like j, k and q are filter text, not commands.
	app, _ = press(t, app, runes("q"))
	assert.Equal(t, app.Session().Filter(), "dq")
	assert.Assert(t, !app.Cancelled())
}

func TestApp_DigitSwitchesToIDFilter(t *testing.T) {
	app := newApp(t, nil)

	app, _ = press(t, app, runes("3"))
	assert.Equal(t, app.Session().Mode(), filter.ModeID)
	b, ok := app.Session().SelectedBookmark()
	assert.Assert(t, ok)
	assert.Equal(t, b.Name, "devserver")
}

func TestApp_EnterResolvesAndQuits(t *testing.T) {
	app := newApp(t, nil)

	app, cmd := press(t, app, keyType(tea.KeyDown), keyType(tea.KeyEnter))
	assert.Assert(t, cmd != nil, "expected quit command")

	result, b, ok := app.Result()
	assert.Assert(t, ok)
	assert.Equal(t, b.Name, "deploy")
	assert.Equal(t, result, "make build \\\n&& make deploy")
}

func TestApp_EnterWithExec(t *testing.T) {
	s := session.New(testCatalog(t), session.Options{IgnoreCase: true})
	app := tui.NewApp(tui.AppParams{Session: s, Exec: true})

	app, _ = press(t, app, keyType(tea.KeyEnter))
	result, _, ok := app.Result()
	assert.Assert(t, ok)
	assert.Equal(t, result, "kubectl get pods -n default\n")
}

func TestApp_EnterShowsResolutionError(t *testing.T) {
	app := newApp(t, nil)

	app, _ = press(t, app, runes("broken"), keyType(tea.KeyEnter))
	_, _, ok := app.Result()
	assert.Assert(t, !ok)
	assert.Check(t, is.Contains(app.Err(), "command key 'missing' not found in cmds"))
	assert.Check(t, is.Contains(layout.StripANSI(app.View()), "ERROR: generate command"))

	// The next key press clears the error.
	app, _ = press(t, app, keyType(tea.KeyDown))
	assert.Equal(t, app.Err(), "")
}

func TestApp_EnterOnEmptyListDoesNothing(t *testing.T) {
	app := newApp(t, nil)

	app, cmd := press(t, app, runes("zzz"), keyType(tea.KeyEnter))
	assert.Assert(t, cmd == nil)
	_, _, ok := app.Result()
	assert.Assert(t, !ok)
}

func TestApp_Quit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{keyType(tea.KeyEsc), keyType(tea.KeyCtrlC)} {
		app := newApp(t, nil)
		app, cmd := press(t, app, msg)
		assert.Assert(t, app.Cancelled())
		assert.Assert(t, cmd != nil)
	}
}

func TestApp_ViewSwitching(t *testing.T) {
	app := newApp(t, nil)

	app, _ = press(t, app, keyType(tea.KeyRight))
	assert.Equal(t, app.Session().View(), session.ViewLabels)
	app, _ = press(t, app, keyType(tea.KeyRight))
	assert.Equal(t, app.Session().View(), session.ViewUsage)
	app, _ = press(t, app, keyType(tea.KeyRight))
	assert.Equal(t, app.Session().View(), session.ViewBookmarks)
	app, _ = press(t, app, keyType(tea.KeyLeft))
	assert.Equal(t, app.Session().View(), session.ViewUsage)

	app, _ = press(t, app, alt('2'))
	assert.Equal(t, app.Session().View(), session.ViewLabels)
	app, _ = press(t, app, alt('1'))
	assert.Equal(t, app.Session().View(), session.ViewBookmarks)
}

func TestApp_LabelDrillDown(t *testing.T) {
	app := newApp(t, nil)

	app, _ = press(t, app, alt('2'), keyType(tea.KeyDown), keyType(tea.KeyEnter))

	s := app.Session()
	assert.Equal(t, s.View(), session.ViewBookmarks)
	assert.Equal(t, s.Mode(), filter.ModeLabel)
	assert.Equal(t, s.Filter(), "dev")
	assert.Equal(t, s.Bookmarks().Len(), 1)
}

func TestApp_ConfigurableKeys(t *testing.T) {
	app := newApp(t, nil)

	app, _ = press(t, app, keyType(tea.KeyCtrlL))
	assert.Equal(t, app.Session().Mode(), filter.ModeLabel)
	app, _ = press(t, app, keyType(tea.KeyCtrlT))
	assert.Equal(t, app.Session().Mode(), filter.ModeID)
	app, _ = press(t, app, keyType(tea.KeyCtrlT))
	assert.Equal(t, app.Session().Mode(), filter.ModeName)

	app, _ = press(t, app, keyType(tea.KeyCtrlD))
	assert.Assert(t, app.Session().ShowDescription())
	assert.Check(t, is.Contains(layout.StripANSI(app.View()), "1. Show the pods"))
}

func TestApp_CustomBindings(t *testing.T) {
	bindings := storage.DefaultBindings()
	bindings.Describe = "Alt d"
	keys, err := tui.NewKeyMap(bindings)
	assert.NilError(t, err)

	s := session.New(testCatalog(t), session.Options{})
	app := tui.NewApp(tui.AppParams{Session: s, Keys: &keys})

	app, _ = press(t, app, keyType(tea.KeyCtrlD))
	assert.Assert(t, !app.Session().ShowDescription())
	app, _ = press(t, app, alt('d'))
	assert.Assert(t, app.Session().ShowDescription())
}

func TestApp_Reload(t *testing.T) {
	next, err := model.NewCatalog(nil, nil, []model.Bookmark{{Name: "fresh", Cmds: []string{"true"}}})
	assert.NilError(t, err)
	loader := &fakeLoader{catalog: next}
	app := newApp(t, loader)

	app, _ = press(t, app, runes("de"), keyType(tea.KeyCtrlR))

	assert.Equal(t, loader.loads, 1)
	assert.Equal(t, app.Session().Filter(), "")
	assert.Equal(t, app.Session().Bookmarks().Len(), 1)
	assert.Equal(t, app.Err(), "")
}

func TestApp_FailedReloadKeepsCatalog(t *testing.T) {
	loader := &fakeLoader{err: errors.New("yaml: line 3: did not find expected key")}
	app := newApp(t, loader)

	app, _ = press(t, app, runes("de"), keyType(tea.KeyCtrlR))

	assert.Check(t, is.Contains(app.Err(), "load /tmp/bookmarks.yaml"))
	assert.Equal(t, app.Session().Filter(), "")
	assert.Equal(t, app.Session().Bookmarks().Len(), 4)
}

func TestApp_CatalogChangeTriggersReload(t *testing.T) {
	next, err := model.NewCatalog(nil, nil, nil)
	assert.NilError(t, err)
	loader := &fakeLoader{catalog: next}
	changes := make(chan struct{}, 1)

	s := session.New(testCatalog(t), session.Options{})
	app := tui.NewApp(tui.AppParams{Session: s, Loader: loader, Changes: changes})

	changes <- struct{}{}
	msg := app.Init()()
	updated, cmd := app.Update(msg)
	app = updated.(tui.App)

	assert.Equal(t, loader.loads, 1)
	assert.Equal(t, app.Session().Bookmarks().Len(), 0)
	assert.Assert(t, cmd != nil, "expected to keep watching")
}

func TestApp_StartupError(t *testing.T) {
	app := tui.NewApp(tui.AppParams{Err: errors.New("duplicate bookmark names: 2")})

	assert.Equal(t, layout.StripANSI(app.View()), "ERROR: duplicate bookmark names: 2")
}

func TestApp_TooSmall(t *testing.T) {
	app := newApp(t, nil).WithDimensions(10, 4)

	assert.Check(t, is.Contains(app.View(), "too small"))
}

func TestApp_UsageView(t *testing.T) {
	app := newApp(t, nil).WithDimensions(140, 40)
	app, _ = press(t, app, alt('3'))

	view := layout.StripANSI(app.View())
	assert.Check(t, strings.HasPrefix(view, "  Mode: Usage"))
	for _, want := range []string{"KeyBinding", "Configurable", "Ctrl e", "Ctrl t", "Esc|Ctrl c", "Alt 3"} {
		assert.Check(t, is.Contains(view, want))
	}
}

func TestParseBinding(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"Ctrl e", "ctrl+e", false},
		{"ctrl E", "ctrl+e", false},
		{"Alt x", "alt+x", false},
		{"Alt X", "alt+X", false},
		{"Ctrl", "", true},
		{"Shift a", "", true},
		{"Ctrl ab", "", true},
		{"Ctrl a b", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := tui.ParseBinding(tt.in)
			if tt.wantErr {
				assert.Assert(t, err != nil)
				return
			}
			assert.NilError(t, err)
			assert.Equal(t, got, tt.want)
		})
	}
}

func TestNewKeyMap_MalformedFallsBackToDefaults(t *testing.T) {
	bindings := storage.DefaultBindings()
	bindings.Reload = "Hyper r"

	keys, err := tui.NewKeyMap(bindings)
	assert.ErrorContains(t, err, "bind_reload")
	assert.Equal(t, keys.Reload.Help().Key, "Ctrl r")
}
