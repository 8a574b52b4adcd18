package tui

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nikbrunner/cbm/internal/filter"
	"github.com/nikbrunner/cbm/internal/logging"
	"github.com/nikbrunner/cbm/internal/logging/events"
	"github.com/nikbrunner/cbm/internal/model"
	"github.com/nikbrunner/cbm/internal/session"
	"github.com/nikbrunner/cbm/internal/tui/layout"
)

// CatalogLoader reloads the catalog from its file.
type CatalogLoader interface {
	Load() (*model.Catalog, error)
	Path() string
}

// catalogChangedMsg is sent when the catalog file changes on disk.
type catalogChangedMsg struct{}

// editorFinishedMsg is sent when the external editor exits.
type editorFinishedMsg struct{ err error }

// App is the main bubbletea model for the bookmark picker.
type App struct {
	session *session.Session
	loader  CatalogLoader
	changes <-chan struct{}
	keys    KeyMap
	styles  Styles
	layout  layout.LayoutConfig
	exec    bool
	editor  string

	// err is shown instead of the list until the next key press.
	err string

	result    string
	chosen    model.Bookmark
	cancelled bool

	// Window dimensions
	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Session      *session.Session
	Loader       CatalogLoader        // optional, disables reload and edit if nil
	Changes      <-chan struct{}      // optional, catalog file notifications
	Keys         *KeyMap              // optional, uses default if nil
	Styles       *Styles              // optional, uses default if nil
	LayoutConfig *layout.LayoutConfig // optional, uses default if nil
	Exec         bool                 // default auto-submit behaviour
	Editor       string               // optional, falls back to $EDITOR, then vi
	Err          error                // optional, shown on the first screen
}

// NewApp creates a new App with the given parameters.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	cfg := layout.DefaultConfig()
	if params.LayoutConfig != nil {
		cfg = *params.LayoutConfig
	}

	s := params.Session
	if s == nil {
		s = session.New(nil, session.Options{IgnoreCase: true, AutodetectFilterMode: true})
	}

	editor := params.Editor
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		editor = "vi"
	}

	app := App{
		session: s,
		loader:  params.Loader,
		changes: params.Changes,
		keys:    keys,
		styles:  styles,
		layout:  cfg,
		exec:    params.Exec,
		editor:  editor,
		width:   80,
		height:  24,
	}
	if params.Err != nil {
		app.err = params.Err.Error()
	}
	return app
}

// WithDimensions returns a copy of the app sized to width x height.
func (a App) WithDimensions(width, height int) App {
	a.width = width
	a.height = height
	return a
}

// Session returns the picker state.
func (a App) Session() *session.Session {
	return a.session
}

// Result returns the resolved command of the chosen bookmark.
func (a App) Result() (string, model.Bookmark, bool) {
	if a.result == "" {
		return "", model.Bookmark{}, false
	}
	return a.result, a.chosen, true
}

// Cancelled returns true if the user quit without choosing a bookmark.
func (a App) Cancelled() bool {
	return a.cancelled
}

// Err returns the error currently on screen.
func (a App) Err() string {
	return a.err
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return a.waitForChange()
}

func (a App) waitForChange() tea.Cmd {
	if a.changes == nil {
		return nil
	}
	changes := a.changes
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return catalogChangedMsg{}
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case catalogChangedMsg:
		a.reload()
		return a, a.waitForChange()

	case editorFinishedMsg:
		if msg.err != nil {
			a.fail(fmt.Errorf("editor: %w", msg.err))
			return a, nil
		}
		a.reload()
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.err = ""
	events.App.Key(msg.String())
	s := a.session

	switch {
	case key.Matches(msg, a.keys.Quit):
		a.cancelled = true
		return a, tea.Quit

	case key.Matches(msg, a.keys.Down):
		s.SelectDown()

	case key.Matches(msg, a.keys.Up):
		s.SelectUp()

	case key.Matches(msg, a.keys.NextView):
		s.NextView()

	case key.Matches(msg, a.keys.PrevView):
		s.PrevView()

	case key.Matches(msg, a.keys.BookmarksView, a.keys.LabelsView, a.keys.UsageView):
		if v, ok := session.ViewByNumber(int(msg.Runes[0] - '0')); ok {
			s.SetView(v)
		}

	case key.Matches(msg, a.keys.Enter):
		return a.enter()

	case key.Matches(msg, a.keys.Backspace):
		s.Backspace()

	case key.Matches(msg, a.keys.Edit):
		return a, a.edit()

	case key.Matches(msg, a.keys.Reload):
		a.reload()

	case key.Matches(msg, a.keys.SwitchFilterLabel):
		s.SwitchFilterMode(filter.ModeLabel)

	case key.Matches(msg, a.keys.SwitchFilterID):
		s.SwitchFilterMode(filter.ModeID)

	case key.Matches(msg, a.keys.Describe):
		s.ToggleDescription()

	case msg.Type == tea.KeySpace:
		s.AppendFilter(' ')

	case msg.Type == tea.KeyRunes && !msg.Alt:
		for _, r := range msg.Runes {
			s.AppendFilter(r)
		}
	}

	return a, nil
}

func (a App) enter() (tea.Model, tea.Cmd) {
	switch a.session.View() {
	case session.ViewBookmarks:
		b, ok := a.session.SelectedBookmark()
		if !ok {
			return a, nil
		}
		cmd, err := a.session.ResolveSelected(a.exec)
		if err != nil {
			a.fail(fmt.Errorf("generate command: %w", err))
			return a, nil
		}
		a.result = cmd
		a.chosen = b
		return a, tea.Quit

	case session.ViewLabels:
		a.session.ChooseLabel()
	}
	return a, nil
}

// reload re-reads the catalog. The filter is cleared whether or not the
// load succeeds; on failure the previous catalog stays in place.
func (a *App) reload() {
	if a.loader == nil {
		return
	}
	catalog, err := a.loader.Load()
	events.Catalog.Reload(a.loader.Path(), err)
	if err != nil {
		a.fail(fmt.Errorf("load %s: %w", a.loader.Path(), err))
		s := a.session
		s.SetFilter("", s.Mode(), s.IgnoreCase())
		s.ResetSelection()
		return
	}
	a.session.Reload(catalog)
}

func (a App) edit() tea.Cmd {
	if a.loader == nil {
		return nil
	}
	path := a.loader.Path()
	events.App.Edit(path)

	args := strings.Fields(a.editor)
	if len(args) == 0 {
		args = []string{"vi"}
	}
	args = append(args, path)
	c := exec.Command(args[0], args[1:]...)
	return tea.ExecProcess(c, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

func (a *App) fail(err error) {
	logging.Error(err)
	a.err = err.Error()
}

// View implements tea.Model.
func (a App) View() string {
	return a.renderView()
}
