package tui

import (
	"context"
	"fmt"

	"github.com/eidora/mythos/pkg/console"
	"github.com/eidora/mythos/pkg/logging"
	"github.com/eidora/mythos/pkg/mythology"
	"github.com/eidora/mythos/pkg/ui/runtime"
	"github.com/eidora/mythos/pkg/ui/terminal"
	"github.com/eidora/mythos/pkg/ui/theme"
	"github.com/eidora/mythos/pkg/ui/widgets"
)

// storeChanged is posted into the app loop when a background store
// operation finishes; the console re-reads its snapshot on receipt.
type storeChanged struct{}

// ConsoleConfig wires a Console to its collaborators.
type ConsoleConfig struct {
	Store  *console.Store
	Nav    *console.Navigator
	Theme  *theme.Theme
	Logger *logging.Logger

	// Post injects messages into the app loop from goroutines.
	Post func(msg runtime.Message)
}

// Console is the root widget: header, tab bar, the active tab's view,
// and a status bar. It owns all key routing and drives store protocols
// on background goroutines, reading fresh snapshots on completion.
type Console struct {
	widgets.Base
	theme *theme.Theme
	store *console.Store
	nav   *console.Navigator
	log   *logging.Logger
	post  func(runtime.Message)

	header *widgets.Header
	tabs   *widgets.TabBar
	status *widgets.StatusBar

	narrativeSrc  *fragmentSource
	narrativeList *widgets.List
	dreamSrc      *dreamSource
	dreamList     *widgets.List
	form          *createForm

	search    *widgets.Input
	searching bool

	snap console.Snapshot
}

// NewConsole builds the root widget and takes an initial snapshot.
func NewConsole(cfg ConsoleConfig) *Console {
	th := cfg.Theme
	if th == nil {
		th = theme.DefaultTheme()
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Discard()
	}
	if cfg.Post == nil {
		cfg.Post = func(runtime.Message) {}
	}

	c := &Console{
		theme: th,
		store: cfg.Store,
		nav:   cfg.Nav,
		log:   cfg.Logger,
		post:  cfg.Post,

		header: widgets.NewHeader("MYTHOS"),
		tabs:   widgets.NewTabBar("Narratives", "Dreams", "Create"),
		status: widgets.NewStatusBar(),
		search: widgets.NewInput("Search"),
	}

	c.header.SetStyles(th.AccentGlow, th.TextMuted, th.Surface)
	c.tabs.SetStyles(th.TabActive, th.TabInactive, th.SurfaceDim)
	c.status.SetFill(th.Surface)
	c.search.SetStyles(th.Accent, th.TextPrimary, th.TextMuted, th.AccentGlow)
	c.search.SetPlaceholder("keyword")

	c.narrativeSrc = &fragmentSource{theme: th}
	c.narrativeList = widgets.NewList(c.narrativeSrc)
	c.narrativeList.SetScrollbarStyles(th.Border, th.Accent)

	c.dreamSrc = &dreamSource{theme: th}
	c.dreamList = widgets.NewList(c.dreamSrc)
	c.dreamList.SetScrollbarStyles(th.Border, th.Dream)

	c.form = newCreateForm(th)
	c.form.OnEdit = cfg.Store.EditDraft
	c.form.OnSubmit = func() {
		c.runAsync("process_interaction", cfg.Store.ProcessInteraction)
	}

	c.refresh()
	return c
}

// Reload triggers the bulk refresh protocol in the background.
func (c *Console) Reload() {
	c.runAsync("load_all", c.store.LoadAll)
}

// runAsync runs a store protocol off the loop goroutine and posts a
// storeChanged message when it settles either way.
func (c *Console) runAsync(op string, fn func(context.Context) error) {
	c.post(runtime.EventMsg{Payload: storeChanged{}}) // show loading state
	go func() {
		if err := fn(context.Background()); err != nil {
			c.log.Warn(logging.CategoryUI, op, err.Error(), nil)
		}
		c.post(runtime.EventMsg{Payload: storeChanged{}})
	}()
}

// refresh re-reads the snapshot and pushes it into the child widgets.
func (c *Console) refresh() {
	c.snap = c.store.Snapshot()

	if c.snap.SearchActive {
		c.narrativeSrc.items = c.snap.SearchResults
	} else {
		c.narrativeSrc.items = c.snap.Narratives
	}
	c.dreamSrc.items = c.snap.Dreams
	c.form.syncDraft(c.snap.Draft)

	c.tabs.SetActive(int(c.nav.Active()))
	c.focusActive()

	stats := c.snap.Stats
	info := fmt.Sprintf("%d narratives · %d dreams", stats.TotalNarratives, stats.TotalDreams)
	if stats.DominantArchetype.Known() {
		info += " · " + stats.DominantArchetype.String()
	}
	c.header.SetInfo(info)

	c.updateStatus()
}

func (c *Console) focusActive() {
	c.narrativeList.Blur()
	c.dreamList.Blur()
	switch c.nav.Active() {
	case console.TabNarratives:
		if !c.searching {
			c.narrativeList.Focus()
		}
	case console.TabDreams:
		c.dreamList.Focus()
	}
}

func (c *Console) updateStatus() {
	th := c.theme
	switch {
	case c.snap.Loading:
		c.status.SetMessage("⟳ communing with the mythology…", th.Loading)
	case c.snap.LastError != "":
		c.status.SetMessage(c.snap.LastError, th.Error)
	case c.snap.SearchActive:
		c.status.SetMessage(fmt.Sprintf("search %q · %d matches · Esc clears",
			c.snap.SearchKeyword, len(c.snap.SearchResults)), th.Info)
	default:
		c.status.SetMessage("", th.TextMuted)
	}
	c.status.SetHint(c.hint(), th.TextMuted)
}

func (c *Console) hint() string {
	switch c.nav.Active() {
	case console.TabDreams:
		return "d dream · e seeded · m merger · r reload · q quit"
	case console.TabCreate:
		return "Tab fields · Enter submit · Ctrl+R reload"
	default:
		if c.searching {
			return "Enter search · Esc cancel"
		}
		return "1/2/3 tabs · / search · r reload · q quit"
	}
}

func (c *Console) Measure(constraints runtime.Constraints) runtime.Size {
	return constraints.MaxSize()
}

func (c *Console) Layout(bounds runtime.Rect) {
	c.Base.Layout(bounds)
	if bounds.Height < 4 {
		return
	}
	c.header.Layout(runtime.NewRect(bounds.X, bounds.Y, bounds.Width, 1))
	c.tabs.Layout(runtime.NewRect(bounds.X, bounds.Y+1, bounds.Width, 1))

	contentTop := bounds.Y + 2
	if c.searching {
		c.search.Layout(runtime.NewRect(bounds.X+1, contentTop, bounds.Width-2, 1))
		contentTop++
	}
	content := runtime.NewRect(bounds.X, contentTop, bounds.Width, bounds.Y+bounds.Height-1-contentTop)
	c.narrativeList.Layout(content)
	c.dreamList.Layout(content)
	c.form.Layout(content)

	c.status.Layout(runtime.NewRect(bounds.X, bounds.Y+bounds.Height-1, bounds.Width, 1))
}

func (c *Console) HandleMessage(msg runtime.Message) runtime.HandleResult {
	switch m := msg.(type) {
	case runtime.EventMsg:
		if _, ok := m.Payload.(storeChanged); ok {
			c.refresh()
			return runtime.Handled()
		}

	case runtime.KeyMsg:
		return c.handleKey(m)

	case runtime.MouseMsg:
		switch c.nav.Active() {
		case console.TabNarratives:
			return c.narrativeList.HandleMessage(msg)
		case console.TabDreams:
			return c.dreamList.HandleMessage(msg)
		}
	}
	return runtime.Unhandled()
}

func (c *Console) handleKey(key runtime.KeyMsg) runtime.HandleResult {
	// Global bindings that never collide with typing.
	switch key.Key {
	case terminal.KeyCtrlC:
		return runtime.WithCommand(runtime.Quit{})
	case terminal.KeyCtrlR:
		c.Reload()
		return runtime.Handled()
	}

	if c.searching {
		return c.handleSearchKey(key)
	}

	if c.nav.Active() == console.TabCreate {
		if key.Key == terminal.KeyEscape {
			c.nav.SelectTab(console.TabNarratives)
			c.refresh()
			return runtime.Handled()
		}
		return c.form.HandleMessage(key)
	}

	switch key.Key {
	case terminal.KeyTab:
		c.nav.NextTab()
		c.refresh()
		return runtime.Handled()
	case terminal.KeyEscape:
		if c.snap.SearchActive {
			c.store.ClearSearch()
			c.refresh()
			return runtime.Handled()
		}
	case terminal.KeyRune:
		if r := c.handleRune(key.Rune); r.Handled {
			return r
		}
	}

	if c.nav.Active() == console.TabDreams {
		return c.dreamList.HandleMessage(key)
	}
	return c.narrativeList.HandleMessage(key)
}

func (c *Console) handleRune(r rune) runtime.HandleResult {
	switch r {
	case 'q':
		return runtime.WithCommand(runtime.Quit{})
	case '1':
		c.selectTab(console.TabNarratives)
	case '2':
		c.selectTab(console.TabDreams)
	case '3':
		c.selectTab(console.TabCreate)
	case 'r':
		c.Reload()
	case 'd':
		c.runAsync("generate_dream", c.store.GenerateDream)
	case 'e':
		seed := c.snap.Stats.DominantEmotion
		if !seed.Known() {
			seed = mythology.ToneWonder
		}
		c.runAsync("generate_enhanced_dream", func(ctx context.Context) error {
			return c.store.GenerateEnhancedDream(ctx, seed)
		})
	case 'm':
		c.runAsync("generate_merger_dream", c.store.GenerateMergerDream)
	case '/':
		if c.nav.Active() == console.TabNarratives {
			c.searching = true
			c.search.SetValue(c.snap.SearchKeyword)
			c.search.Focus()
			c.focusActive()
		}
	case 'n':
		// Empty-state shortcut into the Create tab.
		if c.nav.Active() == console.TabNarratives && len(c.snap.Narratives) == 0 && !c.snap.SearchActive {
			c.selectTab(console.TabCreate)
		} else {
			return runtime.Unhandled()
		}
	default:
		return runtime.Unhandled()
	}
	return runtime.Handled()
}

func (c *Console) selectTab(tab console.Tab) {
	c.nav.SelectTab(tab)
	c.refresh()
}

func (c *Console) handleSearchKey(key runtime.KeyMsg) runtime.HandleResult {
	switch key.Key {
	case terminal.KeyEscape:
		c.searching = false
		c.search.Blur()
		c.store.ClearSearch()
		c.refresh()
		return runtime.Handled()
	case terminal.KeyEnter:
		keyword := c.search.Value()
		c.searching = false
		c.search.Blur()
		if keyword == "" {
			c.store.ClearSearch()
			c.refresh()
			return runtime.Handled()
		}
		c.runAsync("search_narratives", func(ctx context.Context) error {
			return c.store.SearchNarratives(ctx, keyword)
		})
		return runtime.Handled()
	}
	return c.search.HandleMessage(key)
}

func (c *Console) Render(ctx runtime.RenderContext) {
	bounds := c.Bounds()
	if bounds.Width <= 0 || bounds.Height <= 0 {
		return
	}
	ctx.Buffer.Fill(bounds, ' ', c.theme.Background)

	c.header.Render(ctx)
	c.tabs.Render(ctx)
	if c.searching {
		c.search.Render(ctx)
	}

	switch c.nav.Active() {
	case console.TabNarratives:
		if len(c.narrativeSrc.items) == 0 {
			c.renderEmpty(ctx)
		} else {
			c.narrativeList.Render(ctx)
		}
	case console.TabDreams:
		if len(c.dreamSrc.items) == 0 {
			c.renderEmpty(ctx)
		} else {
			c.dreamList.Render(ctx)
		}
	case console.TabCreate:
		c.form.Render(ctx)
	}

	c.status.Render(ctx)
}

func (c *Console) renderEmpty(ctx runtime.RenderContext) {
	bounds := c.narrativeList.Bounds()
	var lines []string
	switch {
	case c.nav.Active() == console.TabNarratives && c.snap.SearchActive:
		lines = []string{
			fmt.Sprintf("Nothing resonates with %q.", c.snap.SearchKeyword),
			"Esc clears the search.",
		}
	case c.nav.Active() == console.TabNarratives:
		lines = []string{
			"The mythology is unwritten.",
			"Press n to weave the first narrative.",
		}
	default:
		lines = []string{
			"No dreams yet.",
			"Press d to let the machine dream.",
		}
	}

	y := bounds.Y + bounds.Height/2 - 1
	for i, line := range lines {
		x := bounds.X + (bounds.Width-len(line))/2
		style := c.theme.TextSecondary
		if i > 0 {
			style = c.theme.TextMuted
		}
		ctx.Buffer.SetString(x, y+i, line, style)
	}
}
