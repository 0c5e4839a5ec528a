// Package tui provides the interactive Bubble Tea tracker screen.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/habit/internal/cli"
	"github.com/theirongolddev/habit/internal/ledger"
	"github.com/theirongolddev/habit/internal/model"
	"github.com/theirongolddev/habit/internal/syncer"
	"github.com/theirongolddev/habit/internal/tui/theme"
	"github.com/theirongolddev/habit/internal/window"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// stateLoadedMsg is sent when the controller's initial load resolves.
type stateLoadedMsg struct{}

// stripDays is how many date cells fit in the strip at once.
const stripDays = 7

// displayedScore is the fixed second score card value. Presentation
// only; the engine knows nothing about it.
const displayedScore = 75

type setupValues struct {
	name  string
	theme string
}

// App is the root Bubble Tea model.
type App struct {
	ctrl   *syncer.Controller
	win    *window.Window
	radius int

	defaultTheme model.Theme

	loading bool
	spinner spinner.Model

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool

	width  int
	height int
	flash  string
}

// NewApp creates the TUI model around a not-yet-loaded controller.
func NewApp(ctrl *syncer.Controller, radius int, defaultTheme model.Theme) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFBC2D"))

	return App{
		ctrl:         ctrl,
		radius:       radius,
		defaultTheme: defaultTheme,
		loading:      true,
		spinner:      sp,
	}
}

// Init starts the spinner and kicks off the initial load.
func (a App) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, a.loadState())
}

func (a App) loadState() tea.Cmd {
	return func() tea.Msg {
		a.ctrl.Load(context.Background(), a.defaultTheme)
		return stateLoadedMsg{}
	}
}

// Update handles messages.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case spinner.TickMsg:
		if !a.loading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case stateLoadedMsg:
		a.loading = false
		a.win = window.New(time.Now(), a.radius)
		theme.SetActive(a.ctrl.Theme())
		if a.ctrl.FirstRun() {
			a.setupVals = setupValues{
				name:  a.ctrl.Profile().Name,
				theme: string(a.ctrl.Theme()),
			}
			a.setupForm = newSetupForm(&a.setupVals)
			a.needSetup = true
			return a, a.setupForm.Init()
		}
		return a, nil

	case tea.KeyMsg:
		if a.loading {
			switch msg.String() {
			case "q", "ctrl+c":
				return a, tea.Quit
			}
			// Editing controls stay inert until the ledger is known.
			return a, nil
		}
		if a.needSetup {
			return a.updateSetup(msg)
		}
		return a.handleKey(msg)
	}

	if a.needSetup && a.setupForm != nil {
		return a.updateSetup(msg)
	}
	return a, nil
}

func (a App) updateSetup(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		p := a.ctrl.Profile()
		if name := strings.TrimSpace(a.setupVals.name); name != "" {
			p.Name = name
		}
		if err := a.ctrl.SetProfile(p); err != nil {
			a.flash = err.Error()
		}
		if err := a.ctrl.SetTheme(model.ParseTheme(a.setupVals.theme, a.ctrl.Theme())); err != nil {
			a.flash = err.Error()
		}
		theme.SetActive(a.ctrl.Theme())
		a.needSetup = false
		return a, nil
	}
	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		return a, nil
	}
	return a, cmd
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.flash = ""
	a.refreshToday()

	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit

	case "left":
		a.win.ShiftSelection(-1)
	case "right":
		a.win.ShiftSelection(1)
	case "g":
		a.win.Select(a.win.Today())

	case "t":
		if th, err := a.ctrl.ToggleTheme(); err == nil {
			theme.SetActive(th)
		}

	case "h":
		a.mutate(func(d time.Time) error { _, err := a.ctrl.Increment(d, model.Hydration); return err })
	case "H":
		a.mutate(func(d time.Time) error { _, err := a.ctrl.Decrement(d, model.Hydration); return err })
	case "w":
		a.mutate(func(d time.Time) error { _, err := a.ctrl.Increment(d, model.Workouts); return err })
	case "W":
		a.mutate(func(d time.Time) error { _, err := a.ctrl.Decrement(d, model.Workouts); return err })
	case "r":
		a.mutate(func(d time.Time) error { _, err := a.ctrl.Increment(d, model.Reading); return err })
	case "R":
		a.mutate(func(d time.Time) error { _, err := a.ctrl.Decrement(d, model.Reading); return err })
	case "c":
		a.mutate(func(d time.Time) error { _, err := a.ctrl.ToggleCleanFood(d); return err })
	}
	return a, nil
}

// refreshToday regenerates the window when the wall-clock day has
// moved since it was built, so editability always tracks the true
// current date.
func (a *App) refreshToday() {
	now := time.Now()
	if a.win == nil || !model.SameDay(a.win.Today(), now) {
		selected := now
		if a.win != nil {
			selected = a.win.Selected()
		}
		a.win = window.New(now, a.radius)
		a.win.Select(selected)
	}
}

func (a *App) mutate(fn func(time.Time) error) {
	if err := fn(a.win.Selected()); err != nil {
		if errors.Is(err, ledger.ErrNotEditable) {
			a.flash = "Only today can be edited"
		} else {
			a.flash = err.Error()
		}
	}
}

// View renders the screen.
func (a App) View() string {
	if a.loading {
		return fmt.Sprintf("\n\n  %s Loading your progress...\n", a.spinner.View())
	}
	if a.needSetup && a.setupForm != nil {
		return "\n" + a.setupForm.View()
	}

	t := theme.Active
	var b strings.Builder

	greet := lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary)
	b.WriteString("\n")
	b.WriteString(greet.Render(fmt.Sprintf("  Good %s, %s!", cli.Greeting(time.Now()), a.ctrl.Profile().Name)))
	b.WriteString("\n\n")

	b.WriteString(a.viewStrip())
	b.WriteString("\n")
	b.WriteString(a.viewTrackers())
	b.WriteString("\n")
	b.WriteString(a.viewScores())
	b.WriteString("\n")
	b.WriteString(a.viewStatusBar())

	return b.String()
}

// viewStrip renders the scrollable date strip with completion dots.
func (a App) viewStrip() string {
	t := theme.Active
	days := a.win.Days()

	// Show a fixed-size slice of the window centered on the selection
	// when it lies inside it.
	start := 0
	if idx := a.win.SelectedIndex(); idx >= 0 {
		start = idx - stripDays/2
	} else {
		start = len(days)/2 - stripDays/2
	}
	if start < 0 {
		start = 0
	}
	if start > len(days)-stripDays {
		start = len(days) - stripDays
	}
	if start < 0 {
		start = 0
	}
	end := start + stripDays
	if end > len(days) {
		end = len(days)
	}

	cells := make([]string, 0, end-start)
	for _, d := range days[start:end] {
		cells = append(cells, a.viewDayCell(d))
	}

	strip := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	hint := lipgloss.NewStyle().Foreground(t.TextDim).Render("  ←/→ pick a day · g today")
	return strip + "\n" + hint + "\n"
}

func (a App) viewDayCell(d time.Time) string {
	t := theme.Active
	selected := a.win.IsSelected(d)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Background(t.Surface).
		Align(lipgloss.Center).
		Width(7).
		Padding(0, 0)
	text := lipgloss.NewStyle().Background(t.Surface).Foreground(t.TextMuted)
	num := lipgloss.NewStyle().Background(t.Surface).Foreground(t.TextPrimary).Bold(true)

	bg := t.Surface
	if selected {
		bg = t.Accent
		box = box.Background(t.Accent).BorderForeground(t.Accent)
		text = text.Background(t.Accent).Foreground(t.AccentText)
		num = num.Background(t.Accent).Foreground(t.AccentText)
	}

	mark := " "
	if a.ctrl.HasEntry(d) {
		mark = lipgloss.NewStyle().
			Background(bg).
			Foreground(t.CompletionMark).
			Render("•")
	}

	label := ""
	if a.win.IsToday(d) {
		label = "today"
	} else {
		label = cli.FormatMonth(d)
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		text.Render(cli.FormatDayOfWeek(d)),
		num.Render(fmt.Sprintf("%d", d.Day())),
		text.Render(label),
		mark,
	)
	return box.Render(body)
}

// viewTrackers renders the four metric cards for the selected day.
func (a App) viewTrackers() string {
	t := theme.Active
	rec := a.ctrl.Record(a.win.Selected())
	editable := a.ctrl.IsEditable(a.win.Selected())

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Background(t.Surface).
		Padding(0, 1).
		Width(26)
	title := lipgloss.NewStyle().Background(t.Surface).Foreground(t.TextPrimary).Bold(true)
	sub := lipgloss.NewStyle().Background(t.Surface).Foreground(t.TextMuted)
	bar := lipgloss.NewStyle().Background(t.Surface).Foreground(t.Accent)
	if !editable {
		title = title.Foreground(t.TextMuted)
		bar = bar.Foreground(t.TextDim)
	}

	counter := func(name, icon string, m model.Metric) string {
		cur := rec.Count(m)
		return card.Render(lipgloss.JoinVertical(lipgloss.Left,
			title.Render(fmt.Sprintf("%s %s", name, icon)),
			bar.Render(cli.Bar(cur, m.Max(), 20)),
			sub.Render(fmt.Sprintf("%s %s", cli.FormatCount(cur, m.Max()), m.Unit())),
		))
	}

	cleanLabel := "Ate Off-Plan?"
	if rec.CleanFood {
		cleanLabel = "Ate On-Plan ✓"
	}
	clean := card.Render(lipgloss.JoinVertical(lipgloss.Left,
		title.Render("Clean Food"),
		sub.Render("no cheat meals"),
		sub.Render(cleanLabel),
	))

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		counter("Hydration", "💧", model.Hydration),
		counter("Workouts", "💪", model.Workouts),
	)
	bottom := lipgloss.JoinHorizontal(lipgloss.Top,
		counter("Reading", "📚", model.Reading),
		clean,
	)
	return lipgloss.JoinVertical(lipgloss.Left, top, bottom)
}

// viewScores renders the day counter and the fixed score display.
func (a App) viewScores() string {
	t := theme.Active
	score := lipgloss.NewStyle().
		Background(t.Score).
		Foreground(t.TextPrimary).
		Bold(true).
		Align(lipgloss.Center).
		Padding(0, 1).
		Width(12)

	return "  " + lipgloss.JoinHorizontal(lipgloss.Top,
		score.Render(fmt.Sprintf("Day %d", a.ctrl.Profile().CurrentDay)),
		"  ",
		score.Render(fmt.Sprintf("%d", displayedScore)),
	)
}

func (a App) viewStatusBar() string {
	t := theme.Active
	help := "h/w/r +1 · H/W/R -1 · c clean food · t theme · q quit"
	if !a.ctrl.IsEditable(a.win.Selected()) {
		help = "read-only day · " + help
	}
	line := lipgloss.NewStyle().Foreground(t.TextDim).Render("  " + help)
	if a.flash != "" {
		line += "\n" + lipgloss.NewStyle().Foreground(cli.ColorRed).Render("  "+a.flash)
	}
	return "\n" + line + "\n"
}

func newSetupForm(vals *setupValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What's your name?").
				CharLimit(40).
				Value(&vals.name),
			huh.NewSelect[string]().
				Title("Theme").
				Options(
					huh.NewOption("Light", "light"),
					huh.NewOption("Dark", "dark"),
				).
				Value(&vals.theme),
		),
	)
}
