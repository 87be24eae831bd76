package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"weeklog/internal/memo"
	"weeklog/internal/navigator"
	"weeklog/internal/storage"
	"weeklog/internal/tracker"
)

type SessionState int

const (
	StateExercise SessionState = iota
	StateHealth
	StateMeals
	StateMemos
)

type KeyMap struct {
	Tab        key.Binding
	ShiftTab   key.Binding
	Up         key.Binding
	Down       key.Binding
	PrevWeek   key.Binding
	NextWeek   key.Binding
	Today      key.Binding
	Toggle     key.Binding
	LongerDur  key.Binding
	ShorterDur key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PrevWeek: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev week"),
		),
		NextWeek: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next week"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "this week"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle done"),
		),
		LongerDur: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "longer"),
		),
		ShorterDur: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "shorter"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// exerciseRow is one scheduled entry flattened for cursor navigation.
type exerciseRow struct {
	day        int
	exerciseID string
	name       string
	duration   int
	completed  bool
}

type Model struct {
	store     storage.Provider
	nav       *navigator.Navigator
	exercises *tracker.ExerciseManager
	health    *tracker.HealthManager
	meals     *tracker.MealManager
	memos     *memo.Store

	state        SessionState
	keys         KeyMap
	help         help.Model
	spinner      spinner.Model
	loadingMemos bool
	cursor       int
	statusMsg    string
	quitting     bool
	width        int
	height       int
}

func NewModel(
	store storage.Provider,
	nav *navigator.Navigator,
	exercises *tracker.ExerciseManager,
	health *tracker.HealthManager,
	meals *tracker.MealManager,
	memos *memo.Store,
) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = selectedStyle

	return Model{
		store:     store,
		nav:       nav,
		exercises: exercises,
		health:    health,
		meals:     meals,
		memos:     memos,
		state:     StateExercise,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		spinner:   sp,
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.PrevWeek, m.keys.NextWeek, m.keys.Quit, m.keys.Help}
	if m.state == StateExercise {
		keys = append(keys, m.keys.Toggle)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.PrevWeek, m.keys.NextWeek, m.keys.Today}

	var actions []key.Binding
	if m.state == StateExercise {
		actions = []key.Binding{m.keys.Toggle, m.keys.LongerDur, m.keys.ShorterDur}
	}
	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchMemos(m.nav.CurrentWeek()))
}

// rows flattens the week's scheduled entries in day order for the cursor.
// Orphaned entries are left out, same as everywhere else.
func (m Model) rows() []exerciseRow {
	var rows []exerciseRow
	for day := 0; day < 7; day++ {
		for _, e := range m.exercises.Day(day) {
			name, ok := m.exerciseName(e.ExerciseID)
			if !ok {
				continue
			}
			rows = append(rows, exerciseRow{
				day:        day,
				exerciseID: e.ExerciseID,
				name:       name,
				duration:   e.Duration,
				completed:  e.Completed,
			})
		}
	}
	return rows
}

func (m Model) exerciseName(id string) (string, bool) {
	for _, ex := range m.exercises.Exercises() {
		if ex.ID == id {
			return ex.Name, true
		}
	}
	return "", false
}
