package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"weeklog/internal/constants"
	"weeklog/internal/weekkey"
)

// memosLoadedMsg reports a finished memo fetch. The store already dropped
// the response if the week changed mid-flight; the message only clears the
// loading state and surfaces errors.
type memosLoadedMsg struct {
	week weekkey.Key
	err  error
}

func (m Model) fetchMemos(week weekkey.Key) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		err := m.memos.LoadWeekData(ctx, week)
		return memosLoadedMsg{week: week, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case memosLoadedMsg:
		if msg.week == m.nav.CurrentWeek() {
			m.loadingMemos = false
			if msg.err != nil {
				m.statusMsg = "Could not load memos: " + msg.err.Error()
			}
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		return m.activateTab((m.state + 1) % 4)

	case key.Matches(msg, m.keys.ShiftTab):
		return m.activateTab((m.state + 3) % 4)

	case key.Matches(msg, m.keys.PrevWeek):
		return m.gotoWeek(m.nav.CurrentWeek().Previous())

	case key.Matches(msg, m.keys.NextWeek):
		return m.gotoWeek(m.nav.CurrentWeek().Next())

	case key.Matches(msg, m.keys.Today):
		return m.gotoWeek(weekkey.ForToday())

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.state == StateExercise && m.cursor < len(m.rows())-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.LongerDur):
		return m.adjustDuration(+1)

	case key.Matches(msg, m.keys.ShorterDur):
		return m.adjustDuration(-1)

	case key.Matches(msg, m.keys.Toggle):
		if m.state != StateExercise {
			return m, nil
		}
		rows := m.rows()
		if m.cursor >= len(rows) {
			return m, nil
		}
		row := rows[m.cursor]
		if err := m.exercises.ToggleComplete(row.day, row.exerciseID); err != nil {
			m.statusMsg = err.Error()
		} else {
			m.statusMsg = ""
		}
		return m, nil
	}

	return m, nil
}

// activateTab switches tabs and reloads the activated manager's document
// from the backing store, so mutations written by a sibling process show up
// without a week change. The memo tab refetches from the server instead.
func (m Model) activateTab(state SessionState) (tea.Model, tea.Cmd) {
	m.state = state
	m.cursor = 0
	week := m.nav.CurrentWeek()
	switch state {
	case StateExercise:
		m.exercises.LoadWeekData(week)
	case StateHealth:
		m.health.LoadWeekData(week)
	case StateMeals:
		m.meals.LoadWeekData(week)
	case StateMemos:
		m.loadingMemos = true
		return m, m.fetchMemos(week)
	}
	return m, nil
}

// adjustDuration steps the selected entry's duration through the picker
// range, one step per keypress, clamped at the bounds.
func (m Model) adjustDuration(direction int) (tea.Model, tea.Cmd) {
	if m.state != StateExercise {
		return m, nil
	}
	rows := m.rows()
	if m.cursor >= len(rows) {
		return m, nil
	}
	row := rows[m.cursor]
	next := stepDuration(row.duration, direction)
	if next == row.duration {
		return m, nil
	}
	if err := m.exercises.UpdateDuration(row.day, row.exerciseID, next); err != nil {
		m.statusMsg = err.Error()
	} else {
		m.statusMsg = ""
	}
	return m, nil
}

func stepDuration(current, direction int) int {
	next := current + direction*constants.DurationStepMinutes
	if next < constants.MinDurationMinutes {
		return constants.MinDurationMinutes
	}
	if next > constants.MaxDurationMinutes {
		return constants.MaxDurationMinutes
	}
	return next
}

// gotoWeek moves every manager through the navigator, then kicks off the
// memo fetch for the new week. A stale fetch that lands later is discarded
// by the memo store itself.
func (m Model) gotoWeek(week weekkey.Key) (tea.Model, tea.Cmd) {
	m.nav.GoTo(week)
	m.cursor = 0
	m.statusMsg = ""
	m.loadingMemos = true
	return m, m.fetchMemos(week)
}
