package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"weeklog/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateExercise:
		content = m.viewExercises()
	case StateHealth:
		content = m.viewHealth()
	case StateMeals:
		content = m.viewMeals()
	case StateMemos:
		content = m.viewMemos()
	}

	var banner string
	if m.statusMsg != "" {
		banner = warningStyle.Render(m.statusMsg)
	}

	ui := lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		weekStyle.Render("Week "+m.nav.CurrentWeek().Display()),
		banner,
		content,
		m.help.View(m),
	)
	return docStyle.Render(ui)
}

func (m Model) viewTabs() string {
	var tabs []string
	tabTitles := []string{"Exercise", "Health", "Meals", "Memos"}
	for i, title := range tabTitles {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewExercises() string {
	rows := m.rows()
	if len(rows) == 0 {
		return mutedStyle.Render("No exercises scheduled this week.")
	}

	var b strings.Builder
	lastDay := -1
	idx := 0
	for _, row := range rows {
		if row.day != lastDay {
			b.WriteString(fmt.Sprintf("%s %s\n",
				constants.DayNames[row.day],
				mutedStyle.Render(m.nav.CurrentWeek().DayDate(row.day).Format(constants.DateFormat))))
			lastDay = row.day
		}

		mark := "[ ]"
		if row.completed {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %s - %dm", mark, row.name, row.duration)
		if row.completed {
			line = doneStyle.Render(line)
		}
		prefix := "  "
		if idx == m.cursor {
			prefix = selectedStyle.Render("> ")
		}
		b.WriteString(prefix + line + "\n")
		idx++
	}
	return b.String()
}

func (m Model) viewHealth() string {
	var b strings.Builder
	rec := m.health.Record()

	if rec.Weight != nil {
		b.WriteString(fmt.Sprintf("Weight: %.1f\n", *rec.Weight))
	} else {
		b.WriteString(mutedStyle.Render("Weight: not recorded") + "\n")
	}

	for _, name := range m.health.MetricDefinitions() {
		if v, ok := rec.CustomMetrics[name]; ok {
			b.WriteString(fmt.Sprintf("%s: %.1f\n", name, v))
		} else {
			b.WriteString(mutedStyle.Render(name+": not recorded") + "\n")
		}
	}
	return b.String()
}

func (m Model) viewMeals() string {
	meals := m.meals.Meals()
	if len(meals) == 0 {
		return mutedStyle.Render("No meals recorded this week.")
	}

	var b strings.Builder
	lastDate := ""
	total := 0
	for _, meal := range meals {
		if meal.Date != lastDate {
			b.WriteString(weekStyle.Render(meal.Date) + "\n")
			lastDate = meal.Date
		}
		est := ""
		if meal.AutoEstimated {
			est = "~"
		}
		b.WriteString(fmt.Sprintf("  %-9s %s - %s%d kcal\n", meal.MealType, meal.Food, est, meal.Calories))
		total += meal.Calories
	}
	b.WriteString(mutedStyle.Render(fmt.Sprintf("Total: %d kcal", total)) + "\n")
	return b.String()
}

func (m Model) viewMemos() string {
	if m.loadingMemos {
		return m.spinner.View() + " Loading memos..."
	}
	if m.memos.Count() == 0 {
		return mutedStyle.Render("No memos this week.")
	}

	week := m.nav.CurrentWeek()
	var b strings.Builder
	for i := 0; i < 7; i++ {
		date := week.DayDate(i).Format(constants.DateFormat)
		entries := m.memos.Memos(date)
		if len(entries) == 0 {
			continue
		}
		b.WriteString(weekStyle.Render(date) + "\n")
		for _, e := range entries {
			b.WriteString("  · " + e.Text + "\n")
		}
	}
	return b.String()
}
