package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"weeklog/internal/report"
)

var (
	reportTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")).
				Bold(true)

	reportSectionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39")).
				Bold(true)

	reportMutedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240"))
)

type ReportCmd struct {
	Week string `arg:"" optional:"" help:"Week to report on (YYYY-MM-DD, or 'last'); defaults to this week."`
}

func (c *ReportCmd) Run(ctx *Context) error {
	week, err := ResolveWeek(c.Week)
	if err != nil {
		return err
	}

	r := report.Generate(ctx.Store.Load(), week)
	fmt.Println(renderReport(r))
	return nil
}

func renderReport(r report.Report) string {
	var b strings.Builder

	b.WriteString(reportTitleStyle.Render(fmt.Sprintf("Weekly Report · %s", r.Week.Display())))
	b.WriteString("\n")

	if !r.HasData() {
		b.WriteString(reportMutedStyle.Render("No data recorded for this week."))
		return b.String()
	}

	b.WriteString("\n" + reportSectionStyle.Render("Exercise") + "\n")
	b.WriteString(fmt.Sprintf("  Completed: %d/%d (%d%%)\n",
		r.Exercise.CompletedCount, r.Exercise.TotalCount, r.Exercise.CompletionRate))
	b.WriteString(fmt.Sprintf("  Active minutes: %d\n", r.Exercise.TotalMinutes))

	b.WriteString("\n" + reportSectionStyle.Render("Nutrition") + "\n")
	b.WriteString(fmt.Sprintf("  Meals logged: %d\n", r.Nutrition.MealCount))
	b.WriteString(fmt.Sprintf("  Total calories: %d\n", r.Nutrition.TotalCalories))
	b.WriteString(fmt.Sprintf("  Daily average: %d kcal\n", r.Nutrition.AvgDailyCalories))

	b.WriteString("\n" + reportSectionStyle.Render("Health") + "\n")
	if r.Health.StartWeight != nil {
		b.WriteString(fmt.Sprintf("  Weight: %.1f", *r.Health.StartWeight))
		if r.Health.WeightChange != nil && *r.Health.WeightChange != 0 {
			b.WriteString(fmt.Sprintf(" (%+.1f)", *r.Health.WeightChange))
		}
		b.WriteString("\n")
	} else {
		b.WriteString(reportMutedStyle.Render("  Weight: not recorded") + "\n")
	}
	names := make([]string, 0, len(r.Health.CustomMetrics))
	for name := range r.Health.CustomMetrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		b.WriteString(fmt.Sprintf("  %s: %.1f\n", name, r.Health.CustomMetrics[name]))
	}

	return b.String()
}
