package system

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"weeklog/internal/cli"
	"weeklog/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	p := tea.NewProgram(
		tui.NewModel(ctx.Store, ctx.Navigator, ctx.Exercises, ctx.Health, ctx.Meals, ctx.Memos),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
