package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"weeklog/internal/tracker"
)

type WeekShowCmd struct {
	Week string `arg:"" optional:"" help:"Week to show (YYYY-MM-DD, or 'last'); defaults to this week."`
}

func (c *WeekShowCmd) Run(ctx *Context) error {
	week, err := ResolveWeek(c.Week)
	if err != nil {
		return err
	}
	ctx.Navigator.GoTo(week)

	fmt.Printf("Week %s\n", week.Display())
	for i := 0; i < 7; i++ {
		entries := ctx.Exercises.Day(i)
		done := 0
		for _, e := range entries {
			if e.Completed {
				done++
			}
		}
		fmt.Printf("  %s: %d exercise(s), %d done\n", FormatDay(week, i), len(entries), done)
	}
	return nil
}

type WeekCopyCmd struct {
	Week string `help:"Destination week (YYYY-MM-DD); defaults to this week."`
	Yes  bool   `help:"Overwrite existing entries without asking."`
}

func (c *WeekCopyCmd) Run(ctx *Context) error {
	week, err := ResolveWeek(c.Week)
	if err != nil {
		return err
	}
	ctx.Navigator.GoTo(week)

	confirm := func() bool {
		if c.Yes {
			return true
		}
		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Week %s already has exercises. Overwrite them?", week.Display())).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return false
		}
		return overwrite
	}

	if err := ctx.Exercises.CopyFromLastWeek(confirm); err != nil {
		switch {
		case errors.Is(err, tracker.ErrNothingToCopy):
			fmt.Println("Nothing to copy: last week has no exercises")
			return nil
		case errors.Is(err, tracker.ErrCopyDeclined):
			fmt.Println("Copy cancelled")
			return nil
		}
		return err
	}
	fmt.Printf("Copied last week's plan into %s (completion reset)\n", week.Display())
	return nil
}
