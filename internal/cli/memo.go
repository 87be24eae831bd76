package cli

import (
	"context"
	"fmt"

	"weeklog/internal/constants"
)

type MemoAddCmd struct {
	Text string `arg:"" help:"Memo text."`
	Date string `help:"Date for the memo (YYYY-MM-DD), defaults to today."`
}

func (c *MemoAddCmd) Run(ctx *Context) error {
	date := c.Date
	if date == "" {
		date = Today()
	}

	entry, err := ctx.Memos.Add(context.Background(), date, c.Text)
	if err != nil {
		return fmt.Errorf("could not save memo: %w", err)
	}
	fmt.Printf("Saved memo %s on %s\n", entry.ID, date)
	return nil
}

type MemoListCmd struct {
	Week string `help:"Week to show (YYYY-MM-DD, or 'last')."`
}

func (c *MemoListCmd) Run(ctx *Context) error {
	week, err := ResolveWeek(c.Week)
	if err != nil {
		return err
	}

	if err := ctx.Memos.LoadWeekData(context.Background(), week); err != nil {
		return fmt.Errorf("could not fetch memos: %w", err)
	}

	if ctx.Memos.Count() == 0 {
		fmt.Printf("No memos for week %s\n", week.Display())
		return nil
	}

	fmt.Printf("Memos for week %s:\n", week.Display())
	for i := 0; i < 7; i++ {
		date := week.DayDate(i).Format(constants.DateFormat)
		entries := ctx.Memos.Memos(date)
		if len(entries) == 0 {
			continue
		}
		fmt.Printf("  %s:\n", FormatDay(week, i))
		for _, e := range entries {
			fmt.Printf("    [%s] %s\n", e.ID, e.Text)
		}
	}
	return nil
}

type MemoDeleteCmd struct {
	ID   string `arg:"" help:"ID of the memo to delete."`
	Date string `help:"Date the memo lives under (YYYY-MM-DD), defaults to today."`
}

func (c *MemoDeleteCmd) Run(ctx *Context) error {
	date := c.Date
	if date == "" {
		date = Today()
	}

	if err := ctx.Memos.Delete(context.Background(), date, c.ID); err != nil {
		return fmt.Errorf("could not delete memo: %w", err)
	}
	fmt.Printf("Deleted memo %s\n", c.ID)
	return nil
}
