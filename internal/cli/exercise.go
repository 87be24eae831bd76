package cli

import (
	"errors"
	"fmt"

	"weeklog/internal/tracker"
)

type ExerciseAddCmd struct {
	Name     string `arg:"" help:"Name of the exercise."`
	Duration int    `help:"Default duration in minutes." default:"30"`
}

func (c *ExerciseAddCmd) Run(ctx *Context) error {
	ex, err := ctx.Exercises.AddExercise(c.Name, c.Duration)
	if err != nil {
		return err
	}
	fmt.Printf("Added exercise %q (%dm default)\n", ex.Name, ex.DefaultDuration)
	return nil
}

type ExerciseListCmd struct {
	Week    string `help:"Week to show (YYYY-MM-DD, or 'last')."`
	ShowIDs bool   `help:"Show exercise IDs." name:"show-ids"`
}

func (c *ExerciseListCmd) Run(ctx *Context) error {
	week, err := ResolveWeek(c.Week)
	if err != nil {
		return err
	}
	ctx.Navigator.GoTo(week)

	exercises := ctx.Exercises.Exercises()
	if len(exercises) == 0 {
		fmt.Println("No exercises yet; add one with: weeklog exercise add <name>")
		return nil
	}

	fmt.Println("Exercises:")
	for _, ex := range exercises {
		idStr := ""
		if c.ShowIDs {
			idStr = fmt.Sprintf(" (ID: %s)", ex.ID)
		}
		fmt.Printf("  %s%s - %dm default\n", ex.Name, idStr, ex.DefaultDuration)
	}

	fmt.Printf("\nWeek %s:\n", week.Display())
	for i := 0; i < 7; i++ {
		entries := ctx.Exercises.Day(i)
		if len(entries) == 0 {
			continue
		}
		fmt.Printf("  %s:\n", FormatDay(week, i))
		for _, entry := range entries {
			ex, ok := lookupExercise(ctx, entry.ExerciseID)
			if !ok {
				continue
			}
			mark := "[ ]"
			if entry.Completed {
				mark = "[x]"
			}
			fmt.Printf("    %s %s - %dm\n", mark, ex, entry.Duration)
		}
	}
	return nil
}

func lookupExercise(ctx *Context, id string) (string, bool) {
	for _, ex := range ctx.Exercises.Exercises() {
		if ex.ID == id {
			return ex.Name, true
		}
	}
	return "", false
}

type ExerciseDeleteCmd struct {
	ID string `arg:"" help:"ID of the exercise to delete."`
}

func (c *ExerciseDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Exercises.RemoveExercise(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted exercise: %s\n", c.ID)
	return nil
}

type ExerciseScheduleCmd struct {
	Day  string `arg:"" help:"Day (mon..sun or YYYY-MM-DD)."`
	ID   string `arg:"" optional:"" help:"Exercise ID; omit with --all."`
	All  bool   `help:"Schedule every exercise on the day."`
	Week string `help:"Week to target (YYYY-MM-DD, or 'last')."`
}

func (c *ExerciseScheduleCmd) Run(ctx *Context) error {
	week, err := ResolveWeek(c.Week)
	if err != nil {
		return err
	}
	ctx.Navigator.GoTo(week)

	day, err := ParseDay(c.Day, week)
	if err != nil {
		return err
	}

	if c.All {
		added, err := ctx.Exercises.AddAllToDay(day)
		if err != nil {
			return err
		}
		fmt.Printf("Scheduled %d exercise(s) on %s\n", added, FormatDay(week, day))
		return nil
	}

	if c.ID == "" {
		return fmt.Errorf("exercise ID required (or use --all)")
	}
	if err := ctx.Exercises.AddToDay(day, c.ID); err != nil {
		if errors.Is(err, tracker.ErrAlreadyScheduled) {
			fmt.Printf("Already scheduled on %s\n", FormatDay(week, day))
			return nil
		}
		return err
	}
	fmt.Printf("Scheduled on %s\n", FormatDay(week, day))
	return nil
}

type ExerciseDoneCmd struct {
	Day  string `arg:"" help:"Day (mon..sun or YYYY-MM-DD)."`
	ID   string `arg:"" help:"Exercise ID."`
	Week string `help:"Week to target (YYYY-MM-DD, or 'last')."`
}

func (c *ExerciseDoneCmd) Run(ctx *Context) error {
	week, err := ResolveWeek(c.Week)
	if err != nil {
		return err
	}
	ctx.Navigator.GoTo(week)

	day, err := ParseDay(c.Day, week)
	if err != nil {
		return err
	}
	if err := ctx.Exercises.ToggleComplete(day, c.ID); err != nil {
		return err
	}
	fmt.Printf("Toggled completion on %s\n", FormatDay(week, day))
	return nil
}

type ExerciseDurationCmd struct {
	Day     string `arg:"" help:"Day (mon..sun or YYYY-MM-DD)."`
	ID      string `arg:"" help:"Exercise ID."`
	Minutes int    `arg:"" help:"New duration in minutes."`
	Week    string `help:"Week to target (YYYY-MM-DD, or 'last')."`
}

func (c *ExerciseDurationCmd) Run(ctx *Context) error {
	week, err := ResolveWeek(c.Week)
	if err != nil {
		return err
	}
	ctx.Navigator.GoTo(week)

	day, err := ParseDay(c.Day, week)
	if err != nil {
		return err
	}
	if err := ctx.Exercises.UpdateDuration(day, c.ID, c.Minutes); err != nil {
		return err
	}
	fmt.Printf("Duration set to %dm on %s\n", c.Minutes, FormatDay(week, day))
	return nil
}

type ExerciseUnscheduleCmd struct {
	Day  string `arg:"" help:"Day (mon..sun or YYYY-MM-DD)."`
	ID   string `arg:"" help:"Exercise ID."`
	Week string `help:"Week to target (YYYY-MM-DD, or 'last')."`
}

func (c *ExerciseUnscheduleCmd) Run(ctx *Context) error {
	week, err := ResolveWeek(c.Week)
	if err != nil {
		return err
	}
	ctx.Navigator.GoTo(week)

	day, err := ParseDay(c.Day, week)
	if err != nil {
		return err
	}
	if err := ctx.Exercises.RemoveFromDay(day, c.ID); err != nil {
		return err
	}
	fmt.Printf("Removed from %s\n", FormatDay(week, day))
	return nil
}
