package cli

import (
	"fmt"
	"strings"
	"time"

	"weeklog/internal/api"
	"weeklog/internal/constants"
	"weeklog/internal/memo"
	"weeklog/internal/navigator"
	"weeklog/internal/storage"
	"weeklog/internal/tracker"
	"weeklog/internal/weekkey"
)

type Context struct {
	Store     storage.Provider
	Navigator *navigator.Navigator
	Exercises *tracker.ExerciseManager
	Health    *tracker.HealthManager
	Meals     *tracker.MealManager
	Memos     *memo.Store
	API       *api.Client
	Debug     bool
}

// NewContext wires the managers onto one store and subscribes each of them
// to week changes, so a single navigation call moves the whole app.
func NewContext(store storage.Provider, client *api.Client) *Context {
	week := weekkey.ForToday()
	ctx := &Context{
		Store:     store,
		Navigator: navigator.New(week),
		Exercises: tracker.NewExerciseManager(store, week),
		Health:    tracker.NewHealthManager(store, week),
		Meals:     tracker.NewMealManager(store, week),
		Memos:     memo.NewStore(client, week),
		API:       client,
	}
	ctx.Navigator.Subscribe(ctx.Exercises.LoadWeekData)
	ctx.Navigator.Subscribe(ctx.Health.LoadWeekData)
	ctx.Navigator.Subscribe(ctx.Meals.LoadWeekData)
	ctx.Navigator.Subscribe(ctx.Memos.SetWeek)
	return ctx
}

// ResolveWeek turns a --week flag value into a key: empty means the current
// week, "last" the previous one, and anything else a YYYY-MM-DD date that
// canonicalizes to its week's Monday.
func ResolveWeek(flag string) (weekkey.Key, error) {
	switch strings.ToLower(strings.TrimSpace(flag)) {
	case "":
		return weekkey.ForToday(), nil
	case "last":
		return weekkey.ForToday().Previous(), nil
	default:
		return weekkey.Parse(flag)
	}
}

// ParseDay accepts a day name (mon..sun, full names too) or an explicit
// YYYY-MM-DD date inside the given week, returning the day index 0..6.
func ParseDay(s string, week weekkey.Key) (int, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range constants.DayNames {
		if name == strings.ToLower(n) {
			return i, nil
		}
	}
	full := []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
	for i, n := range full {
		if name == n {
			return i, nil
		}
	}

	t, err := weekkey.ParseDate(s)
	if err != nil {
		return 0, fmt.Errorf("invalid day %q: use mon..sun or YYYY-MM-DD", s)
	}
	date := t.Format(constants.DateFormat)
	for i := 0; i < 7; i++ {
		if week.DayDate(i).Format(constants.DateFormat) == date {
			return i, nil
		}
	}
	return 0, fmt.Errorf("date %s is not in week %s", s, week.Display())
}

// FormatDay renders a day header like "Mon 2025-10-06".
func FormatDay(week weekkey.Key, i int) string {
	return fmt.Sprintf("%s %s", constants.DayNames[i], week.DayDate(i).Format(constants.DateFormat))
}

// Today returns today's date formatted for the data model.
func Today() string {
	return time.Now().Format(constants.DateFormat)
}
