package cli

import (
	"fmt"

	"weeklog/internal/tracker"
)

type MealAddCmd struct {
	Food     string `arg:"" help:"Description of the food."`
	Date     string `help:"Date of the meal (YYYY-MM-DD), defaults to today."`
	Type     string `help:"Meal type: breakfast, lunch, dinner, snack." default:"lunch"`
	Calories int    `help:"Calories; 0 asks for an estimate from the description."`
	Photo    string `help:"Path to a photo of the meal."`
}

func (c *MealAddCmd) Run(ctx *Context) error {
	date := c.Date
	if date == "" {
		date = Today()
	}

	calories := c.Calories
	if calories == 0 {
		calories = tracker.EstimateCalories(c.Food, c.Photo)
	}

	meal, err := ctx.Meals.AddMeal(date, c.Type, c.Food, c.Photo, calories)
	if err != nil {
		return err
	}

	suffix := ""
	if meal.AutoEstimated {
		suffix = " (estimated)"
	}
	fmt.Printf("Added %s on %s: %s, %d kcal%s\n", meal.MealType, meal.Date, meal.Food, meal.Calories, suffix)
	return nil
}

type MealListCmd struct {
	Week    string `help:"Week to show (YYYY-MM-DD, or 'last')."`
	ShowIDs bool   `help:"Show meal IDs." name:"show-ids"`
}

func (c *MealListCmd) Run(ctx *Context) error {
	week, err := ResolveWeek(c.Week)
	if err != nil {
		return err
	}
	ctx.Navigator.GoTo(week)

	meals := ctx.Meals.Meals()
	if len(meals) == 0 {
		fmt.Printf("No meals recorded for week %s\n", week.Display())
		return nil
	}

	fmt.Printf("Meals for week %s:\n", week.Display())
	lastDate := ""
	for _, meal := range meals {
		if meal.Date != lastDate {
			fmt.Printf("  %s:\n", meal.Date)
			lastDate = meal.Date
		}
		idStr := ""
		if c.ShowIDs {
			idStr = fmt.Sprintf(" (ID: %s)", meal.ID)
		}
		est := ""
		if meal.AutoEstimated {
			est = "~"
		}
		fmt.Printf("    %-9s %s - %s%d kcal%s\n", meal.MealType, meal.Food, est, meal.Calories, idStr)
	}
	return nil
}

type MealDeleteCmd struct {
	ID string `arg:"" help:"ID of the meal to delete."`
}

func (c *MealDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Meals.RemoveMeal(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted meal: %s\n", c.ID)
	return nil
}

type MealCaloriesCmd struct {
	ID       string `arg:"" help:"ID of the meal."`
	Calories int    `arg:"" help:"Corrected calorie count."`
}

func (c *MealCaloriesCmd) Run(ctx *Context) error {
	if err := ctx.Meals.UpdateCalories(c.ID, c.Calories); err != nil {
		return err
	}
	fmt.Printf("Calories for %s set to %d\n", c.ID, c.Calories)
	return nil
}
