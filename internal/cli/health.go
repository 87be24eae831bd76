package cli

import (
	"fmt"
)

type HealthWeightCmd struct {
	Value float64 `arg:"" help:"Weight for the week."`
	Week  string  `help:"Week to target (YYYY-MM-DD, or 'last')."`
}

func (c *HealthWeightCmd) Run(ctx *Context) error {
	week, err := ResolveWeek(c.Week)
	if err != nil {
		return err
	}
	ctx.Navigator.GoTo(week)

	if err := ctx.Health.SetWeight(c.Value); err != nil {
		return err
	}
	fmt.Printf("Weight for week %s set to %.1f\n", week.Display(), c.Value)
	return nil
}

type HealthMetricAddCmd struct {
	Name string `arg:"" help:"Name of the new custom metric."`
}

func (c *HealthMetricAddCmd) Run(ctx *Context) error {
	if err := ctx.Health.AddCustomMetric(c.Name); err != nil {
		return err
	}
	fmt.Printf("Added metric %q\n", c.Name)
	return nil
}

type HealthMetricSetCmd struct {
	Name  string  `arg:"" help:"Metric name."`
	Value float64 `arg:"" help:"Value for the week."`
	Week  string  `help:"Week to target (YYYY-MM-DD, or 'last')."`
}

func (c *HealthMetricSetCmd) Run(ctx *Context) error {
	week, err := ResolveWeek(c.Week)
	if err != nil {
		return err
	}
	ctx.Navigator.GoTo(week)

	if err := ctx.Health.SetMetric(c.Name, c.Value); err != nil {
		return err
	}
	fmt.Printf("%s for week %s set to %.1f\n", c.Name, week.Display(), c.Value)
	return nil
}

type HealthMetricRemoveCmd struct {
	Name string `arg:"" help:"Metric to remove (clears its value from every week)."`
}

func (c *HealthMetricRemoveCmd) Run(ctx *Context) error {
	if err := ctx.Health.RemoveCustomMetric(c.Name); err != nil {
		return err
	}
	fmt.Printf("Removed metric %q and its recorded values\n", c.Name)
	return nil
}

type HealthShowCmd struct {
	Week string `help:"Week to show (YYYY-MM-DD, or 'last')."`
}

func (c *HealthShowCmd) Run(ctx *Context) error {
	week, err := ResolveWeek(c.Week)
	if err != nil {
		return err
	}
	ctx.Navigator.GoTo(week)

	rec := ctx.Health.Record()
	fmt.Printf("Health for week %s:\n", week.Display())
	if rec.Weight != nil {
		fmt.Printf("  Weight: %.1f\n", *rec.Weight)
	} else {
		fmt.Println("  Weight: not recorded")
	}

	defs := ctx.Health.MetricDefinitions()
	if len(defs) == 0 {
		return nil
	}
	for _, name := range defs {
		if v, ok := rec.CustomMetrics[name]; ok {
			fmt.Printf("  %s: %.1f\n", name, v)
		} else {
			fmt.Printf("  %s: not recorded\n", name)
		}
	}
	return nil
}
