package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"weeklog/internal/api"
	"weeklog/internal/cli"
	"weeklog/internal/cli/system"
	"weeklog/internal/constants"
	apperrors "weeklog/internal/errors"
	"weeklog/internal/keyring"
	"weeklog/internal/logger"
	"weeklog/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage path or PostgreSQL connection string. A .db path selects SQLite, a postgres:// URL PostgreSQL (credentials must NOT be embedded; use the environment or .pgpass), anything else the JSON file store." default:"~/.config/weeklog/weeklog.json"`
	API     string `help:"Base URL of the memo/document API." default:"${api_url}"`
	Debug   bool   `help:"Echo debug logs to stderr."`

	Tui    system.TuiCmd    `cmd:"" help:"Launch the interactive weekly dashboard." default:"1"`
	Doctor system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Login  system.LoginCmd  `cmd:"" help:"Store the remote API session token."`
	Logout system.LogoutCmd `cmd:"" help:"Remove the stored session token."`
	Reset  system.ResetCmd  `cmd:"" help:"Delete all local data."`

	Exercise struct {
		Add        cli.ExerciseAddCmd        `cmd:"" help:"Add an exercise to the catalog."`
		List       cli.ExerciseListCmd       `cmd:"" help:"List exercises and this week's schedule." default:"1"`
		Delete     cli.ExerciseDeleteCmd     `cmd:"" help:"Delete an exercise from the catalog."`
		Schedule   cli.ExerciseScheduleCmd   `cmd:"" help:"Schedule an exercise on a day."`
		Done       cli.ExerciseDoneCmd       `cmd:"" help:"Toggle an exercise's completion."`
		Duration   cli.ExerciseDurationCmd   `cmd:"" help:"Change a scheduled exercise's duration."`
		Unschedule cli.ExerciseUnscheduleCmd `cmd:"" help:"Remove an exercise from a day."`
	} `cmd:"" help:"Manage exercises and the weekly schedule."`

	Health struct {
		Weight cli.HealthWeightCmd       `cmd:"" help:"Record this week's weight."`
		Show   cli.HealthShowCmd         `cmd:"" help:"Show the week's health record." default:"1"`
		Metric struct {
			Add    cli.HealthMetricAddCmd    `cmd:"" help:"Define a new custom metric."`
			Set    cli.HealthMetricSetCmd    `cmd:"" help:"Record a metric value for the week."`
			Remove cli.HealthMetricRemoveCmd `cmd:"" help:"Remove a metric and all its values."`
		} `cmd:"" help:"Manage custom health metrics."`
	} `cmd:"" help:"Track weight and custom metrics."`

	Meal struct {
		Add      cli.MealAddCmd      `cmd:"" help:"Record a meal."`
		List     cli.MealListCmd     `cmd:"" help:"List the week's meals." default:"1"`
		Delete   cli.MealDeleteCmd   `cmd:"" help:"Delete a meal."`
		Calories cli.MealCaloriesCmd `cmd:"" help:"Correct a meal's calories."`
	} `cmd:"" help:"Track meals and calories."`

	Memo struct {
		Add    cli.MemoAddCmd    `cmd:"" help:"Save a memo for a date."`
		List   cli.MemoListCmd   `cmd:"" help:"List the week's memos." default:"1"`
		Delete cli.MemoDeleteCmd `cmd:"" help:"Delete a memo."`
	} `cmd:"" help:"Manage memos on the remote service."`

	Week struct {
		Show cli.WeekShowCmd `cmd:"" help:"Show a week's schedule summary." default:"1"`
		Copy cli.WeekCopyCmd `cmd:"" help:"Copy last week's exercise plan into a week."`
	} `cmd:"" help:"Navigate and manage weeks."`

	Report cli.ReportCmd `cmd:"" help:"Generate a weekly report."`
	Pull   cli.PullCmd   `cmd:"" help:"Replace the local document with the server copy."`
	Push   cli.PushCmd   `cmd:"" help:"Upload the local document to the server."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal weekly exercise, health, and meal tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version": "v0.1.0",
			"api_url": constants.DefaultAPIBaseURL,
		},
	)

	config := expandHome(CLI.Config)

	if strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://") {
		if storage.HasEmbeddedCredentials(config) {
			fmt.Fprintln(os.Stderr, apperrors.Formatf("PostgreSQL connection strings with embedded credentials are not allowed."))
			fmt.Fprintln(os.Stderr, "       Use environment variables or a .pgpass file instead.")
			os.Exit(1)
		}
	}

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: configDir(config),
	}); err != nil {
		apperrors.Fatalf("could not initialize logging: %v", err)
	}

	store := storage.Open(config)

	token, err := keyring.GetSessionToken()
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		logger.Warn("Could not read session token from keyring", "error", err)
	}
	client := api.NewClient(CLI.API, token)

	appCtx := cli.NewContext(store, client)
	appCtx.Debug = CLI.Debug

	if err := ctx.Run(appCtx); err != nil {
		apperrors.Fatal(err)
	}
}

// expandHome resolves a leading ~ in file paths. Connection strings pass
// through untouched.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// configDir picks where log files live: next to a file-backed store, or the
// default config dir for database backends.
func configDir(config string) string {
	if strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://") {
		return filepath.Dir(expandHome(constants.DefaultConfigPath))
	}
	return filepath.Dir(config)
}
