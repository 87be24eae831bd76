package system

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	ps "github.com/mitchellh/go-ps"

	"weeklog/internal/cli"
	"weeklog/internal/constants"
	"weeklog/internal/keyring"
	"weeklog/internal/storage"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: storage usable
	if err := checkStorage(ctx); err != nil {
		fmt.Printf("❌ Storage: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage: OK (%s)\n", ctx.Store.Path())
	}

	// Check 2: document integrity
	if err := checkDocument(ctx); err != nil {
		fmt.Printf("❌ Document integrity: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Document integrity: OK\n")
	}

	// Check 3: corruption backup leftovers (warning only)
	if err := checkCorruptionBackup(ctx); err != nil {
		fmt.Printf("⚠ Corruption backup: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Corruption backup: none\n")
	}

	// Check 4: OS keyring
	if keyring.IsAvailable() {
		fmt.Printf("✓ OS keyring: OK\n")
	} else {
		fmt.Printf("⚠ OS keyring: WARNING\n")
		fmt.Printf("   Keyring unavailable; 'weeklog login' will not work\n")
	}

	// Check 5: remote API reachable (warning only, memos degrade gracefully)
	if err := checkRemoteAPI(ctx); err != nil {
		fmt.Printf("⚠ Remote API: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Remote API: OK (%s)\n", ctx.API.BaseURL)
	}

	// Check 6: concurrent instances (warning only, writes are last-write-wins)
	if n, err := countSiblingInstances(); err != nil {
		fmt.Printf("⊘ Concurrent instances: SKIPPED (%v)\n", err)
	} else if n > 0 {
		fmt.Printf("⚠ Concurrent instances: WARNING\n")
		fmt.Printf("   %d other %s process(es) running; concurrent writes are last-write-wins\n", n, constants.AppName)
	} else {
		fmt.Printf("✓ Concurrent instances: none\n")
	}

	// Check 7: clock/timezone sanity
	if err := checkClockTimezone(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}
	fmt.Println("All diagnostics passed!")
	return nil
}

func checkStorage(ctx *cli.Context) error {
	doc := ctx.Store.Load()
	if err := ctx.Store.Save(doc); err != nil {
		return fmt.Errorf("write-back failed: %w", err)
	}
	return nil
}

func checkDocument(ctx *cli.Context) error {
	doc := ctx.Store.Load()
	if !doc.Valid() {
		return fmt.Errorf("document is missing required fields")
	}
	for key, week := range doc.WeeklyExercises {
		if week == nil || len(week.Days) != 7 {
			return fmt.Errorf("week %s does not have 7 days", key)
		}
	}
	return nil
}

func checkCorruptionBackup(ctx *cli.Context) error {
	if _, ok := ctx.Store.(*storage.JSONStore); !ok {
		return nil
	}
	backup := ctx.Store.Path() + constants.BackupSuffix
	if info, err := os.Stat(backup); err == nil {
		return fmt.Errorf("found %s from %s; a past document was corrupt and reset",
			backup, info.ModTime().Format(constants.DateFormat))
	}
	return nil
}

func checkRemoteAPI(ctx *cli.Context) error {
	c, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	today := time.Now().Format(constants.DateFormat)
	if _, err := ctx.API.ListMemos(c, today, today); err != nil {
		return fmt.Errorf("memo API not reachable: %v", err)
	}
	return nil
}

func countSiblingInstances() (int, error) {
	procs, err := ps.Processes()
	if err != nil {
		return 0, err
	}

	self := os.Getpid()
	name := filepath.Base(os.Args[0])
	count := 0
	for _, p := range procs {
		if p.Pid() == self {
			continue
		}
		exe := p.Executable()
		if exe == name || strings.TrimSuffix(exe, ".exe") == constants.AppName {
			count++
		}
	}
	return count, nil
}

func checkClockTimezone() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system clock looks wrong: %s", now.Format(time.RFC3339))
	}
	if now.Location() == nil {
		return fmt.Errorf("no timezone information available")
	}
	return nil
}
