package system

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"weeklog/internal/cli"
)

type ResetCmd struct {
	Yes bool `help:"Delete all local data without asking."`
}

func (c *ResetCmd) Run(ctx *cli.Context) error {
	if !c.Yes {
		var confirmed bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Delete ALL local data? This cannot be undone.").
					Value(&confirmed),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Reset cancelled")
			return nil
		}
	}

	if err := ctx.Store.Clear(); err != nil {
		return fmt.Errorf("could not clear storage: %w", err)
	}
	fmt.Println("All local data deleted")
	return nil
}
