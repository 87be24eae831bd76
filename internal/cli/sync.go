package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
)

type PullCmd struct {
	Yes bool `help:"Replace the local document without asking."`
}

func (c *PullCmd) Run(ctx *Context) error {
	doc, err := ctx.API.FetchDocument(context.Background())
	if err != nil {
		return fmt.Errorf("could not pull remote data: %w", err)
	}

	if !c.Yes {
		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Replace the local document with the server copy?").
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
		if !overwrite {
			fmt.Println("Pull cancelled")
			return nil
		}
	}

	if err := ctx.Store.Save(doc); err != nil {
		return fmt.Errorf("could not store pulled document: %w", err)
	}
	fmt.Println("Local document replaced with the server copy")
	return nil
}

type PushCmd struct{}

func (c *PushCmd) Run(ctx *Context) error {
	doc := ctx.Store.Load()
	if err := ctx.API.PushDocument(context.Background(), doc); err != nil {
		return fmt.Errorf("could not push local data: %w", err)
	}
	// The server only acknowledges the upload today; remote persistence
	// is not guaranteed.
	fmt.Println("Local document uploaded (server acknowledged)")
	return nil
}
