package system

import (
	"errors"
	"fmt"

	"weeklog/internal/cli"
	"weeklog/internal/keyring"
)

type LoginCmd struct {
	Token string `arg:"" help:"Session token issued by the web app."`
}

func (c *LoginCmd) Run(ctx *cli.Context) error {
	if err := keyring.SetSessionToken(c.Token); err != nil {
		return err
	}
	fmt.Println("Session token stored in the OS keyring")
	return nil
}

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *cli.Context) error {
	err := keyring.DeleteSessionToken()
	if errors.Is(err, keyring.ErrNotFound) {
		fmt.Println("Not logged in")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Println("Session token removed")
	return nil
}
