package cli

import (
	"fmt"
	"os"

	"github.com/convox/refsort/pkg/cma"
	"github.com/convox/refsort/pkg/helpers"
	"github.com/convox/refsort/pkg/structs"
	"github.com/convox/stdcli"
)

func init() {
	registerWithoutProvider("login", "save management api credentials", Login, stdcli.CommandOptions{
		Flags: []stdcli.Flag{
			stdcli.StringFlag("environment", "e", "environment id"),
			stdcli.StringFlag("token", "t", "management token"),
		},
		Usage:    "<space>",
		Validate: stdcli.Args(1),
	})
}

func Login(_ structs.Provider, c *stdcli.Context) error {
	space := c.Arg(0)
	environment := helpers.CoalesceString(c.String("environment"), cma.DefaultEnvironment)
	token := helpers.CoalesceString(c.String("token"), os.Getenv("CONTENTFUL_MANAGEMENT_TOKEN"))

	if token == "" {
		c.Writef("Management Token: ")

		t, err := c.ReadSecret()
		if err != nil {
			return err
		}

		c.Writef("\n")

		token = t
	}

	if token == "" {
		return fmt.Errorf("token required")
	}

	c.Startf("Saving credentials for <info>%s/%s</info>", space, environment)

	settings := [][2]string{
		{"space", space},
		{"environment", environment},
		{"token", token},
	}

	for _, s := range settings {
		if err := c.SettingWrite(s[0], s[1]); err != nil {
			return err
		}
	}

	return c.OK()
}
