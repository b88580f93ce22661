package cli

import (
	"github.com/convox/refsort/pkg/structs"
	"github.com/convox/stdcli"
)

func init() {
	registerWithoutProvider("version", "display version information", Version, stdcli.CommandOptions{
		Validate: stdcli.Args(0),
	})
}

func Version(_ structs.Provider, c *stdcli.Context) error {
	c.Writef("client: <info>%s</info>\n", c.Version())
	return nil
}
