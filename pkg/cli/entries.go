package cli

import (
	"github.com/convox/refsort/pkg/helpers"
	"github.com/convox/refsort/pkg/structs"
	"github.com/convox/stdcli"
)

func init() {
	register("entries", "list the entries linked from a reference field", Entries, stdcli.CommandOptions{
		Flags:    []stdcli.Flag{flagLocale},
		Usage:    "<entry> <field>",
		Validate: stdcli.Args(2),
	})
}

func Entries(p structs.Provider, c *stdcli.Context) error {
	cfg, err := currentConfig(c)
	if err != nil {
		return err
	}

	ss, err := newSorter(p, cfg).Entries(c.Context, target(c, cfg))
	if err != nil {
		return err
	}

	t := c.Table("ID", "TITLE", "TYPE", "UPDATED", "STATUS")

	for _, s := range ss {
		t.AddRow(s.Id, s.Title, s.ContentType, helpers.Ago(s.Updated), s.Status)
	}

	return t.Print()
}
