package cli

import (
	"github.com/convox/refsort/pkg/structs"
	"github.com/convox/stdcli"
)

func init() {
	register("sort", "sort the entries linked from a reference field", Sort, stdcli.CommandOptions{
		Flags:    stdcli.OptionFlags(structs.SortOptions{}),
		Usage:    "<entry> <field>",
		Validate: stdcli.Args(2),
	})
}

func Sort(p structs.Provider, c *stdcli.Context) error {
	cfg, err := currentConfig(c)
	if err != nil {
		return err
	}

	var opts structs.SortOptions

	if err := c.Options(&opts); err != nil {
		return err
	}

	spec, err := opts.Spec()
	if err != nil {
		return err
	}

	t := target(c, cfg)

	c.Startf("Sorting <info>%s</info> by <info>%s</info>", t, spec)

	res, err := newSorter(p, cfg).Sort(c.Context, t, spec)
	if err != nil {
		return err
	}

	if res == nil {
		return c.OK()
	}

	if res.Superseded {
		c.Writef("<info>superseded</info>\n")
		return nil
	}

	if len(res.Links) > 0 {
		err := withHistory(cfg, func(h structs.History) error {
			_, err := h.Record(structs.NewSortRecord(res, structs.SourceCLI))
			return err
		})
		if err != nil {
			return err
		}
	}

	return c.OK(res.Links.Ids()...)
}
