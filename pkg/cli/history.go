package cli

import (
	"fmt"

	"github.com/convox/refsort/pkg/helpers"
	"github.com/convox/refsort/pkg/structs"
	"github.com/convox/stdcli"
)

func init() {
	registerWithoutProvider("history", "list recent sorts", History, stdcli.CommandOptions{
		Flags:    stdcli.OptionFlags(structs.HistoryListOptions{}),
		Validate: stdcli.Args(0),
	})
}

func History(_ structs.Provider, c *stdcli.Context) error {
	cfg, err := currentConfig(c)
	if err != nil {
		return err
	}

	var opts structs.HistoryListOptions

	if err := c.Options(&opts); err != nil {
		return err
	}

	limit := 0

	if opts.Limit != nil {
		limit = *opts.Limit
	}

	var rs structs.SortRecords

	err = withHistory(cfg, func(h structs.History) error {
		rs, err = h.List(limit)
		return err
	})
	if err != nil {
		return err
	}

	t := c.Table("TARGET", "SORT", "COUNT", "SOURCE", "WHEN")

	for _, r := range rs {
		t.AddRow(r.Target.String(), r.Spec.String(), fmt.Sprintf("%d", r.Count), r.Source, helpers.Ago(r.Created))
	}

	return t.Print()
}
