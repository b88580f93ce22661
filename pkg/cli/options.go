package cli

import (
	"fmt"
	"strings"

	"github.com/convox/refsort/pkg/structs"
	"github.com/convox/stdcli"
)

func init() {
	registerWithoutProvider("options", "display the configured sort options", Options, stdcli.CommandOptions{
		Validate: stdcli.Args(0),
	})
}

func Options(_ structs.Provider, c *stdcli.Context) error {
	cfg, err := currentConfig(c)
	if err != nil {
		return err
	}

	o := cfg.Installation.Options()

	sorts := make([]string, len(o.Sorts))

	for i, s := range o.Sorts {
		sorts[i] = string(s)
	}

	i := c.Info()

	i.Add("Sorts", strings.Join(sorts, ", "))
	i.Add("Fields", strings.Join(o.Fields, ", "))
	i.Add("Bulk Editing", fmt.Sprintf("%t", o.Instance.BulkEditing))
	i.Add("Create Entry", fmt.Sprintf("%t", o.Instance.ShowCreateEntityAction))
	i.Add("Link Entry", fmt.Sprintf("%t", o.Instance.ShowLinkEntityAction))
	i.Add("Locale", cfg.Locale)

	return i.Print()
}
