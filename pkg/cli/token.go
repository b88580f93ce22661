package cli

import (
	"fmt"
	"time"

	"github.com/convox/refsort/pkg/jwt"
	"github.com/convox/refsort/pkg/structs"
	"github.com/convox/stdcli"
)

func init() {
	registerWithoutProvider("token", "issue an api token", Token, stdcli.CommandOptions{
		Flags: []stdcli.Flag{
			stdcli.DurationFlag("duration", "d", "token lifetime (default 24h)"),
			stdcli.BoolFlag("write", "w", "allow sorting"),
		},
		Usage:    "<user>",
		Validate: stdcli.Args(1),
	})
}

func Token(_ structs.Provider, c *stdcli.Context) error {
	cfg, err := currentConfig(c)
	if err != nil {
		return err
	}

	if cfg.Secret == "" {
		return fmt.Errorf("secret required, set REFSORT_SECRET or secret in config")
	}

	d := 24 * time.Hour

	if v, ok := c.Value("duration").(time.Duration); ok && v > 0 {
		d = v
	}

	jm := jwt.NewJwtManager(cfg.Secret)

	issue := jm.ReadToken

	if c.Bool("write") {
		issue = jm.WriteToken
	}

	tk, err := issue(c.Arg(0), d)
	if err != nil {
		return err
	}

	fmt.Fprintf(c, "%s\n", tk)

	return nil
}
