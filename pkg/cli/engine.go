package cli

import (
	"os"

	"github.com/convox/refsort/pkg/cma"
	"github.com/convox/refsort/pkg/helpers"
	"github.com/convox/refsort/pkg/structs"
	"github.com/convox/stdcli"
)

type Engine struct {
	*stdcli.Engine
	Provider structs.Provider
}

func (e *Engine) Command(command, description string, fn HandlerFunc, opts stdcli.CommandOptions) {
	wfn := func(c *stdcli.Context) error {
		return fn(e.currentProvider(c), c)
	}

	e.Engine.Command(command, description, wfn, opts)
}

func (e *Engine) CommandWithoutProvider(command, description string, fn HandlerFunc, opts stdcli.CommandOptions) {
	wfn := func(c *stdcli.Context) error {
		return fn(nil, c)
	}

	e.Engine.Command(command, description, wfn, opts)
}

func (e *Engine) RegisterCommands() {
	for _, c := range commands {
		if c.Provider {
			e.Command(c.Command, c.Description, c.Handler, c.Opts)
		} else {
			e.CommandWithoutProvider(c.Command, c.Description, c.Handler, c.Opts)
		}
	}
}

// currentProvider builds a management api client. Credentials come from the
// environment, then from login settings, then from the config file.
func (e *Engine) currentProvider(c *stdcli.Context) structs.Provider {
	if e.Provider != nil {
		return e.Provider
	}

	cfg, err := currentConfig(c)
	if err != nil {
		c.Fail(err)
	}

	space, _ := c.SettingRead("space")
	environment, _ := c.SettingRead("environment")
	token, _ := c.SettingRead("token")

	p, err := cma.New(
		cfg.Endpoint,
		helpers.CoalesceString(os.Getenv("CONTENTFUL_SPACE_ID"), space, cfg.Space),
		helpers.CoalesceString(os.Getenv("CONTENTFUL_ENVIRONMENT"), environment, cfg.Environment),
		helpers.CoalesceString(os.Getenv("CONTENTFUL_MANAGEMENT_TOKEN"), token, cfg.Token),
	)
	if err != nil {
		c.Fail(err)
	}

	p.Version = c.Version()

	return p
}

var commands = []command{}

type command struct {
	Command     string
	Description string
	Handler     HandlerFunc
	Opts        stdcli.CommandOptions
	Provider    bool
}

func register(cmd, description string, fn HandlerFunc, opts stdcli.CommandOptions) {
	commands = append(commands, command{
		Command:     cmd,
		Description: description,
		Handler:     fn,
		Opts:        opts,
		Provider:    true,
	})
}

func registerWithoutProvider(cmd, description string, fn HandlerFunc, opts stdcli.CommandOptions) {
	commands = append(commands, command{
		Command:     cmd,
		Description: description,
		Handler:     fn,
		Opts:        opts,
		Provider:    false,
	})
}
