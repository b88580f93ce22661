package cli

import (
	"github.com/convox/refsort/pkg/structs"
	"github.com/convox/stdcli"
)

type HandlerFunc func(structs.Provider, *stdcli.Context) error

var (
	flagLocale = stdcli.StringFlag("locale", "l", "locale of the field")
)

func New(name, version string) *Engine {
	e := &Engine{
		Engine: stdcli.New(name, version),
	}

	e.RegisterCommands()

	return e
}
