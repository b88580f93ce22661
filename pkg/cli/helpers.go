package cli

import (
	"io"
	"io/ioutil"
	"os"

	"github.com/convox/logger"
	"github.com/convox/refsort/pkg/config"
	"github.com/convox/refsort/pkg/helpers"
	"github.com/convox/refsort/pkg/history"
	"github.com/convox/refsort/pkg/sorter"
	"github.com/convox/refsort/pkg/structs"
	"github.com/convox/stdcli"
)

// currentConfig loads REFSORT_CONFIG when set and config.yml from the
// settings directory otherwise.
func currentConfig(c *stdcli.Context) (*config.Config, error) {
	if path := os.Getenv("REFSORT_CONFIG"); path != "" {
		return config.LoadFile(path)
	}

	data, err := c.SettingRead("config.yml")
	if err != nil {
		return nil, err
	}

	return config.Load([]byte(data), config.Environ())
}

func currentLocale(c *stdcli.Context, cfg *config.Config) string {
	return helpers.CoalesceString(c.String("locale"), cfg.Locale)
}

func newSorter(p structs.Provider, cfg *config.Config) *sorter.Engine {
	s := sorter.New(p)

	s.Installation = &cfg.Installation
	s.Logger = logger.NewWriter("ns=refsort", logWriter())

	return s
}

func logWriter() io.Writer {
	if os.Getenv("REFSORT_DEBUG") == "true" {
		return os.Stderr
	}

	return ioutil.Discard
}

func withHistory(cfg *config.Config, fn func(structs.History) error) error {
	h, err := history.Open(cfg.History)
	if err != nil {
		return err
	}
	defer h.Close()

	return fn(h)
}

func target(c *stdcli.Context, cfg *config.Config) structs.Target {
	return structs.Target{
		Entry:  c.Arg(0),
		Field:  c.Arg(1),
		Locale: currentLocale(c, cfg),
	}
}
