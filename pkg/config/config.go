package config

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/adhocore/gronx"
	"github.com/convox/refsort/pkg/helpers"
	"github.com/convox/refsort/pkg/structs"
	"github.com/gobwas/glob"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

const (
	DefaultLocale = "en-US"
	DefaultPort   = "5443"
)

var regexpInterpolation = regexp.MustCompile(`\$\{[^}]*\}`)

// Config is the contents of config.yml. Values of the form ${NAME} are
// replaced from the environment before parsing.
type Config struct {
	Endpoint     string               `yaml:"endpoint,omitempty"`
	Environment  string               `yaml:"environment,omitempty"`
	History      string               `yaml:"history,omitempty"`
	Installation structs.Installation `yaml:"installation"`
	Jobs         structs.Jobs         `yaml:"jobs,omitempty"`
	Locale       string               `yaml:"locale,omitempty"`
	Port         string               `yaml:"port,omitempty"`
	Secret       string               `yaml:"secret,omitempty"`
	Space        string               `yaml:"space,omitempty"`
	Token        string               `yaml:"token,omitempty"`
}

func Default() *Config {
	return &Config{
		Installation: structs.DefaultInstallation(),
		Jobs:         structs.Jobs{},
		Locale:       DefaultLocale,
		Port:         DefaultPort,
	}
}

// Dir is the settings directory, REFSORT_HOME or ~/.refsort.
func Dir() (string, error) {
	if dir := os.Getenv("REFSORT_HOME"); dir != "" {
		return dir, nil
	}

	home, err := homedir.Dir()
	if err != nil {
		return "", errors.WithStack(err)
	}

	return filepath.Join(home, ".refsort"), nil
}

func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, "config.yml"), nil
}

func Load(data []byte, env map[string]string) (*Config, error) {
	c := Default()

	if err := yaml.Unmarshal(interpolate(data, env), c); err != nil {
		return nil, errors.Wrap(err, "could not parse config")
	}

	c.ApplyEnv(env)

	if err := c.ApplyDefaults(); err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// LoadFile reads the config at path. A missing file yields the defaults.
func LoadFile(path string) (*Config, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	data, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		data = []byte{}
	} else if err != nil {
		return nil, errors.WithStack(err)
	}

	return Load(data, Environ())
}

// ApplyEnv lets the environment override credentials from the file.
func (c *Config) ApplyEnv(env map[string]string) {
	c.Endpoint = helpers.CoalesceString(env["CONTENTFUL_ENDPOINT"], c.Endpoint)
	c.Environment = helpers.CoalesceString(env["CONTENTFUL_ENVIRONMENT"], c.Environment)
	c.Space = helpers.CoalesceString(env["CONTENTFUL_SPACE_ID"], c.Space)
	c.Token = helpers.CoalesceString(env["CONTENTFUL_MANAGEMENT_TOKEN"], c.Token)
	c.Secret = helpers.CoalesceString(env["REFSORT_SECRET"], c.Secret)
	c.Port = helpers.CoalesceString(env["PORT"], c.Port)
}

func (c *Config) ApplyDefaults() error {
	c.Locale = helpers.CoalesceString(c.Locale, DefaultLocale)
	c.Port = helpers.CoalesceString(c.Port, DefaultPort)

	if c.History == "" {
		dir, err := Dir()
		if err != nil {
			return err
		}
		c.History = filepath.Join(dir, "history.db")
	}

	h, err := homedir.Expand(c.History)
	if err != nil {
		return errors.WithStack(err)
	}

	c.History = h

	for i := range c.Jobs {
		j := &c.Jobs[i]

		j.Target.Locale = helpers.CoalesceString(j.Target.Locale, c.Locale)

		if j.Spec.Direction == "" {
			j.Spec.Direction = structs.Ascending
		}
	}

	return nil
}

func (c *Config) Validate() error {
	names := map[string]bool{}

	for _, f := range c.Installation.CustomFields() {
		if _, err := glob.Compile(f); err != nil {
			return fmt.Errorf("invalid custom field pattern: %s", f)
		}
	}

	g := gronx.New()

	for _, j := range c.Jobs {
		if strings.TrimSpace(j.Name) == "" {
			return fmt.Errorf("job name can not be blank")
		}

		if names[j.Name] {
			return fmt.Errorf("duplicate job: %s", j.Name)
		}

		names[j.Name] = true

		if !g.IsValid(j.Schedule) {
			return fmt.Errorf("job %s: invalid schedule: %q", j.Name, j.Schedule)
		}

		if err := j.Target.Validate(); err != nil {
			return errors.Wrapf(err, "job %s", j.Name)
		}

		if err := j.Spec.Validate(); err != nil {
			return errors.Wrapf(err, "job %s", j.Name)
		}

		if err := c.Installation.Allows(j.Spec); err != nil {
			return errors.Wrapf(err, "job %s", j.Name)
		}
	}

	return nil
}

// Environ returns the process environment as a map.
func Environ() map[string]string {
	env := map[string]string{}

	for _, kv := range os.Environ() {
		if parts := strings.SplitN(kv, "=", 2); len(parts) == 2 {
			env[parts[0]] = parts[1]
		}
	}

	return env
}

func interpolate(data []byte, env map[string]string) []byte {
	return regexpInterpolation.ReplaceAllFunc(data, func(m []byte) []byte {
		return []byte(env[string(m)[2:len(m)-1]])
	})
}
