package config_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/convox/refsort/pkg/config"
	"github.com/convox/refsort/pkg/structs"
	"github.com/stretchr/testify/require"
)

const fxConfig = `
space: space1
token: ${MANAGEMENT_TOKEN}
history: /var/lib/refsort/history.db
installation:
  title: true
  date: false
  field: true
  fields: rank, publish*
  instance:
    bulk-editing: false
jobs:
  - name: nightly
    schedule: "0 3 * * *"
    target:
      entry: host1
      field: items
    spec:
      by: field
      field: rank
      direction: desc
`

func TestLoad(t *testing.T) {
	c, err := config.Load([]byte(fxConfig), map[string]string{"MANAGEMENT_TOKEN": "token1"})
	require.NoError(t, err)

	require.Equal(t, "space1", c.Space)
	require.Equal(t, "token1", c.Token)
	require.Equal(t, "en-US", c.Locale)
	require.Equal(t, "5443", c.Port)
	require.Equal(t, "/var/lib/refsort/history.db", c.History)

	require.Equal(t, structs.Installation{
		Title:  true,
		Date:   false,
		Field:  true,
		Fields: "rank, publish*",
		Instance: structs.Instance{
			BulkEditing:            false,
			ShowCreateEntityAction: true,
			ShowLinkEntityAction:   true,
		},
	}, c.Installation)

	require.Equal(t, structs.Jobs{
		{
			Name:     "nightly",
			Schedule: "0 3 * * *",
			Target:   structs.Target{Entry: "host1", Field: "items", Locale: "en-US"},
			Spec:     structs.SortSpec{By: structs.SortByField, Field: "rank", Direction: structs.Descending},
		},
	}, c.Jobs)
}

func TestLoadEmpty(t *testing.T) {
	c, err := config.Load([]byte("history: /tmp/history.db\n"), map[string]string{})
	require.NoError(t, err)
	require.Equal(t, structs.DefaultInstallation(), c.Installation)
	require.Equal(t, structs.Jobs{}, c.Jobs)
}

func TestLoadEnvOverrides(t *testing.T) {
	env := map[string]string{
		"CONTENTFUL_SPACE_ID":         "space2",
		"CONTENTFUL_ENVIRONMENT":      "staging",
		"CONTENTFUL_MANAGEMENT_TOKEN": "token2",
		"REFSORT_SECRET":              "secret1",
		"PORT":                        "3000",
	}

	c, err := config.Load([]byte(fxConfig), env)
	require.NoError(t, err)
	require.Equal(t, "space2", c.Space)
	require.Equal(t, "staging", c.Environment)
	require.Equal(t, "token2", c.Token)
	require.Equal(t, "secret1", c.Secret)
	require.Equal(t, "3000", c.Port)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		err  string
	}{
		{"yaml", "jobs: [", "could not parse config"},
		{"schedule", "jobs: [{name: j1, schedule: never, target: {entry: e, field: f}, spec: {by: title}}]", `job j1: invalid schedule: "never"`},
		{"duplicate", "jobs: [{name: j1, schedule: '@daily', target: {entry: e, field: f}, spec: {by: title}}, {name: j1, schedule: '@daily', target: {entry: e, field: f}, spec: {by: title}}]", "duplicate job: j1"},
		{"blank", "jobs: [{schedule: '@daily'}]", "job name can not be blank"},
		{"target", "jobs: [{name: j1, schedule: '@daily', target: {field: f}, spec: {by: title}}]", "job j1: entry required"},
		{"spec", "jobs: [{name: j1, schedule: '@daily', target: {entry: e, field: f}, spec: {by: field}}]", "job j1: field required when sorting by field"},
		{"disabled", "installation: {title: false}\njobs: [{name: j1, schedule: '@daily', target: {entry: e, field: f}, spec: {by: title}}]", "job j1: sorting by title is disabled"},
		{"pattern", "installation: {field: true, fields: 'a[', date: true}", "invalid custom field pattern: a["},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load([]byte("history: /tmp/h.db\n"+tt.data), map[string]string{})
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "config")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	os.Setenv("REFSORT_HOME", dir)
	defer os.Unsetenv("REFSORT_HOME")

	c, err := config.LoadFile(filepath.Join(dir, "missing.yml"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "history.db"), c.History)

	path := filepath.Join(dir, "config.yml")
	require.NoError(t, ioutil.WriteFile(path, []byte("locale: de-DE\n"), 0600))

	c, err = config.LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, "de-DE", c.Locale)

	p, err := config.DefaultPath()
	require.NoError(t, err)
	require.Equal(t, path, p)
}
