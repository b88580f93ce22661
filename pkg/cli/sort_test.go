package cli_test

import (
	"fmt"
	"testing"

	"github.com/convox/refsort/pkg/cli"
	"github.com/convox/refsort/pkg/structs"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func updated(ids ...string) interface{} {
	return mock.MatchedBy(func(e *structs.Entry) bool {
		v, _ := e.Fields.Value("items", "en-US")
		ls, ok := v.(structs.Links)
		return ok && e.Sys.Version == 5 && fmt.Sprint(ls.Ids()) == fmt.Sprint(ids)
	})
}

func TestSort(t *testing.T) {
	testClient(t, func(e *cli.Engine, p *structs.MockProvider) {
		fxLinked(p)
		p.On("EntryUpdate", updated("b", "a", "c")).Return(fxHost("b", "a", "c"), nil).Once()

		res, err := testExecute(e, "sort host1 items --by title", nil)
		require.NoError(t, err)
		require.Equal(t, 0, res.Code)
		res.RequireStderr(t, []string{""})
		res.RequireStdout(t, []string{"Sorting host1/items/en-US by title asc... OK, b a c"})

		p.AssertExpectations(t)

		res, err = testExecute(e, "history", nil)
		require.NoError(t, err)
		require.Equal(t, 0, res.Code)
		require.Equal(t, 2, res.StdoutLines())
		require.Contains(t, res.StdoutLine(1), "host1/items/en-US  title asc  3      cli")
	})
}

func TestSortDescending(t *testing.T) {
	testClient(t, func(e *cli.Engine, p *structs.MockProvider) {
		fxLinked(p)
		p.On("EntryUpdate", updated("c", "a", "b")).Return(fxHost("c", "a", "b"), nil).Once()

		res, err := testExecute(e, "sort host1 items -b title -d desc", nil)
		require.NoError(t, err)
		require.Equal(t, 0, res.Code)
		res.RequireStderr(t, []string{""})
		res.RequireStdout(t, []string{"Sorting host1/items/en-US by title desc... OK, c a b"})
	})
}

func TestSortLocale(t *testing.T) {
	testClientConfig(t, "locale: de-DE\n", func(e *cli.Engine, p *structs.MockProvider) {
		p.On("EntryGet", "host1").Return(fxHost("a"), nil)

		res, err := testExecute(e, "sort host1 items -b date", nil)
		require.NoError(t, err)
		require.Equal(t, 0, res.Code)
		res.RequireStdout(t, []string{"Sorting host1/items/de-DE by date asc... OK"})

		p.AssertNotCalled(t, "EntryUpdate", mock.Anything)
	})
}

func TestSortError(t *testing.T) {
	testClient(t, func(e *cli.Engine, p *structs.MockProvider) {
		p.On("EntryGet", "host1").Return(nil, fmt.Errorf("err1"))

		res, err := testExecute(e, "sort host1 items -b title", nil)
		require.NoError(t, err)
		require.Equal(t, 1, res.Code)
		res.RequireStderr(t, []string{"ERROR: could not read entry host1: err1"})
		res.RequireStdout(t, []string{"Sorting host1/items/en-US by title asc... "})
	})
}

func TestSortInvalid(t *testing.T) {
	testClient(t, func(e *cli.Engine, p *structs.MockProvider) {
		res, err := testExecute(e, "sort host1 items -b bogus", nil)
		require.NoError(t, err)
		require.Equal(t, 1, res.Code)
		res.RequireStderr(t, []string{`ERROR: invalid sort: "bogus"`})
		res.RequireStdout(t, []string{""})
	})
}

func TestSortDisabled(t *testing.T) {
	testClient(t, func(e *cli.Engine, p *structs.MockProvider) {
		res, err := testExecute(e, "sort host1 items -b field -f rank", nil)
		require.NoError(t, err)
		require.Equal(t, 1, res.Code)
		res.RequireStderr(t, []string{"ERROR: sorting by field is disabled"})
		res.RequireStdout(t, []string{"Sorting host1/items/en-US by field:rank asc... "})

		p.AssertNotCalled(t, "EntryGet", mock.Anything)
	})
}

func TestSortCustomField(t *testing.T) {
	testClientConfig(t, "installation: {field: true, fields: rank}\n", func(e *cli.Engine, p *structs.MockProvider) {
		p.On("EntryGet", "host1").Return(fxHost("a", "b"), nil)

		a := fxEntry("a", "A")
		a.Fields.Set("rank", "en-US", 2)
		b := fxEntry("b", "B")
		b.Fields.Set("rank", "en-US", 1)

		p.On("EntryGet", "a").Return(a, nil)
		p.On("EntryGet", "b").Return(b, nil)
		p.On("EntryUpdate", updated("b", "a")).Return(fxHost("b", "a"), nil).Once()

		res, err := testExecute(e, "sort host1 items -b field -f rank", nil)
		require.NoError(t, err)
		require.Equal(t, 0, res.Code)
		res.RequireStderr(t, []string{""})
		res.RequireStdout(t, []string{"Sorting host1/items/en-US by field:rank asc... OK, b a"})
	})
}

func TestSortArgs(t *testing.T) {
	testClient(t, func(e *cli.Engine, p *structs.MockProvider) {
		res, err := testExecute(e, "sort host1 -b title", nil)
		require.NoError(t, err)
		require.Equal(t, 1, res.Code)
		res.RequireStderr(t, []string{"ERROR: 2 args required"})
	})
}
