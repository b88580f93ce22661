package cli_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/convox/refsort/pkg/cli"
	"github.com/convox/refsort/pkg/history"
	"github.com/convox/refsort/pkg/structs"
	"github.com/stretchr/testify/require"
)

func TestHistory(t *testing.T) {
	testClient(t, func(e *cli.Engine, p *structs.MockProvider) {
		h, err := history.Open(filepath.Join(e.Settings, "history.db"))
		require.NoError(t, err)

		now := time.Now().UTC()

		for i, entry := range []string{"host1", "host2", "host3"} {
			_, err := h.Record(structs.SortRecord{
				Target:  structs.Target{Entry: entry, Field: "items", Locale: "en-US"},
				Spec:    structs.SortSpec{By: structs.SortByDate, Direction: structs.Descending},
				Count:   i + 1,
				Source:  structs.SourceScheduler,
				Created: now.Add(time.Duration(i-3) * time.Hour),
			})
			require.NoError(t, err)
		}

		require.NoError(t, h.Close())

		res, err := testExecute(e, "history -l 2", nil)
		require.NoError(t, err)
		require.Equal(t, 0, res.Code)
		res.RequireStderr(t, []string{""})
		require.Equal(t, 3, res.StdoutLines())
		require.Equal(t, "TARGET             SORT       COUNT  SOURCE     WHEN", res.StdoutLine(0)[:52])
		require.Contains(t, res.StdoutLine(1), "host3/items/en-US  date desc  3      scheduler  1 hour ago")
		require.Contains(t, res.StdoutLine(2), "host2/items/en-US  date desc  2      scheduler  2 hours ago")
	})
}

func TestHistoryEmpty(t *testing.T) {
	testClient(t, func(e *cli.Engine, p *structs.MockProvider) {
		res, err := testExecute(e, "history", nil)
		require.NoError(t, err)
		require.Equal(t, 0, res.Code)
		res.RequireStderr(t, []string{""})
		res.RequireStdout(t, []string{"TARGET  SORT  COUNT  SOURCE  WHEN"})
	})
}
