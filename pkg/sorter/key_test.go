package sorter_test

import (
	"testing"
	"time"

	"github.com/convox/refsort/pkg/sorter"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	early := sorter.TimeKey(time.Unix(100, 0))
	late := sorter.TimeKey(time.Unix(200, 0))

	tests := []struct {
		name string
		a, b sorter.Key
		want int
	}{
		{"null equal", sorter.NullKey, sorter.NullKey, 0},
		{"null after string", sorter.NullKey, sorter.StringKey("a"), 1},
		{"string before null", sorter.StringKey("a"), sorter.NullKey, -1},
		{"null after empty", sorter.NullKey, sorter.EmptyKey, 1},
		{"strings", sorter.StringKey("apfel"), sorter.StringKey("ol"), -1},
		{"empty before string", sorter.EmptyKey, sorter.StringKey("a"), -1},
		{"empty before time", sorter.EmptyKey, early, -1},
		{"times", late, early, 1},
		{"numbers", sorter.NumberKey(2), sorter.NumberKey(10), -1},
		{"numeric string", sorter.StringKey("12"), sorter.NumberKey(3), 1},
		{"incomparable", sorter.StringKey("abc"), sorter.NumberKey(3), 0},
		{"bools", sorter.ValueKey(false), sorter.ValueKey(true), -1},
		{"opaque", sorter.ValueKey(map[string]interface{}{}), sorter.NumberKey(1), 0},
		{"opaque before null", sorter.ValueKey([]interface{}{}), sorter.NullKey, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, sorter.Compare(tt.a, tt.b))
		})
	}
}

func TestValueKeyNil(t *testing.T) {
	require.True(t, sorter.ValueKey(nil).Null())
	require.False(t, sorter.ValueKey("").Null())
}
