package sorter

import (
	"sort"

	"github.com/convox/refsort/pkg/structs"
)

type keyed struct {
	id  string
	key Key
}

// Order stable sorts resolved entries by their keys and returns normalized
// links. Entries with equal keys keep their input order.
func Order(rs []structs.Resolved, keys []Key, d structs.Direction) structs.Links {
	ks := make([]keyed, len(rs))

	for i, r := range rs {
		ks[i] = keyed{id: r.Id, key: NullKey}

		if i < len(keys) {
			ks[i].key = keys[i]
		}
	}

	sort.SliceStable(ks, func(i, j int) bool {
		c := Compare(ks[i].key, ks[j].key)

		if d == structs.Descending {
			return c > 0
		}

		return c < 0
	})

	ls := make(structs.Links, len(ks))

	for i, k := range ks {
		ls[i] = structs.NewEntryLink(k.id)
	}

	return ls
}
