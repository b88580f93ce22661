package sorter

import (
	"fmt"

	"github.com/convox/refsort/pkg/structs"
)

// ExtractIds returns the linked entry ids held by a reference field value. A
// single link becomes a one element list; nil and primitives are empty. A
// link without an id is an error so the list is never written back shorter.
func ExtractIds(value interface{}) ([]string, error) {
	ids := []string{}

	switch t := value.(type) {
	case nil:
		return ids, nil
	case structs.Links:
		return linkIds(t)
	case []structs.Link:
		return linkIds(t)
	case structs.Link:
		return linkIds(structs.Links{t})
	case *structs.Link:
		if t == nil {
			return ids, nil
		}
		return linkIds(structs.Links{*t})
	case []interface{}:
		for i, v := range t {
			id := linkId(v)
			if id == "" {
				return nil, fmt.Errorf("link %d has no id", i)
			}
			ids = append(ids, id)
		}
	case map[string]interface{}:
		id := linkId(t)
		if id == "" {
			return nil, fmt.Errorf("link 0 has no id")
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func linkIds(ls structs.Links) ([]string, error) {
	ids := make([]string, len(ls))

	for i, l := range ls {
		if l.Sys.Id == "" {
			return nil, fmt.Errorf("link %d has no id", i)
		}
		ids[i] = l.Sys.Id
	}

	return ids, nil
}

func linkId(v interface{}) string {
	switch t := v.(type) {
	case structs.Link:
		return t.Sys.Id
	case map[string]interface{}:
		sys, ok := t["sys"].(map[string]interface{})
		if !ok {
			return ""
		}

		id, _ := sys["id"].(string)

		return id
	}

	return ""
}
