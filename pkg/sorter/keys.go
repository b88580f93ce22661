package sorter

import "github.com/convox/refsort/pkg/structs"

// Keys computes one sort key per resolved entry. displayFields maps a content
// type id to its display field and is only consulted for title sorts.
func Keys(rs []structs.Resolved, spec structs.SortSpec, locale string, displayFields map[string]string) []Key {
	keys := make([]Key, len(rs))

	for i, r := range rs {
		switch spec.By {
		case structs.SortByTitle:
			keys[i] = titleKey(r, locale, displayFields)
		case structs.SortByDate:
			keys[i] = dateKey(r, spec.Direction)
		case structs.SortByField:
			keys[i] = fieldKey(r, spec.Field, locale, spec.Direction)
		default:
			keys[i] = NullKey
		}
	}

	return keys
}

// Title returns the display title of a resolved entry in locale.
func Title(r structs.Resolved, locale string, displayFields map[string]string) (string, bool) {
	if !r.Ok() || len(r.Entry.Fields) == 0 {
		return "", false
	}

	df, ok := displayFields[r.Entry.ContentTypeId()]
	if !ok || df == "" {
		return "", false
	}

	v, ok := r.Entry.Fields.Value(df, locale)
	if !ok {
		return "", false
	}

	s, ok := v.(string)

	return s, ok
}

func titleKey(r structs.Resolved, locale string, displayFields map[string]string) Key {
	s, ok := Title(r, locale, displayFields)
	if !ok {
		return NullKey
	}

	return StringKey(fold(s))
}

func dateKey(r structs.Resolved, d structs.Direction) Key {
	if !r.Ok() || r.Entry.Sys.UpdatedAt.IsZero() {
		return absentKey(d)
	}

	return TimeKey(r.Entry.Sys.UpdatedAt)
}

func fieldKey(r structs.Resolved, field, locale string, d structs.Direction) Key {
	if !r.Ok() {
		return absentKey(d)
	}

	v, ok := r.Entry.Fields.Value(field, locale)
	if !ok || v == nil {
		return absentKey(d)
	}

	return ValueKey(v)
}

// absentKey is the key of an unresolved date or field value. Descending sorts
// use the empty placeholder and ascending sorts use null, which both place
// the entry last but through different comparisons.
// TODO: unify with the title policy once the intended placement for
// unresolved entries in descending title sorts is settled.
func absentKey(d structs.Direction) Key {
	if d == structs.Descending {
		return EmptyKey
	}

	return NullKey
}
