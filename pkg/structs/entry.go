package structs

import "time"

type Entry struct {
	Sys    EntrySys `json:"sys"`
	Fields Fields   `json:"fields"`
}

type EntrySys struct {
	Id          string    `json:"id"`
	Type        string    `json:"type,omitempty"`
	Version     int       `json:"version,omitempty"`
	ContentType *Link     `json:"contentType,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

type Entries []Entry

// Fields maps a field name to its localized values.
type Fields map[string]map[string]interface{}

// Value returns the value of a field in a locale and whether it is present.
func (f Fields) Value(field, locale string) (interface{}, bool) {
	if f == nil {
		return nil, false
	}

	ls, ok := f[field]
	if !ok || ls == nil {
		return nil, false
	}

	v, ok := ls[locale]

	return v, ok
}

func (f Fields) Set(field, locale string, value interface{}) {
	if f[field] == nil {
		f[field] = map[string]interface{}{}
	}

	f[field][locale] = value
}

func (e *Entry) ContentTypeId() string {
	if e == nil || e.Sys.ContentType == nil {
		return ""
	}

	return e.Sys.ContentType.Sys.Id
}

type EntrySummary struct {
	Id          string    `json:"id"`
	ContentType string    `json:"content-type"`
	Status      string    `json:"status"`
	Title       string    `json:"title"`
	Updated     time.Time `json:"updated"`
}

type EntrySummaries []EntrySummary

const (
	EntryStatusMissing  = "missing"
	EntryStatusResolved = "resolved"
)
