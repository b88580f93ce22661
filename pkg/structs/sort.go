package structs

import (
	"fmt"
	"strings"
	"time"
)

type SortBy string

const (
	SortByDate  SortBy = "date"
	SortByField SortBy = "field"
	SortByTitle SortBy = "title"
)

type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

type SortSpec struct {
	By        SortBy    `json:"by" yaml:"by"`
	Direction Direction `json:"direction" yaml:"direction"`
	Field     string    `json:"field,omitempty" yaml:"field,omitempty"`
}

type SortOptions struct {
	By        *string `flag:"by,b" param:"by"`
	Direction *string `flag:"direction,d" param:"direction"`
	Field     *string `flag:"field,f" param:"field"`
	Locale    *string `flag:"locale,l" param:"locale"`
}

// Spec parses the options into a validated SortSpec.
func (o SortOptions) Spec() (SortSpec, error) {
	return NewSortSpec(deref(o.By), deref(o.Direction), deref(o.Field))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func ParseSortBy(s string) (SortBy, error) {
	switch SortBy(strings.ToLower(strings.TrimSpace(s))) {
	case SortByDate:
		return SortByDate, nil
	case SortByField:
		return SortByField, nil
	case SortByTitle:
		return SortByTitle, nil
	}

	return "", fmt.Errorf("invalid sort: %q", s)
}

func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	}

	return "", fmt.Errorf("invalid direction: %q", s)
}

// NewSortSpec parses and validates the textual form of a sort.
func NewSortSpec(by, direction, field string) (SortSpec, error) {
	b, err := ParseSortBy(by)
	if err != nil {
		return SortSpec{}, err
	}

	d, err := ParseDirection(direction)
	if err != nil {
		return SortSpec{}, err
	}

	s := SortSpec{By: b, Direction: d, Field: strings.TrimSpace(field)}

	if err := s.Validate(); err != nil {
		return SortSpec{}, err
	}

	return s, nil
}

func (s SortSpec) Validate() error {
	switch s.By {
	case SortByDate, SortByTitle:
		if s.Field != "" {
			return fmt.Errorf("field is only valid when sorting by field")
		}
	case SortByField:
		if s.Field == "" {
			return fmt.Errorf("field required when sorting by field")
		}
	default:
		return fmt.Errorf("invalid sort: %q", s.By)
	}

	switch s.Direction {
	case Ascending, Descending:
	default:
		return fmt.Errorf("invalid direction: %q", s.Direction)
	}

	return nil
}

func (s SortSpec) Descending() bool {
	return s.Direction == Descending
}

func (s SortSpec) String() string {
	if s.By == SortByField {
		return fmt.Sprintf("%s:%s %s", s.By, s.Field, s.Direction)
	}

	return fmt.Sprintf("%s %s", s.By, s.Direction)
}

// Target identifies a localized reference field on a host entry.
type Target struct {
	Entry  string `json:"entry" yaml:"entry"`
	Field  string `json:"field" yaml:"field"`
	Locale string `json:"locale" yaml:"locale"`
}

func (t Target) String() string {
	return fmt.Sprintf("%s/%s/%s", t.Entry, t.Field, t.Locale)
}

func (t Target) Validate() error {
	switch {
	case t.Entry == "":
		return fmt.Errorf("entry required")
	case t.Field == "":
		return fmt.Errorf("field required")
	case t.Locale == "":
		return fmt.Errorf("locale required")
	}

	return nil
}

type SortResult struct {
	Target     Target   `json:"target"`
	Spec       SortSpec `json:"spec"`
	Links      Links    `json:"links"`
	Superseded bool     `json:"superseded"`
}

const (
	SourceAPI       = "api"
	SourceCLI       = "cli"
	SourceScheduler = "scheduler"
)

type SortRecord struct {
	Id      string    `json:"id"`
	Target  Target    `json:"target"`
	Spec    SortSpec  `json:"spec"`
	Count   int       `json:"count"`
	Source  string    `json:"source"`
	Created time.Time `json:"created"`
}

type SortRecords []SortRecord

type HistoryListOptions struct {
	Limit *int `flag:"limit,l" query:"limit"`
}

func (rs SortRecords) Less(i, j int) bool {
	return rs[i].Created.After(rs[j].Created)
}
