package structs

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// Installation holds the per-installation flags that decide which sorts are
// offered for a field.
type Installation struct {
	Title    bool     `json:"title" yaml:"title"`
	Date     bool     `json:"date" yaml:"date"`
	Field    bool     `json:"field" yaml:"field"`
	Fields   string   `json:"fields" yaml:"fields"`
	Instance Instance `json:"instance" yaml:"instance"`
}

// Instance carries the link editing affordances shown next to the sort
// controls. They are passed through to clients untouched.
type Instance struct {
	BulkEditing            bool `json:"bulkEditing" yaml:"bulk-editing"`
	ShowCreateEntityAction bool `json:"showCreateEntityAction" yaml:"show-create-entity-action"`
	ShowLinkEntityAction   bool `json:"showLinkEntityAction" yaml:"show-link-entity-action"`
}

func DefaultInstallation() Installation {
	return Installation{
		Title: true,
		Date:  true,
		Instance: Instance{
			BulkEditing:            true,
			ShowCreateEntityAction: true,
			ShowLinkEntityAction:   true,
		},
	}
}

// CustomFields splits the comma separated custom field list.
func (i Installation) CustomFields() []string {
	fs := []string{}

	for _, f := range strings.Split(i.Fields, ",") {
		if f = strings.TrimSpace(f); f != "" {
			fs = append(fs, f)
		}
	}

	return fs
}

// Allows returns an error when the installation does not offer s. Custom
// field entries may be glob patterns.
func (i Installation) Allows(s SortSpec) error {
	switch s.By {
	case SortByTitle:
		if !i.Title {
			return fmt.Errorf("sorting by title is disabled")
		}
	case SortByDate:
		if !i.Date {
			return fmt.Errorf("sorting by date is disabled")
		}
	case SortByField:
		if !i.Field {
			return fmt.Errorf("sorting by field is disabled")
		}

		fs := i.CustomFields()

		if len(fs) == 0 {
			return nil
		}

		for _, f := range fs {
			g, err := glob.Compile(f)
			if err != nil {
				return fmt.Errorf("invalid custom field pattern: %s", f)
			}

			if g.Match(s.Field) {
				return nil
			}
		}

		return fmt.Errorf("sorting by field %s is not enabled", s.Field)
	default:
		return fmt.Errorf("invalid sort: %q", s.By)
	}

	return nil
}

// Options is what a client needs to render the sort controls for a field.
type Options struct {
	Sorts    []SortBy `json:"sorts"`
	Fields   []string `json:"fields"`
	Instance Instance `json:"instance"`
}

func (i Installation) Options() Options {
	o := Options{Sorts: []SortBy{}, Fields: i.CustomFields(), Instance: i.Instance}

	if i.Title {
		o.Sorts = append(o.Sorts, SortByTitle)
	}

	if i.Date {
		o.Sorts = append(o.Sorts, SortByDate)
	}

	if i.Field {
		o.Sorts = append(o.Sorts, SortByField)
	}

	return o
}

type Job struct {
	Name     string   `json:"name" yaml:"name"`
	Schedule string   `json:"schedule" yaml:"schedule"`
	Target   Target   `json:"target" yaml:"target"`
	Spec     SortSpec `json:"spec" yaml:"spec"`
}

type Jobs []Job
