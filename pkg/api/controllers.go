package api

import (
	"sort"

	"github.com/convox/refsort/pkg/structs"
	"github.com/convox/stdapi"
)

func (s *Server) FieldEntryList(c *stdapi.Context) error {
	t := s.target(c)

	if err := t.Validate(); err != nil {
		return stdapi.Errorf(400, "%s", err.Error())
	}

	v, err := s.Engine.Entries(c.Context(), t)
	if err != nil {
		return s.error(c, err)
	}

	return c.RenderJSON(v)
}

func (s *Server) FieldSort(c *stdapi.Context) error {
	if err := s.hook("FieldSortValidate", c); err != nil {
		return err
	}

	var opts structs.SortOptions
	if err := stdapi.UnmarshalOptions(c.Request(), &opts); err != nil {
		return err
	}

	spec, err := opts.Spec()
	if err != nil {
		return stdapi.Errorf(400, "%s", err.Error())
	}

	t := s.target(c)

	if opts.Locale != nil && *opts.Locale != "" {
		t.Locale = *opts.Locale
	}

	if err := t.Validate(); err != nil {
		return stdapi.Errorf(400, "%s", err.Error())
	}

	if err := s.Engine.Allows(spec); err != nil {
		return stdapi.Errorf(403, "%s", err.Error())
	}

	v, err := s.Engine.Sort(c.Context(), t, spec)
	if err != nil {
		return s.error(c, err)
	}

	if v == nil {
		v = &structs.SortResult{Target: t, Spec: spec, Links: structs.Links{}}
	}

	s.record(c, v)

	return c.RenderJSON(v)
}

func (s *Server) HistoryList(c *stdapi.Context) error {
	if s.History == nil {
		return stdapi.Errorf(404, "history is not enabled")
	}

	var opts structs.HistoryListOptions
	if err := stdapi.UnmarshalOptions(c.Request(), &opts); err != nil {
		return err
	}

	limit := 0

	if opts.Limit != nil {
		limit = *opts.Limit
	}

	v, err := s.History.List(limit)
	if err != nil {
		return s.error(c, err)
	}

	sort.SliceStable(v, v.Less)

	return c.RenderJSON(v)
}

func (s *Server) OptionsGet(c *stdapi.Context) error {
	return c.RenderJSON(s.Installation.Options())
}
