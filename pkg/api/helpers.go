package api

import (
	"github.com/convox/refsort/pkg/helpers"
	"github.com/convox/refsort/pkg/structs"
	"github.com/convox/stdapi"
	"github.com/pkg/errors"
)

// error maps management api failures onto their status code and reports
// anything unexpected.
func (s *Server) error(c *stdapi.Context, err error) error {
	if se, ok := errors.Cause(err).(structs.Error); ok && se.Code >= 400 && se.Code < 500 {
		return stdapi.Errorf(se.Code, "%s", err.Error())
	}

	helpers.Error(s.Logger.At(c.Name()), err)

	return err
}

func (s *Server) record(c *stdapi.Context, res *structs.SortResult) {
	if s.History == nil || res.Superseded || len(res.Links) == 0 {
		return
	}

	r := structs.NewSortRecord(res, structs.SourceAPI)

	if u := s.user(c); u != "" {
		r.Source = structs.SourceAPI + ":" + u
	}

	if _, err := s.History.Record(r); err != nil {
		helpers.Error(s.Logger.At("record"), err)
	}
}

func (s *Server) target(c *stdapi.Context) structs.Target {
	return structs.Target{
		Entry:  c.Var("entry"),
		Field:  c.Var("field"),
		Locale: helpers.CoalesceString(c.Query("locale"), s.Locale),
	}
}
