package api

import (
	"github.com/convox/stdapi"
)

// FieldSortValidate rejects sorts of fields owned by a scheduled job unless
// force is set.
func (s *Server) FieldSortValidate(c *stdapi.Context) error {
	if c.Form("force") == "true" {
		return nil
	}

	for _, j := range s.Jobs {
		if j.Target.Entry == c.Var("entry") && j.Target.Field == c.Var("field") {
			return stdapi.Errorf(409, "field is sorted by job %s, use force to override", j.Name)
		}
	}

	return nil
}
