package structs

type ResolvedKind int

const (
	ResolvedEntry ResolvedKind = iota
	ResolvedError
)

// Resolved is the outcome of fetching one linked entry. Error results keep
// the id so the entry survives a sort as a placeholder.
type Resolved struct {
	Kind  ResolvedKind
	Id    string
	Entry *Entry
	Error error
}

func NewResolvedEntry(e *Entry) Resolved {
	return Resolved{Kind: ResolvedEntry, Id: e.Sys.Id, Entry: e}
}

func NewResolvedError(id string, err error) Resolved {
	return Resolved{Kind: ResolvedError, Id: id, Error: err}
}

func (r Resolved) Ok() bool {
	return r.Kind == ResolvedEntry && r.Entry != nil
}
