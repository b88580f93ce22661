package structs

const (
	LinkTypeContentType = "ContentType"
	LinkTypeEntry       = "Entry"
	SysTypeLink         = "Link"
)

type Link struct {
	Sys LinkSys `json:"sys"`
}

type LinkSys struct {
	Id       string `json:"id"`
	Type     string `json:"type,omitempty"`
	LinkType string `json:"linkType,omitempty"`
}

type Links []Link

// NewEntryLink returns a normalized entry reference for id.
func NewEntryLink(id string) Link {
	return Link{
		Sys: LinkSys{
			Id:       id,
			Type:     SysTypeLink,
			LinkType: LinkTypeEntry,
		},
	}
}

func (ls Links) Ids() []string {
	ids := make([]string, len(ls))

	for i, l := range ls {
		ids[i] = l.Sys.Id
	}

	return ids
}
