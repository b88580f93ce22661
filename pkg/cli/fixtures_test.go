package cli_test

import (
	"time"

	"github.com/convox/refsort/pkg/structs"
)

func fxHost(ids ...string) *structs.Entry {
	ls := []interface{}{}

	for _, id := range ids {
		ls = append(ls, map[string]interface{}{
			"sys": map[string]interface{}{"id": id, "type": "Link", "linkType": "Entry"},
		})
	}

	return &structs.Entry{
		Sys:    structs.EntrySys{Id: "host1", Version: 5},
		Fields: structs.Fields{"items": {"en-US": ls}},
	}
}

func fxEntry(id, title string) *structs.Entry {
	e := &structs.Entry{
		Sys: structs.EntrySys{
			Id:          id,
			ContentType: &structs.Link{Sys: structs.LinkSys{Id: "post", Type: "Link", LinkType: "ContentType"}},
		},
		Fields: structs.Fields{},
	}

	e.Fields.Set("title", "en-US", title)

	return e
}

func fxLinked(p *structs.MockProvider) {
	p.On("EntryGet", "host1").Return(fxHost("a", "b", "c"), nil)
	a := fxEntry("a", "Cherry")
	a.Sys.UpdatedAt = time.Now().Add(-49 * time.Hour)

	p.On("EntryGet", "a").Return(a, nil)
	p.On("EntryGet", "b").Return(fxEntry("b", "apple"), nil)
	p.On("EntryGet", "c").Return(nil, structs.Error{Code: 404, Message: "not found"})
	p.On("ContentTypeGet", "post").Return(&structs.ContentType{Sys: structs.ContentTypeSys{Id: "post"}, DisplayField: "title"}, nil)
}
