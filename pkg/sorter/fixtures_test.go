package sorter_test

import (
	"fmt"
	"time"

	"github.com/convox/logger"
	"github.com/convox/refsort/pkg/sorter"
	"github.com/convox/refsort/pkg/structs"
	"github.com/stretchr/testify/mock"
)

var (
	fxLocale = "en-US"
	fxTarget = structs.Target{Entry: "host1", Field: "items", Locale: "en-US"}
	fxTime   = time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)
)

func testEngine(fn func(*sorter.Engine, *structs.MockProvider)) {
	p := &structs.MockProvider{}
	p.On("WithContext", mock.Anything).Return(p)

	e := sorter.New(p)
	e.Logger = logger.Discard

	fn(e, p)
}

func fxLinks(ids ...string) []interface{} {
	ls := []interface{}{}

	for _, id := range ids {
		ls = append(ls, map[string]interface{}{
			"sys": map[string]interface{}{
				"id":       id,
				"type":     "Link",
				"linkType": "Entry",
			},
		})
	}

	return ls
}

func fxHost(ids ...string) *structs.Entry {
	return &structs.Entry{
		Sys: structs.EntrySys{Id: "host1", Version: 7},
		Fields: structs.Fields{
			"items": {"en-US": fxLinks(ids...)},
		},
	}
}

func fxEntry(id, contentType, title string, updated time.Time) *structs.Entry {
	e := &structs.Entry{
		Sys: structs.EntrySys{
			Id:        id,
			UpdatedAt: updated,
		},
		Fields: structs.Fields{},
	}

	if contentType != "" {
		ct := structs.Link{Sys: structs.LinkSys{Id: contentType, Type: "Link", LinkType: "ContentType"}}
		e.Sys.ContentType = &ct
	}

	if title != "" {
		e.Fields.Set("title", "en-US", title)
	}

	return e
}

func fxContentType(id, display string) *structs.ContentType {
	return &structs.ContentType{
		Sys:          structs.ContentTypeSys{Id: id},
		Name:         id,
		DisplayField: display,
	}
}

func fxNotFound(id string) error {
	return structs.Error{Code: 404, Id: "NotFound", Message: fmt.Sprintf("entry %s not found", id)}
}
