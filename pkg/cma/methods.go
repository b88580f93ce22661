package cma

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/convox/refsort/pkg/structs"
	"github.com/convox/stdsdk"
)

func (c *Client) ContentTypeGet(id string) (*structs.ContentType, error) {
	var v *structs.ContentType

	err := c.do("GET", c.path("content_types/%s", id), get, &v)

	return v, err
}

func (c *Client) EntryGet(id string) (*structs.Entry, error) {
	var v *structs.Entry

	err := c.do("GET", c.path("entries/%s", id), get, &v)

	return v, err
}

// EntryUpdate replaces the fields of an entry. The update is rejected by the
// api if the entry changed since e was read.
func (c *Client) EntryUpdate(e *structs.Entry) (*structs.Entry, error) {
	data, err := json.Marshal(struct {
		Fields structs.Fields `json:"fields"`
	}{e.Fields})
	if err != nil {
		return nil, err
	}

	opts := func() stdsdk.RequestOptions {
		return stdsdk.RequestOptions{
			Body: bytes.NewReader(data),
			Headers: stdsdk.Headers{
				"Content-Type":         MediaType,
				"X-Contentful-Version": strconv.Itoa(e.Sys.Version),
			},
		}
	}

	var v *structs.Entry

	err = c.do("PUT", c.path("entries/%s", e.Sys.Id), opts, &v)

	return v, err
}

func get() stdsdk.RequestOptions {
	return stdsdk.RequestOptions{Headers: stdsdk.Headers{}}
}
