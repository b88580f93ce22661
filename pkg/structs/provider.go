package structs

import (
	"context"
)

type Provider interface {
	ContentTypeGet(id string) (*ContentType, error)

	EntryGet(id string) (*Entry, error)
	EntryUpdate(e *Entry) (*Entry, error)

	WithContext(ctx context.Context) Provider
}
