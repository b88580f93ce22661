package structs

import (
	"fmt"
	"time"
)

// Error is a failed request against the management api. Reset is the wait
// announced by a rate limited response.
type Error struct {
	Code    int           `json:"-"`
	Id      string        `json:"id"`
	Message string        `json:"message"`
	Reset   time.Duration `json:"-"`
}

func (e Error) Error() string {
	if e.Id != "" {
		return fmt.Sprintf("%s: %s", e.Id, e.Message)
	}

	return e.Message
}

func (e Error) NotFound() bool {
	return e.Code == 404
}

func (e Error) RateLimited() bool {
	return e.Code == 429
}
