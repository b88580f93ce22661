package helpers

import (
	"time"

	humanize "github.com/dustin/go-humanize"
)

const (
	SortableTime = "20060102.150405.000000000"
)

func Ago(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return humanize.Time(t)
}
