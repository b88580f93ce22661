package options

import "github.com/convox/refsort/pkg/structs"

func String(value string) *string {
	v := value
	return &v
}

func SortBy(value structs.SortBy) *string {
	return String(string(value))
}

func Direction(value structs.Direction) *string {
	return String(string(value))
}
