package sorter

import "strings"

var umlauts = strings.NewReplacer(
	"ä", "a",
	"ö", "o",
	"ü", "u",
)

// fold lowercases s and maps umlaut vowels to their base vowel.
func fold(s string) string {
	return umlauts.Replace(strings.ToLower(s))
}
