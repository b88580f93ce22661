package sorter

import (
	"math"
	"strconv"
	"strings"
	"time"
)

type keyKind int

const (
	keyNull keyKind = iota
	keyEmpty
	keyString
	keyNumber
	keyTime
	keyBool
	keyOpaque
)

// Key is the comparable value computed for one entry under a sort.
type Key struct {
	kind keyKind
	s    string
	n    float64
	t    time.Time
	b    bool
}

var (
	// NullKey marks an entry whose key could not be resolved. It sorts after
	// every defined key.
	NullKey = Key{kind: keyNull}

	// EmptyKey is the empty string placeholder used for unresolved entries in
	// descending date and field sorts.
	EmptyKey = Key{kind: keyEmpty}
)

func StringKey(s string) Key {
	return Key{kind: keyString, s: s}
}

func NumberKey(n float64) Key {
	return Key{kind: keyNumber, n: n}
}

func TimeKey(t time.Time) Key {
	return Key{kind: keyTime, t: t}
}

// ValueKey builds a key from a decoded field value without coercion.
func ValueKey(v interface{}) Key {
	switch t := v.(type) {
	case nil:
		return NullKey
	case string:
		return StringKey(t)
	case bool:
		return Key{kind: keyBool, b: t}
	case float64:
		return NumberKey(t)
	case float32:
		return NumberKey(float64(t))
	case int:
		return NumberKey(float64(t))
	case int64:
		return NumberKey(float64(t))
	case time.Time:
		return TimeKey(t)
	}

	return Key{kind: keyOpaque}
}

func (k Key) Null() bool {
	return k.kind == keyNull
}

func (k Key) String() string {
	switch k.kind {
	case keyNull:
		return "null"
	case keyEmpty:
		return `""`
	case keyString:
		return strconv.Quote(k.s)
	case keyNumber:
		return strconv.FormatFloat(k.n, 'g', -1, 64)
	case keyTime:
		return k.t.Format(time.RFC3339Nano)
	case keyBool:
		return strconv.FormatBool(k.b)
	}

	return "opaque"
}

func (k Key) stringish() bool {
	return k.kind == keyString || k.kind == keyEmpty
}

// number converts k the way a loose numeric comparison would. ok is false
// when k has no numeric meaning.
func (k Key) number() (float64, bool) {
	switch k.kind {
	case keyEmpty:
		return 0, true
	case keyNumber:
		return k.n, !math.IsNaN(k.n)
	case keyTime:
		return float64(k.t.UnixNano()) / float64(time.Millisecond), true
	case keyBool:
		if k.b {
			return 1, true
		}
		return 0, true
	case keyString:
		s := strings.TrimSpace(k.s)
		if s == "" {
			return 0, true
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(n) {
			return 0, false
		}
		return n, true
	}

	return 0, false
}

// Compare orders a and b ascending. Null keys sort last; strings compare
// lexically; everything else compares numerically; pairs without a common
// ordering compare equal.
func Compare(a, b Key) int {
	switch {
	case a.kind == keyNull && b.kind == keyNull:
		return 0
	case a.kind == keyNull:
		return 1
	case b.kind == keyNull:
		return -1
	}

	if a.stringish() && b.stringish() {
		return strings.Compare(a.s, b.s)
	}

	an, aok := a.number()
	bn, bok := b.number()

	if !aok || !bok {
		return 0
	}

	switch {
	case an < bn:
		return -1
	case an > bn:
		return 1
	}

	return 0
}
