package differ

import "github.com/ralt/bundlediff/internal/models"

// Side classifies where a key was found
type Side int

const (
	SideBoth Side = iota
	SideLeftOnly
	SideRightOnly
)

// String returns the string representation of Side
func (s Side) String() string {
	switch s {
	case SideBoth:
		return "both"
	case SideLeftOnly:
		return "left-only"
	case SideRightOnly:
		return "right-only"
	default:
		return "unknown"
	}
}

// Pair holds the records found for one key. Left or Right is the zero value
// when the key is absent on that side.
type Pair[R models.Record] struct {
	Key   string
	Side  Side
	Left  R
	Right R
}

// lookup maps keys to records while remembering first-insertion order.
// A later duplicate replaces the record but keeps the original position.
type lookup[R models.Record] struct {
	keys  []string
	byKey map[string]R
}

func newLookup[R models.Record](records []R) *lookup[R] {
	l := &lookup[R]{
		keys:  make([]string, 0, len(records)),
		byKey: make(map[string]R, len(records)),
	}
	for _, r := range records {
		k := r.Key()
		if _, seen := l.byKey[k]; !seen {
			l.keys = append(l.keys, k)
		}
		l.byKey[k] = r
	}
	return l
}

// Match classifies every key of both collections. Pairs for keys present on
// the left come first, in left lookup order; right-only keys follow in right
// lookup order.
func Match[R models.Record](left, right []R) []Pair[R] {
	ll := newLookup(left)
	rl := newLookup(right)

	pairs := make([]Pair[R], 0, len(ll.keys)+len(rl.keys))

	for _, k := range ll.keys {
		l := ll.byKey[k]
		r, ok := rl.byKey[k]
		if !ok {
			pairs = append(pairs, Pair[R]{Key: k, Side: SideLeftOnly, Left: l})
			continue
		}
		pairs = append(pairs, Pair[R]{Key: k, Side: SideBoth, Left: l, Right: r})
	}

	for _, k := range rl.keys {
		if _, ok := ll.byKey[k]; ok {
			continue
		}
		pairs = append(pairs, Pair[R]{Key: k, Side: SideRightOnly, Right: rl.byKey[k]})
	}

	return pairs
}
