package strnat

import (
	"sort"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Order selects the direction of a natural comparator. The zero value is
// Descending, which is the stock direction when none is given.
type Order int

const (
	Descending Order = iota
	Ascending
)

// folder bundles the case folder and collator backing one comparison.
// Both are stateful and must not be shared between goroutines, so
// folders are pooled.
type folder struct {
	caser cases.Caser
	col   *collate.Collator
}

var folders = sync.Pool{
	New: func() any {
		return &folder{
			caser: cases.Fold(),
			col:   collate.New(language.Und, collate.Numeric),
		}
	},
}

func (f *folder) fold(s string) string {
	return Normalize(f.caser.String(s))
}

// Fold returns s case-folded and stripped of diacritics, the exact key the
// natural comparators order by: Fold("Éclair") is "eclair". The original
// string is never modified; Fold derives a comparison key from it.
func Fold(s string) string {
	f := folders.Get().(*folder)
	s = f.fold(s)
	folders.Put(f)
	return s
}

// Compare returns an integer comparing a and b in ascending natural order:
// negative if a sorts before b, zero if their folded forms collate equal,
// and positive if a sorts after b. Both operands are case-folded and
// stripped of diacritics before being handed to the collator, so
// Compare("Éclair", "eclair") is 0. Safe for concurrent use.
func Compare(a, b string) int {
	f := folders.Get().(*folder)
	n := f.col.CompareString(f.fold(a), f.fold(b))
	folders.Put(f)
	return n
}

// Comparator returns a three-way comparison function ordering strings in
// the given natural-order direction. The returned function retains no
// state beyond the direction and may be shared and reused across any
// number of concurrent callers.
func Comparator(order Order) func(a, b string) int {
	if order == Ascending {
		return Compare
	}
	return func(a, b string) int { return -Compare(a, b) }
}

// Ready-made comparators for callers that do not need the factory.
var (
	CompareAsc  = Comparator(Ascending)
	CompareDesc = Comparator(Descending)
)

// Sort sorts ss in place in natural order. The sort is stable, so
// strings whose folded forms collate equal keep their relative order.
func Sort(ss []string, order Order) {
	cmp := Comparator(order)
	sort.SliceStable(ss, func(i, j int) bool { return cmp(ss[i], ss[j]) < 0 })
}
