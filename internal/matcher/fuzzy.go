package matcher

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn-fsel/fsel/internal/item"
	"github.com/mattn-fsel/fsel/internal/util"
)

// fuzzyMatch ports peco's filter/fuzzy.go subsequence matcher: query
// "ABC" matches the equivalent of "A(.*)B(.*)C(.*)" against the display
// string, case-sensitively iff the query itself contains an uppercase
// letter (smart case). It additionally computes a score so matches can be
// ranked, which peco's single-pass filter (match/no-match only) does not
// need since it doesn't reorder results.
func fuzzyMatch(query string, it *item.Item) (ok bool, indices [][]int, score int) {
	if query == "" {
		return true, nil, 0
	}

	txt := it.DisplayString()
	hasUpper := util.ContainsUpper(query)

	base := 0
	q := query
	matches := make([][]int, 0, len(query))
	for len(q) > 0 {
		r, n := utf8.DecodeRuneInString(q)
		if r == utf8.RuneError {
			return false, nil, 0
		}
		q = q[n:]

		var i int
		if hasUpper {
			i = strings.IndexRune(txt, r)
		} else {
			i = strings.IndexFunc(txt, util.CaseInsensitiveIndexFunc(r))
		}
		if i == -1 {
			return false, nil, 0
		}

		txt = txt[i+n:]
		matches = append(matches, []int{base + i, base + i + n})
		base = base + i + n
	}

	// Score: reward compact matches (small total span) and matches that
	// start earlier in the line. Both are bounded so the sum never
	// overflows a reasonable line length.
	span := 0
	if len(matches) > 0 {
		span = matches[len(matches)-1][1] - matches[0][0]
	}
	score = 100000 - span*10 - matches[0][0]
	return true, matches, score
}
