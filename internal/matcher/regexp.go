package matcher

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/mattn-fsel/fsel/internal/item"
	"github.com/mattn-fsel/fsel/internal/util"
)

// splitQueryTerms ports peco's filter/regexp.go SplitQueryTerms: terms
// prefixed with "-" are negative (excluding) terms, "\-" or bare "-"/"--"
// are literal positive terms, everything else is a positive term.
func splitQueryTerms(query string) (positive, negative []string) {
	for _, tok := range strings.Fields(strings.TrimSpace(query)) {
		switch {
		case strings.HasPrefix(tok, `\-`):
			positive = append(positive, tok[1:])
		case tok == "-" || tok == "--":
			positive = append(positive, tok)
		case strings.HasPrefix(tok, "-"):
			negative = append(negative, tok[1:])
		default:
			positive = append(positive, tok)
		}
	}
	return
}

// compileTerms compiles each term into a smart-case regexp: case
// insensitive unless the full query contains an uppercase letter, exactly
// as peco's filter.NewSmartCase does.
func compileTerms(terms []string, fullQuery string) ([]*regexp.Regexp, error) {
	flags := ""
	if !util.ContainsUpper(fullQuery) {
		flags = "(?i)"
	}
	out := make([]*regexp.Regexp, 0, len(terms))
	for _, t := range terms {
		re, err := regexp.Compile(flags + t)
		if err != nil {
			return nil, fmt.Errorf("failed to compile regular expression %q: %w", t, err)
		}
		out = append(out, re)
	}
	return out, nil
}

// byMatchStart sorts match index pairs by starting offset, tie broken by
// shorter spans first. Lifted from peco's filter.go.
type byMatchStart [][]int

func (m byMatchStart) Len() int      { return len(m) }
func (m byMatchStart) Swap(i, j int) { m[i], m[j] = m[j], m[i] }
func (m byMatchStart) Less(i, j int) bool {
	if m[i][0] != m[j][0] {
		return m[i][0] < m[j][0]
	}
	return m[i][1]-m[i][0] < m[j][1]-m[j][0]
}

func matchContains(a, b []int) bool { return a[0] <= b[0] && a[1] >= b[1] }
func matchOverlaps(a, b []int) bool {
	return a[0] <= b[0] && a[1] >= b[0] || a[0] <= b[1] && a[1] >= b[1]
}
func mergeMatches(a, b []int) []int {
	lo, hi := a[0], a[1]
	if b[0] < lo {
		lo = b[0]
	}
	if b[1] > hi {
		hi = b[1]
	}
	return []int{lo, hi}
}

func dedupeMatches(matches [][]int) [][]int {
	sort.Sort(byMatchStart(matches))
	deduped := make([][]int, 0, len(matches))
	for i, m := range matches {
		if i == 0 {
			deduped = append(deduped, m)
			continue
		}
		prev := deduped[len(deduped)-1]
		switch {
		case matchContains(prev, m):
		case matchOverlaps(prev, m):
			deduped[len(deduped)-1] = mergeMatches(prev, m)
		default:
			deduped = append(deduped, m)
		}
	}
	return deduped
}

// regexCompiled holds the compiled positive/negative regexps for one query,
// computed once per Matcher run rather than once per line.
type regexCompiled struct {
	positive []*regexp.Regexp
	negative []*regexp.Regexp
}

func compileRegexQuery(query string) (*regexCompiled, error) {
	posTerms, negTerms := splitQueryTerms(query)
	pos, err := compileTerms(posTerms, query)
	if err != nil {
		return nil, fmt.Errorf("failed to compile positive terms: %w", err)
	}
	neg, err := compileTerms(negTerms, query)
	if err != nil {
		return nil, fmt.Errorf("failed to compile negative terms: %w", err)
	}
	return &regexCompiled{positive: pos, negative: neg}, nil
}

// regexMatch applies a pre-compiled smart-case, term-split regexp query to
// an item, returning the deduplicated match indices and a score.
func regexMatch(c *regexCompiled, it *item.Item) (ok bool, indices [][]int, score int) {
	v := it.DisplayString()

	for _, re := range c.negative {
		if re.MatchString(v) {
			return false, nil, 0
		}
	}

	if len(c.positive) == 0 {
		return true, nil, 0
	}

	var matches [][]int
	for _, re := range c.positive {
		m := re.FindAllStringSubmatchIndex(v, -1)
		if m == nil {
			return false, nil, 0
		}
		matches = append(matches, m...)
	}

	deduped := dedupeMatches(matches)

	matchedLen := 0
	for _, m := range deduped {
		matchedLen += m[1] - m[0]
	}
	return true, deduped, matchedLen
}
