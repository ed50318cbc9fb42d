// Search over record data.
//
// Search walks a list and every nested child list depth first, matching a
// pattern against each record's Data. Literal patterns (no regex
// metacharacters) take a fast path through strings.Contains; anything
// else is compiled as a regular expression. Results are yielded lazily so
// callers can break out of the range loop to stop early.
package gedcom

import (
	"fmt"
	"iter"
	"regexp"
	"strings"
)

// SearchOptions configures Search behaviour.
type SearchOptions struct {
	CaseSensitive bool
	Tags          TagSet // only records with these tags; nil matches all
}

// Match is a single search result.
type Match struct {
	Record Record
	Line   string // the record rendered in line form
}

// Search matches pattern against the Data of every record in l and its
// descendants. An invalid regex yields a single ErrInvalidPattern error.
func (l *List) Search(pattern string, opts SearchOptions) iter.Seq2[Match, error] {
	return func(yield func(Match, error) bool) {
		match, err := matcher(pattern, opts.CaseSensitive)
		if err != nil {
			yield(Match{}, err)
			return
		}
		for r := range walk(l) {
			if opts.Tags != nil && !opts.Tags.Has(r.Tag) {
				continue
			}
			if !match(r.Data) {
				continue
			}
			if !yield(Match{Record: r, Line: r.String()}, nil) {
				return
			}
		}
	}
}

// matcher returns a predicate for pattern.
func matcher(pattern string, caseSensitive bool) (func(string) bool, error) {
	if regexp.QuoteMeta(pattern) == pattern {
		if caseSensitive {
			return func(s string) bool {
				return strings.Contains(s, pattern)
			}, nil
		}
		lower := strings.ToLower(pattern)
		return func(s string) bool {
			return strings.Contains(strings.ToLower(s), lower)
		}, nil
	}

	if !caseSensitive {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}
	return re.MatchString, nil
}
