package pathmatcher

import (
	"github.com/mibar/pathmatcher/internal/token"
	"github.com/mibar/pathmatcher/internal/trie"
)

// MatchFlags is a bitset describing how a query path relates to the set of
// paths stored in a [Matcher]. Flags accumulate by bitwise OR over a single
// traversal; a query can set more than one at once (e.g. an exact match is
// also, trivially, not a mismatch of any other flag).
type MatchFlags uint8

// NoMatch is the zero value: the query path is unrelated to every stored
// path.
const NoMatch MatchFlags = 0

const (
	// ExactMatch means the query path is itself a stored member.
	ExactMatch MatchFlags = 1 << iota
	// AncestorMatch means some strict ancestor of the query path is a
	// stored member.
	AncestorMatch
	// DescendantMatch means some strict descendant of the query path is
	// a stored member.
	DescendantMatch
)

// EveryMatch is ExactMatch|AncestorMatch|DescendantMatch combined; it is
// used internally to terminate a match traversal early once every
// possible flag has been set.
const EveryMatch = ExactMatch | AncestorMatch | DescendantMatch

// Has reports whether f has every flag in want set.
func (f MatchFlags) Has(want MatchFlags) bool {
	return f&want == want
}

// String renders the set bits for debugging, e.g. "Exact|Descendant".
func (f MatchFlags) String() string {
	if f == NoMatch {
		return "NoMatch"
	}
	names := []struct {
		flag MatchFlags
		name string
	}{
		{ExactMatch, "Exact"},
		{AncestorMatch, "Ancestor"},
		{DescendantMatch, "Descendant"},
	}
	out := ""
	for _, n := range names {
		if f&n.flag == 0 {
			continue
		}
		if out != "" {
			out += "|"
		}
		out += n.name
	}
	return out
}

// Match tokenizes path and reports how it relates to the stored set: see
// [MatchFlags]. A single recursive trie walk computes all applicable flags
// together, terminating early once [EveryMatch] is reached.
func (m *Matcher) Match(path string) MatchFlags {
	tokens := token.Tokenize(path)
	var result MatchFlags
	matchWalk(m.root, tokens, &result)
	return result
}

func matchWalk(node *trie.Node, remaining []string, result *MatchFlags) {
	if len(remaining) == 0 {
		if node.Terminator {
			*result |= ExactMatch
		}
		if node.NumChildren() > 0 {
			*result |= DescendantMatch
		}
		if node.Ellipsis != nil {
			*result |= DescendantMatch
			if node.Ellipsis.Terminator {
				*result |= ExactMatch
			}
		}
		return
	}

	if node.Terminator {
		*result |= AncestorMatch
	}

	first, rest := remaining[0], remaining[1:]
	for _, e := range node.Children() {
		if !token.Match(e.Token, first) {
			continue
		}
		matchWalk(e.Node, rest, result)
		if *result == EveryMatch {
			return
		}
	}

	if node.Ellipsis != nil {
		*result |= DescendantMatch
		if node.Ellipsis.Terminator {
			*result |= ExactMatch
		}

		// The ellipsis swallows a 0..n-1 token prefix of remaining before
		// handing the rest to its own subtree; swallowing all of
		// remaining is already covered by the terminator check above.
		for i := range remaining {
			matchWalk(node.Ellipsis, remaining[i:], result)
			if *result == EveryMatch {
				return
			}
		}
	}
}
