// Package pathmatcher implements a wildcard-aware hierarchical path matcher:
// a trie over slash-delimited, tokenized paths whose tokens may carry
// shell-style glob wildcards, plus a distinguished "..." ellipsis token
// matching a span of intermediate tokens.
//
// A [Matcher] stores a set of such paths and answers, for any concrete
// query path, whether it is an exact member, an ancestor of a member, a
// descendant of a member, or unrelated — see [MatchFlags]. It also supports
// insertion, removal, subtree pruning, enumeration, deep copy, structural
// equality, and set-wise union and difference against another matcher.
//
// Every operation is total: malformed patterns (an unmatched '[') degrade
// to literal matching instead of failing, and there is no error return
// anywhere in this package. A [Matcher] is not safe for concurrent
// mutation, but concurrent reads (Match, Enumerate, Equal) are safe on an
// instance that isn't being mutated.
package pathmatcher

import "github.com/mibar/pathmatcher/internal/trie"

// Matcher owns a set of wildcard-aware paths backed by a prefix trie.
// The zero value is not usable; construct one with [New].
type Matcher struct {
	root   *trie.Node
	limits Limits
}

// New returns an empty Matcher with unrestricted Limits.
func New() *Matcher {
	return &Matcher{root: trie.New()}
}

// NewWithLimits returns an empty Matcher that enforces l on every Insert.
func NewWithLimits(l Limits) *Matcher {
	return &Matcher{root: trie.New(), limits: l}
}

// Clear discards every stored path, resetting the matcher to empty.
func (m *Matcher) Clear() {
	m.root = trie.New()
}

// IsEmpty reports whether the matcher holds no paths at all.
func (m *Matcher) IsEmpty() bool {
	return m.root.IsEmpty()
}

// Clone returns a deep copy of m: mutating the clone never affects m, and
// vice versa.
func (m *Matcher) Clone() *Matcher {
	return &Matcher{root: m.root.Clone(), limits: m.limits}
}

// Equal reports whether m and other store exactly the same set of paths,
// structurally: same terminators, same children keys, same ellipsis
// presence, recursively.
func (m *Matcher) Equal(other *Matcher) bool {
	if other == nil {
		return false
	}
	return m.root.Equal(other.root)
}
