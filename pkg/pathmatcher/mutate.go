package pathmatcher

import (
	"github.com/mibar/pathmatcher/internal/token"
	"github.com/mibar/pathmatcher/internal/trie"
)

// Insert tokenizes path and adds it to the matcher, returning true iff the
// path was not already a member. A token equal to the literal "..." is
// treated as the ellipsis wildcard, not a literal name.
//
// If path (after tokenization) violates the matcher's Limits, Insert is a
// no-op and returns false — consistent with the matcher's total,
// infallible contract: an over-limit path is treated exactly like one
// that's already present.
func (m *Matcher) Insert(path string) bool {
	tokens := token.Tokenize(path)
	if m.limits.exceeds(tokens) {
		return false
	}

	node := m.root
	for _, tok := range tokens {
		if tok == token.Ellipsis {
			node, _ = node.GetOrCreateEllipsis()
		} else {
			node, _ = node.GetOrCreateChild(tok)
		}
	}

	changed := !node.Terminator
	node.Terminator = true
	return changed
}

// Remove tokenizes path and clears its terminator if present, pruning any
// node left empty by invariant I1 on the way back up. It returns whether
// the terminator was actually cleared. Removing a path that was never
// inserted, or a prefix of an inserted path that isn't itself a member, is
// a no-op that returns false.
func (m *Matcher) Remove(path string) bool {
	tokens := token.Tokenize(path)
	return removeWalk(m.root, tokens, false)
}

// Prune is like Remove, but also discards every child and ellipsis
// successor of the terminal node, dropping the entire subtree rooted
// there. It returns true iff anything changed — the terminator was
// cleared, or the subtree was non-empty.
func (m *Matcher) Prune(path string) bool {
	tokens := token.Tokenize(path)
	return removeWalk(m.root, tokens, true)
}

func removeWalk(node *trie.Node, tokens []string, prune bool) bool {
	if len(tokens) == 0 {
		removed := false
		if prune {
			removed = node.ClearChildren()
		}
		removed = removed || node.Terminator
		node.Terminator = false
		return removed
	}

	name := tokens[0]
	ellipsis := name == token.Ellipsis

	var child *trie.Node
	if ellipsis {
		child = node.Ellipsis
	} else {
		child = node.FindChildExact(name)
	}
	if child == nil {
		return false
	}

	removed := removeWalk(child, tokens[1:], prune)
	if child.IsEmpty() {
		if ellipsis {
			node.DropEllipsis()
		} else {
			node.RemoveChildExact(name)
		}
	}
	return removed
}

// UnionFrom merges every path in other into m, returning whether m changed.
// Shared structure is never aliased: nodes copied from other are deep
// copies, so later mutating other never affects m.
func (m *Matcher) UnionFrom(other *Matcher) bool {
	if other == nil {
		return false
	}
	return unionWalk(m.root, other.root)
}

func unionWalk(dst, src *trie.Node) bool {
	changed := false
	if !dst.Terminator && src.Terminator {
		dst.Terminator = true
		changed = true
	}

	for _, e := range src.Children() {
		if child := dst.FindChildExact(e.Token); child != nil {
			// changed must stay on the right of ||: unionWalk has side
			// effects and must never be short-circuited out.
			changed = unionWalk(child, e.Node) || changed
		} else {
			child, _ := dst.GetOrCreateChild(e.Token)
			*child = *e.Node.Clone()
			changed = true
		}
	}

	if src.Ellipsis != nil {
		if dst.Ellipsis != nil {
			changed = unionWalk(dst.Ellipsis, src.Ellipsis) || changed
		} else {
			ellipsis, _ := dst.GetOrCreateEllipsis()
			*ellipsis = *src.Ellipsis.Clone()
			changed = true
		}
	}

	return changed
}

// DifferenceFrom removes every path in other from m, returning whether m
// changed. A path present in other but absent from m is silently skipped:
// set difference only removes what's actually there.
func (m *Matcher) DifferenceFrom(other *Matcher) bool {
	if other == nil {
		return false
	}
	return differenceWalk(m.root, other.root)
}

func differenceWalk(dst, src *trie.Node) bool {
	changed := false
	if dst.Terminator && src.Terminator {
		dst.Terminator = false
		changed = true
	}

	for _, e := range src.Children() {
		child := dst.FindChildExact(e.Token)
		if child == nil {
			continue
		}
		if differenceWalk(child, e.Node) {
			changed = true
			if child.IsEmpty() {
				dst.RemoveChildExact(e.Token)
			}
		}
	}

	if dst.Ellipsis != nil && src.Ellipsis != nil {
		if differenceWalk(dst.Ellipsis, src.Ellipsis) {
			changed = true
			if dst.Ellipsis.IsEmpty() {
				dst.DropEllipsis()
			}
		}
	}

	return changed
}
