// Package trie implements the node type backing a wildcard-aware path
// matcher: a terminator flag, an ordered multimap of children keyed by
// pattern token, and a distinguished ellipsis successor.
//
// This package only concerns itself with a single node's local operations:
// find/create/remove a child, report emptiness, deep copy, deep equality.
// The recursive traversal algorithms that walk a whole trie — insert,
// remove, prune, match, enumerate, union, difference — live one layer up,
// in pkg/pathmatcher, which is the only intended consumer of this package.
package trie

import "github.com/mibar/pathmatcher/internal/token"

// Edge is a single outgoing edge from a node: the pattern token that keys
// it and the node it leads to.
type Edge struct {
	Token string
	Node  *Node
}

// Node is a single state in the trie. The zero value is a valid empty node.
//
// No two edges out of a node share the same token string, even though two
// distinct tokens may both match a given query literal. A non-root node is
// retained by its parent only while it is a terminator, or has at least
// one child, or has an ellipsis child — enforced by callers via IsEmpty,
// not by Node itself (Node has no notion of "its parent").
type Node struct {
	Terminator bool
	Ellipsis   *Node

	children []Edge
	index    map[string]*Node // token -> child, an O(1) mirror of children enforcing invariant I2
}

// New returns a fresh, empty node.
func New() *Node {
	return &Node{}
}

// FindChildExact returns the unique child whose stored key equals token as
// a string, or nil. This never considers the ellipsis slot.
func (n *Node) FindChildExact(tok string) *Node {
	return n.index[tok]
}

// Children returns the node's outgoing pattern-keyed edges, ordered by
// [token.Less]. The slice is a copy; mutating it does not affect the node.
//
// Callers needing every child whose pattern token could possibly match a
// literal scan this slice and apply [token.Match] per candidate —
// narrowing by a bucketed key comparator first is a micro-optimization
// left undone here in favor of the straightforward linear scan.
func (n *Node) Children() []Edge {
	out := make([]Edge, len(n.children))
	copy(out, n.children)
	return out
}

// NumChildren reports how many pattern-keyed children the node has.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// GetOrCreateChild returns the existing child keyed by tok, or creates and
// inserts one in sorted position, reporting whether it created it.
func (n *Node) GetOrCreateChild(tok string) (*Node, bool) {
	if existing := n.index[tok]; existing != nil {
		return existing, false
	}

	child := New()
	pos := n.insertionPoint(tok)
	n.children = append(n.children, Edge{})
	copy(n.children[pos+1:], n.children[pos:])
	n.children[pos] = Edge{Token: tok, Node: child}

	if n.index == nil {
		n.index = make(map[string]*Node)
	}
	n.index[tok] = child

	return child, true
}

// GetOrCreateEllipsis returns the node's ellipsis successor, creating it if
// absent, reporting whether it created it.
func (n *Node) GetOrCreateEllipsis() (*Node, bool) {
	if n.Ellipsis != nil {
		return n.Ellipsis, false
	}
	n.Ellipsis = New()
	return n.Ellipsis, true
}

// RemoveChildExact drops the child keyed by tok, reporting whether one was
// present.
func (n *Node) RemoveChildExact(tok string) bool {
	for i := range n.children {
		if n.children[i].Token == tok {
			n.children = append(n.children[:i], n.children[i+1:]...)
			delete(n.index, tok)
			return true
		}
	}
	return false
}

// DropEllipsis removes the ellipsis successor, reporting whether one was
// present.
func (n *Node) DropEllipsis() bool {
	if n.Ellipsis == nil {
		return false
	}
	n.Ellipsis = nil
	return true
}

// ClearChildren drops every pattern-keyed child and the ellipsis successor,
// reporting whether anything was dropped.
func (n *Node) ClearChildren() bool {
	dropped := len(n.children) > 0 || n.Ellipsis != nil
	n.children = nil
	n.index = nil
	n.Ellipsis = nil
	return dropped
}

// IsEmpty reports whether invariant I1 would prune this node from its
// parent: no terminator, no children, no ellipsis.
func (n *Node) IsEmpty() bool {
	return !n.Terminator && len(n.children) == 0 && n.Ellipsis == nil
}

// Clone returns a deep copy of the subtree rooted at n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{Terminator: n.Terminator}
	if len(n.children) > 0 {
		out.children = make([]Edge, len(n.children))
		out.index = make(map[string]*Node, len(n.children))
		for i, e := range n.children {
			cloned := e.Node.Clone()
			out.children[i] = Edge{Token: e.Token, Node: cloned}
			out.index[e.Token] = cloned
		}
	}
	out.Ellipsis = n.Ellipsis.Clone()
	return out
}

// Equal performs a deep structural comparison: same terminator flag, same
// ellipsis presence and equality, and for every child under n, the other
// node has a child with an equal stored key whose subtree is also equal.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Terminator != other.Terminator {
		return false
	}
	if len(n.children) != len(other.children) {
		return false
	}
	for _, e := range n.children {
		oc := other.FindChildExact(e.Token)
		if oc == nil || !e.Node.Equal(oc) {
			return false
		}
	}
	return n.Ellipsis.Equal(other.Ellipsis)
}

// insertionPoint returns the index at which tok should be inserted to keep
// n.children ordered by [token.Less].
func (n *Node) insertionPoint(tok string) int {
	lo, hi := 0, len(n.children)
	for lo < hi {
		mid := (lo + hi) / 2
		if token.Less(n.children[mid].Token, tok) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
