package pathmatcher

import (
	"iter"
	"strings"

	"github.com/mibar/pathmatcher/internal/trie"
)

// Enumerate returns every stored path as a "/"-prefixed string, in
// unspecified order. A terminator on the root (set by inserting "/" or "")
// is reported as the bare string "/".
func (m *Matcher) Enumerate() []string {
	var out []string
	for p := range m.All() {
		out = append(out, p)
	}
	return out
}

// All returns an [iter.Seq] over every stored path, depth-first, without
// materializing the whole result slice up front. Iteration order matches
// each node's children order followed by its ellipsis successor, and is
// not part of the external contract — only the resulting set is.
func (m *Matcher) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		enumerateWalk(m.root, "/", true, yield)
	}
}

// enumerateWalk mirrors pathsWalk's string-building convention: the
// accumulated path only grows a separator once we've left the root, so the
// root's own terminator reports as "/" rather than "".
func enumerateWalk(node *trie.Node, path string, isRoot bool, yield func(string) bool) bool {
	if node.Terminator {
		if !yield(path) {
			return false
		}
	}

	for _, e := range node.Children() {
		if !enumerateWalk(e.Node, joinToken(path, isRoot, e.Token), false, yield) {
			return false
		}
	}

	if node.Ellipsis != nil {
		if !enumerateWalk(node.Ellipsis, joinToken(path, isRoot, "..."), false, yield) {
			return false
		}
	}

	return true
}

func joinToken(path string, isRoot bool, tok string) string {
	if isRoot {
		return path + tok
	}
	var b strings.Builder
	b.WriteString(path)
	b.WriteByte('/')
	b.WriteString(tok)
	return b.String()
}
