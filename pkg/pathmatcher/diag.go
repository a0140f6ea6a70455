package pathmatcher

import "github.com/mibar/pathmatcher/internal/diag"

// Stats reports the node count and maximum depth of the underlying trie,
// for diagnostics and the CLI's -stats flag.
type Stats = diag.Stats

// Stats computes node-count/depth statistics for m via a breadth-first
// sweep of the trie.
func (m *Matcher) Stats() Stats {
	return diag.Walk(m.root)
}

// Debug renders the underlying trie as an indented, human-readable tree.
// The output is not meant to round-trip; it exists for debugging and the
// CLI's -debug flag.
func (m *Matcher) Debug() string {
	return diag.Render(m.root)
}
