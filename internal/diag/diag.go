// Package diag implements non-essential diagnostics over a trie: breadth-
// first node/depth statistics and a human-readable tree renderer, both used
// by pkg/pathmatcher's Stats/Debug and by cmd/pathmatch's -stats and -debug
// flags.
package diag

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mibar/pathmatcher/internal/trie"
)

// Stats summarizes the shape of a trie: how many nodes it has (including
// the root and every ellipsis node, each counted once) and its maximum
// depth in tokens.
type Stats struct {
	Nodes int
	Depth int
}

type queueItem struct {
	node  *trie.Node
	depth int
}

// ringQueue is a small FIFO ring buffer, sized for BFS over a trie. It is
// not exported: diag is its only consumer, and it only ever queues
// queueItem values.
type ringQueue struct {
	items []queueItem
	head  int
	tail  int
	count int
}

func newRingQueue() *ringQueue {
	return &ringQueue{items: make([]queueItem, 8)}
}

func (q *ringQueue) enqueue(item queueItem) {
	if q.count == len(q.items) {
		q.resize(q.count * 2)
	}
	q.items[q.tail] = item
	q.tail = (q.tail + 1) % len(q.items)
	q.count++
}

func (q *ringQueue) dequeue() (queueItem, bool) {
	if q.count == 0 {
		return queueItem{}, false
	}
	item := q.items[q.head]
	q.items[q.head] = queueItem{}
	q.head = (q.head + 1) % len(q.items)
	q.count--
	return item, true
}

func (q *ringQueue) isEmpty() bool { return q.count == 0 }

func (q *ringQueue) resize(newCap int) {
	buf := make([]queueItem, newCap)
	if q.count > 0 {
		if q.head < q.tail {
			copy(buf, q.items[q.head:q.tail])
		} else {
			n := copy(buf, q.items[q.head:])
			copy(buf[n:], q.items[:q.tail])
		}
	}
	q.items = buf
	q.head = 0
	q.tail = q.count % newCap
}

// Walk runs a breadth-first sweep over root and every node reachable
// through its pattern-keyed children and its ellipsis successors, computing
// Stats. A nil root reports zero nodes and zero depth.
func Walk(root *trie.Node) Stats {
	if root == nil {
		return Stats{}
	}

	q := newRingQueue()
	q.enqueue(queueItem{node: root, depth: 0})

	var s Stats
	for !q.isEmpty() {
		it, ok := q.dequeue()
		if !ok {
			break
		}
		s.Nodes++
		if it.depth > s.Depth {
			s.Depth = it.depth
		}

		for _, e := range it.node.Children() {
			q.enqueue(queueItem{node: e.Node, depth: it.depth + 1})
		}
		if it.node.Ellipsis != nil {
			q.enqueue(queueItem{node: it.node.Ellipsis, depth: it.depth + 1})
		}
	}
	return s
}

// Render produces an indented, human-readable dump of the subtree rooted
// at root, one line per node, for use in debugging and the CLI's -debug
// flag. It is not meant to round-trip.
func Render(root *trie.Node) string {
	var sb strings.Builder
	if root == nil {
		sb.WriteString("<nil>\n")
		return sb.String()
	}
	render(&sb, root, "<root>", 0)
	return sb.String()
}

func render(sb *strings.Builder, n *trie.Node, label string, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(label)
	if n.Terminator {
		sb.WriteString(" [terminator]")
	}
	sb.WriteByte('\n')

	for _, e := range n.Children() {
		render(sb, e.Node, fmt.Sprintf("%q", e.Token), depth+1)
	}
	if n.Ellipsis != nil {
		render(sb, n.Ellipsis, "...", depth+1)
	}
}

// String is a small convenience used by Stats' callers (e.g. the CLI) to
// report counts in one line.
func (s Stats) String() string {
	return "nodes=" + strconv.Itoa(s.Nodes) + " depth=" + strconv.Itoa(s.Depth)
}
