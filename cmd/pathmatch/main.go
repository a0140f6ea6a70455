// Command pathmatch is a small harness around pkg/pathmatcher: it builds a
// matcher from a comma-separated path list, then runs queries, enumeration,
// or debug stats against it.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mibar/pathmatcher/pkg/pathmatcher"
)

func main() {
	paths := flag.String("paths", "", "comma-separated paths to insert")
	queries := flag.String("queries", "", "comma-separated paths to match against the inserted set")
	enumerate := flag.Bool("enumerate", false, "print every inserted path")
	stats := flag.Bool("stats", false, "print node-count/depth statistics")
	debug := flag.Bool("debug", false, "print an indented dump of the underlying trie")
	maxTokens := flag.Int("max-tokens", 0, "maximum tokens per path (0 = unrestricted)")
	flag.Parse()

	if *paths == "" {
		fmt.Fprintln(os.Stderr, "usage: pathmatch -paths '/a/b,/a/*/c' [-queries '/a/b,/x'] [-enumerate] [-stats] [-debug]")
		os.Exit(1)
	}

	var limits pathmatcher.Limits
	if *maxTokens > 0 {
		limits.MaxTokens = maxTokens
	}

	m := pathmatcher.NewWithLimits(limits)
	for _, p := range strings.Split(*paths, ",") {
		m.Insert(p)
	}

	if *queries != "" {
		for _, q := range strings.Split(*queries, ",") {
			fmt.Printf("%s: %s\n", q, m.Match(q))
		}
	}

	if *enumerate {
		for _, p := range m.Enumerate() {
			fmt.Println(p)
		}
	}

	if *stats {
		fmt.Println(m.Stats())
	}

	if *debug {
		fmt.Print(m.Debug())
	}
}
