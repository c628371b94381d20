package timeline

import (
	"fmt"
	"time"

	"github.com/starford/chronotree/internal/outline"
)

// SectionDescription labels a creation-only point, where a node's heading
// exists but its body has not been revealed yet.
const SectionDescription = "section: "

// Entry is one commit unit: a timestamp, the node whose event triggered it,
// a description label for the commit message, and a document snapshot that
// renders on demand.
type Entry struct {
	Time        time.Time
	Node        outline.Node
	Description string

	nodes []outline.Node
	seen  []int
}

// Render materializes the entry's document. The underlying snapshot is
// frozen, so repeated calls return identical output.
func (e Entry) Render() []string {
	return Render(e.nodes, e.seen)
}

// Entries builds the timeline for nodes and pairs every point with its
// description and lazy document snapshot, in commit order.
func Entries(nodes []outline.Node) []Entry {
	points := Build(nodes)
	out := make([]Entry, 0, len(points))
	for _, p := range points {
		count := p.Seen[p.Index]
		if count == 0 {
			// A point cannot close before its own event incremented the
			// count; reaching this is a programming defect, not bad input.
			panic(fmt.Sprintf("timeline: point at %s closed with zero seen count for node %d", p.Time, p.Index))
		}
		description := SectionDescription
		if count == 2 {
			description = ""
		}
		out = append(out, Entry{
			Time:        p.Time,
			Node:        nodes[p.Index],
			Description: description,
			nodes:       nodes,
			seen:        p.Seen,
		})
	}
	return out
}
