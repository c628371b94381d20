// Package timeline orders node creation and modification events into a
// chronological sequence of document snapshots, one per commit to be made.
package timeline

import (
	"sort"
	"time"

	"github.com/starford/chronotree/internal/outline"
)

// Event marks a single creation or modification of one node.
type Event struct {
	Time  time.Time
	Index int
}

// Point is one collapsed timeline point: the moment a commit happens. Seen
// holds, per node index, how many of that node's events have occurred up to
// and including this point (0, 1, or 2). The slice is a private copy, frozen
// at emission.
type Point struct {
	Time  time.Time
	Index int
	Seen  []int
}

// Build turns the flat node sequence into ordered timeline points.
//
// Every node contributes two events, creation and modification. Events are
// sorted by time only; the sort is stable, so simultaneous events of distinct
// nodes keep flattening order. That tie-break is deliberate and the only rule
// for equal timestamps.
//
// A node whose creation and modification coincide yields both events at the
// same instant; the pair collapses into a single point carrying the count
// after both increments. Stability guarantees the pair stays adjacent, since
// the two events enter the list consecutively.
func Build(nodes []outline.Node) []Point {
	events := make([]Event, 0, 2*len(nodes))
	for i, n := range nodes {
		events = append(events, Event{Time: n.Created, Index: i}, Event{Time: n.Modified, Index: i})
	}
	sort.SliceStable(events, func(a, b int) bool {
		return events[a].Time.Before(events[b].Time)
	})

	seen := make([]int, len(nodes))
	points := make([]Point, 0, len(events))
	for k, ev := range events {
		seen[ev.Index]++
		if k+1 < len(events) {
			next := events[k+1]
			if next.Index == ev.Index && next.Time.Equal(ev.Time) {
				// Coincident pair; fold into the next event's point.
				continue
			}
		}
		points = append(points, Point{
			Time:  ev.Time,
			Index: ev.Index,
			Seen:  append([]int(nil), seen...),
		})
	}
	return points
}
