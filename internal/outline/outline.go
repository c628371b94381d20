// Package outline flattens the source tree into a document-ordered node
// sequence. The sequence index is the node's identity from here on: it is
// also the render order of the final document.
package outline

import (
	"log/slog"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/starford/chronotree/internal/source"
)

// leadingAsterisk matches a heading marker at the start of any line; such
// markers inside body text are escaped so they cannot be misread as headings.
var leadingAsterisk = regexp.MustCompile(`(?m)^\*`)

// Node is one outline entry, immutable once flattened.
type Node struct {
	Name     string
	Header   string
	Text     string
	Created  time.Time
	Modified time.Time
}

// Flatten returns the pre-order node sequence for the tree rooted at root.
// The root element itself is not emitted; its direct children sit at depth 1.
// defaults seeds the timestamp inheritance chain: a node with an absent or
// unparsable timestamp takes its parent's resolved value, and the resolved
// values are in turn the defaults for its children.
func Flatten(root *source.Node, defaults time.Time) []Node {
	out := make([]Node, 0, 16)
	for _, child := range root.Children {
		out = appendNode(out, child, 1, defaults, defaults)
	}
	return out
}

func appendNode(out []Node, n *source.Node, depth int, defaultCreated, defaultModified time.Time) []Node {
	slog.Debug("flattening node", slog.Int("depth", depth), slog.String("name", n.Name))

	created := parseEpoch(n.Created)
	if created.IsZero() {
		created = defaultCreated
	}
	modified := parseEpoch(n.Modified)
	if modified.IsZero() {
		modified = defaultModified
	}

	var text strings.Builder
	for _, frag := range n.Fragments {
		escaped := leadingAsterisk.ReplaceAllString(frag, `\ast{}`)
		text.WriteString(strings.TrimRight(escaped, " \t\r\n"))
		text.WriteString("\n")
	}

	out = append(out, Node{
		Name:     n.Name,
		Header:   strings.Repeat("*", depth) + " " + n.Name + "\n",
		Text:     text.String(),
		Created:  created,
		Modified: modified,
	})
	for _, child := range n.Children {
		out = appendNode(out, child, depth+1, created, modified)
	}
	return out
}

// parseEpoch converts an epoch-seconds attribute to a time. Zero, empty, and
// unparsable values all yield the zero time, which callers treat as absent.
func parseEpoch(raw string) time.Time {
	sec, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || sec == 0 {
		return time.Time{}
	}
	whole, frac := math.Modf(sec)
	return time.Unix(int64(whole), int64(frac*float64(time.Second)))
}
