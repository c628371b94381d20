package timeline

import "github.com/starford/chronotree/internal/outline"

// Render produces the full document at one timeline point, as ordered text
// chunks whose concatenation is the file contents. It is a pure function of
// its arguments: rendering the same snapshot twice yields identical output.
//
// Nodes appear in index order, which is document order. A node seen at least
// once contributes its heading; its body follows only once both of its events
// have occurred, and only when non-empty. Unseen nodes are absent entirely.
func Render(nodes []outline.Node, seen []int) []string {
	out := make([]string, 0, len(nodes))
	for i, n := range nodes {
		if seen[i] < 1 {
			continue
		}
		out = append(out, n.Header)
		if seen[i] == 2 && n.Text != "" {
			out = append(out, n.Text)
		}
	}
	return out
}
