// Package testutil provides shared test helpers for building source trees
// and temporary CherryTree databases.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/starford/chronotree/internal/source"
)

// TreeNode builds a source node with the given raw epoch timestamps and body
// fragments.
func TreeNode(name, created, modified string, fragments []string, children ...*source.Node) *source.Node {
	return &source.Node{
		Name:      name,
		Created:   created,
		Modified:  modified,
		Fragments: fragments,
		Children:  children,
	}
}

// Tree wraps top-level nodes in a synthetic root, the shape source.Load
// returns.
func Tree(children ...*source.Node) *source.Node {
	return &source.Node{Name: "cherrytree", Children: children}
}

// WriteSourceXML writes a CherryTree XML document into a temp directory and
// returns its path.
func WriteSourceXML(t *testing.T, xml string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "notes.ctd")
	if err := os.WriteFile(path, []byte(xml), 0o644); err != nil {
		t.Fatalf("write source xml: %v", err)
	}
	return path
}
