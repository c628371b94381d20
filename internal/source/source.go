// Package source loads a CherryTree XML database into a generic node tree.
package source

import (
	"bytes"
	"fmt"
	"os"

	"github.com/beevik/etree"

	"github.com/starford/chronotree/internal/apperr"
)

// Node is one raw entry of the source tree. Timestamps are kept as the raw
// attribute strings (epoch seconds, possibly fractional); an empty or zero
// value means "absent, inherit from the parent".
type Node struct {
	Name      string
	Created   string
	Modified  string
	Fragments []string
	Children  []*Node
}

// Load reads the CherryTree database at path and returns a synthetic root
// whose children are the document's top-level nodes.
func Load(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("source: read %s: %w", path, err)
	}
	root, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("source: parse %s: %w", path, err)
	}
	return root, nil
}

// Parse decodes raw CherryTree XML. Parsing is permissive: non-printing
// characters from pasted text must not abort the load, so decode errors on
// malformed content are tolerated as long as a document root survives.
func Parse(data []byte) (*Node, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, apperr.ErrNoDocument
	}
	doc := etree.NewDocument()
	doc.ReadSettings.Permissive = true
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("decode xml: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, apperr.ErrNoDocument
	}
	out := &Node{Name: root.Tag}
	for _, el := range root.SelectElements("node") {
		out.Children = append(out.Children, fromElement(el))
	}
	return out, nil
}

func fromElement(el *etree.Element) *Node {
	n := &Node{
		Name:     el.SelectAttrValue("name", ""),
		Created:  el.SelectAttrValue("ts_creation", ""),
		Modified: el.SelectAttrValue("ts_lastsave", ""),
	}
	for _, rt := range el.SelectElements("rich_text") {
		if t := rt.Text(); t != "" {
			n.Fragments = append(n.Fragments, t)
		}
	}
	for _, child := range el.SelectElements("node") {
		n.Children = append(n.Children, fromElement(child))
	}
	return n
}
