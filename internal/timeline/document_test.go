package timeline

import (
	"strings"
	"testing"

	"github.com/starford/chronotree/internal/outline"
)

func TestRender_SeenStates(t *testing.T) {
	nodes := []outline.Node{
		node("unseen", 0, 0, "hidden\n"),
		node("created", 0, 0, "pending\n"),
		node("modified", 0, 0, "visible\n"),
		node("empty", 0, 0, ""),
	}
	seen := []int{0, 1, 2, 2}

	got := strings.Join(Render(nodes, seen), "")
	want := "* created\n* modified\nvisible\n* empty\n"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRender_Idempotent(t *testing.T) {
	nodes := []outline.Node{
		node("A", 0, 0, "a\n"),
		node("B", 0, 0, "b\n"),
	}
	seen := []int{2, 1}

	first := strings.Join(Render(nodes, seen), "")
	second := strings.Join(Render(nodes, seen), "")
	if first != second {
		t.Errorf("repeated renders differ: %q vs %q", first, second)
	}
}

func TestRender_AllUnseenIsEmpty(t *testing.T) {
	nodes := []outline.Node{node("A", 0, 0, "a\n")}
	if out := Render(nodes, []int{0}); len(out) != 0 {
		t.Errorf("Render = %v, want empty", out)
	}
}
