package gitsink

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/starford/chronotree/internal/apperr"
)

var testZone = time.FixedZone("-0500", -5*60*60)

func testParams(t *testing.T) Params {
	t.Helper()
	return Params{
		Dir:         filepath.Join(t.TempDir(), "out"),
		Document:    "notes.org",
		AuthorName:  "chronotree",
		AuthorEmail: "chronotree@localhost",
		Zone:        testZone,
	}
}

// logMessages returns commit messages from HEAD backwards.
func logMessages(t *testing.T, dir string) []string {
	t.Helper()
	repo, err := git.PlainOpen(dir)
	if err != nil {
		t.Fatalf("PlainOpen: %v", err)
	}
	iter, err := repo.Log(&git.LogOptions{})
	if err != nil {
		t.Fatalf("Log: %v", err)
	}
	var out []string
	err = iter.ForEach(func(c *object.Commit) error {
		out = append(out, c.Message)
		return nil
	})
	if err != nil {
		t.Fatalf("iterate log: %v", err)
	}
	return out
}

func TestInit_SeedsTemplateRepo(t *testing.T) {
	params := testParams(t)
	now := time.Date(2019, 12, 22, 9, 0, 0, 0, time.UTC)

	if _, err := Init(params, now); err != nil {
		t.Fatalf("Init: %v", err)
	}

	files := map[string]string{
		".gitattributes": "* text=auto\n",
		".gitignore":     ".#*\n",
		"notes.org":      "",
	}
	for name, want := range files {
		data, err := os.ReadFile(filepath.Join(params.Dir, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if string(data) != want {
			t.Errorf("%s = %q, want %q", name, data, want)
		}
	}

	msgs := logMessages(t, params.Dir)
	if len(msgs) != 1 || msgs[0] != "init" {
		t.Errorf("log = %v, want [init]", msgs)
	}
}

func TestInit_ExistingDirFails(t *testing.T) {
	params := testParams(t)
	if err := os.MkdirAll(params.Dir, 0o755); err != nil {
		t.Fatal(err)
	}

	_, err := Init(params, time.Now())
	if err == nil {
		t.Fatal("expected error for existing output dir")
	}
	if !errors.Is(err, apperr.ErrAlreadyExists) {
		t.Errorf("err = %v, want ErrAlreadyExists", err)
	}
}

func TestCommit_MessageContentAndAuthorTime(t *testing.T) {
	params := testParams(t)
	repo, err := Init(params, time.Date(2019, 12, 22, 9, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Init: %v", err)
	}

	at := time.Date(2019, 12, 22, 10, 30, 0, 0, time.UTC)
	hash, err := repo.Commit("section: A", at, []byte("* A\n"))
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if hash == "" {
		t.Error("empty commit hash")
	}

	data, err := os.ReadFile(filepath.Join(params.Dir, "notes.org"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "* A\n" {
		t.Errorf("document = %q", data)
	}

	opened, err := git.PlainOpen(params.Dir)
	if err != nil {
		t.Fatal(err)
	}
	iter, err := opened.Log(&git.LogOptions{})
	if err != nil {
		t.Fatal(err)
	}
	head, err := iter.Next()
	if err != nil {
		t.Fatal(err)
	}
	if head.Message != "section: A" {
		t.Errorf("message = %q", head.Message)
	}
	// Wall clock preserved, re-homed in the fixed offset zone.
	if got := head.Author.When.Format("2006-01-02 15:04:05 -0700"); got != "2019-12-22 10:30:00 -0500" {
		t.Errorf("author time = %q", got)
	}
	if head.Author.Name != "chronotree" || head.Author.Email != "chronotree@localhost" {
		t.Errorf("author = %s <%s>", head.Author.Name, head.Author.Email)
	}
}

func TestCommit_AllowsIdenticalContent(t *testing.T) {
	params := testParams(t)
	repo, err := Init(params, time.Unix(0, 0))
	if err != nil {
		t.Fatalf("Init: %v", err)
	}

	content := []byte("* X\n")
	if _, err := repo.Commit("section: X", time.Unix(1000, 0), content); err != nil {
		t.Fatalf("first commit: %v", err)
	}
	if _, err := repo.Commit("X", time.Unix(2000, 0), content); err != nil {
		t.Fatalf("identical content must still commit: %v", err)
	}

	msgs := logMessages(t, params.Dir)
	if len(msgs) != 3 {
		t.Errorf("log length = %d, want 3 (init + 2)", len(msgs))
	}
}
