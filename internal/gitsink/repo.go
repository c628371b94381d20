// Package gitsink commits document snapshots into a freshly created git
// repository, one commit per timeline entry.
package gitsink

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/starford/chronotree/internal/apperr"
	"github.com/starford/chronotree/internal/storage"
)

// Template files seeded into the repository before the first commit. The
// document file starts empty so every later snapshot is a plain overwrite.
const (
	gitattributes = "* text=auto\n"
	gitignore     = ".#*\n"
)

// Params configures repository bootstrap.
type Params struct {
	// Dir is the output directory; it must not exist yet.
	Dir string
	// Document is the name of the single snapshot file, e.g. "notes.org".
	Document string
	// AuthorName and AuthorEmail sign every commit.
	AuthorName  string
	AuthorEmail string
	// Zone is the fixed offset author timestamps are expressed in.
	Zone *time.Location
}

// Repo is an initialized output repository.
type Repo struct {
	repo   *git.Repository
	wt     *git.Worktree
	store  storage.Provider
	params Params
}

// Init creates the output directory, seeds the template files, initializes a
// git repository there, and records the "init" commit at now.
func Init(params Params, now time.Time) (*Repo, error) {
	if _, err := os.Stat(params.Dir); err == nil {
		return nil, fmt.Errorf("gitsink: output dir %s: %w", params.Dir, apperr.ErrAlreadyExists)
	}
	if err := os.MkdirAll(params.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("gitsink: create output dir: %w", err)
	}

	store, err := storage.NewFS(params.Dir)
	if err != nil {
		return nil, fmt.Errorf("gitsink: %w", err)
	}

	repo, err := git.PlainInit(params.Dir, false)
	if err != nil {
		return nil, fmt.Errorf("gitsink: init repository: %w", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("gitsink: worktree: %w", err)
	}

	r := &Repo{repo: repo, wt: wt, store: store, params: params}

	template := map[string]string{
		".gitattributes": gitattributes,
		".gitignore":     gitignore,
		params.Document:  "",
	}
	for name, content := range template {
		if err := store.Write(name, []byte(content)); err != nil {
			return nil, fmt.Errorf("gitsink: seed %s: %w", name, err)
		}
		if _, err := wt.Add(name); err != nil {
			return nil, fmt.Errorf("gitsink: stage %s: %w", name, err)
		}
	}
	if _, err := wt.Commit("init", r.commitOptions(now)); err != nil {
		return nil, fmt.Errorf("gitsink: init commit: %w", err)
	}

	slog.Debug("output repository initialized", slog.String("dir", params.Dir))
	return r, nil
}

// Commit overwrites the document with content, stages it, and commits it
// with the given message and author time. It returns the commit hash.
func (r *Repo) Commit(message string, authorAt time.Time, content []byte) (string, error) {
	if err := r.store.Write(r.params.Document, content); err != nil {
		return "", fmt.Errorf("gitsink: write document: %w", err)
	}
	if _, err := r.wt.Add(r.params.Document); err != nil {
		return "", fmt.Errorf("gitsink: stage document: %w", err)
	}
	hash, err := r.wt.Commit(message, r.commitOptions(authorAt))
	if err != nil {
		return "", fmt.Errorf("gitsink: commit %q: %w", message, err)
	}
	return hash.String(), nil
}

// commitOptions builds the signature for a commit at t. Empty commits stay
// allowed: an entry may legitimately render a byte-identical document, e.g.
// the modification point of an empty-text node.
func (r *Repo) commitOptions(t time.Time) *git.CommitOptions {
	sig := &object.Signature{
		Name:  r.params.AuthorName,
		Email: r.params.AuthorEmail,
		When:  authorTime(t, r.params.Zone),
	}
	return &git.CommitOptions{
		Author:            sig,
		Committer:         sig,
		AllowEmptyCommits: true,
	}
}

// authorTime keeps t's wall clock and re-homes it in the fixed offset zone,
// so author dates are stable regardless of the host time zone.
func authorTime(t time.Time, zone *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, zone)
}
