package gitinfo

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-git/go-git/v5"
)

// GitInfoAdapter implements domain.ChangeDetector using go-git.
type GitInfoAdapter struct{}

func New() *GitInfoAdapter {
	return &GitInfoAdapter{}
}

func (g *GitInfoAdapter) IsGitRepo(rootPath string) bool {
	_, err := open(rootPath)
	return err == nil
}

// ChangedFiles returns the files below rootPath that are modified, staged
// or untracked in the enclosing worktree. Deleted files are left out.
// Paths are relative to rootPath and sorted.
func (g *GitInfoAdapter) ChangedFiles(rootPath string) ([]string, error) {
	repo, err := open(rootPath)
	if err != nil {
		return nil, fmt.Errorf("opening git repo: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("getting worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("getting status: %w", err)
	}

	wtRoot, err := realPath(wt.Filesystem.Root())
	if err != nil {
		return nil, err
	}
	root, err := realPath(rootPath)
	if err != nil {
		return nil, err
	}

	var files []string
	for name, st := range status {
		if st.Worktree == git.Deleted || (st.Staging == git.Deleted && st.Worktree == git.Unmodified) {
			continue
		}
		if st.Worktree == git.Unmodified && st.Staging == git.Unmodified {
			continue
		}
		rel, err := filepath.Rel(root, filepath.Join(wtRoot, filepath.FromSlash(name)))
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}
		files = append(files, rel)
	}
	slices.Sort(files)
	return files, nil
}

func open(rootPath string) (*git.Repository, error) {
	return git.PlainOpenWithOptions(rootPath, &git.PlainOpenOptions{DetectDotGit: true})
}

func realPath(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", p, err)
	}
	return resolved, nil
}
