package gitinfo

import (
	"os"
	"path/filepath"
	"testing"
)

func writeHead(t *testing.T, dir, contents string) {
	t.Helper()
	gitDir := filepath.Join(dir, ".git")
	if err := os.MkdirAll(gitDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(gitDir, "HEAD"), []byte(contents), 0o644); err != nil {
		t.Fatalf("write HEAD: %v", err)
	}
}

func TestBranchFromRef(t *testing.T) {
	dir := t.TempDir()
	writeHead(t, dir, "ref: refs/heads/feature/parser\n")

	if got := Branch(dir); got != "parser" {
		t.Fatalf("Branch = %q, want %q", got, "parser")
	}
}

func TestBranchDetachedHead(t *testing.T) {
	dir := t.TempDir()
	writeHead(t, dir, "a1b2c3d4e5f6a7b8c9d0a1b2c3d4e5f6a7b8c9d0\n")

	if got := Branch(dir); got != "detached:a1b2c3d" {
		t.Fatalf("Branch = %q, want %q", got, "detached:a1b2c3d")
	}
}

func TestBranchWalksUpFromFile(t *testing.T) {
	dir := t.TempDir()
	writeHead(t, dir, "ref: refs/heads/main\n")

	sub := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	file := filepath.Join(sub, "x.txt")
	if err := os.WriteFile(file, []byte("hi"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if got := Branch(file); got != "main" {
		t.Fatalf("Branch = %q, want %q", got, "main")
	}
	if got := Root(file); got != dir {
		t.Fatalf("Root = %q, want %q", got, dir)
	}
}

func TestBranchGitFilePointer(t *testing.T) {
	dir := t.TempDir()
	realGit := filepath.Join(dir, "real-git")
	if err := os.MkdirAll(realGit, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(realGit, "HEAD"), []byte("ref: refs/heads/worktree\n"), 0o644); err != nil {
		t.Fatalf("write HEAD: %v", err)
	}

	tree := filepath.Join(dir, "tree")
	if err := os.MkdirAll(tree, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(tree, ".git"), []byte("gitdir: "+realGit+"\n"), 0o644); err != nil {
		t.Fatalf("write .git file: %v", err)
	}

	if got := Branch(tree); got != "worktree" {
		t.Fatalf("Branch = %q, want %q", got, "worktree")
	}
}

func TestBranchOutsideRepository(t *testing.T) {
	if got := Branch(t.TempDir()); got != "" {
		t.Fatalf("Branch = %q, want empty", got)
	}
}
