package config

import (
	"path/filepath"
	"testing"
)

func TestLoadLanguagesMissingFile(t *testing.T) {
	t.Setenv("TILDE_CONFIG_HOME", t.TempDir())
	langs, err := LoadLanguages()
	if err != nil {
		t.Fatalf("LoadLanguages error: %v", err)
	}
	if len(langs.Languages) != 0 {
		t.Fatalf("languages = %d, want 0", len(langs.Languages))
	}
}

func TestLoadLanguages(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TILDE_CONFIG_HOME", dir)

	writeFile(t, filepath.Join(dir, "languages.toml"), `
[[language]]
name = "ini"
file-types = [".ini", ".cfg"]
keywords = ["true", "false", "section|"]
line-comment = ";"
highlight-numbers = true
highlight-strings = true

[[language]]
name = "sql"
file-types = [".sql"]
keywords = ["select", "from"]
block-comment-start = "/*"
block-comment-end = "*/"
`)

	langs, err := LoadLanguages()
	if err != nil {
		t.Fatalf("LoadLanguages error: %v", err)
	}
	if len(langs.Languages) != 2 {
		t.Fatalf("languages = %d, want 2", len(langs.Languages))
	}

	ini := langs.Languages[0]
	if ini.Name != "ini" {
		t.Fatalf("name = %q, want %q", ini.Name, "ini")
	}
	if len(ini.FileTypes) != 2 || ini.FileTypes[0] != ".ini" {
		t.Fatalf("file-types = %v", ini.FileTypes)
	}
	if ini.LineComment != ";" {
		t.Fatalf("line-comment = %q, want %q", ini.LineComment, ";")
	}
	if !ini.HighlightNumbers || !ini.HighlightStrings {
		t.Fatalf("flags = %v/%v, want true/true", ini.HighlightNumbers, ini.HighlightStrings)
	}

	sql := langs.Languages[1]
	if sql.BlockCommentStart != "/*" || sql.BlockCommentEnd != "*/" {
		t.Fatalf("block comment delimiters = %q/%q", sql.BlockCommentStart, sql.BlockCommentEnd)
	}
	if sql.HighlightNumbers {
		t.Fatalf("sql highlight-numbers = true, want default false")
	}
}

func TestLoadLanguagesMalformed(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TILDE_CONFIG_HOME", dir)
	writeFile(t, filepath.Join(dir, "languages.toml"), "[[language\nname=")

	if _, err := LoadLanguages(); err == nil {
		t.Fatalf("LoadLanguages succeeded on malformed file")
	}
}
