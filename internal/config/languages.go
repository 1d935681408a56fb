package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Language describes the highlighting rules for one file type. Keywords
// ending in "|" are tagged with the secondary keyword class; the marker is
// stripped before matching.
type Language struct {
	Name              string   `toml:"name"`
	FileTypes         []string `toml:"file-types"`
	Keywords          []string `toml:"keywords"`
	LineComment       string   `toml:"line-comment"`
	BlockCommentStart string   `toml:"block-comment-start"`
	BlockCommentEnd   string   `toml:"block-comment-end"`
	HighlightNumbers  bool     `toml:"highlight-numbers"`
	HighlightStrings  bool     `toml:"highlight-strings"`
}

type Languages struct {
	Languages []Language `toml:"language"`
}

// LoadLanguages reads user-defined languages from languages.toml in the
// config directory. A missing file is not an error; built-in languages
// still apply.
func LoadLanguages() (Languages, error) {
	path, err := LanguagesPath()
	if err != nil {
		return Languages{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Languages{}, nil
		}
		return Languages{}, err
	}

	var cfg Languages
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Languages{}, err
	}
	return cfg, nil
}

func LanguagesPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "languages.toml"), nil
}
