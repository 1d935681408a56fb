package editor

import (
	"path/filepath"
	"strings"

	"github.com/kobzarvs/tilde/internal/config"
)

const (
	highlightNumbers = 1 << iota
	highlightStrings
)

// Syntax holds the highlighting rules for one file type. A keyword ending
// in "|" belongs to the secondary keyword class; the marker is stripped
// before matching.
type Syntax struct {
	Name              string
	FileMatch         []string
	Keywords          []string
	LineComment       string
	BlockCommentStart string
	BlockCommentEnd   string
	Flags             int
}

var cSyntax = &Syntax{
	Name:      "c",
	FileMatch: []string{".c", ".h", ".cpp"},
	Keywords: []string{
		"switch", "if", "while", "for", "break", "continue", "return", "else",
		"struct", "union", "typedef", "static", "enum", "class", "case",
		"int|", "long|", "double|", "float|", "char|", "unsigned|", "signed|",
		"void|",
	},
	LineComment:       "//",
	BlockCommentStart: "/*",
	BlockCommentEnd:   "*/",
	Flags:             highlightNumbers | highlightStrings,
}

var goSyntax = &Syntax{
	Name:      "go",
	FileMatch: []string{".go"},
	Keywords: []string{
		"break", "case", "chan", "const", "continue", "default", "defer",
		"else", "fallthrough", "for", "func", "go", "goto", "if", "import",
		"interface", "map", "package", "range", "return", "select", "struct",
		"switch", "type", "var",
		"bool|", "byte|", "error|", "float32|", "float64|", "int|", "int8|",
		"int16|", "int32|", "int64|", "rune|", "string|", "uint|", "uint8|",
		"uint16|", "uint32|", "uint64|", "uintptr|",
	},
	LineComment:       "//",
	BlockCommentStart: "/*",
	BlockCommentEnd:   "*/",
	Flags:             highlightNumbers | highlightStrings,
}

func builtinSyntaxes() []*Syntax {
	return []*Syntax{cSyntax, goSyntax}
}

// AddLanguages prepends user-defined languages from languages.toml so they
// take precedence over the built-in tables.
func (e *Editor) AddLanguages(langs config.Languages) {
	table := make([]*Syntax, 0, len(langs.Languages)+len(e.syntaxes))
	for i := range langs.Languages {
		table = append(table, syntaxFromConfig(&langs.Languages[i]))
	}
	e.syntaxes = append(table, e.syntaxes...)
	e.selectSyntax()
}

func syntaxFromConfig(lang *config.Language) *Syntax {
	flags := 0
	if lang.HighlightNumbers {
		flags |= highlightNumbers
	}
	if lang.HighlightStrings {
		flags |= highlightStrings
	}
	return &Syntax{
		Name:              lang.Name,
		FileMatch:         lang.FileTypes,
		Keywords:          lang.Keywords,
		LineComment:       lang.LineComment,
		BlockCommentStart: lang.BlockCommentStart,
		BlockCommentEnd:   lang.BlockCommentEnd,
		Flags:             flags,
	}
}

// selectSyntax picks the syntax matching the current filename and re-tags
// the whole document. Patterns starting with "." compare against the file
// extension, anything else matches as a substring of the name.
func (e *Editor) selectSyntax() {
	prev := e.syntax
	e.syntax = matchSyntax(e.syntaxes, e.filename)
	if e.syntax == prev {
		return
	}
	for i := range e.rows {
		e.updateSyntax(i)
	}
}

func matchSyntax(table []*Syntax, filename string) *Syntax {
	if filename == "" {
		return nil
	}
	ext := filepath.Ext(filename)
	for _, s := range table {
		for _, pattern := range s.FileMatch {
			isExt := strings.HasPrefix(pattern, ".")
			if (isExt && ext != "" && ext == pattern) ||
				(!isExt && strings.Contains(filename, pattern)) {
				return s
			}
		}
	}
	return nil
}
