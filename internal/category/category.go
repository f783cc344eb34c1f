// Package category maps file extensions to semantic categories.
package category

import (
	"sort"
	"strings"
)

// Category is a semantic grouping of file types.
type Category string

const (
	Documents   Category = "Documents"
	Images      Category = "Images"
	Videos      Category = "Videos"
	Audio       Category = "Audio"
	Archives    Category = "Archives"
	Code        Category = "Code"
	Executables Category = "Executables"
	Fonts       Category = "Fonts"
	EBooks      Category = "eBooks"
	Data        Category = "Data"
	// Other is the fallback for extensions absent from the table.
	Other Category = "Other"
)

// order fixes lookup priority. An extension listed under more than one
// category (.json, .xml, .csv) resolves to the first category that claims it.
var order = []Category{
	Documents,
	Images,
	Videos,
	Audio,
	Archives,
	Code,
	Executables,
	Fonts,
	EBooks,
	Data,
}

var defaultExtensions = map[Category][]string{
	Documents:   {".pdf", ".doc", ".docx", ".txt", ".rtf", ".odt", ".xls", ".xlsx", ".ppt", ".pptx", ".csv"},
	Images:      {".jpg", ".jpeg", ".png", ".gif", ".bmp", ".svg", ".webp", ".ico", ".tiff", ".raw"},
	Videos:      {".mp4", ".avi", ".mkv", ".mov", ".wmv", ".flv", ".webm", ".m4v"},
	Audio:       {".mp3", ".wav", ".flac", ".aac", ".ogg", ".wma", ".m4a"},
	Archives:    {".zip", ".rar", ".7z", ".tar", ".gz", ".bz2"},
	Code:        {".py", ".js", ".html", ".css", ".java", ".cpp", ".c", ".h", ".json", ".xml", ".yaml", ".yml", ".md"},
	Executables: {".exe", ".msi", ".bat", ".cmd", ".ps1"},
	Fonts:       {".ttf", ".otf", ".woff", ".woff2"},
	EBooks:      {".epub", ".mobi", ".azw", ".azw3"},
	Data:        {".sql", ".db", ".sqlite", ".json", ".xml", ".csv"},
}

// Table is an immutable extension-to-category lookup built once at startup.
type Table struct {
	lookup map[string]Category
	names  map[string]bool
}

// NewTable builds the lookup from the built-in extension table.
func NewTable() *Table {
	return NewTableWithExtras(nil)
}

// NewTableWithExtras builds the lookup from the built-in table plus
// user-configured extra extensions per category. Extras never override the
// built-in priority: an extension already present keeps its first owner.
func NewTableWithExtras(extras map[Category][]string) *Table {
	t := &Table{
		lookup: make(map[string]Category),
		names:  make(map[string]bool),
	}

	for _, cat := range order {
		t.names[string(cat)] = true
		for _, ext := range defaultExtensions[cat] {
			t.register(ext, cat)
		}
	}
	t.names[string(Other)] = true

	// Extras are applied in fixed category order so the result does not
	// depend on map iteration.
	for _, cat := range order {
		for _, ext := range extras[cat] {
			t.register(ext, cat)
		}
	}

	return t
}

func (t *Table) register(ext string, cat Category) {
	ext = strings.ToLower(ext)
	if _, exists := t.lookup[ext]; exists {
		return
	}
	t.lookup[ext] = cat
}

// Classify returns the category for an extension (leading dot included).
// It is total: unknown or empty extensions classify as Other.
func (t *Table) Classify(ext string) Category {
	if cat, ok := t.lookup[strings.ToLower(ext)]; ok {
		return cat
	}
	return Other
}

// IsCategoryName reports whether name matches a category folder name.
// Used to keep already-organized files out of shallow rescans.
func (t *Table) IsCategoryName(name string) bool {
	return t.names[name]
}

// Extensions returns the extensions claimed by each category, sorted,
// primarily for diagnostics and config display.
func (t *Table) Extensions() map[Category][]string {
	out := make(map[Category][]string)
	for ext, cat := range t.lookup {
		out[cat] = append(out[cat], ext)
	}
	for cat := range out {
		sort.Strings(out[cat])
	}
	return out
}

// All returns every category in priority order, Other last.
func All() []Category {
	all := make([]Category, 0, len(order)+1)
	all = append(all, order...)
	return append(all, Other)
}

// Valid reports whether name is a known category name.
func Valid(name string) bool {
	for _, cat := range All() {
		if string(cat) == name {
			return true
		}
	}
	return false
}
