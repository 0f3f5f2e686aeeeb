package source

// File holds the text of one loaded source file. Files belong to the
// Source arena and are immutable once loaded: pushing the same name again
// reuses the cached text under the same file index, so diagnostics that
// mention the file always resolve to one index.
type File struct {
	Name    string // canonical name used for cache lookups
	StrName string // display name for diagnostics
	Text    []rune
}
