package scanner

// FileRef names the source of an input document. It is its own type, rather
// than a bare string, in case a future caller wants to refactor what
// identifies a file (e.g. to carry an fs.FS handle alongside the name).
type FileRef string

// Pos is a 1-indexed line/column position within a file.
type Pos struct {
	File FileRef
	Line int
	Col  int
}
