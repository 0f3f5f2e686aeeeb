package source

import "fmt"

// Point identifies a location in a loaded source file. Every token and
// every error carries one. The file index resolves to a display name via
// Source.Filename.
type Point struct {
	File uint32 // index of the source file within the Source arena
	Line uint32 // 1-based
	Col  uint32 // 1-based
}

func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}
