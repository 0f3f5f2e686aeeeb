package source

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"fortio.org/safecast"
)

// SourceChar is one normalized character from the stream. All line-ending
// flavors (CR, LF, CR/LF, LF/CR) arrive as a single '\n'. Switched is true
// exactly for the first character delivered after an active-file-stack
// transition, so a downstream line-marker emitter can notice boundary
// crossings without re-deriving them from file-index changes (a same-named
// file pushed again still counts as a transition).
type SourceChar struct {
	Ch       rune
	Pt       Point
	Switched bool
}

// cursor is the read position inside one open file. It never owns text,
// only an index into the arena plus an offset, which keeps cloning the
// whole stack for lookahead cheap.
type cursor struct {
	file uint32
	next int   // offset of the next rune in the file's text
	loc  Point // position to report for that rune
}

// Source owns every file ever read plus the stack of cursors for the files
// currently open. The innermost file supplies characters; when it runs out
// its cursor is popped and the parent resumes exactly where it left off.
// This stack is the include-nesting model.
//
// A Source has one logical owner: nothing here is safe for concurrent use.
type Source struct {
	files    []*File
	stack    []cursor
	switched bool // the next delivered character crosses a file transition
}

func New() *Source { return &Source{} }

// Push nests a file on top of the current one. A name seen before reuses
// its cached text under the existing file index; otherwise the file is
// read in full. A read failure carries no position, since it happens
// before any position in the new file exists.
func (s *Source) Push(name string) error {
	canon := canonName(name)
	for i, f := range s.files {
		if f.Name == canon {
			s.pushCursor(uint32(i))
			return nil
		}
	}
	text, err := os.ReadFile(name)
	if err != nil {
		return err
	}
	s.addFile(canon, name, []rune(string(text)))
	return nil
}

// PushText nests in-memory text under a synthetic name, for tests and
// stdin. Caching and nesting behave exactly as in Push.
func (s *Source) PushText(name, text string) {
	canon := canonName(name)
	for i, f := range s.files {
		if f.Name == canon {
			s.pushCursor(uint32(i))
			return
		}
	}
	s.addFile(canon, name, []rune(text))
}

func (s *Source) addFile(canon, display string, text []rune) {
	idx, err := safecast.Conv[uint32](len(s.files))
	if err != nil {
		panic(fmt.Errorf("file count overflow: %w", err))
	}
	s.files = append(s.files, &File{Name: canon, StrName: display, Text: text})
	s.pushCursor(idx)
}

func (s *Source) pushCursor(file uint32) {
	s.stack = append(s.stack, cursor{
		file: file,
		loc:  Point{File: file, Line: 1, Col: 1},
	})
	s.switched = true
	// A zero-length file is exhausted before its first character.
	s.popExhausted()
}

// popExhausted removes stack entries whose cursor has reached the end of
// their text, innermost first. Invariant: afterwards either the stack is
// empty or every cursor points at a valid in-range offset.
func (s *Source) popExhausted() {
	popped := false
	for n := len(s.stack); n > 0; n = len(s.stack) {
		c := s.stack[n-1]
		if c.next < len(s.files[c.file].Text) {
			break
		}
		s.stack = s.stack[:n-1]
		popped = true
	}
	if popped {
		s.switched = true
	}
}

// Peek returns the next character without consuming it, or ok=false once
// every file on the stack has been fully read. Cursors are not mutated.
func (s *Source) Peek() (SourceChar, bool) {
	if len(s.stack) == 0 {
		return SourceChar{}, false
	}
	c := &s.stack[len(s.stack)-1]
	ch := s.files[c.file].Text[c.next]
	if ch == '\r' {
		ch = '\n'
	}
	return SourceChar{Ch: ch, Pt: c.loc, Switched: s.switched}, true
}

// PeekN returns the character the k-th subsequent call to Next would
// produce (k=0 behaves like Peek). The real cursor stack is never touched:
// the lookahead runs on a disposable clone, so pops across file
// exhaustion and the switched marker are simulated faithfully at every
// intermediate step.
func (s *Source) PeekN(k int) (SourceChar, bool) {
	sim := s.clone()
	for i := 0; i < k; i++ {
		if _, ok := sim.Next(); !ok {
			return SourceChar{}, false
		}
	}
	return sim.Peek()
}

// clone copies the cursor stack but shares the (immutable) file texts.
func (s *Source) clone() *Source {
	dup := *s
	dup.stack = slices.Clone(s.stack)
	return &dup
}

// Next consumes and returns the next character, advancing the top cursor.
// A CR, an LF, or either immediately followed by the other is consumed as
// one logical newline and reported as '\n', resetting the column and
// bumping the line. Afterwards any exhausted stack entries are popped so
// the parent file resumes transparently.
func (s *Source) Next() (SourceChar, bool) {
	if len(s.stack) == 0 {
		return SourceChar{}, false
	}
	c := &s.stack[len(s.stack)-1]
	text := s.files[c.file].Text
	ch := text[c.next]
	sc := SourceChar{Ch: ch, Pt: c.loc, Switched: s.switched}
	s.switched = false

	if ch == '\r' || ch == '\n' {
		c.next++
		if c.next < len(text) {
			pair := text[c.next]
			if (ch == '\r' && pair == '\n') || (ch == '\n' && pair == '\r') {
				c.next++
			}
		}
		c.loc.Line++
		c.loc.Col = 1
		sc.Ch = '\n'
	} else {
		c.next++
		c.loc.Col++
	}

	s.popExhausted()
	return sc, true
}

// Filename resolves a file index, as stored in a Point, to a display name.
// This is the only lookup error reporting needs from the stream.
func (s *Source) Filename(file uint32) (string, bool) {
	if int(file) >= len(s.files) {
		return "", false
	}
	return s.files[file].StrName, true
}

// Line returns the text of a 1-based line of a loaded file, without its
// terminator, for diagnostic context rendering.
func (s *Source) Line(file, line uint32) (string, bool) {
	if int(file) >= len(s.files) {
		return "", false
	}
	text := s.files[file].Text
	cur := uint32(1)
	var out []rune
	for i := 0; i < len(text); i++ {
		ch := text[i]
		if ch == '\r' || ch == '\n' {
			if cur == line {
				return string(out), true
			}
			if i+1 < len(text) {
				pair := text[i+1]
				if (ch == '\r' && pair == '\n') || (ch == '\n' && pair == '\r') {
					i++
				}
			}
			cur++
			continue
		}
		if cur == line {
			out = append(out, ch)
		}
	}
	if cur == line {
		return string(out), true
	}
	return "", false
}

// canonName gives paths a single cross-platform spelling so cache lookups
// and diagnostics agree on what "the same file" means.
func canonName(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}
