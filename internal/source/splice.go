package source

// Splicer wraps a Source so that every backslash immediately followed by a
// (normalized) newline vanishes before any higher layer sees it: line
// splicing contributes no character, no token, and no trivia. A backslash
// not followed by a newline is a genuine character and comes through
// untouched. Splicing never crosses a file boundary.
type Splicer struct {
	src *Source
}

func NewSplicer(src *Source) Splicer { return Splicer{src: src} }

// skipSplices consumes any run of backslash-newline pairs at the read
// position. Splices are invisible to every consumer, so eliding them
// eagerly during a peek is not observable. The switched marker of an
// elided backslash is carried forward to the first genuine character.
func (sp Splicer) skipSplices() {
	for {
		c0, ok := sp.src.Peek()
		if !ok || c0.Ch != '\\' {
			return
		}
		c1, ok := sp.src.PeekN(1)
		if !ok || c1.Ch != '\n' || c1.Pt.File != c0.Pt.File {
			return
		}
		bs, _ := sp.src.Next()
		sp.src.Next()
		if bs.Switched {
			sp.src.switched = true
		}
	}
}

// Peek returns the first genuine character past any leading splices
// without consuming it.
func (sp Splicer) Peek() (SourceChar, bool) {
	sp.skipSplices()
	return sp.src.Peek()
}

// Next consumes and returns the first genuine character past any leading
// splices.
func (sp Splicer) Next() (SourceChar, bool) {
	sp.skipSplices()
	return sp.src.Next()
}

// PeekN is the splice-aware k-step lookahead: the skipping applies at
// every simulated step, so asking "is the 4th upcoming character a digit"
// stays correct with splices interspersed. Runs on a disposable clone of
// the cursor stack, never the live stream.
func (sp Splicer) PeekN(k int) (SourceChar, bool) {
	sim := Splicer{src: sp.src.clone()}
	for i := 0; i < k; i++ {
		if _, ok := sim.Next(); !ok {
			return SourceChar{}, false
		}
	}
	return sim.Peek()
}
