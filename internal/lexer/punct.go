package lexer

import (
	"sync"

	"github.com/ucfjimg/cpp/internal/source"
	"github.com/ucfjimg/cpp/internal/token"
)

// punctNode is one state of the longest-match punctuator automaton: the
// token recognized this far plus the characters that can extend it.
// Single-character punctuators are leaves; chains like '<' → '<<' → '<<='
// share their prefixes.
type punctNode struct {
	kind token.Kind
	next map[rune]*punctNode
}

// punctTrie builds the automaton from the spelling table on first use;
// after that it is read-only process-wide state.
var punctTrie = sync.OnceValue(func() *punctNode {
	root := &punctNode{}
	for text, kind := range token.Puncts {
		node := root
		for _, ch := range text {
			if node.next == nil {
				node.next = make(map[rune]*punctNode)
			}
			child := node.next[ch]
			if child == nil {
				child = &punctNode{}
				node.next[ch] = child
			}
			node = child
		}
		node.kind = kind
	}
	return root
})

// matchPunct runs the automaton against the stream: peek a character,
// and if it extends the current state, consume it and descend. The
// deepest state naming a token wins. Greedy consumption is safe because
// every reachable intermediate state in the table names a token itself
// ("<<" is ShiftLeft on the way to "<<="), so a dead end never strands a
// consumed character.
func matchPunct(sp source.Splicer) (token.Kind, bool) {
	return punctTrie().match(sp)
}

func (n *punctNode) match(sp source.Splicer) (token.Kind, bool) {
	sc, ok := sp.Peek()
	if !ok {
		return token.Invalid, false
	}
	child := n.next[sc.Ch]
	if child == nil {
		return token.Invalid, false
	}
	sp.Next()
	if kind, ok := child.match(sp); ok {
		return kind, true
	}
	if child.kind != token.Invalid {
		return child.kind, true
	}
	return token.Invalid, false
}
