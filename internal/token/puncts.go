package token

import "sync"

// Puncts maps punctuator spellings to kinds. The scanner's automaton is
// built from this table; longest match wins, so the multi-character
// entries chain through their prefixes. The two comment openers live here
// too because they share the '/' branch with Divide and DivideAssign.
var Puncts = map[string]Kind{
	"#":   Hash,
	"+":   Add,
	"-":   Subtract,
	"*":   Star,
	"/":   Divide,
	"%":   Mod,
	"++":  Increment,
	"--":  Decrement,
	"==":  Equal,
	"!=":  NotEqual,
	"<":   Less,
	"<=":  LessEqual,
	">":   Greater,
	">=":  GreaterEqual,
	"!":   LogicalNot,
	"&&":  LogicalAnd,
	"||":  LogicalOr,
	"~":   BitNot,
	"&":   Ampersand,
	"|":   BitOr,
	"^":   BitXor,
	"<<":  ShiftLeft,
	">>":  ShiftRight,
	"=":   Assign,
	"+=":  AddAssign,
	"-=":  SubtractAssign,
	"*=":  MultiplyAssign,
	"/=":  DivideAssign,
	"%=":  ModAssign,
	"&=":  AndAssign,
	"|=":  OrAssign,
	"^=":  XorAssign,
	"<<=": LeftShiftAssign,
	">>=": RightShiftAssign,
	"[":   LeftBracket,
	"]":   RightBracket,
	"(":   LeftParen,
	")":   RightParen,
	"{":   LeftBrace,
	"}":   RightBrace,
	".":   Dot,
	"->":  Arrow,
	";":   Semicolon,
	"?":   Question,
	":":   Colon,
	",":   Comma,
	"/*":  BlockComment,
	"//":  LineComment,
}

var lexemes = sync.OnceValue(func() map[Kind]string {
	m := make(map[Kind]string, len(Puncts))
	for text, kind := range Puncts {
		m[kind] = text
	}
	return m
})

// Lexeme returns the source spelling of a punctuator kind, or "" for
// kinds that carry their own text.
func (k Kind) Lexeme() string {
	return lexemes()[k]
}
