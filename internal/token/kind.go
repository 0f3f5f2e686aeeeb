package token

// Kind is the category of a preprocessing token. The set is closed: a
// character no class claims comes back as Other rather than failing, and
// EOF is a repeatable terminal.
type Kind uint8

const (
	// Invalid is the zero Kind. The scanner never returns it; it only
	// serves as the no-match sentinel inside the punctuator automaton.
	Invalid Kind = iota

	// EOF marks the end of all nested input. Scanning past it keeps
	// producing EOF.
	EOF

	// Ident is an identifier-shaped pp-token.
	Ident
	// Number is a pp-number. The grammar is looser than a numeric
	// constant on purpose; validation is a later phase's job.
	Number
	// CharLit is a character literal; Text holds the raw content between
	// the quotes with escapes uninterpreted.
	CharLit
	// StringLit is a string literal; Text as for CharLit.
	StringLit
	// Other wraps a single character no other class recognizes.
	Other

	Hash             // #
	Add              // +
	Subtract         // -
	Star             // *
	Divide           // /
	Mod              // %
	Increment        // ++
	Decrement        // --
	Equal            // ==
	NotEqual         // !=
	Less             // <
	LessEqual        // <=
	Greater          // >
	GreaterEqual     // >=
	LogicalNot       // !
	LogicalAnd       // &&
	LogicalOr        // ||
	BitNot           // ~
	Ampersand        // &
	BitOr            // |
	BitXor           // ^
	ShiftLeft        // <<
	ShiftRight       // >>
	Assign           // =
	AddAssign        // +=
	SubtractAssign   // -=
	MultiplyAssign   // *=
	DivideAssign     // /=
	ModAssign        // %=
	AndAssign        // &=
	OrAssign         // |=
	XorAssign        // ^=
	LeftShiftAssign  // <<=
	RightShiftAssign // >>=
	LeftBracket      // [
	RightBracket     // ]
	LeftParen        // (
	RightParen       // )
	LeftBrace        // {
	RightBrace       // }
	Dot              // .
	Arrow            // ->
	Semicolon        // ;
	Question         // ?
	Colon            // :
	Comma            // ,

	// BlockComment and LineComment are internal results of the punctuator
	// automaton for the two comment openers. The scanner turns them into
	// trivia; they never reach a caller of the public entry point.
	BlockComment // /*
	LineComment  // //
)

var kindNames = [...]string{
	Invalid:          "Invalid",
	EOF:              "EOF",
	Ident:            "Ident",
	Number:           "Number",
	CharLit:          "CharLit",
	StringLit:        "StringLit",
	Other:            "Other",
	Hash:             "Hash",
	Add:              "Add",
	Subtract:         "Subtract",
	Star:             "Star",
	Divide:           "Divide",
	Mod:              "Mod",
	Increment:        "Increment",
	Decrement:        "Decrement",
	Equal:            "Equal",
	NotEqual:         "NotEqual",
	Less:             "Less",
	LessEqual:        "LessEqual",
	Greater:          "Greater",
	GreaterEqual:     "GreaterEqual",
	LogicalNot:       "LogicalNot",
	LogicalAnd:       "LogicalAnd",
	LogicalOr:        "LogicalOr",
	BitNot:           "BitNot",
	Ampersand:        "Ampersand",
	BitOr:            "BitOr",
	BitXor:           "BitXor",
	ShiftLeft:        "ShiftLeft",
	ShiftRight:       "ShiftRight",
	Assign:           "Assign",
	AddAssign:        "AddAssign",
	SubtractAssign:   "SubtractAssign",
	MultiplyAssign:   "MultiplyAssign",
	DivideAssign:     "DivideAssign",
	ModAssign:        "ModAssign",
	AndAssign:        "AndAssign",
	OrAssign:         "OrAssign",
	XorAssign:        "XorAssign",
	LeftShiftAssign:  "LeftShiftAssign",
	RightShiftAssign: "RightShiftAssign",
	LeftBracket:      "LeftBracket",
	RightBracket:     "RightBracket",
	LeftParen:        "LeftParen",
	RightParen:       "RightParen",
	LeftBrace:        "LeftBrace",
	RightBrace:       "RightBrace",
	Dot:              "Dot",
	Arrow:            "Arrow",
	Semicolon:        "Semicolon",
	Question:         "Question",
	Colon:            "Colon",
	Comma:            "Comma",
	BlockComment:     "BlockComment",
	LineComment:      "LineComment",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}
