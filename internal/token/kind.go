package token

// Kind represents the category of a schema token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// KwConfig represents the 'config' keyword.
	KwConfig // config
	// KwEnum represents the 'enum' keyword.
	KwEnum // enum
	// KwModel represents the 'model' keyword.
	KwModel // model
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwFalse represents the 'false' keyword.
	KwFalse // false

	// IntLit represents the integer literal token.
	IntLit
	// FloatLit represents the float literal token.
	FloatLit
	// StringLit represents the string literal token.
	StringLit

	// At represents the '@' attribute sigil.
	At // @
	// Colon represents the ':' punctuation.
	Colon // :
	// Comma represents the ',' punctuation.
	Comma // ,
	// Assign represents the '=' punctuation.
	Assign // =
	// Question represents the '?' optional marker.
	Question // ?
	// Dot represents the '.' punctuation.
	Dot // .
	// LParen represents '('.
	LParen // (
	// RParen represents ')'.
	RParen // )
	// LBrace represents '{'.
	LBrace // {
	// RBrace represents '}'.
	RBrace // }
	// LBracket represents '['.
	LBracket // [
	// RBracket represents ']'.
	RBracket // ]
)

var kindNames = map[Kind]string{
	Invalid:   "invalid",
	EOF:       "eof",
	Ident:     "identifier",
	KwConfig:  "'config'",
	KwEnum:    "'enum'",
	KwModel:   "'model'",
	KwTrue:    "'true'",
	KwFalse:   "'false'",
	IntLit:    "integer literal",
	FloatLit:  "float literal",
	StringLit: "string literal",
	At:        "'@'",
	Colon:     "':'",
	Comma:     "','",
	Assign:    "'='",
	Question:  "'?'",
	Dot:       "'.'",
	LParen:    "'('",
	RParen:    "')'",
	LBrace:    "'{'",
	RBrace:    "'}'",
	LBracket:  "'['",
	RBracket:  "']'",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}
