package token

var keywords = map[string]Kind{
	"config": KwConfig,
	"enum":   KwEnum,
	"model":  KwModel,
	"true":   KwTrue,
	"false":  KwFalse,
}

// LookupKeyword returns the keyword kind for the given identifier text, or
// Ident if the text is not a keyword.
func LookupKeyword(text string) Kind {
	if kind, ok := keywords[text]; ok {
		return kind
	}
	return Ident
}
