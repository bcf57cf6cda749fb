package lexer

// keywords maps reserved-word spellings to their token types for O(1)
// lookup once an identifier run has been scanned.
var keywords = map[string]TokenType{
	"type":   TOKEN_TYPE,
	"while":  TOKEN_WHILE,
	"for":    TOKEN_FOR,
	"to":     TOKEN_TO,
	"do":     TOKEN_DO,
	"if":     TOKEN_IF,
	"then":   TOKEN_THEN,
	"elseif": TOKEN_ELSEIF,
	"else":   TOKEN_ELSE,
	"end":    TOKEN_END,
	"fun":    TOKEN_FUN,
	"var":    TOKEN_VAR,
	"return": TOKEN_RETURN,
	"new":    TOKEN_NEW,
	"try":    TOKEN_TRY,
	"catch":  TOKEN_CATCH,
	"throw":  TOKEN_THROW,
	"nil":    TOKEN_NIL,
	"and":    TOKEN_AND,
	"or":     TOKEN_OR,
	"not":    TOKEN_NOT,
	"neg":    TOKEN_NEG,

	"bool":   TOKEN_BOOL_TYPE,
	"int":    TOKEN_INT_TYPE,
	"double": TOKEN_DOUBLE_TYPE,
	"char":   TOKEN_CHAR_TYPE,
	"string": TOKEN_STRING_TYPE,

	"true":  TOKEN_TRUE,
	"false": TOKEN_FALSE,
}

// lookupKeyword reports whether identifier is a reserved word, returning
// its token type if so.
func lookupKeyword(identifier string) (TokenType, bool) {
	t, ok := keywords[identifier]
	return t, ok
}
