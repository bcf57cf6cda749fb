package lexer

// TokenType enumerates every lexical category the lexer emits. The set is
// closed: no stage downstream ever needs a token kind not listed here.
type TokenType int

const (
	// Special
	TOKEN_EOF TokenType = iota

	// Basic symbols
	TOKEN_EQUAL  // =
	TOKEN_COMMA  // ,
	TOKEN_DOT    // .
	TOKEN_LPAREN // (
	TOKEN_RPAREN // )
	TOKEN_COLON  // :

	// Arithmetic
	TOKEN_PLUS    // +
	TOKEN_MINUS   // -
	TOKEN_STAR    // *
	TOKEN_SLASH   // /
	TOKEN_PERCENT // %

	// Comparisons
	TOKEN_EQUAL_EQUAL   // ==
	TOKEN_GREATER       // >
	TOKEN_GREATER_EQUAL // >=
	TOKEN_LESS          // <
	TOKEN_LESS_EQUAL    // <=
	TOKEN_BANG_EQUAL    // !=
	TOKEN_BANG          // ! (prefix-negation synonym for 'not')

	// Reserved words
	TOKEN_TYPE
	TOKEN_WHILE
	TOKEN_FOR
	TOKEN_TO
	TOKEN_DO
	TOKEN_IF
	TOKEN_THEN
	TOKEN_ELSEIF
	TOKEN_ELSE
	TOKEN_END
	TOKEN_FUN
	TOKEN_VAR
	TOKEN_RETURN
	TOKEN_NEW
	TOKEN_TRY
	TOKEN_CATCH
	TOKEN_THROW
	TOKEN_NIL
	TOKEN_AND
	TOKEN_OR
	TOKEN_NOT
	TOKEN_NEG

	// Primitive type names
	TOKEN_BOOL_TYPE
	TOKEN_INT_TYPE
	TOKEN_DOUBLE_TYPE
	TOKEN_CHAR_TYPE
	TOKEN_STRING_TYPE

	// Literals and identifiers
	TOKEN_IDENTIFIER
	TOKEN_INT_LITERAL
	TOKEN_DOUBLE_LITERAL
	TOKEN_CHAR_LITERAL
	TOKEN_STRING_LITERAL
	TOKEN_TRUE
	TOKEN_FALSE
)

var tokenNames = map[TokenType]string{
	TOKEN_EOF:            "EOF",
	TOKEN_EQUAL:          "=",
	TOKEN_COMMA:          ",",
	TOKEN_DOT:            ".",
	TOKEN_LPAREN:         "(",
	TOKEN_RPAREN:         ")",
	TOKEN_COLON:          ":",
	TOKEN_PLUS:           "+",
	TOKEN_MINUS:          "-",
	TOKEN_STAR:           "*",
	TOKEN_SLASH:          "/",
	TOKEN_PERCENT:        "%",
	TOKEN_EQUAL_EQUAL:    "==",
	TOKEN_GREATER:        ">",
	TOKEN_GREATER_EQUAL:  ">=",
	TOKEN_LESS:           "<",
	TOKEN_LESS_EQUAL:     "<=",
	TOKEN_BANG_EQUAL:     "!=",
	TOKEN_BANG:           "!",
	TOKEN_TYPE:           "type",
	TOKEN_WHILE:          "while",
	TOKEN_FOR:            "for",
	TOKEN_TO:             "to",
	TOKEN_DO:             "do",
	TOKEN_IF:             "if",
	TOKEN_THEN:           "then",
	TOKEN_ELSEIF:         "elseif",
	TOKEN_ELSE:           "else",
	TOKEN_END:            "end",
	TOKEN_FUN:            "fun",
	TOKEN_VAR:            "var",
	TOKEN_RETURN:         "return",
	TOKEN_NEW:            "new",
	TOKEN_TRY:            "try",
	TOKEN_CATCH:          "catch",
	TOKEN_THROW:          "throw",
	TOKEN_NIL:            "nil",
	TOKEN_AND:            "and",
	TOKEN_OR:             "or",
	TOKEN_NOT:            "not",
	TOKEN_NEG:            "neg",
	TOKEN_BOOL_TYPE:      "bool",
	TOKEN_INT_TYPE:       "int",
	TOKEN_DOUBLE_TYPE:    "double",
	TOKEN_CHAR_TYPE:      "char",
	TOKEN_STRING_TYPE:    "string",
	TOKEN_IDENTIFIER:     "IDENTIFIER",
	TOKEN_INT_LITERAL:    "INT_LITERAL",
	TOKEN_DOUBLE_LITERAL: "DOUBLE_LITERAL",
	TOKEN_CHAR_LITERAL:   "CHAR_LITERAL",
	TOKEN_STRING_LITERAL: "STRING_LITERAL",
	TOKEN_TRUE:           "true",
	TOKEN_FALSE:          "false",
}

// String returns the canonical name of a token type, used in diagnostics
// and in the `ferro tokens` debug dump.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsPrimitiveType reports whether the token names one of the five
// primitive type keywords.
func (t TokenType) IsPrimitiveType() bool {
	switch t {
	case TOKEN_BOOL_TYPE, TOKEN_INT_TYPE, TOKEN_DOUBLE_TYPE, TOKEN_CHAR_TYPE, TOKEN_STRING_TYPE:
		return true
	default:
		return false
	}
}

// Token is a single lexical token: kind, original text, and its start
// position. Immutable once constructed; AST nodes may retain their
// originating Token for error reporting.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal interface{} // populated for literal tokens: int64, float64, rune, string, bool
	Line    int
	Column  int
}
