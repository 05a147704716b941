package lexer

// TokenType classifies a lexical token.
type TokenType int

const (
	// Special tokens
	EOF TokenType = iota
	ILLEGAL

	// Keywords
	IF     // if
	ELSE   // else
	WHILE  // while
	FOR    // for
	INT    // int
	FLOAT  // float
	CHAR   // char
	VOID   // void
	RETURN // return

	// Identifiers and literals
	IDENTIFIER    // x, count, _tmp
	INTEGER       // 123, 0
	FLOAT_LITERAL // 3.14, 0.0
	STRING        // "text"
	CHAR_LITERAL  // 'c', '\n'

	// Operators
	PLUS     // +
	MINUS    // -
	MULTIPLY // *
	DIVIDE   // /
	ASSIGN   // =
	EQ       // ==
	NOT_EQ   // !=
	LT       // <
	GT       // >
	LT_EQ    // <=
	GT_EQ    // >=

	// Delimiters
	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }
	SEMICOLON // ;
	COMMA     // ,
)

// Token represents a lexical token.
//
// Lexeme is the exact source substring the token was scanned from, quotes
// and escapes included. Concatenating the lexemes of a token stream (minus
// the EOF token, which has an empty lexeme) reproduces the source with all
// whitespace and comments removed.
//
// Text carries the decoded payload for STRING and CHAR_LITERAL tokens: the
// content between the quotes with recognized escape sequences kept in their
// two-character source form (`\n` stays backslash-n, it is not decoded to a
// newline). Int and Float carry the decoded values for INTEGER and
// FLOAT_LITERAL tokens; digit runs beyond the int64 range saturate to
// MaxInt64 rather than failing the scan.
type Token struct {
	Type   TokenType
	Lexeme string
	Text   string
	Int    int64
	Float  float64
	Pos    Position
}

// String returns the token's source text (for testing and debugging).
func (t Token) String() string {
	return t.Lexeme
}

// Position represents a position in the source code.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset
}

// String returns a string representation of the token type.
func (t TokenType) String() string {
	switch t {
	case EOF:
		return "EOF"
	case ILLEGAL:
		return "ILLEGAL"
	case IF:
		return "IF"
	case ELSE:
		return "ELSE"
	case WHILE:
		return "WHILE"
	case FOR:
		return "FOR"
	case INT:
		return "INT"
	case FLOAT:
		return "FLOAT"
	case CHAR:
		return "CHAR"
	case VOID:
		return "VOID"
	case RETURN:
		return "RETURN"
	case IDENTIFIER:
		return "IDENTIFIER"
	case INTEGER:
		return "INTEGER"
	case FLOAT_LITERAL:
		return "FLOAT_LITERAL"
	case STRING:
		return "STRING"
	case CHAR_LITERAL:
		return "CHAR_LITERAL"
	case PLUS:
		return "PLUS"
	case MINUS:
		return "MINUS"
	case MULTIPLY:
		return "MULTIPLY"
	case DIVIDE:
		return "DIVIDE"
	case ASSIGN:
		return "ASSIGN"
	case EQ:
		return "EQ"
	case NOT_EQ:
		return "NOT_EQ"
	case LT:
		return "LT"
	case GT:
		return "GT"
	case LT_EQ:
		return "LT_EQ"
	case GT_EQ:
		return "GT_EQ"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case LBRACE:
		return "LBRACE"
	case RBRACE:
		return "RBRACE"
	case SEMICOLON:
		return "SEMICOLON"
	case COMMA:
		return "COMMA"
	default:
		return "UNKNOWN"
	}
}

// Keywords maps reserved lexemes to their corresponding token types.
// Fixed at construction, never mutated during scanning.
var Keywords = map[string]TokenType{
	"if":     IF,
	"else":   ELSE,
	"while":  WHILE,
	"for":    FOR,
	"int":    INT,
	"float":  FLOAT,
	"char":   CHAR,
	"void":   VOID,
	"return": RETURN,
}

// SingleCharTokens maps single characters to their token types.
var SingleCharTokens = map[byte]TokenType{
	'+': PLUS,
	'-': MINUS,
	'*': MULTIPLY,
	'/': DIVIDE,
	'=': ASSIGN,
	'<': LT,
	'>': GT,
	'(': LPAREN,
	')': RPAREN,
	'{': LBRACE,
	'}': RBRACE,
	';': SEMICOLON,
	',': COMMA,
}

// TwoCharTokens maps two-character sequences to their token types.
var TwoCharTokens = map[string]TokenType{
	"==": EQ,
	"!=": NOT_EQ,
	"<=": LT_EQ,
	">=": GT_EQ,
}
