package lexer

import (
	"fmt"
	"strings"
)

// ErrorKind represents the categories of lexical errors
type ErrorKind int

const (
	// InvalidFloatLiteral is a number literal with a second decimal point
	InvalidFloatLiteral ErrorKind = iota

	// InvalidEscapeSequence is a backslash followed by a character outside
	// the recognized escape set
	InvalidEscapeSequence

	// UnterminatedStringLiteral is end of input before the closing quote
	UnterminatedStringLiteral

	// UnterminatedCharLiteral is end of input or a missing closing quote in
	// a character literal
	UnterminatedCharLiteral

	// InvalidCharacter is a character matching no lexical category
	InvalidCharacter
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidFloatLiteral:
		return "invalid float literal"
	case InvalidEscapeSequence:
		return "invalid escape sequence"
	case UnterminatedStringLiteral:
		return "unterminated string literal"
	case UnterminatedCharLiteral:
		return "unterminated character literal"
	case InvalidCharacter:
		return "invalid character"
	default:
		return "lexical error"
	}
}

// LexError is a fatal lexical error with its exact source location. The
// scanner raises it immediately and the session performs no recovery or
// resynchronization.
type LexError struct {
	Kind    ErrorKind
	Message string
	Line    int // 1-based line of the offending character
	Column  int // 1-based column of the offending character
	Input   string
}

// Error returns the formatted error message with line/column and code snippet
func (e *LexError) Error() string {
	snippet := e.createCodeSnippet()
	if snippet == "" {
		return fmt.Sprintf("%s: %s at %d:%d", e.Kind, e.Message, e.Line, e.Column)
	}
	return fmt.Sprintf("%s: %s\n%s", e.Kind, e.Message, snippet)
}

// createCodeSnippet creates a code snippet showing the error location
func (e *LexError) createCodeSnippet() string {
	if e.Input == "" || e.Line == 0 {
		return ""
	}

	lines := strings.Split(e.Input, "\n")
	if e.Line > len(lines) {
		return ""
	}

	lineContent := lines[e.Line-1]

	// Rust/Clang style snippet with a caret under the offending column
	var snippet strings.Builder
	snippet.WriteString(fmt.Sprintf("  --> %d:%d\n", e.Line, e.Column))
	snippet.WriteString("   |\n")
	snippet.WriteString(fmt.Sprintf("%2d | %s\n", e.Line, lineContent))
	snippet.WriteString("   | ")
	if e.Column > 0 && e.Column <= len(lineContent)+1 {
		snippet.WriteString(strings.Repeat(" ", e.Column-1) + "^")
	}

	return snippet.String()
}

// newLexError creates a lexical error at the given position.
func (s *Scanner) newLexError(kind ErrorKind, message string, pos Position) error {
	return &LexError{
		Kind:    kind,
		Message: message,
		Line:    pos.Line,
		Column:  pos.Column,
		Input:   s.cursor.Source(),
	}
}
