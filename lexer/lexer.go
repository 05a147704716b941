// Package lexer implements a hand-written lexical scanner for the cmin
// language. It converts raw source text into a stream of typed,
// position-annotated tokens, skipping whitespace and comments,
// disambiguating multi-character operators, decoding numeric, string and
// character literals, and recording every identifier occurrence in an
// occurrence table.
//
// The scanner is single-threaded and fully synchronous: one Scanner owns
// one Cursor and one Occurrences table for the duration of a session, and
// nothing escapes the session's scope. Tokenizing independent sources in
// parallel requires one Scanner per source.
package lexer

import (
	"fmt"
	"strconv"
	"strings"
)

// Scanner produces one token per NextToken call by dispatching on the
// cursor's current character. Lexical errors are fatal to the session: the
// first error is returned immediately and every later call returns it
// again. The EOF token is sticky in the same way.
type Scanner struct {
	cursor *Cursor
	idents *Occurrences
	state  ScanState
	err    error
}

// NewScanner creates a scanner session over source with a fresh cursor and
// a fresh occurrence table.
func NewScanner(source string) *Scanner {
	return &Scanner{
		cursor: NewCursor(source),
		idents: NewOccurrences(),
		state:  StateStart,
	}
}

// Identifiers returns the session's occurrence table. It is populated
// incrementally as identifier tokens are scanned.
func (s *Scanner) Identifiers() *Occurrences {
	return s.idents
}

// State returns the scanner's current automaton state.
func (s *Scanner) State() ScanState {
	return s.state
}

// enter moves the automaton to a new state. Transitions are restricted to
// the generated transition map; anything else is a scanner bug.
func (s *Scanner) enter(to ScanState) {
	if !ValidTransition(s.state, to) {
		panic(fmt.Sprintf("lexer: invalid state transition %s -> %s", s.state, to))
	}
	s.state = to
}

// fail records a fatal lexical error and moves to the terminal error state.
func (s *Scanner) fail(kind ErrorKind, message string, pos Position) (Token, error) {
	s.enter(StateError)
	s.err = s.newLexError(kind, message, pos)
	return Token{}, s.err
}

// NextToken returns the next token from the input, or the session's
// lexical error. Whitespace and comments are consumed without emitting a
// token; once the input is exhausted every call returns an EOF token.
func (s *Scanner) NextToken() (Token, error) {
	if s.err != nil {
		return Token{}, s.err
	}

	for {
		ch := s.cursor.Current()
		next := s.cursor.Peek()

		switch classify(ch, next) {
		case StateStart:
			// Whitespace: consume and dispatch again
			s.enter(StateStart)
			s.skipWhitespace()

		case StateComment:
			s.enter(StateComment)
			s.skipComment()
			if s.cursor.AtEnd() {
				// Unterminated block comments silently reach end of
				// input; the EOF token is emitted on the next pass
				s.enter(StateEOF)
				return s.eofToken(), nil
			}
			s.enter(StateStart)

		case StateEOF:
			// The sentinel is a NUL byte; a literal NUL inside the
			// source matches no lexical category and must not end the
			// scan early
			if !s.cursor.AtEnd() {
				return s.fail(InvalidCharacter,
					fmt.Sprintf("invalid character %q", ch), s.cursor.Pos())
			}
			s.enter(StateEOF)
			return s.eofToken(), nil

		case StateIdentifier:
			s.enter(StateIdentifier)
			return s.lexIdentifier()

		case StateNumber:
			s.enter(StateNumber)
			return s.lexNumber()

		case StateString:
			s.enter(StateString)
			return s.lexString()

		case StateChar:
			s.enter(StateChar)
			return s.lexChar()

		case StateOperator:
			s.enter(StateOperator)
			return s.lexOperator()

		default:
			return s.fail(InvalidCharacter,
				fmt.Sprintf("invalid character %q", ch), s.cursor.Pos())
		}
	}
}

// eofToken builds the sticky end-of-input token at the cursor's final
// position. The lexeme is empty: EOF corresponds to no source text.
func (s *Scanner) eofToken() Token {
	return Token{Type: EOF, Pos: s.cursor.Pos()}
}

// skipWhitespace consumes blanks, tabs, newlines and carriage returns.
func (s *Scanner) skipWhitespace() {
	for {
		ch := s.cursor.Current()
		if ch >= 128 || !isWhitespace[ch] {
			return
		}
		s.cursor.Advance()
	}
}

// skipComment consumes a // comment up to (not including) the next newline,
// or a /* */ comment including the closer. A block comment that never
// closes consumes the rest of the input; that is not an error.
func (s *Scanner) skipComment() {
	if s.cursor.Peek() == '/' {
		// Line comment: stop before the newline, whitespace skipping
		// handles it on the next dispatch
		for !s.cursor.AtEnd() && s.cursor.Current() != '\n' {
			s.cursor.Advance()
		}
		return
	}

	// Block comment
	s.cursor.Advance() // consume '/'
	s.cursor.Advance() // consume '*'
	for !s.cursor.AtEnd() {
		if s.cursor.Current() == '*' && s.cursor.Peek() == '/' {
			s.cursor.Advance() // consume '*'
			s.cursor.Advance() // consume '/'
			return
		}
		s.cursor.Advance()
	}
}

// lexIdentifier reads an identifier or keyword. Identifiers are recorded in
// the occurrence table at the token's start position; keywords are not.
func (s *Scanner) lexIdentifier() (Token, error) {
	start := s.cursor.Pos()

	for {
		ch := s.cursor.Current()
		if ch >= 128 || !isIdentPart[ch] {
			break
		}
		s.cursor.Advance()
	}

	lexeme := s.cursor.Slice(start.Offset, s.cursor.Offset())

	tokenType, isKeyword := Keywords[lexeme]
	if !isKeyword {
		tokenType = IDENTIFIER
		s.idents.Record(lexeme, start)
	}

	s.enter(StateStart)
	return Token{Type: tokenType, Lexeme: lexeme, Pos: start}, nil
}

// lexNumber reads an integer or float literal. Digits and at most one
// decimal point are consumed greedily; a second decimal point is a lexical
// error at its exact position. A leading '-' is never part of the literal.
func (s *Scanner) lexNumber() (Token, error) {
	start := s.cursor.Pos()
	isFloat := false

	for {
		ch := s.cursor.Current()
		if ch >= 128 || (!isDigit[ch] && ch != '.') {
			break
		}
		if ch == '.' {
			if isFloat {
				return s.fail(InvalidFloatLiteral,
					"number contains a second decimal point", s.cursor.Pos())
			}
			isFloat = true
		}
		s.cursor.Advance()
	}

	lexeme := s.cursor.Slice(start.Offset, s.cursor.Offset())
	s.enter(StateStart)

	if isFloat {
		value, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			// Digits and a single dot always parse; nothing to do
			value = 0
		}
		return Token{Type: FLOAT_LITERAL, Lexeme: lexeme, Float: value, Pos: start}, nil
	}

	// Out-of-range digit runs saturate to MaxInt64 (see Token.Int)
	value, _ := strconv.ParseInt(lexeme, 10, 64)
	return Token{Type: INTEGER, Lexeme: lexeme, Int: value, Pos: start}, nil
}

// lexString reads a string literal. The quotes are excluded from the
// decoded value; recognized escapes (\n \t \" \\) are kept in their
// two-character source form rather than decoded.
func (s *Scanner) lexString() (Token, error) {
	start := s.cursor.Pos()
	s.cursor.Advance() // consume opening quote

	var value strings.Builder
	for !s.cursor.AtEnd() && s.cursor.Current() != '"' {
		ch := s.cursor.Current()
		if ch == '\\' {
			s.cursor.Advance()
			esc := s.cursor.Current()
			switch esc {
			case 'n', 't', '"', '\\':
				value.WriteByte('\\')
				value.WriteByte(esc)
			default:
				return s.fail(InvalidEscapeSequence,
					fmt.Sprintf("unrecognized escape %q", esc), s.cursor.Pos())
			}
		} else {
			value.WriteByte(ch)
		}
		s.cursor.Advance()
	}

	if s.cursor.AtEnd() {
		return s.fail(UnterminatedStringLiteral,
			"end of input before closing quote", start)
	}

	s.cursor.Advance() // consume closing quote
	lexeme := s.cursor.Slice(start.Offset, s.cursor.Offset())

	s.enter(StateStart)
	return Token{Type: STRING, Lexeme: lexeme, Text: value.String(), Pos: start}, nil
}

// lexChar reads a character literal: exactly one logical character, or one
// recognized two-character escape, between single quotes.
func (s *Scanner) lexChar() (Token, error) {
	start := s.cursor.Pos()
	s.cursor.Advance() // consume opening quote

	if s.cursor.AtEnd() {
		return s.fail(UnterminatedCharLiteral,
			"end of input before character", start)
	}

	var value string
	if s.cursor.Current() == '\\' {
		s.cursor.Advance()
		esc := s.cursor.Current()
		switch esc {
		case 'n', 't', '\'', '\\':
			value = "\\" + string(esc)
		default:
			return s.fail(InvalidEscapeSequence,
				fmt.Sprintf("unrecognized escape %q", esc), s.cursor.Pos())
		}
	} else {
		value = string(s.cursor.Current())
	}
	s.cursor.Advance()

	if s.cursor.Current() != '\'' {
		return s.fail(UnterminatedCharLiteral,
			"missing closing quote", start)
	}
	s.cursor.Advance() // consume closing quote

	lexeme := s.cursor.Slice(start.Offset, s.cursor.Offset())

	s.enter(StateStart)
	return Token{Type: CHAR_LITERAL, Lexeme: lexeme, Text: value, Pos: start}, nil
}

// lexOperator matches an operator or delimiter. For = ! < > one character
// of lookahead decides between the two-character form (== != <= >=) and the
// single-character token.
func (s *Scanner) lexOperator() (Token, error) {
	start := s.cursor.Pos()
	ch := s.cursor.Current()

	if (ch == '=' || ch == '!' || ch == '<' || ch == '>') && s.cursor.Peek() == '=' {
		s.cursor.Advance()
		s.cursor.Advance()
		lexeme := s.cursor.Slice(start.Offset, s.cursor.Offset())

		s.enter(StateStart)
		return Token{Type: TwoCharTokens[lexeme], Lexeme: lexeme, Pos: start}, nil
	}

	tokenType, ok := SingleCharTokens[ch]
	if !ok {
		// classify only routes table characters here; '!' without '=' is
		// rejected before this state is entered
		panic(fmt.Sprintf("lexer: operator dispatch on %q outside the operator table", ch))
	}

	s.cursor.Advance()
	lexeme := s.cursor.Slice(start.Offset, s.cursor.Offset())

	s.enter(StateStart)
	return Token{Type: tokenType, Lexeme: lexeme, Pos: start}, nil
}

// Result holds the output of one tokenization session: the full ordered
// token sequence ending in exactly one EOF token, and the populated
// identifier occurrence table.
type Result struct {
	Tokens []Token
	Idents *Occurrences
}

// Tokenize scans the entire source text in a fresh session. On the first
// lexical error the partial token sequence is discarded and the error is
// returned with its exact location; there is no recovery or
// resynchronization.
func Tokenize(source string) (*Result, error) {
	s := NewScanner(source)

	var tokens []Token
	for {
		token, err := s.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
		if token.Type == EOF {
			break
		}
	}

	return &Result{Tokens: tokens, Idents: s.Identifiers()}, nil
}
