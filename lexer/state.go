package lexer

import (
	"fmt"
)

// ScanState represents the current scanning state. Every NextToken call
// starts in StateStart; whitespace and comment elision loop back to
// StateStart, literal and operator states return there once their token is
// emitted, and StateEOF / StateError are terminal.
type ScanState int

const (
	// StateStart is the dispatch state between tokens
	StateStart ScanState = iota

	// StateIdentifier is reading an identifier or keyword
	StateIdentifier

	// StateNumber is reading an integer or float literal
	StateNumber

	// StateString is reading a string literal
	StateString

	// StateChar is reading a character literal
	StateChar

	// StateComment is skipping a line or block comment
	StateComment

	// StateOperator is matching an operator or delimiter, with one
	// character of lookahead for == != <= >=
	StateOperator

	// StateEOF is the sticky terminal state at end of input
	StateEOF

	// StateError is the terminal state after a lexical error
	StateError
)

// String returns a human-readable state name
func (s ScanState) String() string {
	names := []string{
		"Start",
		"Identifier",
		"Number",
		"String",
		"Char",
		"Comment",
		"Operator",
		"EOF",
		"Error",
	}
	if int(s) < len(names) {
		return names[s]
	}
	return fmt.Sprintf("Unknown(%d)", s)
}

// classify returns the state the scanner enters when dispatching on the
// current character, with one character of lookahead to tell comments apart
// from the division operator. It is a pure function of the two characters,
// testable without running the scan loop.
func classify(ch, next byte) ScanState {
	switch {
	case ch == eofChar:
		return StateEOF
	case ch < 128 && isWhitespace[ch]:
		return StateStart
	case ch == '/' && (next == '/' || next == '*'):
		return StateComment
	case ch < 128 && isIdentStart[ch]:
		return StateIdentifier
	case ch < 128 && isDigit[ch]:
		return StateNumber
	case ch == '"':
		return StateString
	case ch == '\'':
		return StateChar
	case ch == '!' && next == '=':
		return StateOperator
	default:
		if _, ok := SingleCharTokens[ch]; ok {
			return StateOperator
		}
		return StateError
	}
}

// transitionRule defines the states reachable from one state
type transitionRule struct {
	from ScanState
	to   []ScanState
}

// generateTransitionMap creates the valid transitions map from rules
func generateTransitionMap() map[ScanState]map[ScanState]bool {
	rules := []transitionRule{
		{StateStart, []ScanState{
			StateStart,      // whitespace elided, dispatch repeats
			StateIdentifier, // letter or _
			StateNumber,     // digit
			StateString,     // "
			StateChar,       // '
			StateComment,    // // or /*
			StateOperator,   // operator or delimiter character
			StateEOF,        // input exhausted
			StateError,      // character matches no category
		}},
		{StateIdentifier, []ScanState{
			StateStart, // identifier or keyword token emitted
		}},
		{StateNumber, []ScanState{
			StateStart, // INTEGER or FLOAT_LITERAL emitted
			StateError, // second decimal point
		}},
		{StateString, []ScanState{
			StateStart, // closing quote consumed
			StateError, // invalid escape or unterminated
		}},
		{StateChar, []ScanState{
			StateStart, // closing quote consumed
			StateError, // invalid escape or unterminated
		}},
		{StateComment, []ScanState{
			StateStart, // comment skipped, dispatch repeats
			StateEOF,   // unterminated block comment reaches end of input
		}},
		{StateOperator, []ScanState{
			StateStart, // single or two-character operator emitted
		}},
		{StateEOF, []ScanState{
			StateEOF, // sticky
		}},
		// StateError has no outgoing transitions: the session is over
	}

	transitions := make(map[ScanState]map[ScanState]bool)
	for _, rule := range rules {
		allowed := make(map[ScanState]bool)
		for _, to := range rule.to {
			allowed[to] = true
		}
		transitions[rule.from] = allowed
	}

	return transitions
}

var validTransitions = generateTransitionMap()

// ValidTransition reports whether the automaton allows moving from one
// state to another.
func ValidTransition(from, to ScanState) bool {
	allowed, exists := validTransitions[from]
	if !exists {
		return false
	}
	return allowed[to]
}
