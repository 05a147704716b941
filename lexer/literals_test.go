package lexer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIntegerLiterals tests integer tokenization and decoding
func TestIntegerLiterals(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []tokenExpectation
	}{
		{
			name:  "single_digit",
			input: "5",
			expected: []tokenExpectation{
				{INTEGER, "5", 1, 1},
				{EOF, "", 1, 2},
			},
		},
		{
			name:  "multiple_digits",
			input: "12345",
			expected: []tokenExpectation{
				{INTEGER, "12345", 1, 1},
				{EOF, "", 1, 6},
			},
		},
		{
			name:  "zero",
			input: "0",
			expected: []tokenExpectation{
				{INTEGER, "0", 1, 1},
				{EOF, "", 1, 2},
			},
		},
		{
			name:  "leading_minus_is_separate_token",
			input: "-42",
			expected: []tokenExpectation{
				{MINUS, "-", 1, 1},
				{INTEGER, "42", 1, 2},
				{EOF, "", 1, 4},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTokens(t, tt.name, tt.input, tt.expected)
		})
	}
}

// TestIntegerDecoding tests the decoded Int value
func TestIntegerDecoding(t *testing.T) {
	result, err := Tokenize("42 0 9001")
	require.NoError(t, err)

	require.Len(t, result.Tokens, 4)
	assert.Equal(t, int64(42), result.Tokens[0].Int)
	assert.Equal(t, int64(0), result.Tokens[1].Int)
	assert.Equal(t, int64(9001), result.Tokens[2].Int)
}

// TestIntegerOverflowSaturates tests that digit runs beyond int64 keep the
// scan alive and saturate the decoded value
func TestIntegerOverflowSaturates(t *testing.T) {
	result, err := Tokenize("99999999999999999999999999")
	require.NoError(t, err)

	require.Equal(t, INTEGER, result.Tokens[0].Type)
	assert.Equal(t, "99999999999999999999999999", result.Tokens[0].Lexeme)
	assert.Equal(t, int64(math.MaxInt64), result.Tokens[0].Int)
}

// TestFloatLiterals tests float tokenization and decoding
func TestFloatLiterals(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []tokenExpectation
	}{
		{
			name:  "simple_float",
			input: "3.14",
			expected: []tokenExpectation{
				{FLOAT_LITERAL, "3.14", 1, 1},
				{EOF, "", 1, 5},
			},
		},
		{
			name:  "zero_float",
			input: "0.0",
			expected: []tokenExpectation{
				{FLOAT_LITERAL, "0.0", 1, 1},
				{EOF, "", 1, 4},
			},
		},
		{
			name:  "trailing_dot",
			input: "5.",
			expected: []tokenExpectation{
				{FLOAT_LITERAL, "5.", 1, 1},
				{EOF, "", 1, 3},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTokens(t, tt.name, tt.input, tt.expected)
		})
	}
}

// TestFloatDecoding tests the decoded Float value
func TestFloatDecoding(t *testing.T) {
	result, err := Tokenize("3.14 0.5")
	require.NoError(t, err)

	assert.InDelta(t, 3.14, result.Tokens[0].Float, 1e-12)
	assert.InDelta(t, 0.5, result.Tokens[1].Float, 1e-12)
}

// TestStringLiterals tests string tokenization, quoting and escape handling
func TestStringLiterals(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantLexeme string
		wantText   string
	}{
		{
			name:       "plain_string",
			input:      `"hello"`,
			wantLexeme: `"hello"`,
			wantText:   "hello",
		},
		{
			name:       "empty_string",
			input:      `""`,
			wantLexeme: `""`,
			wantText:   "",
		},
		{
			name:       "escaped_newline_kept_as_source_form",
			input:      `"a\nb"`,
			wantLexeme: `"a\nb"`,
			wantText:   `a\nb`,
		},
		{
			name:       "escaped_tab",
			input:      `"a\tb"`,
			wantLexeme: `"a\tb"`,
			wantText:   `a\tb`,
		},
		{
			name:       "escaped_quote",
			input:      `"say \"hi\""`,
			wantLexeme: `"say \"hi\""`,
			wantText:   `say \"hi\"`,
		},
		{
			name:       "escaped_backslash",
			input:      `"a\\b"`,
			wantLexeme: `"a\\b"`,
			wantText:   `a\\b`,
		},
		{
			name:       "string_with_spaces_and_punctuation",
			input:      `"Hello, World!"`,
			wantLexeme: `"Hello, World!"`,
			wantText:   "Hello, World!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Tokenize(tt.input)
			require.NoError(t, err)

			require.Len(t, result.Tokens, 2)
			token := result.Tokens[0]
			assert.Equal(t, STRING, token.Type)
			assert.Equal(t, tt.wantLexeme, token.Lexeme)
			assert.Equal(t, tt.wantText, token.Text)
		})
	}
}

// TestCharLiterals tests character literal tokenization
func TestCharLiterals(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantLexeme string
		wantText   string
	}{
		{
			name:       "plain_char",
			input:      "'H'",
			wantLexeme: "'H'",
			wantText:   "H",
		},
		{
			name:       "digit_char",
			input:      "'7'",
			wantLexeme: "'7'",
			wantText:   "7",
		},
		{
			name:       "escaped_newline",
			input:      `'\n'`,
			wantLexeme: `'\n'`,
			wantText:   `\n`,
		},
		{
			name:       "escaped_tab",
			input:      `'\t'`,
			wantLexeme: `'\t'`,
			wantText:   `\t`,
		},
		{
			name:       "escaped_quote",
			input:      `'\''`,
			wantLexeme: `'\''`,
			wantText:   `\'`,
		},
		{
			name:       "escaped_backslash",
			input:      `'\\'`,
			wantLexeme: `'\\'`,
			wantText:   `\\`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Tokenize(tt.input)
			require.NoError(t, err)

			require.Len(t, result.Tokens, 2)
			token := result.Tokens[0]
			assert.Equal(t, CHAR_LITERAL, token.Type)
			assert.Equal(t, tt.wantLexeme, token.Lexeme)
			assert.Equal(t, tt.wantText, token.Text)
		})
	}
}

// TestStringPositionTracking tests positions around multi-line strings
func TestStringPositionTracking(t *testing.T) {
	input := "\"one\"\n\"two\""
	expected := []tokenExpectation{
		{STRING, `"one"`, 1, 1},
		{STRING, `"two"`, 2, 1},
		{EOF, "", 2, 6},
	}
	assertTokens(t, "string positions", input, expected)
}
