package lexer

// eofChar is the end-of-input sentinel returned by Current and Peek. A
// literal NUL byte in the source yields the same value, so dispatch code
// that sees the sentinel must confirm AtEnd before treating it as the end.
const eofChar byte = 0

// Cursor owns the source text and the scan position. It is the only piece
// of mutable scan state: every scanning step reads and advances through
// exactly one Cursor, and a Cursor belongs to exactly one session.
//
// Line and Column always describe the location of the character Current
// returns, not of the last-consumed character. Reading past the end is not
// an error; Current and Peek keep returning the sentinel.
type Cursor struct {
	src    string
	pos    int // absolute byte offset of the current character
	line   int // 1-based line of the current character
	column int // 1-based column of the current character
}

// NewCursor returns a Cursor positioned at the first character of src.
func NewCursor(src string) *Cursor {
	return &Cursor{
		src:    src,
		pos:    0,
		line:   1,
		column: 1,
	}
}

// Current returns the character at the scan position, or the end-of-input
// sentinel once the source is exhausted.
func (c *Cursor) Current() byte {
	if c.pos >= len(c.src) {
		return eofChar
	}
	return c.src[c.pos]
}

// Peek returns the character one position ahead without consuming it.
func (c *Cursor) Peek() byte {
	if c.pos+1 >= len(c.src) {
		return eofChar
	}
	return c.src[c.pos+1]
}

// Advance consumes the current character. Column advances by one; consuming
// a newline additionally moves to the next line and resets the column.
// Advancing at end-of-input is a no-op.
func (c *Cursor) Advance() {
	if c.pos >= len(c.src) {
		return
	}

	if c.src[c.pos] == '\n' {
		c.line++
		c.column = 1
	} else {
		c.column++
	}
	c.pos++
}

// AtEnd reports whether the source is exhausted.
func (c *Cursor) AtEnd() bool {
	return c.pos >= len(c.src)
}

// Pos returns the position of the current character.
func (c *Cursor) Pos() Position {
	return Position{Line: c.line, Column: c.column, Offset: c.pos}
}

// Offset returns the absolute byte offset of the current character.
func (c *Cursor) Offset() int {
	return c.pos
}

// Slice returns the source text between two absolute offsets. Used to
// extract token lexemes after a scan step has advanced past them.
func (c *Cursor) Slice(start, end int) string {
	return c.src[start:end]
}

// Source returns the full source text owned by this cursor.
func (c *Cursor) Source() string {
	return c.src
}
