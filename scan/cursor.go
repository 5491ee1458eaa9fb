// Package scan recognizes mul(X,Y) instructions, and the do() and
// don't() toggles, in corrupted program text.
//
// Scanning is forward only. At each offset the recognizers are tried in
// turn; if none matches the cursor moves on by one byte. Recognizer
// failures never leave the scan loop.
package scan

import (
	"fmt"
	"strconv"

	"github.com/lanternfish/aoc2024"
)

// ErrKind says why a recognizer failed.
type ErrKind int

const (
	NotKeyword ErrKind = iota
	NoNumber
	NoComma
	MissingCloseParen
	EndOfText // ran out of text mid-token; terminal for a scan
)

var kindNames = [...]string{
	NotKeyword:        "not keyword",
	NoNumber:          "no number",
	NoComma:           "no comma",
	MissingCloseParen: "missing close paren",
	EndOfText:         "end of text",
}

func (k ErrKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("ErrKind(%d)", int(k))
}

// ParseError is a recognizer failure at byte offset Pos.
type ParseError struct {
	Kind ErrKind
	Pos  int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("scan: %v at offset %d", e.Kind, e.Pos)
}

// Is matches any *ParseError of the same Kind.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Kind == e.Kind
}

// ErrEndOfText matches, with errors.Is, any EndOfText ParseError.
var ErrEndOfText error = &ParseError{Kind: EndOfText}

// Cursor is an offset into an immutable text. Methods return a new
// Cursor rather than moving the receiver, so a failed attempt leaves
// the caller's position untouched.
type Cursor struct {
	buf string
	pos int
}

func NewCursor(text string) Cursor { return Cursor{buf: text} }

func (c Cursor) Pos() int { return c.pos }

func (c Cursor) AtEnd() bool { return c.pos >= len(c.buf) }

// Rest returns the unscanned text. It shares memory with the original.
func (c Cursor) Rest() string { return c.buf[c.pos:] }

// Advance returns c moved n bytes forward, clamped to the end of text.
func (c Cursor) Advance(n int) Cursor {
	c.pos = min(c.pos+n, len(c.buf))
	return c
}

func (c Cursor) fail(kind ErrKind) error {
	return &ParseError{Kind: kind, Pos: c.pos}
}

// tag consumes the literal lit.
func (c Cursor) tag(lit string) (Cursor, error) {
	for i := 0; i < len(lit); i++ {
		if c.pos+i >= len(c.buf) {
			return c, c.Advance(i).fail(EndOfText)
		}
		if c.buf[c.pos+i] != lit[i] {
			return c, c.Advance(i).fail(NotKeyword)
		}
	}
	return c.Advance(len(lit)), nil
}

// char consumes the single byte b, failing with kind if another byte is
// there.
func (c Cursor) char(b byte, kind ErrKind) (Cursor, error) {
	if c.AtEnd() {
		return c, c.fail(EndOfText)
	}
	if c.buf[c.pos] != b {
		return c, c.fail(kind)
	}
	return c.Advance(1), nil
}

// MaxDigits is the longest digit run accepted as an operand. Two such
// operands multiply without overflowing a 64-bit int.
const MaxDigits = 9

// digits consumes a run of one to MaxDigits ASCII digits and returns its
// value. A longer run is NoNumber.
func (c Cursor) digits() (int, Cursor, error) {
	end := c.pos
	for end < len(c.buf) && c.buf[end] >= '0' && c.buf[end] <= '9' {
		end++
	}
	if end == c.pos || end-c.pos > MaxDigits {
		return 0, c, c.fail(NoNumber)
	}
	// The run is all digits and short enough, so this cannot fail.
	n := aoc.MustGet(strconv.Atoi(c.buf[c.pos:end]))
	return n, c.Advance(end - c.pos), nil
}
