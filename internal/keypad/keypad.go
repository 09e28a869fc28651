// Package keypad implements the input accumulator of a keypad calculator: an
// explicit state object that turns button presses into the flat expression
// strings the engine consumes.
package keypad

import (
	"strings"

	"abacus"
	"abacus/internal/display"
)

// maxOperandDigits caps how many digits a single operand may accumulate.
const maxOperandDigits = 15

const sqrtMarker = "sqrt("

type lastKind int8

const (
	lastNone lastKind = iota
	lastDigit
	lastPoint
	lastOp
	lastOpen
	lastClose
)

// Editor accumulates key presses into a well-formed expression. Presses that
// would make the expression malformed are ignored, so the buffer always holds
// something the engine accepts once open groups are closed. The zero value is
// an empty editor ready to use.
type Editor struct {
	expr   []byte
	digits int // digits in the current operand
	dot    bool
	depth  int // open groups, sqrt included
	last   lastKind
}

// Digit appends a decimal digit to the current operand, up to
// maxOperandDigits per operand. A digit directly after a close parenthesis is
// ignored; an operator must come first.
func (ed *Editor) Digit(b byte) {
	if b < '0' || b > '9' {
		return
	}
	if ed.last == lastClose || ed.digits >= maxOperandDigits {
		return
	}
	ed.expr = append(ed.expr, b)
	ed.digits++
	ed.last = lastDigit
}

// Point appends the decimal point. An operand holds at most one point and
// must already have a digit.
func (ed *Editor) Point() {
	if ed.last != lastDigit || ed.dot {
		return
	}
	ed.expr = append(ed.expr, '.')
	ed.dot = true
	ed.last = lastPoint
}

// Operator appends one of + - * / **. Where an operand is expected, only a
// minus registers, becoming the operand's leading sign. Pressing an operator
// while one is already pending replaces it.
func (ed *Editor) Operator(op string) {
	switch op {
	case "+", "-", "*", "/", "**":
	default:
		return
	}
	switch ed.last {
	case lastDigit, lastClose:
	case lastNone, lastOpen:
		if op != "-" {
			return
		}
	case lastOp:
		n := len(ed.expr) - ed.opLen()
		if (n == 0 || ed.expr[n-1] == '(') && op != "-" {
			// The pending operator is a leading sign; only another minus may
			// take its place.
			return
		}
		ed.expr = ed.expr[:n]
	default:
		return
	}
	ed.expr = append(ed.expr, op...)
	ed.digits, ed.dot = 0, false
	ed.last = lastOp
}

// Sqrt opens a square root group. Registers only where an operand may start.
func (ed *Editor) Sqrt() {
	ed.open(sqrtMarker)
}

// Open opens a parenthesized group. Registers only where an operand may
// start.
func (ed *Editor) Open() {
	ed.open("(")
}

func (ed *Editor) open(marker string) {
	switch ed.last {
	case lastNone, lastOp, lastOpen:
		ed.expr = append(ed.expr, marker...)
		ed.depth++
		ed.digits, ed.dot = 0, false
		ed.last = lastOpen
	}
}

// Close closes the innermost open group. Registers only after a complete
// operand.
func (ed *Editor) Close() {
	if ed.depth == 0 {
		return
	}
	if ed.last != lastDigit && ed.last != lastClose {
		return
	}
	ed.expr = append(ed.expr, ')')
	ed.depth--
	ed.digits, ed.dot = 0, false
	ed.last = lastClose
}

// Delete removes the last key press: one character, or a whole ** or sqrt(
// marker.
func (ed *Editor) Delete() {
	if len(ed.expr) == 0 {
		return
	}
	n := 1
	s := string(ed.expr)
	switch {
	case strings.HasSuffix(s, sqrtMarker):
		n = len(sqrtMarker)
	case strings.HasSuffix(s, "**"):
		n = 2
	}
	ed.expr = ed.expr[:len(ed.expr)-n]
	ed.reindex()
}

// Clear empties the editor.
func (ed *Editor) Clear() {
	ed.expr = ed.expr[:0]
	ed.digits, ed.dot, ed.depth = 0, false, 0
	ed.last = lastNone
}

// Expression returns the accumulated expression text.
func (ed *Editor) Expression() string {
	return string(ed.expr)
}

// Empty reports whether nothing has been accumulated.
func (ed *Editor) Empty() bool {
	return len(ed.expr) == 0
}

// Equals evaluates the accumulated expression and returns the display text.
// Still-open groups are closed implicitly. On success the editor holds the
// rendered result so the next press continues the calculation; on failure the
// editor is cleared and the display text is the error text.
func (ed *Editor) Equals() string {
	if len(ed.expr) == 0 {
		return ""
	}
	expr := string(ed.expr) + strings.Repeat(")", ed.depth)
	v, err := abacus.EvalString(expr)
	if err != nil {
		ed.Clear()
		return display.ErrorText
	}
	s := display.Format(v)
	if s == display.ErrorText || strings.ContainsAny(s, "eE") {
		// NaN, or a scientific rendering the keypad grammar cannot reconsume.
		ed.Clear()
		return s
	}
	ed.expr = append(ed.expr[:0], s...)
	ed.reindex()
	return s
}

// opLen is the length of the trailing operator token.
func (ed *Editor) opLen() int {
	if strings.HasSuffix(string(ed.expr), "**") {
		return 2
	}
	return 1
}

// reindex recomputes the derived state from the buffer after an edit that
// did not go through the append paths.
func (ed *Editor) reindex() {
	ed.digits, ed.dot, ed.depth, ed.last = 0, false, 0, lastNone
	for _, b := range ed.expr {
		switch {
		case '0' <= b && b <= '9':
			ed.digits++
			ed.last = lastDigit
		case b == '.':
			ed.dot = true
			ed.last = lastPoint
		case b == '(':
			ed.depth++
			ed.digits, ed.dot = 0, false
			ed.last = lastOpen
		case b == ')':
			ed.depth--
			ed.digits, ed.dot = 0, false
			ed.last = lastClose
		case b == '+', b == '-', b == '*', b == '/':
			ed.digits, ed.dot = 0, false
			ed.last = lastOp
		}
		// Letters only occur inside a sqrt marker; the ( that follows sets
		// the state for the whole marker.
	}
}
