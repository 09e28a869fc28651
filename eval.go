package abacus

import (
	"io"
	"math"
	"strings"
)

// Eval evaluates the parsed expression. Evaluation is a pure function of the
// tree: the same Expr always yields the same result, and an Expr may be
// evaluated any number of times.
//
// The square root of a negative operand is not an error; it yields IEEE NaN,
// which propagates through the remaining arithmetic into the result.
func (e *Expr) Eval() (float64, error) {
	return e.n.eval()
}

func (n *node) eval() (float64, error) {
	switch n.kind {
	case nodeNum:
		return n.val, nil
	case nodeNeg:
		v, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		return -v, nil
	case nodeSqrt:
		v, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		return math.Sqrt(v), nil
	case nodeAdd:
		l, r, err := n.operands()
		if err != nil {
			return 0, err
		}
		return l + r, nil
	case nodeSub:
		l, r, err := n.operands()
		if err != nil {
			return 0, err
		}
		return l - r, nil
	case nodeMul:
		l, r, err := n.operands()
		if err != nil {
			return 0, err
		}
		return l * r, nil
	case nodeDiv:
		l, r, err := n.operands()
		if err != nil {
			return 0, err
		}
		if r == 0 {
			return 0, ErrDivisionByZero
		}
		return l / r, nil
	case nodePow:
		l, r, err := n.operands()
		if err != nil {
			return 0, err
		}
		return math.Pow(l, r), nil
	default:
		panic("abacus: invalid AST node " + n.kind.String())
	}
}

// operands evaluates both children of a binary node.
func (n *node) operands() (l, r float64, err error) {
	if l, err = n.left.eval(); err != nil {
		return 0, 0, err
	}
	if r, err = n.right.eval(); err != nil {
		return 0, 0, err
	}
	return l, r, nil
}

// Eval is a shortcut to parse an expression and evaluate it.
func Eval(src io.RuneScanner) (float64, error) {
	e, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return e.Eval()
}

// EvalString is a shortcut to parse and evaluate a string expression. Errors
// match either ErrInvalidExpression or ErrDivisionByZero with errors.Is.
func EvalString(expression string) (float64, error) {
	return Eval(strings.NewReader(expression))
}
