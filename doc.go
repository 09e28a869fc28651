// Package abacus implements the expression engine of a keypad calculator.
//
// The engine accepts the flat strings a calculator keypad accumulates: decimal
// numbers, the binary operators + - * / and **, parenthesized groups, a
// leading unary minus, and sqrt(...). Operator precedence follows convention,
// + - and * / associate left to right, and ** associates right to left.
//
// Evaluation is stateless and carried out in double precision. Failures come
// in two kinds, distinguishable with errors.Is: ErrInvalidExpression for
// malformed input and ErrDivisionByZero for a divisor of exactly zero.
package abacus
