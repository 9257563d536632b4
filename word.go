package crcgen

import (
	"bytes"

	"github.com/benbjohnson/immutable"
)

// BitOrder is the ordering of expressions passed to NewWord.
type BitOrder int

const (
	MSBFirst = BitOrder(iota)
	LSBFirst
)

// Word is a fixed-length ordered sequence of expressions, one per
// register bit. Position 0 holds the least significant bit. Words are
// immutable; Flatten and Optimize return new Words.
type Word struct {
	exprs *immutable.List
}

// NewWord returns a new Word over exprs given in the specified bit order.
func NewWord(order BitOrder, exprs ...Expr) *Word {
	if order == MSBFirst {
		reversed := make([]Expr, len(exprs))
		for i, expr := range exprs {
			reversed[len(exprs)-1-i] = expr
		}
		exprs = reversed
	}

	l := immutable.NewList()
	for _, expr := range exprs {
		l = l.Append(expr)
	}
	return &Word{exprs: l}
}

// Len returns the number of bit positions in the word.
func (w *Word) Len() int {
	return w.exprs.Len()
}

// At returns the expression for bit position i (0 = least significant).
func (w *Word) At(i int) Expr {
	return w.exprs.Get(i).(Expr)
}

// Exprs returns the expressions of the word in LSB-first order.
func (w *Word) Exprs() []Expr {
	a := make([]Expr, w.Len())
	for i := range a {
		a[i] = w.At(i)
	}
	return a
}

// Flatten returns a word with every position collapsed into a flat
// exclusive-or over its leaf bits. Positions holding a bare bit are
// passed through unchanged.
func (w *Word) Flatten() *Word {
	other := NewWord(LSBFirst)
	for i := 0; i < w.Len(); i++ {
		other.exprs = other.exprs.Append(FlattenExpr(w.At(i)))
	}
	return other
}

// Optimize returns a word with exclusive-or cancellation applied to
// every position independently.
func (w *Word) Optimize() *Word {
	other := NewWord(LSBFirst)
	for i := 0; i < w.Len(); i++ {
		other.exprs = other.exprs.Append(OptimizeExpr(w.At(i)))
	}
	return other
}

// String returns the string representation of the word, LSB first.
func (w *Word) String() string {
	var buf bytes.Buffer
	buf.WriteRune('[')
	for i := 0; i < w.Len(); i++ {
		if i > 0 {
			buf.WriteRune(' ')
		}
		buf.WriteString(w.At(i).String())
	}
	buf.WriteRune(']')
	return buf.String()
}
