package crcgen

import (
	"bytes"
	"fmt"
	"strings"
)

// Expr represents a symbolic boolean expression over register bits.
type Expr interface {
	fmt.Stringer
	expr()
}

func (*BitExpr) expr()      {}
func (*ConstantExpr) expr() {}
func (*XorExpr) expr()      {}

// BitExpr references a single bit of a named register.
type BitExpr struct {
	Name  string
	Index uint // 0 = least significant bit
}

// NewBitExpr returns a new instance of BitExpr.
func NewBitExpr(name string, index uint) *BitExpr {
	return &BitExpr{Name: name, Index: index}
}

// String returns the string representation of the expression.
func (e *BitExpr) String() string {
	return fmt.Sprintf("(bit %s %d)", e.Name, e.Index)
}

// ConstantExpr represents a constant bit value. It only arises from
// optimization, when every operand of an exclusive-or cancels.
type ConstantExpr struct {
	Value uint64
}

// NewConstantExpr returns a new instance of ConstantExpr.
func NewConstantExpr(value uint64) *ConstantExpr {
	return &ConstantExpr{Value: value}
}

// String returns the string representation of the expression.
func (e *ConstantExpr) String() string {
	return fmt.Sprintf("(const %d)", e.Value)
}

// XorExpr represents an n-ary exclusive-or of sub-expressions.
type XorExpr struct {
	Exprs []Expr
}

// NewXorExpr returns a new instance of XorExpr.
// An exclusive-or of fewer than two operands is not a valid expression.
func NewXorExpr(exprs ...Expr) *XorExpr {
	assert(len(exprs) >= 2, "xor expr requires at least 2 operands, got %d", len(exprs))
	return &XorExpr{Exprs: exprs}
}

// String returns the string representation of the expression.
func (e *XorExpr) String() string {
	var buf bytes.Buffer
	buf.WriteString("(xor")
	for _, expr := range e.Exprs {
		buf.WriteRune(' ')
		buf.WriteString(expr.String())
	}
	buf.WriteRune(')')
	return buf.String()
}

// ExprBits returns every leaf bit of expr in depth-first order.
func ExprBits(expr Expr) []*BitExpr {
	switch expr := expr.(type) {
	case *BitExpr:
		return []*BitExpr{expr}
	case *ConstantExpr:
		return nil
	case *XorExpr:
		var a []*BitExpr
		for _, child := range expr.Exprs {
			a = append(a, ExprBits(child)...)
		}
		return a
	default:
		panic("unreachable")
	}
}

// FlattenExpr collapses nested exclusive-or structure into a single
// exclusive-or over the leaf bits of expr. A bare bit or constant
// passes through unchanged. Constants nested inside an exclusive-or
// are dropped; zero is the exclusive-or identity.
func FlattenExpr(expr Expr) Expr {
	switch expr := expr.(type) {
	case *BitExpr:
		return expr
	case *ConstantExpr:
		return expr
	case *XorExpr:
		bits := ExprBits(expr)
		switch len(bits) {
		case 0:
			return NewConstantExpr(0)
		case 1:
			return bits[0]
		}
		exprs := make([]Expr, len(bits))
		for i, bit := range bits {
			exprs[i] = bit
		}
		return NewXorExpr(exprs...)
	default:
		panic("unreachable")
	}
}

// OptimizeExpr cancels redundant operands of a flat exclusive-or: a bit
// occurring an even number of times vanishes, an odd number of
// occurrences collapses to one. Surviving operands keep their
// first-occurrence order. Operands that are not bare bits are kept
// unconditionally. An exclusive-or whose operands all cancel reduces
// to the zero constant. Expressions other than exclusive-ors are
// returned unchanged.
func OptimizeExpr(expr Expr) Expr {
	xor, ok := expr.(*XorExpr)
	if !ok {
		return expr
	}

	exprs := make([]Expr, 0, len(xor.Exprs))
	for _, item := range xor.Exprs {
		bit, ok := item.(*BitExpr)
		if !ok {
			exprs = append(exprs, item)
			continue
		} else if containsExpr(exprs, bit) {
			continue
		}
		if countBit(xor.Exprs, bit)%2 == 1 {
			exprs = append(exprs, bit)
		}
	}

	switch len(exprs) {
	case 0:
		// Every operand canceled; the exclusive-or is identically zero.
		return NewConstantExpr(0)
	case 1:
		return exprs[0]
	}
	return NewXorExpr(exprs...)
}

// countBit returns the number of operands in exprs equal to bit.
func countBit(exprs []Expr, bit *BitExpr) int {
	var n int
	for _, expr := range exprs {
		if expr, ok := expr.(*BitExpr); ok && CompareExpr(expr, bit) == 0 {
			n++
		}
	}
	return n
}

// containsExpr returns true if exprs contains an expression equal to expr.
func containsExpr(exprs []Expr, expr Expr) bool {
	for i := range exprs {
		if CompareExpr(exprs[i], expr) == 0 {
			return true
		}
	}
	return false
}

// CompareExpr returns an integer comparing two expressions.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Two bits are equal iff both their register name and index match.
func CompareExpr(a, b Expr) int {
	if a == nil && b != nil {
		return -1
	} else if a != nil && b == nil {
		return 1
	} else if a == nil && b == nil {
		return 0
	}

	if ak, bk := exprKind(a), exprKind(b); ak < bk {
		return -1
	} else if ak > bk {
		return 1
	}

	switch a := a.(type) {
	case *BitExpr:
		return compareBitExpr(a, b.(*BitExpr))
	case *ConstantExpr:
		return compareConstantExpr(a, b.(*ConstantExpr))
	case *XorExpr:
		return compareXorExpr(a, b.(*XorExpr))
	default:
		panic("unreachable")
	}
}

func compareBitExpr(a, b *BitExpr) int {
	if cmp := strings.Compare(a.Name, b.Name); cmp != 0 {
		return cmp
	}
	if a.Index < b.Index {
		return -1
	} else if a.Index > b.Index {
		return 1
	}
	return 0
}

func compareConstantExpr(a, b *ConstantExpr) int {
	if a.Value < b.Value {
		return -1
	} else if a.Value > b.Value {
		return 1
	}
	return 0
}

func compareXorExpr(a, b *XorExpr) int {
	if len(a.Exprs) < len(b.Exprs) {
		return -1
	} else if len(a.Exprs) > len(b.Exprs) {
		return 1
	}
	for i := range a.Exprs {
		if cmp := CompareExpr(a.Exprs[i], b.Exprs[i]); cmp != 0 {
			return cmp
		}
	}
	return 0
}

// exprKind returns a numeric value for the type of expression.
// Only used internally for equality checks and sorting.
func exprKind(expr Expr) int {
	switch expr.(type) {
	case *ConstantExpr:
		return 1
	case *BitExpr:
		return 2
	case *XorExpr:
		return 3
	default:
		panic("unreachable")
	}
}
