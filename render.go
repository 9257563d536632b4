package crcgen

import (
	"fmt"
	"strings"
)

// SoftwareExpr renders expr as a value expression for software targets.
// A bit renders as a masked, shifted read of its source variable; an
// exclusive-or renders its operands joined by the XOR operator,
// parenthesized.
func SoftwareExpr(expr Expr) string {
	switch expr := expr.(type) {
	case *BitExpr:
		if expr.Index == 0 {
			return fmt.Sprintf("(%s & 1)", expr.Name)
		}
		return fmt.Sprintf("((%s >> %d) & 1)", expr.Name, expr.Index)
	case *ConstantExpr:
		return fmt.Sprintf("%d", expr.Value)
	case *XorExpr:
		a := make([]string, len(expr.Exprs))
		for i, child := range expr.Exprs {
			a[i] = SoftwareExpr(child)
		}
		return "(" + strings.Join(a, " ^ ") + ")"
	default:
		panic("unreachable")
	}
}

// HardwareExpr renders expr as a value expression for hardware
// description targets. A bit renders as a bit-select on its source
// signal.
func HardwareExpr(expr Expr) string {
	switch expr := expr.(type) {
	case *BitExpr:
		return fmt.Sprintf("%s[%d]", expr.Name, expr.Index)
	case *ConstantExpr:
		return fmt.Sprintf("1'b%d", expr.Value&1)
	case *XorExpr:
		a := make([]string, len(expr.Exprs))
		for i, child := range expr.Exprs {
			a[i] = HardwareExpr(child)
		}
		return "(" + strings.Join(a, " ^ ") + ")"
	default:
		panic("unreachable")
	}
}
