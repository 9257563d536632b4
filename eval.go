package crcgen

import "fmt"

// ExprEvaluator evaluates expressions using known register values.
type ExprEvaluator struct {
	m map[string]uint64 // mapping of register name to value
}

// NewExprEvaluator returns a new instance of ExprEvaluator with the
// given register/value mapping.
func NewExprEvaluator(names []string, values []uint64) *ExprEvaluator {
	assert(len(names) == len(values), "register/value count mismatch: %d != %d", len(names), len(values))

	m := make(map[string]uint64)
	for i, name := range names {
		_, ok := m[name]
		assert(!ok, "duplicate register: %s", name)
		m[name] = values[i]
	}

	return &ExprEvaluator{m: m}
}

// Evaluate reduces expr to a single bit value.
// Returns an error if an unbound register is referenced.
func (ee *ExprEvaluator) Evaluate(expr Expr) (uint64, error) {
	switch expr := expr.(type) {
	case *BitExpr:
		value, ok := ee.m[expr.Name]
		if !ok {
			return 0, fmt.Errorf("register not bound: %s", expr.Name)
		}
		return (value >> expr.Index) & 1, nil
	case *ConstantExpr:
		return expr.Value & 1, nil
	case *XorExpr:
		var v uint64
		for _, child := range expr.Exprs {
			bit, err := ee.Evaluate(child)
			if err != nil {
				return 0, err
			}
			v ^= bit
		}
		return v, nil
	default:
		panic("unreachable")
	}
}

// EvaluateWord reassembles the per-bit values of word into one integer,
// bit i of the result coming from position i of the word.
func (ee *ExprEvaluator) EvaluateWord(word *Word) (uint64, error) {
	var v uint64
	for i := 0; i < word.Len(); i++ {
		bit, err := ee.Evaluate(word.At(i))
		if err != nil {
			return 0, err
		}
		v |= bit << uint(i)
	}
	return v, nil
}
