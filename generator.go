package crcgen

// Generator symbolically unrolls the bit-serial CRC update for one input
// byte, producing a closed-form formula per output register bit.
type Generator struct {
	// Polynomial is the CRC feedback polynomial. Its low bit must be
	// set; callers validate with ValidatePolynomial before generating.
	Polynomial uint64

	// Width is the register width in bits. Only Width8 is supported.
	Width uint
}

// NewGenerator returns a new instance of Generator.
func NewGenerator(polynomial uint64, width uint) *Generator {
	return &Generator{Polynomial: polynomial, Width: width}
}

// Generate returns the formula word for one update step. The returned
// bits reference the current register as crcName and the input byte as
// dataName. Position i of the word holds the formula for output register
// bit i.
func (g *Generator) Generate(crcName, dataName string) (*Word, error) {
	if g.Width != Width8 {
		return nil, ErrUnsupportedWidth
	}
	assert(g.Polynomial&1 == 1, "polynomial must be odd: 0x%X", g.Polynomial)

	// XOR the incoming byte into the register before shifting.
	base := make([]Expr, Width8)
	for i := uint(0); i < Width8; i++ {
		base[i] = NewXorExpr(NewBitExpr(dataName, i), NewBitExpr(crcName, i))
	}
	word := NewWord(LSBFirst, base...)

	// One symbolic round per register bit: shift left by one and fold
	// the carried-out top bit back in at every tap position.
	for round := uint(0); round < Width8; round++ {
		carry := word.At(Width8 - 1)

		next := make([]Expr, Width8)
		next[0] = g.combine(nil, carry, 0)
		for i := uint(1); i < Width8; i++ {
			next[i] = g.combine(word.At(int(i)-1), carry, i)
		}
		word = NewWord(LSBFirst, next...)
	}

	return word.Flatten().Optimize(), nil
}

// combine folds the carry expression into a at tap position tap. Without
// a prior contribution the carry propagates directly.
func (g *Generator) combine(a, carry Expr, tap uint) Expr {
	if a == nil {
		return carry
	} else if (g.Polynomial>>tap)&1 == 1 {
		return NewXorExpr(a, carry)
	}
	return a
}
