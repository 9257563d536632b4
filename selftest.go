package crcgen

import "fmt"

// Update computes one step of the bit-serial CRC update for one input
// byte. This is the reference implementation the generated formulas must
// match.
func Update(crc, data, polynomial uint8) uint8 {
	data ^= crc
	for i := 0; i < Width8; i++ {
		if data&0x80 != 0 {
			data = (data << 1) ^ polynomial
		} else {
			data <<= 1
		}
	}
	return data
}

// SelfTest verifies the generated formulas for polynomial against the
// bit-serial reference over the full cross product of register and data
// values. The first mismatching pair, if any, is reported in the error.
func SelfTest(polynomial uint64) error {
	if err := ValidatePolynomial(polynomial, Width8); err != nil {
		return err
	}

	word, err := NewGenerator(polynomial, Width8).Generate("crc", "data")
	if err != nil {
		return err
	}

	for c := 0; c < 256; c++ {
		for d := 0; d < 256; d++ {
			ee := NewExprEvaluator([]string{"crc", "data"}, []uint64{uint64(c), uint64(d)})
			got, err := ee.EvaluateWord(word)
			if err != nil {
				return err
			}
			if want := Update(uint8(c), uint8(d), uint8(polynomial)); uint8(got) != want {
				return fmt.Errorf("self-test mismatch: crc=0x%02X data=0x%02X: got 0x%02X, want 0x%02X", c, d, got, want)
			}
		}
	}
	return nil
}
