package crcgen_test

import (
	"errors"
	"testing"

	"github.com/KaneTW/crcgen"
)

func TestUpdate(t *testing.T) {
	t.Run("Zero", func(t *testing.T) {
		if v := crcgen.Update(0x00, 0x00, 0x07); v != 0x00 {
			t.Fatalf("unexpected value: 0x%02X", v)
		}
	})
	t.Run("KnownValue", func(t *testing.T) {
		// CRC-8 of a single 0x01 byte with initial register zero.
		if v := crcgen.Update(0x00, 0x01, 0x07); v != 0x07 {
			t.Fatalf("unexpected value: 0x%02X", v)
		}
	})
	t.Run("Chained", func(t *testing.T) {
		// Feeding the result back in must differ from a fresh byte.
		a := crcgen.Update(0x00, 0xAB, 0x07)
		b := crcgen.Update(a, 0xCD, 0x07)
		if a == b {
			t.Fatal("expected distinct values")
		}
	})
}

func TestSelfTest(t *testing.T) {
	t.Run("Poly07", func(t *testing.T) {
		if err := crcgen.SelfTest(0x07); err != nil {
			t.Fatal(err)
		}
	})
	t.Run("Poly1D", func(t *testing.T) {
		if err := crcgen.SelfTest(0x1D); err != nil {
			t.Fatal(err)
		}
	})
	t.Run("EvenPolynomial", func(t *testing.T) {
		if err := crcgen.SelfTest(0x08); !errors.Is(err, crcgen.ErrInvalidPolynomial) {
			t.Fatalf("unexpected error: %v", err)
		}
	})
	t.Run("OutOfRangePolynomial", func(t *testing.T) {
		if err := crcgen.SelfTest(0x11D); !errors.Is(err, crcgen.ErrInvalidPolynomial) {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
