package crcgen_test

import (
	"strings"
	"testing"

	"github.com/KaneTW/crcgen"
)

func TestExprEvaluator_Evaluate(t *testing.T) {
	t.Run("Bit", func(t *testing.T) {
		ee := crcgen.NewExprEvaluator([]string{"crc"}, []uint64{0x82})
		if v, err := ee.Evaluate(crcgen.NewBitExpr("crc", 7)); err != nil {
			t.Fatal(err)
		} else if v != 1 {
			t.Fatalf("unexpected value: %d", v)
		}
		if v, err := ee.Evaluate(crcgen.NewBitExpr("crc", 0)); err != nil {
			t.Fatal(err)
		} else if v != 0 {
			t.Fatalf("unexpected value: %d", v)
		}
	})
	t.Run("Constant", func(t *testing.T) {
		ee := crcgen.NewExprEvaluator(nil, nil)
		if v, err := ee.Evaluate(crcgen.NewConstantExpr(0)); err != nil {
			t.Fatal(err)
		} else if v != 0 {
			t.Fatalf("unexpected value: %d", v)
		}
	})
	t.Run("Xor", func(t *testing.T) {
		ee := crcgen.NewExprEvaluator([]string{"crc", "data"}, []uint64{0x01, 0x01})
		expr := crcgen.NewXorExpr(crcgen.NewBitExpr("crc", 0), crcgen.NewBitExpr("data", 0))
		if v, err := ee.Evaluate(expr); err != nil {
			t.Fatal(err)
		} else if v != 0 {
			t.Fatalf("unexpected value: %d", v)
		}
	})
	t.Run("UnboundRegister", func(t *testing.T) {
		ee := crcgen.NewExprEvaluator([]string{"crc"}, []uint64{0})
		if _, err := ee.Evaluate(crcgen.NewBitExpr("data", 0)); err == nil {
			t.Fatal("expected error")
		} else if !strings.Contains(err.Error(), "register not bound") {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestExprEvaluator_EvaluateWord(t *testing.T) {
	word := crcgen.NewWord(crcgen.LSBFirst,
		crcgen.NewBitExpr("crc", 0),
		crcgen.NewBitExpr("crc", 1),
		crcgen.NewBitExpr("crc", 2),
	)
	ee := crcgen.NewExprEvaluator([]string{"crc"}, []uint64{0x05})
	if v, err := ee.EvaluateWord(word); err != nil {
		t.Fatal(err)
	} else if v != 0x05 {
		t.Fatalf("unexpected value: 0x%02X", v)
	}
}
