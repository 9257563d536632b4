package crcgen_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/KaneTW/crcgen"
)

func TestGoEmitter_Emit(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		out, err := crcgen.NewGoEmitter().Emit(crcgen.NewGenerator(0x07, crcgen.Width8))
		if err != nil {
			t.Fatal(err)
		}
		s := string(out)
		for _, want := range []string{
			"// vim: ts=4 sw=4 noexpandtab",
			"// THIS IS GENERATED CODE.",
			"package crc",
			"// polynomial = 0x7",
			"func crc(crcIn, data uint8) uint8 {",
			"var ret uint8",
			"ret = (",
			"ret |= (",
			"return ret",
		} {
			if !strings.Contains(s, want) {
				t.Fatalf("output missing %q:\n%s", want, s)
			}
		}
	})
	t.Run("NamingOverrides", func(t *testing.T) {
		e := crcgen.NewGoEmitter()
		e.PackageName = "checksum"
		e.FuncName = "update"
		e.CrcParam = "state"
		e.DataParam = "b"
		out, err := e.Emit(crcgen.NewGenerator(0x1D, crcgen.Width8))
		if err != nil {
			t.Fatal(err)
		}
		s := string(out)
		if !strings.Contains(s, "package checksum") {
			t.Fatalf("unexpected output:\n%s", s)
		} else if !strings.Contains(s, "func update(state, b uint8) uint8 {") {
			t.Fatalf("unexpected output:\n%s", s)
		}
	})
	t.Run("UnsupportedWidth", func(t *testing.T) {
		if _, err := crcgen.NewGoEmitter().Emit(crcgen.NewGenerator(0x07, 16)); !errors.Is(err, crcgen.ErrUnsupportedWidth) {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestVerilogEmitter_Emit(t *testing.T) {
	t.Run("Function", func(t *testing.T) {
		out, err := crcgen.NewVerilogEmitter().Emit(crcgen.NewGenerator(0x07, crcgen.Width8))
		if err != nil {
			t.Fatal(err)
		}
		s := string(out)
		for _, want := range []string{
			"// vim: ts=4 sw=4 noexpandtab",
			"// polynomial = 0x7",
			"function automatic [7:0] crc;",
			"input [7:0] crcIn;",
			"input [7:0] data;",
			"begin",
			"crc[0] = ",
			"crc[7] = ",
			"endfunction",
		} {
			if !strings.Contains(s, want) {
				t.Fatalf("output missing %q:\n%s", want, s)
			}
		}
		if strings.Contains(s, "`ifndef") {
			t.Fatalf("function output should not carry an include guard:\n%s", s)
		}
	})
	t.Run("Module", func(t *testing.T) {
		e := crcgen.NewVerilogEmitter()
		e.Module = true
		out, err := e.Emit(crcgen.NewGenerator(0x07, crcgen.Width8))
		if err != nil {
			t.Fatal(err)
		}
		s := string(out)
		for _, want := range []string{
			"`ifndef CRC_V_",
			"`define CRC_V_",
			"module crc (",
			"input [7:0] crcIn,",
			"input [7:0] data,",
			"output [7:0] crcOut,",
			"assign crcOut[0] = ",
			"endmodule",
			"`endif // CRC_V_",
		} {
			if !strings.Contains(s, want) {
				t.Fatalf("output missing %q:\n%s", want, s)
			}
		}
	})
	t.Run("UnsupportedWidth", func(t *testing.T) {
		if _, err := crcgen.NewVerilogEmitter().Emit(crcgen.NewGenerator(0x07, 4)); !errors.Is(err, crcgen.ErrUnsupportedWidth) {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCEmitter_Emit(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		out, err := crcgen.NewCEmitter().Emit(crcgen.NewGenerator(0x07, crcgen.Width8))
		if err != nil {
			t.Fatal(err)
		}
		s := string(out)
		for _, want := range []string{
			"// vim: ts=4 sw=4 noexpandtab",
			"#ifndef CRC_H_",
			"#define CRC_H_",
			"#include <stdint.h>",
			"// polynomial = 0x7",
			"uint8_t crc(uint8_t crcIn, uint8_t data)",
			"uint8_t ret;",
			"return ret;",
			"#endif /* CRC_H_ */",
		} {
			if !strings.Contains(s, want) {
				t.Fatalf("output missing %q:\n%s", want, s)
			}
		}
		if strings.Contains(s, "static") || strings.Contains(s, "inline") {
			t.Fatalf("unexpected qualifier:\n%s", s)
		}
	})
	t.Run("StaticInline", func(t *testing.T) {
		e := crcgen.NewCEmitter()
		e.Static = true
		e.Inline = true
		out, err := e.Emit(crcgen.NewGenerator(0x07, crcgen.Width8))
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(out), "static inline uint8_t crc(") {
			t.Fatalf("unexpected output:\n%s", out)
		}
	})
	t.Run("UnsupportedWidth", func(t *testing.T) {
		if _, err := crcgen.NewCEmitter().Emit(crcgen.NewGenerator(0x07, 12)); !errors.Is(err, crcgen.ErrUnsupportedWidth) {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
