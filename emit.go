package crcgen

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/tools/imports"
)

// header is prepended, as line comments, to all generated output.
const header = "THIS IS GENERATED CODE.\n" +
	"This code is Public Domain.\n" +
	"It can be used without any restrictions.\n"

// modeline is the editor modeline emitted before the header.
const modeline = "vim: ts=4 sw=4 noexpandtab"

func writeHeader(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "// %s\n", modeline)
	for _, line := range strings.Split(strings.TrimRight(header, "\n"), "\n") {
		fmt.Fprintf(buf, "// %s\n", line)
	}
}

// GoEmitter renders the formula word as a Go function.
type GoEmitter struct {
	PackageName string
	FuncName    string
	CrcParam    string
	DataParam   string
}

// NewGoEmitter returns a new instance of GoEmitter with default naming.
func NewGoEmitter() *GoEmitter {
	return &GoEmitter{
		PackageName: "crc",
		FuncName:    "crc",
		CrcParam:    "crcIn",
		DataParam:   "data",
	}
}

// Emit generates the formulas for g and renders them as a Go source
// file. The output is passed through the canonical formatter so it can
// be dropped into a downstream project as-is.
func (e *GoEmitter) Emit(g *Generator) ([]byte, error) {
	word, err := g.Generate(e.CrcParam, e.DataParam)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writeHeader(&buf)
	fmt.Fprintf(&buf, "\npackage %s\n\n", e.PackageName)
	fmt.Fprintf(&buf, "// polynomial = 0x%X\n", g.Polynomial)
	fmt.Fprintf(&buf, "func %s(%s, %s uint8) uint8 {\n", e.FuncName, e.CrcParam, e.DataParam)
	fmt.Fprintf(&buf, "\tvar ret uint8\n")
	for i, expr := range word.Exprs() {
		if i == 0 {
			fmt.Fprintf(&buf, "\tret = %s\n", SoftwareExpr(expr))
		} else {
			fmt.Fprintf(&buf, "\tret |= %s << %d\n", SoftwareExpr(expr), i)
		}
	}
	fmt.Fprintf(&buf, "\treturn ret\n")
	fmt.Fprintf(&buf, "}\n")

	return imports.Process(e.FuncName+".go", buf.Bytes(), nil)
}

// VerilogEmitter renders the formula word as a Verilog function or, in
// Module mode, a standalone module with an include guard.
type VerilogEmitter struct {
	Module      bool
	Name        string
	DataParam   string
	CrcInParam  string
	CrcOutParam string
}

// NewVerilogEmitter returns a new instance of VerilogEmitter with
// default naming.
func NewVerilogEmitter() *VerilogEmitter {
	return &VerilogEmitter{
		Name:        "crc",
		DataParam:   "data",
		CrcInParam:  "crcIn",
		CrcOutParam: "crcOut",
	}
}

// Emit generates the formulas for g and renders them as Verilog source.
func (e *VerilogEmitter) Emit(g *Generator) ([]byte, error) {
	word, err := g.Generate(e.CrcInParam, e.DataParam)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writeHeader(&buf)
	buf.WriteString("\n")

	guard := strings.ToUpper(e.Name) + "_V_"
	if e.Module {
		fmt.Fprintf(&buf, "`ifndef %s\n", guard)
		fmt.Fprintf(&buf, "`define %s\n\n", guard)
	}
	fmt.Fprintf(&buf, "// polynomial = 0x%X\n", g.Polynomial)

	msb := g.Width - 1
	if e.Module {
		fmt.Fprintf(&buf, "module %s (\n", e.Name)
		fmt.Fprintf(&buf, "\tinput [%d:0] %s,\n", msb, e.CrcInParam)
		fmt.Fprintf(&buf, "\tinput [%d:0] %s,\n", msb, e.DataParam)
		fmt.Fprintf(&buf, "\toutput [%d:0] %s,\n", msb, e.CrcOutParam)
		fmt.Fprintf(&buf, ");\n")
		for i, expr := range word.Exprs() {
			fmt.Fprintf(&buf, "\tassign %s[%d] = %s;\n", e.CrcOutParam, i, HardwareExpr(expr))
		}
		fmt.Fprintf(&buf, "endmodule\n\n")
		fmt.Fprintf(&buf, "`endif // %s\n", guard)
	} else {
		fmt.Fprintf(&buf, "function automatic [%d:0] %s;\n", msb, e.Name)
		fmt.Fprintf(&buf, "\tinput [%d:0] %s;\n", msb, e.CrcInParam)
		fmt.Fprintf(&buf, "\tinput [%d:0] %s;\n", msb, e.DataParam)
		fmt.Fprintf(&buf, "begin\n")
		for i, expr := range word.Exprs() {
			fmt.Fprintf(&buf, "\t%s[%d] = %s;\n", e.Name, i, HardwareExpr(expr))
		}
		fmt.Fprintf(&buf, "end\n")
		fmt.Fprintf(&buf, "endfunction\n")
	}
	return buf.Bytes(), nil
}

// CEmitter renders the formula word as a C function wrapped in a header
// guard.
type CEmitter struct {
	FuncName  string
	CrcParam  string
	DataParam string
	Static    bool
	Inline    bool
}

// NewCEmitter returns a new instance of CEmitter with default naming.
func NewCEmitter() *CEmitter {
	return &CEmitter{
		FuncName:  "crc",
		CrcParam:  "crcIn",
		DataParam: "data",
	}
}

// Emit generates the formulas for g and renders them as C source.
func (e *CEmitter) Emit(g *Generator) ([]byte, error) {
	word, err := g.Generate(e.CrcParam, e.DataParam)
	if err != nil {
		return nil, err
	}

	ctype := fmt.Sprintf("uint%d_t", g.Width)
	guard := strings.ToUpper(e.FuncName) + "_H_"

	var buf bytes.Buffer
	writeHeader(&buf)
	fmt.Fprintf(&buf, "\n#ifndef %s\n", guard)
	fmt.Fprintf(&buf, "#define %s\n\n", guard)
	fmt.Fprintf(&buf, "#include <stdint.h>\n\n")
	fmt.Fprintf(&buf, "// polynomial = 0x%X\n", g.Polynomial)

	var qual string
	if e.Static {
		qual += "static "
	}
	if e.Inline {
		qual += "inline "
	}
	fmt.Fprintf(&buf, "%s%s %s(%s %s, uint8_t %s)\n", qual, ctype, e.FuncName, ctype, e.CrcParam, e.DataParam)
	fmt.Fprintf(&buf, "{\n")
	fmt.Fprintf(&buf, "\t%s ret;\n", ctype)
	for i, expr := range word.Exprs() {
		if i == 0 {
			fmt.Fprintf(&buf, "\tret = %s;\n", SoftwareExpr(expr))
		} else {
			fmt.Fprintf(&buf, "\tret |= %s << %d;\n", SoftwareExpr(expr), i)
		}
	}
	fmt.Fprintf(&buf, "\treturn ret;\n")
	fmt.Fprintf(&buf, "}\n\n")
	fmt.Fprintf(&buf, "#endif /* %s */\n", guard)
	return buf.Bytes(), nil
}
