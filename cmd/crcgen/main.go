package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/KaneTW/crcgen"
	"github.com/davecgh/go-spew/spew"
)

func main() {
	if err := run(os.Args[1:]); err == flag.ErrHelp {
		os.Exit(1)
	} else if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("crcgen", flag.ContinueOnError)
	genGo := fs.Bool("go", false, "generate a Go function")
	verilogFunc := fs.Bool("verilog-function", false, "generate a Verilog function")
	verilogMod := fs.Bool("verilog-module", false, "generate a Verilog module")
	genC := fs.Bool("c", false, "generate a C function")
	test := fs.Bool("test", false, "verify the formulas against the bit-serial reference")
	polynomial := fs.Uint64("p", 0x07, "CRC polynomial")
	nrBits := fs.Uint("b", 8, "number of register bits")
	name := fs.String("n", "crc", "generated function/module name")
	pkgName := fs.String("pkg", "crc", "package name for generated Go code")
	dataParam := fs.String("data-param", "data", "data parameter name")
	crcInParam := fs.String("crc-in-param", "crcIn", "crc input parameter name")
	crcOutParam := fs.String("crc-out-param", "crcOut", "crc output parameter name (module only)")
	static := fs.Bool("static", false, "generate a static C function")
	inline := fs.Bool("inline", false, "generate an inline C function")
	verbose := fs.Bool("v", false, "verbose")
	fs.Usage = usage
	if err := fs.Parse(args); err != nil {
		return err
	} else if fs.NArg() > 0 {
		return fmt.Errorf("unexpected argument: %s", fs.Arg(0))
	}

	log.SetFlags(0)
	if !*verbose {
		log.SetOutput(ioutil.Discard)
	}

	var modes int
	for _, mode := range []bool{*genGo, *verilogFunc, *verilogMod, *genC, *test} {
		if mode {
			modes++
		}
	}
	if modes == 0 {
		return fmt.Errorf("no output mode selected")
	} else if modes > 1 {
		return fmt.Errorf("output modes are mutually exclusive")
	}

	if *nrBits != crcgen.Width8 {
		return fmt.Errorf("%w: %d bits", crcgen.ErrUnsupportedWidth, *nrBits)
	}
	if err := crcgen.ValidatePolynomial(*polynomial, *nrBits); err != nil {
		return err
	}

	g := crcgen.NewGenerator(*polynomial, *nrBits)

	if *verbose {
		word, err := g.Generate(*crcInParam, *dataParam)
		if err != nil {
			return err
		}
		log.Print(spew.Sdump(word))
	}

	switch {
	case *test:
		fmt.Println("Testing...")
		if err := crcgen.SelfTest(*polynomial); err != nil {
			return err
		}
		fmt.Println("done.")
		return nil

	case *genGo:
		e := crcgen.NewGoEmitter()
		e.PackageName = *pkgName
		e.FuncName = *name
		e.CrcParam = *crcInParam
		e.DataParam = *dataParam
		return emit(e.Emit(g))

	case *verilogFunc, *verilogMod:
		e := crcgen.NewVerilogEmitter()
		e.Module = *verilogMod
		e.Name = *name
		e.DataParam = *dataParam
		e.CrcInParam = *crcInParam
		e.CrcOutParam = *crcOutParam
		return emit(e.Emit(g))

	default:
		e := crcgen.NewCEmitter()
		e.FuncName = *name
		e.CrcParam = *crcInParam
		e.DataParam = *dataParam
		e.Static = *static
		e.Inline = *inline
		return emit(e.Emit(g))
	}
}

// emit writes generated source to stdout unless generation failed.
func emit(out []byte, err error) error {
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}

func usage() {
	fmt.Fprintln(os.Stderr, `
Crcgen derives closed-form boolean formulas for one step of a CRC update
and renders them as source text.

Usage:

	crcgen [arguments]

Exactly one output mode must be selected:

	-go                  generate a Go function
	-verilog-function    generate a Verilog function
	-verilog-module      generate a Verilog module
	-c                   generate a C function
	-test                verify the formulas against the bit-serial reference

Arguments:

	-p value
	    CRC polynomial (default 0x07). Must be odd.
	-b value
	    Number of register bits (default 8; only 8 is supported).
	-n name
	    Generated function/module name.
	-pkg name
	    Package name for generated Go code.
	-data-param name
	    Data parameter name.
	-crc-in-param name
	    Crc input parameter name.
	-crc-out-param name
	    Crc output parameter name (module only).
	-static
	    Generate a static C function.
	-inline
	    Generate an inline C function.
	-v
	    Enable verbose logging.
`[1:])
}
