// Package main implements the jsongen code generation tool. Given a
// schema description file (JSON or YAML, see schemaconfig), it
// validates the schema tree and emits a Go source file of destination
// types and byte-level parser routines into an output directory.
//
// Usage:
//
//	jsongen [flags] <schema-file>
//
// Flags:
//
//	-out string          Output directory (default ".")
//	-pkg string           Output package name / subdirectory (default "parsed")
//	-file string          Generated file name (default "parser_gen.go")
//	-entrypoint string     Entrypoint method name (default "UnmarshalJSON")
//	-verbose              Verbose output
package main

import (
	"flag"
	"log"

	"github.com/markojukic/jsongen/pkg/pkgwriter"
	"github.com/markojukic/jsongen"
	"github.com/markojukic/jsongen/schemaconfig"
)

var (
	outDir     = flag.String("out", ".", "Output directory")
	subdir     = flag.String("pkg", "parsed", "Output package name / subdirectory")
	fileName   = flag.String("file", "parser_gen.go", "Generated file name")
	entrypoint = flag.String("entrypoint", "UnmarshalJSON", "Entrypoint method name")
	verbose    = flag.Bool("verbose", false, "Verbose output")
)

func main() {
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		log.Fatalf("usage: jsongen [flags] <schema-file>")
	}
	schemaPath := args[0]

	if *verbose {
		log.Printf("loading schema description: %s", schemaPath)
	}
	_, root, err := schemaconfig.Load(schemaPath)
	if err != nil {
		log.Fatalf("loading schema: %v", err)
	}

	if *verbose {
		log.Printf("validating schema tree")
	}
	if err := jsongen.Validate(root); err != nil {
		log.Fatalf("invalid schema: %v", err)
	}

	if *verbose {
		log.Printf("opening output package %s/%s", *outDir, *subdir)
	}
	s, b, closeFunc, err := pkgwriter.Package(*outDir, *subdir)
	if err != nil {
		log.Fatalf("opening output package: %v", err)
	}

	if *verbose {
		log.Printf("generating %s.%s", root.Name(), *entrypoint)
	}
	if err := jsongen.Generate(b, s, root, *entrypoint); err != nil {
		log.Fatalf("generating parser: %v", err)
	}

	if err := closeFunc(*fileName); err != nil {
		log.Fatalf("writing output: %v", err)
	}

	if *verbose {
		log.Printf("wrote %s/%s/%s", *outDir, *subdir, *fileName)
	}
}
