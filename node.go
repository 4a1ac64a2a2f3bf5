package jsongen

import (
	"strconv"
	"strings"

	"github.com/markojukic/jsongen/pkg/gobuild"
)

// Node is one schema node: a description of a single JSON value shape,
// closed over the kinds in this package (Bool, Int64, UInt64, Float32,
// Float64, QuotedFloat64, Float64WithSrc, String, Array, Slice, Tuple,
// Struct, Map). Implementations live only in this package.
type Node interface {
	// Name is the destination type name, or "" to inline the structural
	// type at every use site.
	Name() string

	// Zero emits code that resets the destination at ptr to its zero
	// value. For Slice this truncates length to 0 without releasing
	// capacity; for Map it allocates a fresh map; composites descend
	// into their fields.
	Zero(b *gobuild.Builder, ptr string)

	// PrintType emits the node's destination type: its Name if named,
	// otherwise its structural type via LongTypeName.
	PrintType(b *gobuild.Builder)

	// LongTypeName emits the structural type regardless of naming.
	LongTypeName(b *gobuild.Builder)

	// Trim emits a call site that parses the JSON value at the current
	// scan position into *ptr. Scalar kinds inline the call to a
	// jsonscan primitive; composite kinds call their registered parser
	// routine.
	Trim(b *gobuild.Builder, s *Session, ptr string)

	// GenerateType recursively materializes this node's children's
	// types, then its own named type declaration if new.
	GenerateType(b *gobuild.Builder, s *Session)

	// GenerateParser recursively materializes this node's children's
	// parser routines, then its own parser routine if new.
	GenerateParser(b *gobuild.Builder, s *Session)

	// typeKey and parserKey are the structural identity strings used by
	// Session's deduplication registries. Equal typeKey => same
	// destination type; equal parserKey => same parser routine.
	typeKey() string
	parserKey() string
}

// named is embedded by every node kind to carry the optional destination
// type name.
type named struct {
	name string
}

func (n named) Name() string { return n.name }

// dereference turns a pointer expression into the expression for what it
// points to: "&x" -> "x", "p" -> "(*p)". The parenthesized form is load
// -bearing, not cosmetic: callers often append a selector or slice
// ("+ \".Field\"", "+ \"[:0]\"") to the result, and index/selector
// expressions bind tighter than a unary "*" — "*p.Field" and "*p[:0]"
// parse as "*(p.Field)" and "*(p[:0])", not the intended "(*p).Field"
// and "(*p)[:0]".
func dereference(ptr string) string {
	if strings.HasPrefix(ptr, "&") {
		return ptr[1:]
	}
	return "(*" + ptr + ")"
}

// fieldPointer returns a pointer expression for field of the struct
// pointed to by structPtr.
func fieldPointer(structPtr, field string) string {
	if strings.HasPrefix(structPtr, "&") {
		return "&" + structPtr[1:] + "." + field
	}
	return "&(*" + structPtr + ")." + field
}

// index returns a pointer expression for the i-th element of the
// array pointed to by containerPtr, in the same "&" shorthand
// convention as fieldPointer.
func index(containerPtr, i string) string {
	if strings.HasPrefix(containerPtr, "&") {
		return "&" + containerPtr[1:] + "[" + i + "]"
	}
	return "&(*" + containerPtr + ")[" + i + "]"
}

// trimUsing is the shared Trim body for scalar kinds: assign the result
// of a jsonscan decode call into *ptr, converting to the destination
// type name when one is set (a named type does not convert implicitly
// from its underlying type).
func trimUsing(b *gobuild.Builder, n Node, ptr, call string) {
	if name := n.Name(); name != "" {
		b.WLf("%s = %s(%s)", dereference(ptr), name, call)
	} else {
		b.WLf("%s = %s", dereference(ptr), call)
	}
}

// printType is the shared PrintType body: emit Name if set, else delegate
// to longTypeName.
func printType(b *gobuild.Builder, name string, longTypeName func(*gobuild.Builder)) {
	if name != "" {
		b.W(name)
	} else {
		longTypeName(b)
	}
}

// printTypeString renders n's PrintType to a standalone string, for the
// rare call sites (a hoisted Var's type declaration) that need the type
// as a value rather than as emitted code.
func printTypeString(n Node) string {
	tmp := gobuild.New()
	n.PrintType(tmp)
	return tmp.String()
}

// generateType is the shared GenerateType body for composite kinds:
// recurse into children first, then register self and emit `type Name
// <structural>` if this is the first time this type identity (or this
// name) is seen.
func generateType(b *gobuild.Builder, s *Session, n Node, generateChildren func()) {
	generateChildren()
	if n.Name() == "" {
		return
	}
	if isNew := s.registerType(n); isNew {
		b.WL("type " + n.Name() + " ")
		n.LongTypeName(b)
	}
}

// callParser is the shared Trim body for composite kinds: look up this
// node's already-registered parser id and emit a call to it. Composite
// GenerateParser must run before any Trim call site referencing it.
func callParser(b *gobuild.Builder, s *Session, n Node, ptr string) {
	id := s.mustParserID(n)
	b.WLf("parse%d(buf, cursor, %s)", id, ptr)
}

// generateParserFunc is the shared GenerateParser body for composite
// kinds: generateChildren first (so nested composites' parser routines
// are defined before this one references them), then register self and,
// if this parser identity is new, emit
//
//	func parse<id>(buf []byte, cursor *int, v *<PrintType>) { <body> }
//
// body is called with the function scope already open; it must leave
// the values at *v fully populated by the time it returns.
func generateParserFunc(b *gobuild.Builder, s *Session, n Node, generateChildren func(), body func()) {
	generateChildren()
	id, isNew := s.registerParser(n)
	if !isNew {
		return
	}
	b.WL("func parse" + strconv.Itoa(id) + "(buf []byte, cursor *int, v *")
	n.PrintType(b)
	b.W(") ")
	closeFunc := b.BraceBlock()
	body()
	closeFunc()
}
