package jsongen

import "github.com/markojukic/jsongen/pkg/gobuild"

// Bool parses a JSON true/false literal into a Go bool.
type Bool struct {
	named
}

// NewBool returns a Bool node. name is the destination type name, or ""
// to use plain bool at every use site.
func NewBool(name string) *Bool {
	return &Bool{named{name}}
}

func (n *Bool) Zero(b *gobuild.Builder, ptr string) {
	b.WL(dereference(ptr) + " = false")
}

func (n *Bool) LongTypeName(b *gobuild.Builder) { b.W("bool") }

func (n *Bool) PrintType(b *gobuild.Builder) {
	printType(b, n.name, n.LongTypeName)
}

func (n *Bool) Trim(b *gobuild.Builder, s *Session, ptr string) {
	trimUsing(b, n, ptr, "jsonscan.DecodeBool(buf, cursor)")
}

func (n *Bool) GenerateType(b *gobuild.Builder, s *Session) {
	generateType(b, s, n, func() {})
}

func (n *Bool) GenerateParser(b *gobuild.Builder, s *Session) {}

func (n *Bool) typeKey() string   { return "bool:" + n.name }
func (n *Bool) parserKey() string { return n.typeKey() }
