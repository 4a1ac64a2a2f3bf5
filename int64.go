package jsongen

import "github.com/markojukic/jsongen/pkg/gobuild"

// Int64 parses a JSON number into a Go int64.
type Int64 struct {
	named
}

func NewInt64(name string) *Int64 {
	return &Int64{named{name}}
}

func (n *Int64) Zero(b *gobuild.Builder, ptr string) {
	b.WL(dereference(ptr) + " = 0")
}

func (n *Int64) LongTypeName(b *gobuild.Builder) { b.W("int64") }

func (n *Int64) PrintType(b *gobuild.Builder) {
	printType(b, n.name, n.LongTypeName)
}

func (n *Int64) Trim(b *gobuild.Builder, s *Session, ptr string) {
	trimUsing(b, n, ptr, "jsonscan.DecodeInt64(buf, cursor)")
}

func (n *Int64) GenerateType(b *gobuild.Builder, s *Session) {
	generateType(b, s, n, func() {})
}

func (n *Int64) GenerateParser(b *gobuild.Builder, s *Session) {}

func (n *Int64) typeKey() string   { return "int64:" + n.name }
func (n *Int64) parserKey() string { return n.typeKey() }
