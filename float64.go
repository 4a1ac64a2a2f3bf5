package jsongen

import "github.com/markojukic/jsongen/pkg/gobuild"

// Float64 parses a JSON number into a Go float64.
type Float64 struct {
	named
}

func NewFloat64(name string) *Float64 {
	return &Float64{named{name}}
}

func (n *Float64) Zero(b *gobuild.Builder, ptr string) {
	b.WL(dereference(ptr) + " = 0")
}

func (n *Float64) LongTypeName(b *gobuild.Builder) { b.W("float64") }

func (n *Float64) PrintType(b *gobuild.Builder) {
	printType(b, n.name, n.LongTypeName)
}

func (n *Float64) Trim(b *gobuild.Builder, s *Session, ptr string) {
	trimUsing(b, n, ptr, "jsonscan.DecodeFloat64(buf, cursor)")
}

func (n *Float64) GenerateType(b *gobuild.Builder, s *Session) {
	generateType(b, s, n, func() {})
}

func (n *Float64) GenerateParser(b *gobuild.Builder, s *Session) {}

func (n *Float64) typeKey() string   { return "float64:" + n.name }
func (n *Float64) parserKey() string { return n.typeKey() }
