package jsongen

import "github.com/markojukic/jsongen/pkg/gobuild"

// Float32 parses a JSON number into a Go float32.
type Float32 struct {
	named
}

func NewFloat32(name string) *Float32 {
	return &Float32{named{name}}
}

func (n *Float32) Zero(b *gobuild.Builder, ptr string) {
	b.WL(dereference(ptr) + " = 0")
}

func (n *Float32) LongTypeName(b *gobuild.Builder) { b.W("float32") }

func (n *Float32) PrintType(b *gobuild.Builder) {
	printType(b, n.name, n.LongTypeName)
}

func (n *Float32) Trim(b *gobuild.Builder, s *Session, ptr string) {
	trimUsing(b, n, ptr, "jsonscan.DecodeFloat32(buf, cursor)")
}

func (n *Float32) GenerateType(b *gobuild.Builder, s *Session) {
	generateType(b, s, n, func() {})
}

func (n *Float32) GenerateParser(b *gobuild.Builder, s *Session) {}

func (n *Float32) typeKey() string   { return "float32:" + n.name }
func (n *Float32) parserKey() string { return n.typeKey() }
