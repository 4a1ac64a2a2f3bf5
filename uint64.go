package jsongen

import "github.com/markojukic/jsongen/pkg/gobuild"

// UInt64 parses a JSON number into a Go uint64.
type UInt64 struct {
	named
}

func NewUInt64(name string) *UInt64 {
	return &UInt64{named{name}}
}

func (n *UInt64) Zero(b *gobuild.Builder, ptr string) {
	b.WL(dereference(ptr) + " = 0")
}

func (n *UInt64) LongTypeName(b *gobuild.Builder) { b.W("uint64") }

func (n *UInt64) PrintType(b *gobuild.Builder) {
	printType(b, n.name, n.LongTypeName)
}

func (n *UInt64) Trim(b *gobuild.Builder, s *Session, ptr string) {
	trimUsing(b, n, ptr, "jsonscan.DecodeUint64(buf, cursor)")
}

func (n *UInt64) GenerateType(b *gobuild.Builder, s *Session) {
	generateType(b, s, n, func() {})
}

func (n *UInt64) GenerateParser(b *gobuild.Builder, s *Session) {}

func (n *UInt64) typeKey() string   { return "uint64:" + n.name }
func (n *UInt64) parserKey() string { return n.typeKey() }
