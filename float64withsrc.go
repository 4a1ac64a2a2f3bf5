package jsongen

import "github.com/markojukic/jsongen/pkg/gobuild"

// Float64WithSrc parses a JSON number into both its decoded float64
// value and the exact source bytes it was spelled with, for callers
// that need to re-emit a number bit-for-bit (e.g. re-serializing
// without losing a trailing ".0" or an unusual exponent form). Src
// reuses its backing array across repeated parses the same way Slice
// does.
type Float64WithSrc struct {
	named
}

func NewFloat64WithSrc(name string) *Float64WithSrc {
	return &Float64WithSrc{named{name}}
}

func (n *Float64WithSrc) Zero(b *gobuild.Builder, ptr string) {
	d := dereference(ptr)
	b.WL(d + ".Value = 0")
	b.WL(d + ".Src = " + d + ".Src[:0]")
}

func (n *Float64WithSrc) LongTypeName(b *gobuild.Builder) {
	b.W("struct { Value float64; Src []byte }")
}

func (n *Float64WithSrc) PrintType(b *gobuild.Builder) {
	printType(b, n.name, n.LongTypeName)
}

func (n *Float64WithSrc) Trim(b *gobuild.Builder, s *Session, ptr string) {
	callParser(b, s, n, ptr)
}

func (n *Float64WithSrc) GenerateType(b *gobuild.Builder, s *Session) {
	generateType(b, s, n, func() {})
}

func (n *Float64WithSrc) GenerateParser(b *gobuild.Builder, s *Session) {
	generateParserFunc(b, s, n,
		func() {},
		func() {
			b.WL("start := *cursor")
			b.WL("v.Value = jsonscan.DecodeFloat64(buf, cursor)")
			b.WL("v.Src = append(v.Src[:0], buf[start:*cursor]...)")
		},
	)
}

func (n *Float64WithSrc) typeKey() string   { return "float64withsrc:" + n.name }
func (n *Float64WithSrc) parserKey() string { return n.typeKey() }
