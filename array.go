package jsongen

import (
	"strconv"

	"github.com/markojukic/jsongen/pkg/gobuild"
)

// Array parses a fixed-length JSON array into a Go [Size]Elem.
type Array struct {
	named
	Size int
	Elem Node
}

// NewArray returns an Array node, or ErrInvalidArraySize if size < 1.
func NewArray(name string, size int, elem Node) (*Array, error) {
	if size < 1 {
		return nil, ErrInvalidArraySize
	}
	return &Array{named{name}, size, elem}, nil
}

func (n *Array) Zero(b *gobuild.Builder, ptr string) {
	for i := 0; i < n.Size; i++ {
		n.Elem.Zero(b, index(ptr, strconv.Itoa(i)))
	}
}

func (n *Array) LongTypeName(b *gobuild.Builder) {
	b.W("[" + strconv.Itoa(n.Size) + "]")
	n.Elem.PrintType(b)
}

func (n *Array) PrintType(b *gobuild.Builder) {
	printType(b, n.name, n.LongTypeName)
}

func (n *Array) Trim(b *gobuild.Builder, s *Session, ptr string) {
	callParser(b, s, n, ptr)
}

func (n *Array) GenerateType(b *gobuild.Builder, s *Session) {
	generateType(b, s, n, func() { n.Elem.GenerateType(b, s) })
}

func (n *Array) GenerateParser(b *gobuild.Builder, s *Session) {
	generateParserFunc(b, s, n,
		func() { n.Elem.GenerateParser(b, s) },
		func() {
			b.WL("jsonscan.ExpectByte(buf, cursor, '[')")
			b.WL("jsonscan.SkipWhitespace(buf, cursor)")
			for i := 0; i < n.Size; i++ {
				if i > 0 {
					b.WL("jsonscan.ExpectByte(buf, cursor, ',')")
					b.WL("jsonscan.SkipWhitespace(buf, cursor)")
				}
				n.Elem.Trim(b, s, index("v", strconv.Itoa(i)))
				b.WL("jsonscan.SkipWhitespace(buf, cursor)")
			}
			b.WL("jsonscan.ExpectByte(buf, cursor, ']')")
		},
	)
}

func (n *Array) typeKey() string {
	return "array:" + n.name + ":" + strconv.Itoa(n.Size) + ":" + n.Elem.typeKey()
}

func (n *Array) parserKey() string {
	return "array:" + n.name + ":" + strconv.Itoa(n.Size) + ":" + n.Elem.parserKey()
}
