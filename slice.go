package jsongen

import "github.com/markojukic/jsongen/pkg/gobuild"

// Slice parses a variable-length JSON array into a Go []Elem. Zero
// truncates an existing slice to length 0 without releasing its
// capacity, so a destination reused across repeated parses amortizes
// its allocation.
type Slice struct {
	named
	Elem Node
}

func NewSlice(name string, elem Node) *Slice {
	return &Slice{named{name}, elem}
}

func (n *Slice) Zero(b *gobuild.Builder, ptr string) {
	d := dereference(ptr)
	b.WL(d + " = " + d + "[:0]")
}

func (n *Slice) LongTypeName(b *gobuild.Builder) {
	b.W("[]")
	n.Elem.PrintType(b)
}

func (n *Slice) PrintType(b *gobuild.Builder) {
	printType(b, n.name, n.LongTypeName)
}

func (n *Slice) Trim(b *gobuild.Builder, s *Session, ptr string) {
	callParser(b, s, n, ptr)
}

func (n *Slice) GenerateType(b *gobuild.Builder, s *Session) {
	generateType(b, s, n, func() { n.Elem.GenerateType(b, s) })
}

func (n *Slice) GenerateParser(b *gobuild.Builder, s *Session) {
	generateParserFunc(b, s, n,
		func() { n.Elem.GenerateParser(b, s) },
		func() {
			b.WL("jsonscan.ExpectByte(buf, cursor, '[')")
			b.WL("jsonscan.SkipWhitespace(buf, cursor)")
			b.WL("*v = (*v)[:0]")
			closeEmpty := b.If("*cursor < len(buf) && buf[*cursor] == ']'")
			b.WL("*cursor++")
			b.WL("return")
			closeEmpty()

			element := b.Var("element", printTypeString(n.Elem))
			closeFor := b.For("")
			n.Elem.Trim(b, s, "&"+element)
			b.WLf("*v = append(*v, %s)", element)
			b.WL("jsonscan.SkipWhitespace(buf, cursor)")
			b.WL("c := jsonscan.NextByte(buf, cursor)")
			closeBreak := b.If("c == ']'")
			b.WL("break")
			closeBreak()
			closeErr := b.If("c != ','")
			b.WL(`jsonscan.Raise(buf, *cursor-1, jsonscan.ErrUnexpectedByte, "expected ',' or ']'")`)
			closeErr()
			b.WL("jsonscan.SkipWhitespace(buf, cursor)")
			closeFor()
		},
	)
}

func (n *Slice) typeKey() string   { return "slice:" + n.name + ":" + n.Elem.typeKey() }
func (n *Slice) parserKey() string { return "slice:" + n.name + ":" + n.Elem.parserKey() }
