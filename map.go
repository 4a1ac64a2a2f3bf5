package jsongen

import "github.com/markojukic/jsongen/pkg/gobuild"

// Map parses a JSON object into a Go map. Key's destination type must
// be string-backed (a *String or a named type over one) — enforced by
// Validate (C8), not by this constructor, so that schema trees can be
// built incrementally before being checked as a whole.
type Map struct {
	named
	Key   Node
	Value Node
}

func NewMap(name string, key, value Node) *Map {
	return &Map{named{name}, key, value}
}

// Zero always allocates a fresh map: unlike Slice, a map's backing
// storage cannot be truncated in place.
func (n *Map) Zero(b *gobuild.Builder, ptr string) {
	b.WL(dereference(ptr) + " = make(map[")
	n.Key.PrintType(b)
	b.W("]")
	n.Value.PrintType(b)
	b.W(")")
}

func (n *Map) LongTypeName(b *gobuild.Builder) {
	b.W("map[")
	n.Key.PrintType(b)
	b.W("]")
	n.Value.PrintType(b)
}

func (n *Map) PrintType(b *gobuild.Builder) {
	printType(b, n.name, n.LongTypeName)
}

func (n *Map) Trim(b *gobuild.Builder, s *Session, ptr string) {
	callParser(b, s, n, ptr)
}

func (n *Map) GenerateType(b *gobuild.Builder, s *Session) {
	generateType(b, s, n, func() {
		n.Key.GenerateType(b, s)
		n.Value.GenerateType(b, s)
	})
}

func (n *Map) GenerateParser(b *gobuild.Builder, s *Session) {
	generateParserFunc(b, s, n,
		func() {
			n.Key.GenerateParser(b, s)
			n.Value.GenerateParser(b, s)
		},
		func() {
			b.WL("jsonscan.ExpectByte(buf, cursor, '{')")
			b.WL("jsonscan.SkipWhitespace(buf, cursor)")
			b.WL("*v = make(map[")
			n.Key.PrintType(b)
			b.W("]")
			n.Value.PrintType(b)
			b.W(")")
			closeEmpty := b.If("*cursor < len(buf) && buf[*cursor] == '}'")
			b.WL("*cursor++")
			b.WL("return")
			closeEmpty()

			key := b.Var("key", printTypeString(n.Key))
			value := b.Var("value", printTypeString(n.Value))
			closeFor := b.For("")
			n.Key.Trim(b, s, "&"+key)
			b.WL("jsonscan.SkipWhitespace(buf, cursor)")
			b.WL("jsonscan.ExpectByte(buf, cursor, ':')")
			b.WL("jsonscan.SkipWhitespace(buf, cursor)")
			n.Value.Trim(b, s, "&"+value)
			b.WLf("(*v)[%s] = %s", key, value)
			b.WL("jsonscan.SkipWhitespace(buf, cursor)")
			b.WL("c := jsonscan.NextByte(buf, cursor)")
			closeBreak := b.If("c == '}'")
			b.WL("break")
			closeBreak()
			closeErr := b.If("c != ','")
			b.WL(`jsonscan.Raise(buf, *cursor-1, jsonscan.ErrUnexpectedByte, "expected ',' or '}'")`)
			closeErr()
			b.WL("jsonscan.SkipWhitespace(buf, cursor)")
			closeFor()
		},
	)
}

func (n *Map) typeKey() string {
	return "map:" + n.name + ":" + n.Key.typeKey() + ":" + n.Value.typeKey()
}

func (n *Map) parserKey() string {
	return "map:" + n.name + ":" + n.Key.parserKey() + ":" + n.Value.parserKey()
}
