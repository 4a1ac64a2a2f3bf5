package jsongen

import "github.com/markojukic/jsongen/pkg/gobuild"

// QuotedFloat64 parses a JSON string containing a float64 literal
// (e.g. "3.14") into a Go float64, for APIs that quote numbers to avoid
// precision loss in other languages' JSON decoders.
type QuotedFloat64 struct {
	named
}

func NewQuotedFloat64(name string) *QuotedFloat64 {
	return &QuotedFloat64{named{name}}
}

func (n *QuotedFloat64) Zero(b *gobuild.Builder, ptr string) {
	b.WL(dereference(ptr) + " = 0")
}

func (n *QuotedFloat64) LongTypeName(b *gobuild.Builder) { b.W("float64") }

func (n *QuotedFloat64) PrintType(b *gobuild.Builder) {
	printType(b, n.name, n.LongTypeName)
}

func (n *QuotedFloat64) Trim(b *gobuild.Builder, s *Session, ptr string) {
	callParser(b, s, n, ptr)
}

func (n *QuotedFloat64) GenerateType(b *gobuild.Builder, s *Session) {
	generateType(b, s, n, func() {})
}

func (n *QuotedFloat64) GenerateParser(b *gobuild.Builder, s *Session) {
	generateParserFunc(b, s, n,
		func() {},
		func() {
			b.Import("strconv")
			b.WL("jsonscan.ExpectByte(buf, cursor, '\"')")
			b.WL("start := *cursor")
			closeFor := b.For("*cursor < len(buf) && buf[*cursor] != '\"'")
			b.WL("*cursor++")
			closeFor()
			b.WL("text := jsonscan.BytesToString(buf[start:*cursor])")
			b.WL("jsonscan.ExpectByte(buf, cursor, '\"')")
			b.WL("parsed, err := strconv.ParseFloat(text, 64)")
			closeIf := b.If("err != nil")
			b.WL(`jsonscan.Raise(buf, start, jsonscan.WrapParseFloat(err), "invalid quoted float64")`)
			closeIf()
			if n.name != "" {
				b.WL("*v = " + n.name + "(parsed)")
			} else {
				b.WL("*v = parsed")
			}
		},
	)
}

func (n *QuotedFloat64) typeKey() string   { return "quotedfloat64:" + n.name }
func (n *QuotedFloat64) parserKey() string { return n.typeKey() }
