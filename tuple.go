package jsongen

import "github.com/markojukic/jsongen/pkg/gobuild"

// TupleField is one field of a Tuple: GoName is the Go struct field
// name, JSONName documents which positional slot it occupies (Tuple
// fields parse from a JSON array by position, not by key — JSONName is
// carried for schema descriptions and tooling, not consulted by Trim).
type TupleField struct {
	GoName   string
	JSONName string
	Type     Node
}

// Tuple parses a fixed-length, heterogeneously-typed JSON array into a
// Go struct whose fields correspond to array positions in order.
type Tuple struct {
	named
	Fields []TupleField
}

func NewTuple(name string, fields []TupleField) *Tuple {
	return &Tuple{named{name}, fields}
}

func (n *Tuple) Zero(b *gobuild.Builder, ptr string) {
	for _, f := range n.Fields {
		f.Type.Zero(b, fieldPointer(ptr, f.GoName))
	}
}

func (n *Tuple) LongTypeName(b *gobuild.Builder) {
	b.W("struct {")
	for _, f := range n.Fields {
		b.W(" " + f.GoName + " ")
		f.Type.PrintType(b)
		b.W(";")
	}
	b.W(" }")
}

func (n *Tuple) PrintType(b *gobuild.Builder) {
	printType(b, n.name, n.LongTypeName)
}

func (n *Tuple) Trim(b *gobuild.Builder, s *Session, ptr string) {
	callParser(b, s, n, ptr)
}

func (n *Tuple) GenerateType(b *gobuild.Builder, s *Session) {
	generateType(b, s, n, func() {
		for _, f := range n.Fields {
			f.Type.GenerateType(b, s)
		}
	})
}

func (n *Tuple) GenerateParser(b *gobuild.Builder, s *Session) {
	generateParserFunc(b, s, n,
		func() {
			for _, f := range n.Fields {
				f.Type.GenerateParser(b, s)
			}
		},
		func() {
			b.WL("jsonscan.ExpectByte(buf, cursor, '[')")
			b.WL("jsonscan.SkipWhitespace(buf, cursor)")
			for i, f := range n.Fields {
				if i > 0 {
					b.WL("jsonscan.ExpectByte(buf, cursor, ',')")
					b.WL("jsonscan.SkipWhitespace(buf, cursor)")
				}
				f.Type.Trim(b, s, fieldPointer("v", f.GoName))
				b.WL("jsonscan.SkipWhitespace(buf, cursor)")
			}
			b.WL("jsonscan.ExpectByte(buf, cursor, ']')")
		},
	)
}

func (n *Tuple) typeKey() string {
	key := "tuple:" + n.name
	for _, f := range n.Fields {
		key += ":" + f.GoName + "=" + f.Type.typeKey()
	}
	return key
}

func (n *Tuple) parserKey() string {
	key := "tuple:" + n.name
	for _, f := range n.Fields {
		key += ":" + f.GoName + "=" + f.Type.parserKey()
	}
	return key
}
