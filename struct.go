package jsongen

import "github.com/markojukic/jsongen/pkg/gobuild"

// OtherKeysPolicy controls what a Struct's parser does when it sees a
// JSON object key that matches none of its fields.
type OtherKeysPolicy int

const (
	// OtherKeysSkip skips the value of an unrecognized key and continues.
	OtherKeysSkip OtherKeysPolicy = iota
	// OtherKeysFail raises jsonscan.ErrUnexpectedKey on an unrecognized key.
	OtherKeysFail
)

// StructField is one field of a Struct: GoName is the Go struct field
// name, JSONName is the object key it binds to.
type StructField struct {
	GoName   string
	JSONName string
	Type     Node
}

// Struct parses a JSON object into a Go struct, dispatching each key to
// its matching field by a generated switch.
type Struct struct {
	named
	Fields    []StructField
	OtherKeys OtherKeysPolicy
}

// NewStruct returns a Struct node, or ErrInvalidOtherKeysPolicy if
// otherKeys is not one of OtherKeysSkip or OtherKeysFail.
func NewStruct(name string, fields []StructField, otherKeys OtherKeysPolicy) (*Struct, error) {
	if otherKeys != OtherKeysSkip && otherKeys != OtherKeysFail {
		return nil, ErrInvalidOtherKeysPolicy
	}
	return &Struct{named{name}, fields, otherKeys}, nil
}

func (n *Struct) Zero(b *gobuild.Builder, ptr string) {
	for _, f := range n.Fields {
		f.Type.Zero(b, fieldPointer(ptr, f.GoName))
	}
}

func (n *Struct) LongTypeName(b *gobuild.Builder) {
	b.W("struct {")
	for _, f := range n.Fields {
		b.W(" " + f.GoName + " ")
		f.Type.PrintType(b)
		b.W(";")
	}
	b.W(" }")
}

func (n *Struct) PrintType(b *gobuild.Builder) {
	printType(b, n.name, n.LongTypeName)
}

func (n *Struct) Trim(b *gobuild.Builder, s *Session, ptr string) {
	callParser(b, s, n, ptr)
}

func (n *Struct) GenerateType(b *gobuild.Builder, s *Session) {
	generateType(b, s, n, func() {
		for _, f := range n.Fields {
			f.Type.GenerateType(b, s)
		}
	})
}

// allKeysSingleByteDistinct reports whether every field's JSONName is
// exactly one byte long and no two fields share that byte, the
// condition under which the parser can dispatch on key[0] alone instead
// of a full string switch.
func (n *Struct) allKeysSingleByteDistinct() bool {
	seen := map[byte]bool{}
	for _, f := range n.Fields {
		if len(f.JSONName) != 1 {
			return false
		}
		c := f.JSONName[0]
		if seen[c] {
			return false
		}
		seen[c] = true
	}
	return true
}

// emitOtherKeys emits the unrecognized-key action itself, honoring
// OtherKeys.
func (n *Struct) emitOtherKeys(b *gobuild.Builder) {
	if n.OtherKeys == OtherKeysFail {
		b.WL(`jsonscan.Raise(buf, *cursor, jsonscan.ErrUnexpectedKey, "unexpected key \""+string(key)+"\"")`)
	} else {
		b.WL("jsonscan.SkipValue(buf, cursor)")
	}
}

// generateOtherKeys wraps emitOtherKeys in the default arm of a key
// dispatch switch.
func (n *Struct) generateOtherKeys(b *gobuild.Builder) {
	closeDefault := b.Default()
	n.emitOtherKeys(b)
	closeDefault()
}

// generateDispatch emits the switch that routes a decoded key to its
// field's Trim call.
func (n *Struct) generateDispatch(b *gobuild.Builder, s *Session) {
	if n.allKeysSingleByteDistinct() {
		closeGuard := b.If("len(key) != 1")
		n.emitOtherKeys(b)
		closeGuard()
		closeElse := b.Else()
		closeSwitch := b.Switch("key[0]")
		for _, f := range n.Fields {
			closeCase := b.Case("'" + f.JSONName + "'")
			f.Type.Trim(b, s, fieldPointer("v", f.GoName))
			closeCase()
		}
		n.generateOtherKeys(b)
		closeSwitch()
		closeElse()
		return
	}
	closeSwitch := b.Switch("string(key)")
	for _, f := range n.Fields {
		closeCase := b.Case(`"` + f.JSONName + `"`)
		f.Type.Trim(b, s, fieldPointer("v", f.GoName))
		closeCase()
	}
	n.generateOtherKeys(b)
	closeSwitch()
}

// keySwitchByFirstByte is an alternative dispatch strategy that always
// switches on the key's first byte, falling back to a full string
// switch only among fields sharing that byte. Appears slower than full
// key switch; kept unused.
func (n *Struct) keySwitchByFirstByte(b *gobuild.Builder, s *Session) {
	order := make([]byte, 0, len(n.Fields))
	byFirst := map[byte][]StructField{}
	for _, f := range n.Fields {
		c := f.JSONName[0]
		if _, ok := byFirst[c]; !ok {
			order = append(order, c)
		}
		byFirst[c] = append(byFirst[c], f)
	}
	closeGuard := b.If("len(key) == 0")
	n.emitOtherKeys(b)
	closeGuard()
	closeElse := b.Else()
	closeSwitch := b.Switch("key[0]")
	for _, c := range order {
		fields := byFirst[c]
		closeCase := b.Case("'" + string(c) + "'")
		if len(fields) == 1 {
			f := fields[0]
			closeConfirm := b.If(`string(key) != "` + f.JSONName + `"`)
			n.emitOtherKeys(b)
			closeConfirm()
			closeConfirmElse := b.Else()
			f.Type.Trim(b, s, fieldPointer("v", f.GoName))
			closeConfirmElse()
		} else {
			closeInner := b.Switch("string(key)")
			for _, f := range fields {
				closeInnerCase := b.Case(`"` + f.JSONName + `"`)
				f.Type.Trim(b, s, fieldPointer("v", f.GoName))
				closeInnerCase()
			}
			n.generateOtherKeys(b)
			closeInner()
		}
		closeCase()
	}
	n.generateOtherKeys(b)
	closeSwitch()
	closeElse()
}

func (n *Struct) GenerateParser(b *gobuild.Builder, s *Session) {
	generateParserFunc(b, s, n,
		func() {
			for _, f := range n.Fields {
				f.Type.GenerateParser(b, s)
			}
		},
		func() {
			b.WL("jsonscan.ExpectByte(buf, cursor, '{')")
			b.WL("jsonscan.SkipWhitespace(buf, cursor)")
			nonEmpty := b.Var("nonEmpty", "bool")

			closeFor := b.For("")
			b.WL("c := jsonscan.NextByte(buf, cursor)")
			closeBreak := b.If("c == '}'")
			b.WL("break")
			closeBreak()

			closeIf := b.If(nonEmpty)
			closeErr := b.If("c != ','")
			b.WL(`jsonscan.Raise(buf, *cursor-1, jsonscan.ErrUnexpectedByte, "expected ',' or '}'")`)
			closeErr()
			b.WL("jsonscan.SkipWhitespace(buf, cursor)")
			closeIf()
			closeElse := b.Else()
			b.WLf("%s = true", nonEmpty)
			b.WL("*cursor--")
			closeElse()

			b.WL("key := jsonscan.TakeKeyColon(buf, cursor)")
			n.generateDispatch(b, s)
			b.WL("jsonscan.SkipWhitespace(buf, cursor)")
			closeFor()
		},
	)
}

func (n *Struct) typeKey() string {
	key := "struct:" + n.name
	for _, f := range n.Fields {
		key += ":" + f.GoName + "=" + f.Type.typeKey()
	}
	return key
}

func (n *Struct) parserKey() string {
	key := "struct:" + n.name
	if n.OtherKeys == OtherKeysFail {
		key += ":fail"
	}
	for _, f := range n.Fields {
		key += ":" + f.GoName + "/" + f.JSONName + "=" + f.Type.parserKey()
	}
	return key
}
