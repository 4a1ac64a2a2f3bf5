package jsongen

import (
	"strings"
	"testing"

	"github.com/markojukic/jsongen/pkg/gobuild"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Struct{a: Int64, b: Bool}, the smallest two-field object schema.
func newABStruct(t *testing.T, name string) *Struct {
	t.Helper()
	s, err := NewStruct(name, []StructField{
		{GoName: "A", JSONName: "a", Type: NewInt64("")},
		{GoName: "B", JSONName: "b", Type: NewBool("")},
	}, OtherKeysSkip)
	require.NoError(t, err)
	return s
}

func TestGenerate_MissingDestinationName(t *testing.T) {
	b := gobuild.New()
	s := NewSession()
	root := NewInt64("")
	err := Generate(b, s, root, "UnmarshalJSON")
	assert.ErrorIs(t, err, ErrMissingDestinationName)
}

func TestGenerate_DuplicateEntrypoint(t *testing.T) {
	b := gobuild.New()
	s := NewSession()
	root := newABStruct(t, "AB")
	require.NoError(t, Generate(b, s, root, "UnmarshalJSON"))
	err := Generate(b, s, root, "UnmarshalJSON")
	assert.ErrorIs(t, err, ErrDuplicateEntrypoint)
}

func TestGenerate_EmitsTypeParserAndEntrypoint(t *testing.T) {
	b := gobuild.New()
	s := NewSession()
	root := newABStruct(t, "AB")
	require.NoError(t, Generate(b, s, root, "UnmarshalJSON"))

	out := b.String()
	assert.Contains(t, out, "type AB struct")
	assert.Contains(t, out, "func parse0(buf []byte, cursor *int, v *AB)")
	assert.Contains(t, out, "func (dest *AB) UnmarshalJSON(buf []byte) (err error)")
	assert.Contains(t, out, "jsonscan.RecoverLater(&err)")
	assert.Contains(t, out, "jsonscan.SkipWhitespace(buf, cursor)")
}

// Dedup — types: two structurally identical named nodes register once.
func TestGenerate_DedupTypes(t *testing.T) {
	b := gobuild.New()
	s := NewSession()
	inner := NewInt64("Count")
	root, err := NewStruct("Pair", []StructField{
		{GoName: "A", JSONName: "a", Type: inner},
		{GoName: "B", JSONName: "b", Type: NewInt64("Count")},
	}, OtherKeysSkip)
	require.NoError(t, err)
	require.NoError(t, Generate(b, s, root, "UnmarshalJSON"))
	assert.Equal(t, 1, strings.Count(b.String(), "type Count "))
}

// Dedup — parsers: two slices whose String elements differ only in
// ValidateUTF8 get two routines.
func TestGenerate_DedupParsers_StringVariants(t *testing.T) {
	b := gobuild.New()
	s := NewSession()
	root, err := NewStruct("Strs", []StructField{
		{GoName: "A", JSONName: "a", Type: NewSlice("", NewString("", true, true, false))},
		{GoName: "B", JSONName: "b", Type: NewSlice("", NewString("", true, false, false))},
	}, OtherKeysSkip)
	require.NoError(t, err)
	require.NoError(t, Generate(b, s, root, "UnmarshalJSON"))
	// two distinct slice routines (their element options differ) plus the
	// struct's own; String itself is inlined, never a standalone routine
	assert.Equal(t, 3, strings.Count(b.String(), "func parse"))
}

// Dedup — parsers: two slices over Strings with identical options
// collapse to one slice routine even though they are distinct call sites.
func TestGenerate_DedupParsers_IdenticalStringCollapses(t *testing.T) {
	b := gobuild.New()
	s := NewSession()
	root, err := NewStruct("Strs", []StructField{
		{GoName: "A", JSONName: "a", Type: NewSlice("", NewString("", true, true, false))},
		{GoName: "B", JSONName: "b", Type: NewSlice("", NewString("", true, true, false))},
	}, OtherKeysSkip)
	require.NoError(t, err)
	require.NoError(t, Generate(b, s, root, "UnmarshalJSON"))
	// one slice parser routine reused for both fields, plus the struct's own
	assert.Equal(t, 2, strings.Count(b.String(), "func parse"))
}

// Determinism: two independent sessions over equivalently-constructed
// schemas emit byte-equal output.
func TestGenerate_Determinism(t *testing.T) {
	build := func() string {
		b := gobuild.New()
		s := NewSession()
		root := newABStruct(t, "AB")
		require.NoError(t, Generate(b, s, root, "UnmarshalJSON"))
		return b.String()
	}
	assert.Equal(t, build(), build())
}

// Struct key miss policy: Fail emits a call to Raise carrying the key.
func TestGenerate_StructOtherKeysFail(t *testing.T) {
	b := gobuild.New()
	s := NewSession()
	root, err := NewStruct("Strict", []StructField{
		{GoName: "A", JSONName: "a", Type: NewInt64("")},
	}, OtherKeysFail)
	require.NoError(t, err)
	require.NoError(t, Generate(b, s, root, "UnmarshalJSON"))
	assert.Contains(t, b.String(), "jsonscan.ErrUnexpectedKey")
	assert.Contains(t, b.String(), `string(key)`)
}

// Struct key dispatch strategy: single-byte distinct keys use a byte switch.
func TestGenerate_StructByteSwitch(t *testing.T) {
	b := gobuild.New()
	s := NewSession()
	root := newABStruct(t, "AB")
	require.NoError(t, Generate(b, s, root, "UnmarshalJSON"))
	assert.Contains(t, b.String(), "switch key[0] {")
}

// Struct key dispatch strategy: multi-byte keys use a string switch.
func TestGenerate_StructStringSwitch(t *testing.T) {
	b := gobuild.New()
	s := NewSession()
	root, err := NewStruct("Named", []StructField{
		{GoName: "Name", JSONName: "name", Type: NewInt64("")},
	}, OtherKeysSkip)
	require.NoError(t, err)
	require.NoError(t, Generate(b, s, root, "UnmarshalJSON"))
	assert.Contains(t, b.String(), "switch string(key) {")
}

// Slice reuse: Zero truncates in place rather than reallocating.
func TestSlice_ZeroTruncates(t *testing.T) {
	b := gobuild.New()
	sl := NewSlice("Ints", NewInt64(""))
	sl.Zero(b, "dest")
	assert.Equal(t, "\n(*dest) = (*dest)[:0]", b.String())
}

// Map.Zero always allocates fresh, unlike Slice.
func TestMap_ZeroAllocatesFresh(t *testing.T) {
	b := gobuild.New()
	m := NewMap("M", UnsafeString(""), NewInt64(""))
	m.Zero(b, "dest")
	assert.Contains(t, b.String(), "make(map[string]int64)")
}

// Array(3, Float64) exact-length enforcement is structural: exactly 3
// Trim call sites, closed by a single ']' expectation.
func TestGenerate_ArrayExactLength(t *testing.T) {
	b := gobuild.New()
	s := NewSession()
	arr, err := NewArray("Triple", 3, NewFloat64(""))
	require.NoError(t, err)
	require.NoError(t, Generate(b, s, arr, "UnmarshalJSON"))
	out := b.String()
	assert.Equal(t, 3, strings.Count(out, "jsonscan.DecodeFloat64(buf, cursor)"))
	assert.Equal(t, 1, strings.Count(out, "jsonscan.ExpectByte(buf, cursor, ']')"))
}

func TestNewArray_RejectsNonPositiveSize(t *testing.T) {
	_, err := NewArray("", 0, NewInt64(""))
	assert.ErrorIs(t, err, ErrInvalidArraySize)
}

func TestNewStruct_RejectsInvalidOtherKeys(t *testing.T) {
	_, err := NewStruct("", nil, OtherKeysPolicy(99))
	assert.ErrorIs(t, err, ErrInvalidOtherKeysPolicy)
}

// QuotedFloat64 and Float64WithSrc fields each materialize their own
// parser routines.
func TestGenerate_QuotedFloatAndFloat64WithSrc(t *testing.T) {
	b := gobuild.New()
	s := NewSession()
	root, err := NewStruct("Mixed", []StructField{
		{GoName: "V", JSONName: "value", Type: NewQuotedFloat64("")},
		{GoName: "S", JSONName: "raw", Type: NewFloat64WithSrc("")},
	}, OtherKeysSkip)
	require.NoError(t, err)
	require.NoError(t, Generate(b, s, root, "UnmarshalJSON"))
	out := b.String()
	assert.Contains(t, out, "strconv.ParseFloat(text, 64)")
	assert.Contains(t, out, "v.Src = append(v.Src[:0], buf[start:*cursor]...)")
}

func TestSession_RejectsNestedGenerate(t *testing.T) {
	s := NewSession()
	s.inFlight = true
	b := gobuild.New()
	err := Generate(b, s, newABStruct(t, "AB"), "UnmarshalJSON")
	assert.ErrorIs(t, err, ErrSessionInFlight)
}
