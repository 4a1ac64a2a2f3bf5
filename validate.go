package jsongen

import (
	"errors"
	"fmt"

	"github.com/kaptinlin/jsonpointer"
)

// Validate walks root and reports structural problems that Generate
// cannot safely proceed past: a Map whose key is not a String node, a
// Struct or Tuple with a duplicate field name, and a destination name
// reused across two structurally different nodes. Problems are
// collected rather than returned on the first one, each wrapped with a
// JSON-pointer-style path to the offending node.
//
// Run Validate before Generate; Generate's own registerType panics on a
// named-type mismatch it discovers mid-emission (ErrInconsistentNaming),
// which Validate is meant to catch first, with a path, as a returned
// error instead of a panic.
func Validate(root Node) error {
	v := &validator{named: map[string]string{}}
	v.walk(root, nil)
	return errors.Join(v.errs...)
}

type validator struct {
	named map[string]string // destination name -> type identity already seen
	errs  []error
}

func location(tokens []string) string {
	return "#" + jsonpointer.Format(tokens...)
}

// child returns tokens with seg appended, without aliasing tokens'
// backing array — callers recurse into several siblings from the same
// tokens slice, so a shared array would let one sibling's append
// clobber another's.
func child(tokens []string, seg string) []string {
	out := make([]string, len(tokens), len(tokens)+1)
	copy(out, tokens)
	return append(out, seg)
}

func (v *validator) walk(n Node, tokens []string) {
	if n == nil {
		return
	}
	if name := n.Name(); name != "" {
		key := n.typeKey()
		if existing, ok := v.named[name]; ok && existing != key {
			v.errs = append(v.errs, fmt.Errorf("%w: %q at %s", ErrNamedTypeMismatch, name, location(tokens)))
		} else {
			v.named[name] = key
		}
	}

	switch t := n.(type) {
	case *Array:
		v.walk(t.Elem, child(tokens, "elem"))
	case *Slice:
		v.walk(t.Elem, child(tokens, "elem"))
	case *Tuple:
		v.checkDuplicateNamedFields(tupleFields(t.Fields), tokens)
		for _, f := range t.Fields {
			v.walk(f.Type, child(tokens, f.GoName))
		}
	case *Struct:
		v.checkDuplicateNamedFields(structFields(t.Fields), tokens)
		for _, f := range t.Fields {
			v.walk(f.Type, child(tokens, f.GoName))
		}
	case *Map:
		if _, ok := t.Key.(*String); !ok {
			v.errs = append(v.errs, fmt.Errorf("%w: at %s", ErrMapKeyNotString, location(child(tokens, "key"))))
		} else {
			v.walk(t.Key, child(tokens, "key"))
		}
		v.walk(t.Value, child(tokens, "value"))
	}
}

// namedField is the shape shared by StructField and TupleField, enough
// for duplicate-name checking.
type namedField struct {
	GoName, JSONName string
}

func structFields(fs []StructField) []namedField {
	out := make([]namedField, len(fs))
	for i, f := range fs {
		out[i] = namedField{f.GoName, f.JSONName}
	}
	return out
}

func tupleFields(fs []TupleField) []namedField {
	out := make([]namedField, len(fs))
	for i, f := range fs {
		out[i] = namedField{f.GoName, f.JSONName}
	}
	return out
}

func (v *validator) checkDuplicateNamedFields(fs []namedField, tokens []string) {
	goNames := map[string]bool{}
	jsonNames := map[string]bool{}
	for _, f := range fs {
		if goNames[f.GoName] {
			v.errs = append(v.errs, fmt.Errorf("%w: duplicate field %q at %s", ErrDuplicateJSONName, f.GoName, location(tokens)))
		}
		goNames[f.GoName] = true
		if jsonNames[f.JSONName] {
			v.errs = append(v.errs, fmt.Errorf("%w: %q at %s", ErrDuplicateJSONName, f.JSONName, location(tokens)))
		}
		jsonNames[f.JSONName] = true
	}
}
