package schemaconfig

import (
	"fmt"

	"github.com/markojukic/jsongen"
)

// nodeConfig is the JSON/YAML-shaped tagged union over the closed set of
// jsongen.Node kinds: "kind" is the discriminator, the remaining fields
// are populated only for the kinds that use them.
type nodeConfig struct {
	Kind string `json:"kind"`
	Name string `json:"name,omitempty"`

	// String
	Copy         bool `json:"copy,omitempty"`
	ValidateUTF8 bool `json:"validateUTF8,omitempty"`
	Unquote      bool `json:"unquote,omitempty"`

	// Array / Slice
	Size int         `json:"size,omitempty"`
	Elem *nodeConfig `json:"elem,omitempty"`

	// Tuple / Struct
	Fields    []fieldConfig `json:"fields,omitempty"`
	OtherKeys string        `json:"otherKeys,omitempty"`

	// Map
	Key   *nodeConfig `json:"key,omitempty"`
	Value *nodeConfig `json:"value,omitempty"`
}

// fieldConfig is one field of a Tuple or Struct nodeConfig.
type fieldConfig struct {
	GoName   string      `json:"goName"`
	JSONName string      `json:"jsonName"`
	Type     *nodeConfig `json:"type"`
}

// toNode converts c into the jsongen.Node tree it describes.
func (c *nodeConfig) toNode() (jsongen.Node, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: nil node", ErrMissingField)
	}
	switch c.Kind {
	case "bool":
		return jsongen.NewBool(c.Name), nil
	case "int64":
		return jsongen.NewInt64(c.Name), nil
	case "uint64":
		return jsongen.NewUInt64(c.Name), nil
	case "float32":
		return jsongen.NewFloat32(c.Name), nil
	case "float64":
		return jsongen.NewFloat64(c.Name), nil
	case "quotedFloat64":
		return jsongen.NewQuotedFloat64(c.Name), nil
	case "float64WithSrc":
		return jsongen.NewFloat64WithSrc(c.Name), nil
	case "string":
		return jsongen.NewString(c.Name, c.Copy, c.ValidateUTF8, c.Unquote), nil
	case "array":
		return c.toArray()
	case "slice":
		return c.toSlice()
	case "tuple":
		return c.toTuple()
	case "struct":
		return c.toStruct()
	case "map":
		return c.toMap()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, c.Kind)
	}
}

func (c *nodeConfig) toArray() (jsongen.Node, error) {
	elem, err := c.Elem.toNode()
	if err != nil {
		return nil, fmt.Errorf("array %q: %w", c.Name, err)
	}
	arr, err := jsongen.NewArray(c.Name, c.Size, elem)
	if err != nil {
		return nil, fmt.Errorf("array %q: %w", c.Name, err)
	}
	return arr, nil
}

func (c *nodeConfig) toSlice() (jsongen.Node, error) {
	elem, err := c.Elem.toNode()
	if err != nil {
		return nil, fmt.Errorf("slice %q: %w", c.Name, err)
	}
	return jsongen.NewSlice(c.Name, elem), nil
}

func (c *nodeConfig) toTuple() (jsongen.Node, error) {
	fields, err := c.tupleFields()
	if err != nil {
		return nil, fmt.Errorf("tuple %q: %w", c.Name, err)
	}
	return jsongen.NewTuple(c.Name, fields), nil
}

func (c *nodeConfig) tupleFields() ([]jsongen.TupleField, error) {
	out := make([]jsongen.TupleField, len(c.Fields))
	for i, f := range c.Fields {
		t, err := f.Type.toNode()
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.GoName, err)
		}
		out[i] = jsongen.TupleField{GoName: f.GoName, JSONName: f.JSONName, Type: t}
	}
	return out, nil
}

func (c *nodeConfig) toStruct() (jsongen.Node, error) {
	fields, err := c.structFields()
	if err != nil {
		return nil, fmt.Errorf("struct %q: %w", c.Name, err)
	}
	otherKeys, err := parseOtherKeys(c.OtherKeys)
	if err != nil {
		return nil, fmt.Errorf("struct %q: %w", c.Name, err)
	}
	s, err := jsongen.NewStruct(c.Name, fields, otherKeys)
	if err != nil {
		return nil, fmt.Errorf("struct %q: %w", c.Name, err)
	}
	return s, nil
}

func (c *nodeConfig) structFields() ([]jsongen.StructField, error) {
	out := make([]jsongen.StructField, len(c.Fields))
	for i, f := range c.Fields {
		t, err := f.Type.toNode()
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.GoName, err)
		}
		out[i] = jsongen.StructField{GoName: f.GoName, JSONName: f.JSONName, Type: t}
	}
	return out, nil
}

func parseOtherKeys(s string) (jsongen.OtherKeysPolicy, error) {
	switch s {
	case "", "skip":
		return jsongen.OtherKeysSkip, nil
	case "fail":
		return jsongen.OtherKeysFail, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOtherKeys, s)
	}
}

func (c *nodeConfig) toMap() (jsongen.Node, error) {
	key, err := c.Key.toNode()
	if err != nil {
		return nil, fmt.Errorf("map %q: %w", c.Name, err)
	}
	value, err := c.Value.toNode()
	if err != nil {
		return nil, fmt.Errorf("map %q: %w", c.Name, err)
	}
	return jsongen.NewMap(c.Name, key, value), nil
}
