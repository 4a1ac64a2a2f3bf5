package schemaconfig

import "errors"

// === Config Loading Errors ===

var (
	// ErrUnsupportedExtension is returned when a schema description's
	// file extension is neither a recognized JSON nor YAML suffix.
	ErrUnsupportedExtension = errors.New("schemaconfig: unsupported file extension")

	// ErrUnknownKind is returned when a nodeConfig's "kind" field does
	// not match any of the closed set of jsongen.Node kinds.
	ErrUnknownKind = errors.New("schemaconfig: unknown node kind")

	// ErrMissingField is returned when a kind-specific required node
	// (Array's or Slice's "elem", Map's "key" or "value", a field's
	// "type") is absent. A Struct or Tuple without "fields" is not an
	// error; it has no fields.
	ErrMissingField = errors.New("schemaconfig: missing required field")

	// ErrUnknownOtherKeys is returned when a Struct's "otherKeys" value
	// is neither "skip" nor "fail".
	ErrUnknownOtherKeys = errors.New("schemaconfig: unknown otherKeys policy")
)
