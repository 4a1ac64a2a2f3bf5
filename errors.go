package jsongen

import "errors"

// === Generator-Time Errors ===
//
// These are schema-construction or session-usage mistakes, fatal to the
// session in progress. They never reach an emitted parser's caller.
var (
	// ErrMissingDestinationName is returned when Generate is called on a
	// root node with no destination type name.
	ErrMissingDestinationName = errors.New("root schema has no destination type name")

	// ErrDuplicateEntrypoint is returned when the same (destination type,
	// entrypoint name) pair is bound twice within one session.
	ErrDuplicateEntrypoint = errors.New("entrypoint already defined for this destination type")

	// ErrInconsistentNaming is the panic value (wrapped with the name)
	// raised by Session.registerType when a destination type name is
	// associated with two different type identities within one session.
	ErrInconsistentNaming = errors.New("destination type name reused for a different type")

	// ErrSessionInFlight is returned when Generate is called on a session
	// that is already generating (nested sessions are not supported).
	ErrSessionInFlight = errors.New("session already has a generation in progress")
)

// === Schema Construction Errors ===
var (
	// ErrInvalidOtherKeysPolicy is returned by NewStruct for an unrecognized policy.
	ErrInvalidOtherKeysPolicy = errors.New("invalid other-keys policy")

	// ErrInvalidArraySize is returned by NewArray when size < 1.
	ErrInvalidArraySize = errors.New("array size must be at least 1")
)

// === Structural Validation Errors ===
//
// Returned by Validate (see validate.go); each is wrapped with the
// offending node's JSON-pointer-style path before being returned.
var (
	// ErrMapKeyNotString is returned when a Map's key schema is not a String node.
	ErrMapKeyNotString = errors.New("map key must be a string schema")

	// ErrNamedTypeMismatch is returned when a destination name is reused
	// across two structurally different nodes.
	ErrNamedTypeMismatch = errors.New("destination type name reused for a different structural type")

	// ErrDuplicateJSONName is returned when a Struct or Tuple lists the
	// same JSON field name, or the same Go field name, twice.
	ErrDuplicateJSONName = errors.New("duplicate json field name")
)
