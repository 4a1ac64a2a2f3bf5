package jsongen

import "fmt"

// Session is the deduplication registry and emission-session state for
// one generation run (C3 + part of C4). It is not safe for concurrent
// use, and a Session must not be reused across overlapping Generate
// calls — the inFlight guard rejects nesting, mirroring the original's
// single process-wide "current session" pointer made explicit instead of
// a package-level singleton.
type Session struct {
	typeKeys    []string       // insertion-ordered type identities
	typeIndex   map[string]int // type identity -> id
	namedTypes  map[string]string // destination name -> type identity, to catch reuse with a different shape

	parserKeys  []string       // insertion-ordered parser identities
	parserIndex map[string]int // parser identity -> id

	entrypoints map[string]bool // "<DestType>.<EntrypointName>" already bound

	inFlight bool
}

// NewSession creates an empty emission session.
func NewSession() *Session {
	return &Session{
		typeIndex:   make(map[string]int),
		namedTypes:  make(map[string]string),
		parserIndex: make(map[string]int),
		entrypoints: make(map[string]bool),
	}
}

// registerType registers n's type identity if not already present, and
// returns whether it was newly registered. If n is named and the name
// was previously bound to a different type identity, it panics with
// ErrInconsistentNaming — a generator-time programmer error, not a
// recoverable condition (Validate, run before Generate, should have
// already caught any such mismatch, see ErrNamedTypeMismatch).
func (s *Session) registerType(n Node) bool {
	key := n.typeKey()
	if name := n.Name(); name != "" {
		if existing, ok := s.namedTypes[name]; ok && existing != key {
			panic(fmt.Errorf("%w: %q", ErrInconsistentNaming, name))
		}
		s.namedTypes[name] = key
	}
	if _, ok := s.typeIndex[key]; ok {
		return false
	}
	s.typeIndex[key] = len(s.typeKeys)
	s.typeKeys = append(s.typeKeys, key)
	return true
}

// registerParser registers n's parser identity if not already present,
// and returns (id, isNew).
func (s *Session) registerParser(n Node) (int, bool) {
	key := n.parserKey()
	if id, ok := s.parserIndex[key]; ok {
		return id, false
	}
	id := len(s.parserKeys)
	s.parserIndex[key] = id
	s.parserKeys = append(s.parserKeys, key)
	return id, true
}

// mustParserID returns the id assigned to n's parser identity. It panics
// if n's GenerateParser has not run yet — a call-site ordering bug in
// this package, not a caller-facing condition.
func (s *Session) mustParserID(n Node) int {
	id, ok := s.parserIndex[n.parserKey()]
	if !ok {
		panic("schema: Trim called before GenerateParser for " + n.parserKey())
	}
	return id
}

// bindEntrypoint records that entrypointName was bound on destType,
// rejecting a duplicate bind within this session.
func (s *Session) bindEntrypoint(destType, entrypointName string) error {
	key := destType + "." + entrypointName
	if s.entrypoints[key] {
		return fmt.Errorf("%w: %s", ErrDuplicateEntrypoint, key)
	}
	s.entrypoints[key] = true
	return nil
}
