package jsongen

import "github.com/markojukic/jsongen/pkg/gobuild"

// Generate drives a schema tree into type declarations, parser routines,
// and a public entrypoint bound to root's destination type (C4). root
// must carry a non-empty destination name; entrypointName must not have
// already been bound to that destination type within s.
//
// The emitted entrypoint has signature
//
//	func (dest *<DestType>) <entrypointName>(buf []byte) (err error)
//
// and: zeros dest, installs a deferred jsonscan.RecoverLater guard,
// initializes the cursor over buf, skips leading whitespace, calls
// root.Trim, and returns nil (or the captured error).
func Generate(gb *gobuild.Builder, s *Session, root Node, entrypointName string) error {
	if root.Name() == "" {
		return ErrMissingDestinationName
	}
	if s.inFlight {
		return ErrSessionInFlight
	}
	if err := s.bindEntrypoint(root.Name(), entrypointName); err != nil {
		return err
	}
	s.inFlight = true
	defer func() { s.inFlight = false }()

	root.GenerateType(gb, s)
	root.GenerateParser(gb, s)

	gb.Import("github.com/markojukic/jsongen/pkg/jsonscan")

	closeFunc := gb.Func("(dest *" + root.Name() + ") " + entrypointName + "(buf []byte) (err error)")
	root.Zero(gb, "dest")
	gb.WL("defer jsonscan.RecoverLater(&err)")
	gb.WL("n := 0")
	gb.WL("cursor := &n")
	gb.WL("jsonscan.SkipWhitespace(buf, cursor)")
	root.Trim(gb, s, "dest")
	gb.WL("return nil")
	closeFunc()

	return nil
}
