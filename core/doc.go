// Package core provides the contracts shared by every session backend and by
// the request context test doubles. It defines:
//
//   - Session (the capability set of a request session store)
//   - SessionFeature / FeatureCollection (the indirection a host framework
//     uses to resolve "the current session")
//   - RequestContext (the request scope exposing features and the session)
//   - Typed accessors (strings, 32-bit integers) layered over raw bytes
//
// Concrete stores live in the session package and the mocks live in the
// module root, so consumers depend only on these small interfaces and pick an
// implementation at wiring time.
package core
