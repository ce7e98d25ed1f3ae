// Package session houses concrete implementations of core.Session. The
// interface itself lives in the core package so request context mocks and
// code under test depend only on the contract, never on a concrete backend.
//
// Two backends are provided:
//
//   - InMemoryStore: a process local map whose Load and Commit are no-ops.
//     This is the store wired into request context mocks for unit tests.
//   - DistributedSession: a handle onto entries kept in a shared BadgerStore,
//     loaded and committed explicitly, for tests that exercise the
//     load/commit contract across handles.
package session
