package gdrive

import "context"

// This file is part of the package tests (package gdrive) and provides
// helpers that allow tests in the external package to access internal
// package constructs.

// Resolve exposes the path resolver so the external test package can exercise
// it directly.
func (a *Adapter) Resolve(ctx context.Context, path string, createMissing bool) (*Object, bool, error) {
	return a.resolve(ctx, Normalize(path), createMissing)
}

// ResolveExisting exposes the must-exist resolver so tests can look up the
// remote object behind a path.
func (a *Adapter) ResolveExisting(ctx context.Context, path string) (*Object, error) {
	return a.mustResolve(ctx, Normalize(path))
}

// EscapeQuery exposes the Drive query escaping for tests.
func EscapeQuery(s string) string {
	return escapeQuery(s)
}
