// Package mocks provides in-memory fakes of the store and auth
// interfaces for tests that should not depend on a real database or
// identity provider.
package mocks
