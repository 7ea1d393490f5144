// Package service contains the application services that orchestrate the
// store interfaces: translating between persisted entities and caller
// input, enforcing existence invariants (a task's parent project must
// exist before any child operation), and assigning defaults.
package service
