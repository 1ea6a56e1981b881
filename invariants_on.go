//go:build invariants
// +build invariants

package vector

// invariants is enabled when built with the invariants build tag. It turns
// on precondition checks for the unchecked accessors and mutators.
const invariants = true
