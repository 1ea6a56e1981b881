//go:build !invariants
// +build !invariants

package vector

const invariants = false
