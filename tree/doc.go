// Package tree defines the flattened, array-indexed kinematic tree produced
// by the parser and consumed by downstream simulation code.
package tree
