// Package script runs HCL files made of `run "<command>" { ... }` blocks.
//
// Blocks execute one after another in file order. Each block's attributes
// are evaluated just before it runs, so an expression like "${var.DIR}/x"
// sees every variable set by the blocks above it.
package script
